// Package dashboard handles the overview command
package dashboard

import (
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show totals, today, this month, the monthly series and recent activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output)
	},
}

// Run renders the dashboard for the container's current time.
func Run(c *container.Container, w io.Writer, format string) error {
	d := aggregate.BuildDashboard(c.GetStore().Snapshot(), c.Now(), c.AggregateOptions())
	return c.GetReportGenerator().Dashboard(w, format, d)
}
