// Package report handles the category report command
package report

import (
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show totals and the income and expense breakdown by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output)
	},
}

// Run renders the category report.
func Run(c *container.Container, w io.Writer, format string) error {
	r := aggregate.BuildReport(c.GetStore().Snapshot(), c.Now())
	return c.GetReportGenerator().Report(w, format, r)
}
