// Package categories prints the suggested classification lists
package categories

import (
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the suggested categories and payment methods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output)
	},
}

// Run renders the configured suggestion lists.
func Run(c *container.Container, w io.Writer, format string) error {
	return c.GetReportGenerator().Suggestions(w, format, c.Suggestions())
}
