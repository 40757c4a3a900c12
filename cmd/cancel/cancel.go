// Package cancel handles soft-deleting entries
package cancel

import (
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/container"
	"aek/wallet/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the cancel command
var Cmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an entry",
	Long:  `Mark the entry with the given id as cancelled. It stays in the store but no longer counts toward any total.`,
	Args:  cobra.ExactArgs(1),
	RunE:  cancelFunc,
}

func cancelFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output, args[0])
}

// Run cancels the entry and renders it. An unknown id only logs a warning.
func Run(c *container.Container, w io.Writer, format, id string) error {
	s := c.GetStore()
	if _, found := s.Cancel(id); !found {
		c.GetLogger().Warn("No transaction with this id, nothing cancelled", logging.F(logging.FieldTransactionID, id))
		return nil
	}
	tx, _ := s.Get(id)
	return c.GetReportGenerator().Transaction(w, format, tx)
}
