// Package list handles the per-type transaction listings
package list

import (
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/container"
	"aek/wallet/internal/models"
	"aek/wallet/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:       "list <income|expense>",
	Short:     "List active entries of one type",
	Long:      `List the active income or expense entries, latest date first.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.TypeIncome), string(models.TypeExpense)},
	RunE:      listFunc,
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	typ, err := models.ParseTransactionType(args[0])
	if err != nil {
		return err
	}
	return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output, typ)
}

// Run renders the listing of typ.
func Run(c *container.Container, w io.Writer, format string, typ models.TransactionType) error {
	return c.GetReportGenerator().Listing(w, format, report.Listing{
		Type:         typ,
		Transactions: aggregate.Listing(c.GetStore().Snapshot(), typ),
	})
}
