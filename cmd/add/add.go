// Package add handles recording new income and expense entries
package add

import (
	"fmt"
	"io"

	"aek/wallet/cmd/common"
	"aek/wallet/cmd/root"
	"aek/wallet/internal/container"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/models"

	"github.com/spf13/cobra"
)

var flags common.DraftFlags

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:       "add <income|expense>",
	Short:     "Record an income or expense entry",
	Long:      `Record a new entry. Date defaults to today; category and payment method default to the first suggested values.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.TypeIncome), string(models.TypeExpense)},
	RunE:      addFunc,
}

func init() {
	flags.Bind(Cmd.Flags())
}

func addFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	typ, err := models.ParseTransactionType(args[0])
	if err != nil {
		return err
	}
	return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output, typ, &flags)
}

// Run builds a draft from f, adds it and renders the stored transaction.
func Run(c *container.Container, w io.Writer, format string, typ models.TransactionType, f *common.DraftFlags) error {
	cfg := c.GetConfig()
	draft, err := f.NewDraft(typ, common.Defaults{
		Today:          c.Now(),
		Categories:     cfg.CategoriesFor(typ),
		PaymentMethods: cfg.Categories.PaymentMethods,
	})
	if err != nil {
		return err
	}

	transactions, err := c.GetStore().Add(draft)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", typ, err)
	}
	added := transactions[len(transactions)-1]
	c.GetLogger().Debug("Rendering added transaction", logging.F(logging.FieldTransactionID, added.ID))
	return c.GetReportGenerator().Transaction(w, format, added)
}
