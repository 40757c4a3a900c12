// Package edit handles changing a recorded entry
package edit

import (
	"fmt"
	"io"

	"aek/wallet/cmd/common"
	"aek/wallet/cmd/root"
	"aek/wallet/internal/container"
	"aek/wallet/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var flags common.DraftFlags

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the fields of a recorded entry",
	Long: `Overwrite the fields given as flags on the entry with the given id.
Fields not given keep their value. The entry type cannot be changed.`,
	Args: cobra.ExactArgs(1),
	RunE: editFunc,
}

func init() {
	flags.Bind(Cmd.Flags())
}

func editFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return Run(c, cmd.OutOrStdout(), root.SharedFlags.Output, args[0], &flags, cmd.Flags())
}

// Run overlays the changed flags on the stored entry and saves it. An
// unknown id only logs a warning.
func Run(c *container.Container, w io.Writer, format, id string, f *common.DraftFlags, fs *pflag.FlagSet) error {
	if !common.ChangedAny(fs) {
		return fmt.Errorf("nothing to change: pass at least one of --amount, --name, --date, --category, --payment, --reference, --note")
	}

	s := c.GetStore()
	existing, ok := s.Get(id)
	if !ok {
		c.GetLogger().Warn("No transaction with this id, nothing edited", logging.F(logging.FieldTransactionID, id))
		return nil
	}

	draft, err := f.Overlay(existing.Draft(), fs)
	if err != nil {
		return err
	}

	_, found, err := s.Edit(id, draft)
	if err != nil {
		return fmt.Errorf("failed to edit %s: %w", id, err)
	}
	if !found {
		return nil
	}
	updated, _ := s.Get(id)
	return c.GetReportGenerator().Transaction(w, format, updated)
}
