// Package importcmd reads entries from a CSV file into the store
package importcmd

import (
	"fmt"
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/container"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/validation"

	"github.com/spf13/cobra"
)

var (
	inputFile string
	dryRun    bool
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Add entries from a CSV file",
	Long: `Add one entry per CSV row. Rows use the export column names; ID,
CreatedAt and CreatedBy are ignored and assigned fresh. Rows whose Status is
cancelled are added and then cancelled. The file is validated completely
before anything is added.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), inputFile, dryRun)
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Input CSV file")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without adding anything")
	_ = Cmd.MarkFlagRequired("file")
}

// Run imports file. Either every row is added or, on a parse error, none.
func Run(c *container.Container, w io.Writer, file string, dryRun bool) error {
	if err := validation.IsValidInputFile(file); err != nil {
		return err
	}
	rows, err := c.GetCSVCodec().ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", file, err)
	}
	if dryRun {
		_, err := fmt.Fprintf(w, "%d rows are valid, nothing imported (dry run)\n", len(rows))
		return err
	}

	s := c.GetStore()
	cancelled := 0
	for _, row := range rows {
		transactions, err := s.Add(row.Draft)
		if err != nil {
			return fmt.Errorf("line %d: %w", row.Line, err)
		}
		if row.Cancelled {
			s.Cancel(transactions[len(transactions)-1].ID)
			cancelled++
		}
	}

	c.GetLogger().Info("Import finished",
		logging.F(logging.FieldPath, file),
		logging.F(logging.FieldCount, len(rows)))
	_, err = fmt.Fprintf(w, "Imported %d transactions (%d cancelled) from %s\n", len(rows), cancelled, file)
	return err
}
