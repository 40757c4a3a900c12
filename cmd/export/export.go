// Package export writes the transaction collection to CSV
package export

import (
	"fmt"
	"io"

	"aek/wallet/cmd/root"
	"aek/wallet/internal/container"
	"aek/wallet/internal/validation"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export every entry, cancelled ones included, to a CSV file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return Run(c, cmd.OutOrStdout(), outputFile)
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "file", "f", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("file")
}

// Run writes the full collection, in insertion order, to file.
func Run(c *container.Container, w io.Writer, file string) error {
	if err := validation.IsValidOutputFile(file); err != nil {
		return err
	}
	transactions := c.GetStore().Snapshot()
	if err := c.GetCSVCodec().WriteFile(file, transactions); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Exported %d transactions to %s\n", len(transactions), file)
	return err
}
