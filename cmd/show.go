package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Pretty-print a CSV file as a table.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := openTable(args[0])
		if err != nil {
			return err
		}

		tableString := &strings.Builder{}
		tw := tablewriter.NewWriter(tableString)
		tw.Header(table.Columns())
		for i := 0; i < table.RowCount(); i++ {
			row, _ := table.Row(i)
			tw.Append(row)
		}
		tw.Render()
		fmt.Fprint(os.Stdout, tableString.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
