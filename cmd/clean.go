package cmd

import (
	"github.com/spf13/cobra"
)

var all bool

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Remove blank rows from a CSV file.",
	Long: `Clean removes blank rows (rows whose every cell is empty) from both
ends of the file. With --all, every blank row is removed regardless of
position.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := openTable(args[0])
		if err != nil {
			return err
		}

		if all {
			table.RemoveEmptyLines()
		} else {
			table.Trim()
		}
		return saveTable(table)
	},
}

func init() {
	cleanCmd.Flags().BoolVarP(&all, "all", "a", false, "Remove every blank row, not just leading/trailing ones")
	cleanCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(cleanCmd)
}
