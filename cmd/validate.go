package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a CSV file parses and has a consistent shape.",
	Long: `Validate loads the file and checks its shape: every row must be as
long as the header, and no column name may be duplicated. The exit code is
non-zero when the file is malformed or inconsistent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := openTable(args[0])
		if err != nil {
			return err
		}

		if !table.IsValid() {
			return fmt.Errorf("%s: duplicated column names or ragged rows", args[0])
		}
		fmt.Printf("%s: %d columns, %d rows\n", args[0], table.Width(), table.RowCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
