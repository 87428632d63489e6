package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var toDelimiter string

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite a CSV file with a different delimiter.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := openTable(args[0])
		if err != nil {
			return err
		}

		if utf8.RuneCountInString(toDelimiter) != 1 {
			return fmt.Errorf("target delimiter must be a single character, got %q", toDelimiter)
		}
		r, _ := utf8.DecodeRuneInString(toDelimiter)
		table.SetDelimiter(r)
		return saveTable(table)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&toDelimiter, "to", "t", ";", "Target delimiter (single character)")
	convertCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(convertCmd)
}
