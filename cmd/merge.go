package cmd

import (
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file> <other>",
	Short: "Merge two CSV files side by side.",
	Long: `Merge appends the second file's columns to the first. Column names
must be disjoint. When row counts differ, the shorter side is padded with
empty cells so the result stays rectangular.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := openTable(args[0])
		if err != nil {
			return err
		}
		right, err := openTable(args[1])
		if err != nil {
			return err
		}

		if err := left.Merge(right); err != nil {
			return err
		}
		return saveTable(left)
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(mergeCmd)
}
