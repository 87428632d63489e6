package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <file> <text>",
	Short: "Print the coordinates of every cell containing the given text.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := openTable(args[0])
		if err != nil {
			return err
		}

		for _, coords := range table.FindText(args[1]) {
			fmt.Fprintln(os.Stdout, coords)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
