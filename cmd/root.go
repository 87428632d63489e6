// Package cmd implements the csv-tools command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ThomasGysemans/csv-tools/internal/storage"
	"github.com/ThomasGysemans/csv-tools/pkg/csv"
)

var (
	delimiter string
	output    string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "csv-tools",
	Short: "Read, search and manipulate CSV files.",
	Long: `csv-tools reads delimited text files into an in-memory table and
exposes operations over it: searching, merging, delimiter conversion,
blank-row cleanup and validity checks.

Input paths may be local files or s3://bucket/key objects.`,
	// Errors are reported once, by Execute.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var programLevel = new(slog.LevelVar)
		switch {
		case verbose:
			programLevel.Set(slog.LevelDebug)
		default:
			programLevel.Set(slog.LevelInfo)
		}
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel})
		slog.SetDefault(slog.New(handler))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(fmt.Sprintf("command execution failed: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", ",", "Field delimiter (single character)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// delim validates the --delimiter flag and returns it as a rune.
func delim() (rune, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	return r, nil
}

// openTable fetches path (downloading S3 objects as needed) and loads it.
func openTable(path string) (*csv.Table, error) {
	d, err := delim()
	if err != nil {
		return nil, err
	}
	local, err := storage.Fetch(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loading table", "path", local)
	return csv.Open(local, d)
}

// saveTable writes the table to the --output path, or to stdout when no
// output path is set.
func saveTable(table *csv.Table) error {
	if output == "" {
		return table.Write(os.Stdout)
	}
	slog.Debug("writing table", "path", output)
	return table.WriteFile(output)
}
