// Package loader turns raw text lines into the column row and body rows of
// a table.
//
// The first line of a document names the columns; every remaining line is a
// data row. Each line is tokenized independently, using the quote-aware
// scanning path only when the line contains a double quote.
package loader

import (
	"fmt"
	"strings"

	"github.com/ThomasGysemans/csv-tools/internal/tokenizer"
)

// LineError reports a tokenization failure with the 1-based line number of
// the offending line. The header is line 1.
type LineError struct {
	Line int
	Err  error
}

// Error returns a formatted message with the line number.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying tokenizer error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// fields tokenizes a single line, selecting the scanning path only when the
// line contains a quote character.
func fields(line string, delim rune, hint int) ([]string, error) {
	if strings.ContainsRune(line, '"') {
		return tokenizer.ParseLine(line, delim, hint)
	}
	return tokenizer.SplitLine(line, delim), nil
}

// ReadColumns tokenizes the header line into the column-name sequence.
func ReadColumns(line string, delim rune) ([]string, error) {
	cols, err := fields(line, delim, 0)
	if err != nil {
		return nil, &LineError{Line: 1, Err: err}
	}
	return cols, nil
}

// ReadRows tokenizes the body lines into rows, line by line. fieldCount is
// the column count of the header; it pre-sizes each row's field sequence
// and is advisory only.
//
// The first tokenization failure aborts the whole load; there is no
// partial-result recovery.
func ReadRows(lines []string, delim rune, fieldCount int) ([][]string, error) {
	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		row, err := fields(line, delim, fieldCount)
		if err != nil {
			// Body lines start at line 2: the header is line 1.
			return nil, &LineError{Line: i + 2, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
