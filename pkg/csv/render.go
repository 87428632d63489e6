package csv

import (
	"io"
	"strings"
)

// Serialization back to delimited text. This is the exact inverse of the
// input format Load expects: header line first, then one line per row,
// fields joined by the delimiter, every line newline-terminated, no
// trailing delimiter before a newline. Values are written as stored; no
// quoting is re-applied.

// String renders the table as delimited text.
func (t *Table) String() string {
	var sb strings.Builder
	writeLine(&sb, t.columns, t.delimiter)
	for _, row := range t.rows {
		writeLine(&sb, row, t.delimiter)
	}
	return sb.String()
}

// Write renders the table as delimited text into w.
func (t *Table) Write(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// writeLine joins fields with the delimiter and terminates the line.
func writeLine(sb *strings.Builder, fields []string, delim rune) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteRune(delim)
		}
		sb.WriteString(field)
	}
	sb.WriteByte('\n')
}
