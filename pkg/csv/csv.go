// Package csv provides an in-memory table model for delimited text.
//
// A Table holds a header of column names and a rectangular body of rows.
// It is loaded from delimited text (or built from explicit columns and
// rows), mutated in place, and serialized back to the same text format.
//
// Quoted fields are supported: a cell surrounded by double quotes counts as
// one value even when it contains the delimiter. A literal quote inside a
// quoted field is written `\"`, a literal backslash `\\`. This is a custom
// backslash scheme; RFC 4180 doubled-quote escaping is not supported.
//
// # Loading
//
//	table, err := csv.Load(file, ',')
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(table.Width(), table.RowCount())
//
// # Building
//
//	table, err := csv.New(
//	    []string{"a", "b", "c"},
//	    [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
//	    ',',
//	)
//
// # Mutation
//
// Every mutator validates its preconditions before touching state; on
// failure the table is left unchanged. A table is a single mutable
// aggregate with no internal locking: callers sharing one across
// goroutines are responsible for synchronization.
//
// # Serialization
//
//	var buf bytes.Buffer
//	err := table.Write(&buf)
//	// or: s := table.String()
package csv

import (
	"bufio"
	"io"
	"strings"

	"github.com/ThomasGysemans/csv-tools/internal/loader"
)

// utf8bom is tolerated (and dropped) at the start of the header line.
const utf8bom = "\uFEFF"

// Load reads delimited text from r and builds a Table.
//
// The first line names the columns, every remaining line is a data row. A
// leading UTF-8 byte order mark is dropped. Lines may be arbitrarily long;
// the only bound is the input size. The first malformed line aborts the
// whole load: no partial table is ever returned.
//
// An empty input produces a table with a single empty column name, matching
// the tokenization of an empty header line.
func Load(r io.Reader, delim rune) (*Table, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	var header string
	var body []string
	if len(lines) > 0 {
		header = strings.TrimPrefix(lines[0], utf8bom)
		body = lines[1:]
	}

	return load(header, body, delim)
}

// readLines splits r into lines without any line-length limit. Line
// terminators (LF or CRLF) are stripped; a final line without a terminator
// still counts.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// LoadLines builds a Table from raw text lines: the first line names the
// columns, the rest are data rows.
//
// Lines must not contain line terminators; splitting the input into lines
// is the caller's concern.
func LoadLines(lines []string, delim rune) (*Table, error) {
	var header string
	var body []string
	if len(lines) > 0 {
		header = lines[0]
		body = lines[1:]
	}
	return load(header, body, delim)
}

func load(header string, body []string, delim rune) (*Table, error) {
	columns, err := loader.ReadColumns(header, delim)
	if err != nil {
		return nil, err
	}
	rows, err := loader.ReadRows(body, delim, len(columns))
	if err != nil {
		return nil, err
	}

	return &Table{
		delimiter: delim,
		columns:   columns,
		rows:      rows,
	}, nil
}
