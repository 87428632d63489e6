package csv

import "strings"

// Table is an in-memory table of delimited text: an ordered header of
// column names plus rows of field values, every row as long as the header.
//
// A Table owns its columns and rows exclusively. Accessors that expose them
// return copies, so no external aliasing of the internal state is possible.
type Table struct {
	delimiter rune
	columns   []string
	rows      [][]string
}

// New builds a Table from explicit columns and rows.
//
// Every row must have exactly len(columns) fields; otherwise a *ShapeError
// naming the first offending row is returned. The inputs are copied, the
// caller keeps ownership of its slices.
func New(columns []string, rows [][]string, delim rune) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, &ShapeError{Row: i, Got: len(row), Want: len(columns)}
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = make([]string, len(row))
		copy(copied[i], row)
	}

	return &Table{
		delimiter: delim,
		columns:   cols,
		rows:      copied,
	}, nil
}

// Delimiter returns the field delimiter used on serialization.
func (t *Table) Delimiter() rune {
	return t.delimiter
}

// SetDelimiter changes the field delimiter used on serialization.
func (t *Table) SetDelimiter(delim rune) {
	t.delimiter = delim
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.columns)
}

// RowCount returns the number of data rows. The header is not counted.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Row returns a copy of the row at the given index.
// Returns (nil, false) if the index is out of range.
func (t *Table) Row(index int) ([]string, bool) {
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	row := make([]string, len(t.rows[index]))
	copy(row, t.rows[index])
	return row, true
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// HasNoRows reports whether the table has no data rows.
func (t *Table) HasNoRows() bool {
	return len(t.rows) == 0
}

// HasNoColumns reports whether the table has no columns.
func (t *Table) HasNoColumns() bool {
	return len(t.columns) == 0
}

// IsEmpty reports whether the table has no columns and no rows.
func (t *Table) IsEmpty() bool {
	return t.HasNoRows() && t.HasNoColumns()
}

// ColumnIndex returns the position of the first column with the given
// name. Returns (0, false) if no column matches; absence is a normal
// outcome, not an error.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.columns {
		if col == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at the given coordinates.
// Returns ("", false) if either index is out of range.
func (t *Table) Cell(coords Coords) (string, bool) {
	if coords.Row < 0 || coords.Row >= len(t.rows) {
		return "", false
	}
	row := t.rows[coords.Row]
	if coords.Column < 0 || coords.Column >= len(row) {
		return "", false
	}
	return row[coords.Column], true
}

// FindText returns the coordinates of every cell whose value contains text
// as a substring, in row-major order. The result is empty when nothing
// matches.
func (t *Table) FindText(text string) []Coords {
	var coords []Coords
	for i, row := range t.rows {
		for j, cell := range row {
			if strings.Contains(cell, text) {
				coords = append(coords, Coords{Row: i, Column: j})
			}
		}
	}
	return coords
}

// IsValid checks the table's shape invariant: no duplicated column name,
// and every row as long as the header. It is a read-only consistency
// check; nothing is repaired.
func (t *Table) IsValid() bool {
	seen := make(map[string]struct{}, len(t.columns))
	for _, col := range t.columns {
		if _, dup := seen[col]; dup {
			return false
		}
		seen[col] = struct{}{}
	}

	for _, row := range t.rows {
		if len(row) != len(t.columns) {
			return false
		}
	}
	return true
}
