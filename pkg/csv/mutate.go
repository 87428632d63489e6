package csv

import "fmt"

// Structural mutation. Every mutator validates its preconditions before
// touching state; on failure the table is left exactly as it was.

// AddRow appends values as the last row.
// Returns a *ShapeError if len(values) differs from the table width.
func (t *Table) AddRow(values []string) error {
	if len(values) != t.Width() {
		return &ShapeError{Row: -1, Got: len(values), Want: t.Width()}
	}

	row := make([]string, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)
	return nil
}

// AddColumn appends a column with the given name and an empty-string cell
// in every existing row.
// Returns an error wrapping ErrDuplicateColumn if the name is taken.
func (t *Table) AddColumn(name string) error {
	if t.HasColumn(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}

	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}
	return nil
}

// InsertColumn inserts a column at the given index, shifting later columns
// right, and inserts an empty-string cell at that index in every row.
// The index may equal the current width, which appends.
//
// Returns an error wrapping ErrIndexOutOfRange or ErrDuplicateColumn when
// the preconditions fail.
func (t *Table) InsertColumn(name string, index int) error {
	if index < 0 || index > t.Width() {
		return fmt.Errorf("column %w: %d", ErrIndexOutOfRange, index)
	}
	if t.HasColumn(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}

	t.columns = insertAt(t.columns, index, name)
	for i := range t.rows {
		t.rows[i] = insertAt(t.rows[i], index, "")
	}
	return nil
}

// RemoveColumn removes the column at the given index, along with that cell
// in every row.
// Returns an error wrapping ErrIndexOutOfRange if the index is invalid.
func (t *Table) RemoveColumn(index int) error {
	if index < 0 || index >= t.Width() {
		return fmt.Errorf("column %w: %d", ErrIndexOutOfRange, index)
	}

	t.columns = removeAt(t.columns, index)
	for i := range t.rows {
		t.rows[i] = removeAt(t.rows[i], index)
	}
	return nil
}

// RemoveRow removes the row at the given index.
// Returns an error wrapping ErrIndexOutOfRange if the index is invalid.
func (t *Table) RemoveRow(index int) error {
	if index < 0 || index >= t.RowCount() {
		return fmt.Errorf("row %w: %d", ErrIndexOutOfRange, index)
	}

	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	return nil
}

// FillColumn overwrites the named column with values, row by row in order.
//
// Returns an error wrapping ErrUnknownColumn if the column is absent, or a
// *ShapeError if len(values) differs from the row count.
func (t *Table) FillColumn(name string, values []string) error {
	index, ok := t.ColumnIndex(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if len(values) != t.RowCount() {
		return &ShapeError{Row: -1, Got: len(values), Want: t.RowCount()}
	}

	for i := range t.rows {
		t.rows[i][index] = values[i]
	}
	return nil
}

// insertAt inserts v at index i, shifting later elements right.
func insertAt(s []string, i int, v string) []string {
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeAt removes the element at index i, preserving order.
func removeAt(s []string, i int) []string {
	return append(s[:i], s[i+1:]...)
}
