package csv

// Blank-row trimming. A row is blank when every cell in it is the empty
// string.

// isBlank reports whether every cell of the row is the empty string.
func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// TrimEnd removes blank rows from the end of the table, stopping at the
// first non-blank row. A table with no rows is left unchanged.
func (t *Table) TrimEnd() {
	end := len(t.rows)
	for end > 0 && isBlank(t.rows[end-1]) {
		end--
	}
	t.rows = t.rows[:end]
}

// TrimStart removes blank rows from the beginning of the table, stopping
// at the first non-blank row. A table with no rows is left unchanged.
func (t *Table) TrimStart() {
	start := 0
	for start < len(t.rows) && isBlank(t.rows[start]) {
		start++
	}
	t.rows = t.rows[start:]
}

// Trim removes blank rows from both ends of the table.
func (t *Table) Trim() {
	t.TrimStart()
	t.TrimEnd()
}

// RemoveEmptyLines removes every blank row regardless of position,
// preserving the relative order of the remaining rows.
func (t *Table) RemoveEmptyLines() {
	kept := t.rows[:0]
	for _, row := range t.rows {
		if !isBlank(row) {
			kept = append(kept, row)
		}
	}
	t.rows = kept
}
