package csv

import "fmt"

// Merge combines other into t side by side: other's columns are appended
// to t's header, and other's row values are appended to t's corresponding
// rows.
//
// Column namespaces must be disjoint; a shared name yields an error
// wrapping ErrDuplicateColumn and leaves t unchanged.
//
// Row counts are reconciled before any data is copied:
//
//   - If t has fewer rows than other, t gains rows pre-filled with empty
//     strings across t's original width until the counts match.
//   - If t has more rows than other, every row of t beyond other's row
//     count (the boundary row included) is extended with as many empty
//     strings as other has columns, so the table stays rectangular.
//
// other is assumed internally valid; Merge does not re-validate its shape.
// other is not modified.
func (t *Table) Merge(other *Table) error {
	for _, col := range other.columns {
		if t.HasColumn(col) {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
	}

	width := t.Width()
	rowCount := t.RowCount()
	otherRowCount := other.RowCount()

	t.columns = append(t.columns, other.columns...)

	if rowCount < otherRowCount {
		for i := rowCount; i < otherRowCount; i++ {
			t.rows = append(t.rows, make([]string, width))
		}
	} else if rowCount > otherRowCount {
		for i := otherRowCount; i < rowCount; i++ {
			t.rows[i] = append(t.rows[i], make([]string, other.Width())...)
		}
	}

	for i := 0; i < otherRowCount; i++ {
		t.rows[i] = append(t.rows[i], other.rows[i]...)
	}

	return nil
}
