package csv

import "fmt"

// Coords identifies the position of a cell within a table.
//
// Row and Column are zero-based indices into the owning table's rows and
// columns. Coordinates are only meaningful relative to a specific table
// snapshot: they are not validated until used in a lookup, and an
// out-of-range lookup yields "not found" rather than an error.
type Coords struct {
	Row    int
	Column int
}

// String returns the coordinates as "(row, column)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Column)
}
