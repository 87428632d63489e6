// Package csv provides error types for table loading and mutation.
package csv

import (
	"errors"
	"fmt"
)

// Common table errors
var (
	// ErrFieldCount indicates a row has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrDuplicateColumn indicates a column name already exists.
	ErrDuplicateColumn = errors.New("column already exists")

	// ErrUnknownColumn indicates a column name is not present.
	ErrUnknownColumn = errors.New("no such column")

	// ErrIndexOutOfRange indicates a row or column index is out of range.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ShapeError reports a row whose length differs from the column count.
// It wraps ErrFieldCount.
type ShapeError struct {
	// Row is the index of the offending row, or -1 when the operation is
	// not tied to a row index (AddRow, FillColumn).
	Row int
	// Got is the number of fields the row actually has.
	Got int
	// Want is the expected number of fields (the table width).
	Want int
}

// Error returns a formatted message with the offending row and lengths.
func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %d were given, but expected %d", ErrFieldCount, e.Got, e.Want)
	}
	return fmt.Sprintf("%v for row of index %d: %d were given, but expected %d",
		ErrFieldCount, e.Row, e.Got, e.Want)
}

// Unwrap returns ErrFieldCount so ShapeError matches errors.Is checks.
func (e *ShapeError) Unwrap() error {
	return ErrFieldCount
}
