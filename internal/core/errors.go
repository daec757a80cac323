package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// BoundsError reports an attempt to read or write a cell outside the grid.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// ShapeMismatchError reports an attempt to replace a grid with one of a
// different shape.
type ShapeMismatchError struct {
	Want Size
	Got  Size
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("grid shape mismatch: want %s, got %s", e.Want, e.Got)
}

func boundsError(row, col, rows, cols int) error {
	return errors.WithStack(&BoundsError{Row: row, Col: col, Rows: rows, Cols: cols})
}

func shapeMismatch(want, got Size) error {
	return errors.WithStack(&ShapeMismatchError{Want: want, Got: got})
}

// IsBounds reports whether err carries a BoundsError.
func IsBounds(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}

// IsShapeMismatch reports whether err carries a ShapeMismatchError.
func IsShapeMismatch(err error) bool {
	var se *ShapeMismatchError
	return errors.As(err, &se)
}
