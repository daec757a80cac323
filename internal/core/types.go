package core

import "fmt"

// Size describes the dimensions of a grid in cells.
type Size struct {
	Rows int
	Cols int
}

// String formats the size as rows x cols.
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.Rows * s.Cols }

// Cell values stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)
