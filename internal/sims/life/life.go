// Package life implements Conway's Game of Life on a grid with clipped edges.
package life

import "lifeview/internal/core"

// Display classifies a cell for rendering the generation that was just
// computed.
type Display uint8

const (
	// Background marks a dead cell that stays dead.
	Background Display = iota
	// Alive marks a cell that is alive in the next generation.
	Alive
	// Dying marks a live cell that dies in the next generation. It is only
	// produced while the simulation is active.
	Dying
)

func (d Display) String() string {
	switch d {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	default:
		return "background"
	}
}

// Rule reports whether a cell is alive in the next generation (B3/S23).
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Neighbors sums the live cells in the 3x3 block around (row, col), excluding
// the cell itself. Cells outside the grid contribute nothing.
func Neighbors(g *core.Grid, row, col int) int {
	rows, cols := g.Dimensions()
	cells := g.Cells()
	n := 0
	for r := max(0, row-1); r <= min(rows-1, row+1); r++ {
		for c := max(0, col-1); c <= min(cols-1, col+1); c++ {
			if r == row && c == col {
				continue
			}
			n += int(cells[r*cols+c])
		}
	}
	return n
}

// Next computes the generation following g along with a per-cell display
// classification in row-major order. g is not modified. When active is false
// the next generation is still computed but dying cells are classified as
// Background.
func Next(g *core.Grid, active bool) (*core.Grid, []Display) {
	rows, cols := g.Dimensions()
	next := core.NewGrid(rows, cols)
	display := make([]Display, rows*cols)
	cur := g.Cells()
	nxt := next.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			alive := cur[idx] == core.Alive
			if Rule(alive, Neighbors(g, r, c)) {
				nxt[idx] = core.Alive
				display[idx] = Alive
				continue
			}
			if alive && active {
				display[idx] = Dying
			}
		}
	}
	return next, display
}

// Current classifies g as it stands, without looking ahead a generation.
func Current(g *core.Grid) []Display {
	cells := g.Cells()
	display := make([]Display, len(cells))
	for i, v := range cells {
		if v == core.Alive {
			display[i] = Alive
		}
	}
	return display
}
