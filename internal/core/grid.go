package core

// Grid stores a rows x cols matrix of cell values in row-major order. Every
// value is either Dead or Alive and the shape never changes after creation.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Size returns the grid dimensions as a Size.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Cells exposes the backing slice in row-major order. Callers must not change
// its length and must only store Dead or Alive.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the value at (row, col).
func (g *Grid) Get(row, col int) (uint8, error) {
	if !g.InBounds(row, col) {
		return 0, boundsError(row, col, g.rows, g.cols)
	}
	return g.data[g.Index(row, col)], nil
}

// Alive reports whether (row, col) holds a live cell. Coordinates outside the
// grid read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.Index(row, col)] == Alive
}

// Set stores v at (row, col). Any non-zero value is stored as Alive.
func (g *Grid) Set(row, col int, v uint8) error {
	if !g.InBounds(row, col) {
		return boundsError(row, col, g.rows, g.cols)
	}
	if v != Dead {
		v = Alive
	}
	g.data[g.Index(row, col)] = v
	return nil
}

// Replace swaps in the contents of next. The grid is left untouched when the
// shapes differ.
func (g *Grid) Replace(next *Grid) error {
	if next == nil {
		return shapeMismatch(g.Size(), Size{})
	}
	if next.rows != g.rows || next.cols != g.cols {
		return shapeMismatch(g.Size(), next.Size())
	}
	copy(g.data, next.data)
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids share a shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// LiveCells counts the live cells.
func (g *Grid) LiveCells() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
