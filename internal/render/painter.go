package render

import "lifeview/internal/sims/life"

// Painter draws display classifications onto a Canvas as a grid of squares.
type Painter struct {
	size    int
	palette Palette
}

// NewPainter builds a painter for cells of size x size pixels.
func NewPainter(size int, palette Palette) *Painter {
	if size <= 0 {
		size = 1
	}
	return &Painter{size: size, palette: palette}
}

// CellSize returns the edge length of one cell in pixels.
func (p *Painter) CellSize() int { return p.size }

// Palette returns the colors in use.
func (p *Painter) Palette() Palette { return p.palette }

// extent is the drawn edge of a cell; one pixel is left for the grid line
// once cells are large enough to show it.
func (p *Painter) extent() int {
	if p.size < 3 {
		return p.size
	}
	return p.size - 1
}

// Paint draws the whole grid. display is row-major with cols entries per row.
func (p *Painter) Paint(dst Canvas, display []life.Display, rows, cols int) {
	if len(display) != rows*cols {
		return
	}
	dst.Fill(p.palette.GridLine)
	e := p.extent()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst.DrawCell(c*p.size, r*p.size, e, e, p.palette.Color(display[r*cols+c]))
		}
	}
}

// PaintCell redraws a single cell.
func (p *Painter) PaintCell(dst Canvas, row, col int, d life.Display) {
	e := p.extent()
	dst.DrawCell(col*p.size, row*p.size, e, e, p.palette.Color(d))
}

// CellAt maps a pixel position to grid coordinates.
func (p *Painter) CellAt(x, y int) (row, col int) {
	if x < 0 || y < 0 {
		return -1, -1
	}
	return y / p.size, x / p.size
}
