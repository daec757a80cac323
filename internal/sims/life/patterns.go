package life

import (
	"sort"

	"lifeview/internal/core"
)

// Pattern is a named seed described by live-cell offsets from its top-left
// corner.
type Pattern struct {
	Name  string
	Descr string
	Cells [][2]int // {row, col}
}

// Bounds returns the number of rows and columns the pattern spans.
func (p Pattern) Bounds() (rows, cols int) {
	for _, rc := range p.Cells {
		rows = max(rows, rc[0]+1)
		cols = max(cols, rc[1]+1)
	}
	return rows, cols
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp brings the pattern to life with its top-left corner at (row, col).
// Cells that fall outside the grid are dropped.
func Stamp(g *core.Grid, p Pattern, row, col int) {
	for _, rc := range p.Cells {
		r, c := row+rc[0], col+rc[1]
		if !g.InBounds(r, c) {
			continue
		}
		_ = g.Set(r, c, core.Alive)
	}
}

// StampCentered stamps the pattern in the middle of the grid.
func StampCentered(g *core.Grid, p Pattern) {
	rows, cols := g.Dimensions()
	pr, pc := p.Bounds()
	Stamp(g, p, (rows-pr)/2, (cols-pc)/2)
}

func init() {
	Register(Pattern{Name: "block", Descr: "2x2 still life", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}})
	Register(Pattern{Name: "blinker", Descr: "period 2 oscillator", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}})
	Register(Pattern{Name: "toad", Descr: "period 2 oscillator", Cells: [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2},
	}})
	Register(Pattern{Name: "beacon", Descr: "period 2 oscillator", Cells: [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{2, 2}, {2, 3}, {3, 2}, {3, 3},
	}})
	Register(Pattern{Name: "glider", Descr: "diagonal spaceship", Cells: [][2]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}})
	Register(Pattern{Name: "lwss", Descr: "lightweight spaceship", Cells: [][2]int{
		{0, 1}, {0, 4},
		{1, 0},
		{2, 0}, {2, 4},
		{3, 0}, {3, 1}, {3, 2}, {3, 3},
	}})
	Register(Pattern{Name: "r-pentomino", Descr: "methuselah", Cells: [][2]int{
		{0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 1},
	}})
}
