package session

import (
	"strings"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

// Headless is a Surface without a window. It replays a script of events, one
// batch per poll, and reports quit once QuitAfter polls have happened.
type Headless struct {
	Script    [][]Event
	QuitAfter int

	frame    *render.Frame
	polls    int
	presents int
	closed   bool
}

// NewHeadless returns a surface drawing into a w x h pixel frame.
func NewHeadless(w, h int, script ...[]Event) *Headless {
	return &Headless{Script: script, frame: render.NewFrame(w, h)}
}

// RunFor returns a headless surface that starts the simulation on the first
// poll and quits after generations ticks.
func RunFor(w, h, generations int) *Headless {
	hs := NewHeadless(w, h, []Event{KeyDown(KeySpace)})
	hs.QuitAfter = generations
	return hs
}

// Poll implements Surface.
func (h *Headless) Poll() []Event {
	i := h.polls
	h.polls++
	if h.QuitAfter > 0 && i >= h.QuitAfter {
		return []Event{Quit()}
	}
	if i < len(h.Script) {
		return h.Script[i]
	}
	return nil
}

// Canvas implements Surface.
func (h *Headless) Canvas() render.Canvas { return h.frame }

// Frame returns the pixels drawn so far.
func (h *Headless) Frame() *render.Frame { return h.frame }

// Present implements Surface.
func (h *Headless) Present() { h.presents++ }

// Presents counts Present calls.
func (h *Headless) Presents() int { return h.presents }

// Close implements Surface.
func (h *Headless) Close() error {
	h.closed = true
	return nil
}

// Closed reports whether Close was called.
func (h *Headless) Closed() bool { return h.closed }

// RenderASCII draws the grid with one character per cell.
func RenderASCII(g *core.Grid) string {
	rows, cols := g.Dimensions()
	var b strings.Builder
	b.Grow(rows * (cols + 1) * 3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.Alive(r, c) {
				b.WriteString("█")
			} else {
				b.WriteString("░")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
