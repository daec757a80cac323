// Package session drives a Game of Life session: it polls input from a
// Surface, applies edits and simulation steps to the grid, and renders the
// result.
package session

import (
	"io"
	"log"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/sims/life"
)

// PausedView selects how the grid is classified while the simulation is
// paused.
type PausedView string

const (
	// PausedPreview classifies the would-be next generation with the dying
	// distinction suppressed.
	PausedPreview PausedView = "preview"
	// PausedCurrent shows the grid as it stands.
	PausedCurrent PausedView = "current"
)

// Options configures a Loop.
type Options struct {
	Painter    *render.Painter
	PausedView PausedView
	Seed       int64
	Density    float64
	Logger     *log.Logger
	Color      bool
}

// Loop owns the grid and the run/pause flag. It is not safe for concurrent
// use.
type Loop struct {
	grid    *core.Grid
	surface Surface
	painter *render.Painter
	view    PausedView

	active  bool
	display []life.Display
	stats   *Stats

	seed    int64
	reseeds int64
	density float64

	log    *log.Logger
	au     aurora.Aurora
	closed bool
}

// New builds a paused Loop around grid and draws the first frame.
func New(grid *core.Grid, surface Surface, opts Options) *Loop {
	if opts.Painter == nil {
		opts.Painter = render.NewPainter(10, render.DefaultPalette())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.PausedView == "" {
		opts.PausedView = PausedPreview
	}
	l := &Loop{
		grid:    grid,
		surface: surface,
		painter: opts.Painter,
		view:    opts.PausedView,
		stats:   NewStats(),
		seed:    opts.Seed,
		density: opts.Density,
		log:     opts.Logger,
		au:      aurora.NewAurora(opts.Color),
	}
	l.stats.LiveCells = grid.LiveCells()
	l.refresh()
	return l
}

// Grid returns the grid owned by the loop.
func (l *Loop) Grid() *core.Grid { return l.grid }

// Active reports whether the simulation is running.
func (l *Loop) Active() bool { return l.active }

// Display returns the classification used for the most recent frame.
func (l *Loop) Display() []life.Display { return l.display }

// Stats returns the session statistics.
func (l *Loop) Stats() *Stats { return l.stats }

// Tick runs one iteration: poll input, apply edits, advance the simulation
// when running, and render. It reports quit when the user asked to leave.
func (l *Loop) Tick() (quit bool, err error) {
	for _, ev := range l.surface.Poll() {
		quit, err = l.handle(ev)
		if err != nil || quit {
			return quit, err
		}
	}
	if l.active {
		if err := l.advance(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Close releases the surface. Further calls are no-ops.
func (l *Loop) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.log.Printf("%s after %d generations, %d live cells", l.au.Red("stopped"), l.stats.Generation, l.stats.LiveCells)
	return errors.Wrap(l.surface.Close(), "close surface")
}

func (l *Loop) handle(ev Event) (bool, error) {
	switch ev.Kind {
	case EventQuit:
		return true, nil
	case EventKey:
		return l.handleKey(ev.Key)
	case EventPointer:
		if ev.Pressed && !l.active {
			return false, l.paint(ev.X, ev.Y)
		}
	}
	return false, nil
}

func (l *Loop) handleKey(k Key) (bool, error) {
	switch k {
	case KeyQuit:
		return true, nil
	case KeySpace:
		l.SetActive(!l.active)
	case KeyStep:
		if !l.active {
			return false, l.advance()
		}
	case KeyClear:
		if !l.active {
			l.grid.Clear()
			l.stats.LiveCells = 0
			l.log.Printf("%s grid", l.au.Yellow("cleared"))
			l.refresh()
		}
	case KeyRandom:
		if !l.active {
			l.grid.Randomize(l.seed+l.reseeds, l.density)
			l.reseeds++
			l.stats.LiveCells = l.grid.LiveCells()
			l.log.Printf("%s grid, %d live cells", l.au.Yellow("randomized"), l.stats.LiveCells)
			l.refresh()
		}
	}
	return false, nil
}

// SetActive switches between running and paused and redraws without
// advancing the simulation.
func (l *Loop) SetActive(active bool) {
	l.active = active
	if active {
		l.log.Printf("%s at generation %d", l.au.Cyan("running"), l.stats.Generation)
	} else {
		l.log.Printf("%s at generation %d", l.au.Blue("paused"), l.stats.Generation)
	}
	l.refresh()
}

// paint brings the cell under pixel (x, y) to life. Positions outside the
// grid are ignored.
func (l *Loop) paint(x, y int) error {
	row, col := l.painter.CellAt(x, y)
	if !l.grid.InBounds(row, col) || l.grid.Alive(row, col) {
		return nil
	}
	if err := l.grid.Set(row, col, core.Alive); err != nil {
		return err
	}
	l.stats.LiveCells++
	l.display = l.classify()

	// A new cell can only change the classification of its own 3x3 block.
	_, cols := l.grid.Dimensions()
	canvas := l.surface.Canvas()
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if l.grid.InBounds(r, c) {
				l.painter.PaintCell(canvas, r, c, l.display[r*cols+c])
			}
		}
	}
	l.present()
	return nil
}

// advance replaces the grid with the next generation and draws it. Only a
// running loop shows dying cells; a paused step is classified like any other
// paused frame.
func (l *Loop) advance() error {
	next, display := life.Next(l.grid, true)
	if err := l.grid.Replace(next); err != nil {
		return err
	}
	l.stats.Update(l.stats.Generation+1, l.grid.LiveCells())
	if l.active {
		l.display = display
	} else {
		l.display = l.classify()
	}
	l.render()
	return nil
}

// refresh reclassifies the grid for the current flag and redraws it.
func (l *Loop) refresh() {
	l.display = l.classify()
	l.render()
}

func (l *Loop) classify() []life.Display {
	if !l.active && l.view == PausedCurrent {
		return life.Current(l.grid)
	}
	_, display := life.Next(l.grid, l.active)
	return display
}

func (l *Loop) render() {
	rows, cols := l.grid.Dimensions()
	l.painter.Paint(l.surface.Canvas(), l.display, rows, cols)
	l.present()
}

func (l *Loop) present() {
	if sink, ok := l.surface.(StatusSink); ok {
		sink.SetStatus(Status{Active: l.active, Generation: l.stats.Generation, LiveCells: l.stats.LiveCells})
	}
	l.surface.Present()
}
