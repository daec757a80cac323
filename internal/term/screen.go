// Package term renders a session to a terminal and reads keyboard and mouse
// input from it.
package term

import (
	"context"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
)

const (
	// columns per grid cell, so cells come out roughly square
	cellColumns = 2
	eventBuffer = 64
)

// Surface adapts a tcell screen to session.Surface. Each grid cell occupies
// two character columns of one terminal row. Pixel coordinates are mapped
// to terminal cells through the configured cell size.
type Surface struct {
	screen tcell.Screen
	size   int
	rows   int
	cols   int
	events chan tcell.Event
	status session.Status
	closed bool
}

// Open initializes the controlling terminal.
func Open(rows, cols, cellSize int) (*Surface, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	return OpenScreen(s, rows, cols, cellSize)
}

// OpenScreen wraps an existing, uninitialized screen.
func OpenScreen(s tcell.Screen, rows, cols, cellSize int) (*Surface, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Surface{
		screen: s,
		size:   cellSize,
		rows:   rows,
		cols:   cols,
		events: make(chan tcell.Event, eventBuffer),
	}, nil
}

// Pump forwards terminal events to Poll until the screen is finalized or ctx
// is done.
func (s *Surface) Pump(ctx context.Context) error {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// Poll implements session.Surface.
func (s *Surface) Poll() []session.Event {
	var out []session.Event
	for {
		select {
		case ev := <-s.events:
			if e, ok := s.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (s *Surface) translate(ev tcell.Event) (session.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return session.KeyDown(session.KeyQuit), true
		case tcell.KeyRune:
			if k := runeKey(ev.Rune()); k != session.KeyUnknown {
				return session.KeyDown(k), true
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		return session.Pointer(pressed, (x/cellColumns)*s.size, y*s.size), true
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return session.Event{}, false
}

func runeKey(r rune) session.Key {
	switch r {
	case ' ':
		return session.KeySpace
	case 'n', 'N':
		return session.KeyStep
	case 'c', 'C':
		return session.KeyClear
	case 'r', 'R':
		return session.KeyRandom
	case 'q', 'Q':
		return session.KeyQuit
	}
	return session.KeyUnknown
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Fill paints the grid area with c.
func (s *Surface) Fill(c color.RGBA) {
	st := styleFor(c)
	for r := 0; r < s.rows; r++ {
		for x := 0; x < s.cols*cellColumns; x++ {
			s.screen.SetContent(x, r, ' ', nil, st)
		}
	}
}

// DrawCell paints every grid cell the pixel rectangle touches.
func (s *Surface) DrawCell(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 {
		return
	}
	st := styleFor(c)
	for r := y / s.size; r <= (y+h-1)/s.size && r < s.rows; r++ {
		for col := x / s.size; col <= (x+w-1)/s.size && col < s.cols; col++ {
			for i := 0; i < cellColumns; i++ {
				s.screen.SetContent(col*cellColumns+i, r, ' ', nil, st)
			}
		}
	}
}

// Canvas implements session.Surface.
func (s *Surface) Canvas() render.Canvas { return s }

// SetStatus implements session.StatusSink.
func (s *Surface) SetStatus(st session.Status) { s.status = st }

// Present draws the status line and shows the frame.
func (s *Surface) Present() {
	s.drawStatus()
	s.screen.Show()
}

func (s *Surface) drawStatus() {
	fg := tcell.ColorYellow
	if s.status.Active {
		fg = tcell.ColorAqua
	}
	line := fmt.Sprintf("%-7s gen %-6d live %-6d  space run/pause  n step  c clear  r random  q quit",
		s.status.Label(), s.status.Generation, s.status.LiveCells)
	width, _ := s.screen.Size()
	st := tcell.StyleDefault.Foreground(fg)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		s.screen.SetContent(x, s.rows, ch, nil, st)
	}
}

// Close finalizes the terminal.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.screen.Fini()
	return nil
}

// Serve runs the session loop and the input pump together. It returns once
// the user quits or ctx is cancelled.
func Serve(ctx context.Context, s *Surface, l *session.Loop, pacer *core.Pacer) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	g.Go(func() error { return s.Pump(ctx) })
	g.Go(func() error {
		// Run closes the screen; cancel stops a Pump blocked on a full queue.
		defer cancel()
		return session.Run(ctx, l, pacer)
	})
	return g.Wait()
}
