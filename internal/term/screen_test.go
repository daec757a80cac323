package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
)

const cellSize = 10

func openSim(t *testing.T, rows, cols int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := OpenScreen(sim, rows, cols, cellSize)
	if err != nil {
		t.Fatalf("OpenScreen: %v", err)
	}
	sim.SetSize(cols*cellColumns+10, rows+2)
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

// pollUntil drains events until n have arrived or the deadline passes.
func pollUntil(t *testing.T, s *Surface, n int) []session.Event {
	t.Helper()
	var got []session.Event
	deadline := time.Now().Add(5 * time.Second)
	for len(got) < n && time.Now().Before(deadline) {
		got = append(got, s.Poll()...)
		time.Sleep(time.Millisecond)
	}
	if len(got) < n {
		t.Fatalf("got %d events, want %d", len(got), n)
	}
	return got
}

func bgAt(t *testing.T, sim tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := sim.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func TestTranslateKeysAndMouse(t *testing.T) {
	s, sim := openSim(t, 4, 6)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Pump(ctx) }()

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectMouse(5, 2, tcell.Button1, tcell.ModNone)

	// Unknown runes and the resize event from Init are dropped.
	got := pollUntil(t, s, 4)
	want := []session.Event{
		session.KeyDown(session.KeySpace),
		session.KeyDown(session.KeyStep),
		session.KeyDown(session.KeyQuit),
		session.Pointer(true, 2*cellSize, 2*cellSize),
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestRuneKeys(t *testing.T) {
	cases := map[rune]session.Key{
		' ': session.KeySpace,
		'n': session.KeyStep,
		'C': session.KeyClear,
		'r': session.KeyRandom,
		'q': session.KeyQuit,
		'z': session.KeyUnknown,
	}
	for r, want := range cases {
		if got := runeKey(r); got != want {
			t.Fatalf("runeKey(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestDrawCellPaintsTwoColumns(t *testing.T) {
	s, sim := openSim(t, 3, 3)
	s.Fill(render.DefaultGridLine)
	s.DrawCell(1*cellSize, 2*cellSize, cellSize-1, cellSize-1, render.DefaultAlive)
	s.Present()

	alive := tcell.NewRGBColor(255, 255, 255)
	grid := tcell.NewRGBColor(20, 200, 20)
	if bg := bgAt(t, sim, 2, 2); bg != alive {
		t.Fatalf("left half bg = %v, want alive", bg)
	}
	if bg := bgAt(t, sim, 3, 2); bg != alive {
		t.Fatalf("right half bg = %v, want alive", bg)
	}
	if bg := bgAt(t, sim, 4, 2); bg != grid {
		t.Fatalf("next cell bg = %v, want grid line", bg)
	}
	// Outside the grid nothing is drawn.
	s.DrawCell(10*cellSize, 0, cellSize, cellSize, render.DefaultAlive)
	s.DrawCell(-cellSize, 0, cellSize, cellSize, render.DefaultAlive)
}

func TestStatusLine(t *testing.T) {
	s, sim := openSim(t, 2, 4)
	s.SetStatus(session.Status{Active: true, Generation: 12, LiveCells: 5})
	s.Present()

	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.Write(cells[2*w+x].Bytes)
	}
	line := b.String()
	if !strings.HasPrefix(line, "RUNNING gen 12") {
		t.Fatalf("status line = %q", line)
	}
}

func TestServeQuitsOnKey(t *testing.T) {
	s, sim := openSim(t, 5, 5)
	grid := core.NewGrid(5, 5)
	l := session.New(grid, s, session.Options{Painter: render.NewPainter(cellSize, render.DefaultPalette())})

	sim.InjectMouse(2*cellColumns, 1, tcell.Button1, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Serve(context.Background(), s, l, core.NewPacer(time.Millisecond)) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after quit key")
	}
	if !s.closed {
		t.Fatal("surface not closed")
	}
}

func TestServeReturnsWithPendingInput(t *testing.T) {
	s, sim := openSim(t, 5, 5)
	// Unbuffered, so every event after the quit key leaves Pump waiting on a
	// reader that is gone.
	s.events = make(chan tcell.Event)
	grid := core.NewGrid(5, 5)
	l := session.New(grid, s, session.Options{Painter: render.NewPainter(cellSize, render.DefaultPalette())})

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	for i := 0; i < 5; i++ {
		sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}

	done := make(chan error, 1)
	go func() { done <- Serve(context.Background(), s, l, core.NewPacer(time.Millisecond)) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve hung on undelivered input after quit")
	}
}
