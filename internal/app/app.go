//go:build ebiten

package app

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	pkgerrors "github.com/pkg/errors"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/ui"
)

// windowKeys maps ebiten keys onto session keys.
var windowKeys = []struct {
	key ebiten.Key
	to  session.Key
}{
	{ebiten.KeySpace, session.KeySpace},
	{ebiten.KeyN, session.KeyStep},
	{ebiten.KeyC, session.KeyClear},
	{ebiten.KeyR, session.KeyRandom},
	{ebiten.KeyQ, session.KeyQuit},
	{ebiten.KeyEscape, session.KeyQuit},
}

// Window is the session.Surface of the ebiten backend. The loop paints into
// an RGBA frame which Draw uploads when it changed.
type Window struct {
	frame  *render.Frame
	image  *ebiten.Image
	hud    *ui.HUD
	events []session.Event
	dirty  bool
}

// NewWindow allocates a window surface of w x h pixels.
func NewWindow(w, h int, hud *ui.HUD) *Window {
	return &Window{frame: render.NewFrame(w, h), hud: hud}
}

func (w *Window) collect() {
	if ebiten.IsWindowBeingClosed() {
		w.events = append(w.events, session.Quit())
	}
	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			w.events = append(w.events, session.KeyDown(k.to))
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.events = append(w.events, session.Pointer(true, x, y))
	}
}

// Poll implements session.Surface.
func (w *Window) Poll() []session.Event {
	out := w.events
	w.events = nil
	return out
}

// Canvas implements session.Surface.
func (w *Window) Canvas() render.Canvas { return w.frame }

// Present marks the frame for upload on the next Draw.
func (w *Window) Present() { w.dirty = true }

// SetStatus implements session.StatusSink.
func (w *Window) SetStatus(st session.Status) { w.hud.SetStatus(st) }

// Close implements session.Surface. The window itself is torn down by ebiten.
func (w *Window) Close() error { return nil }

// Game adapts a session loop to the ebiten.Game interface.
type Game struct {
	ctx    context.Context
	loop   *session.Loop
	window *Window
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.window.collect()
	quit, err := g.loop.Tick()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.window
	if w.image == nil {
		fw, fh := w.frame.Size()
		w.image = ebiten.NewImage(fw, fh)
		w.dirty = true
	}
	if w.dirty {
		w.image.WritePixels(w.frame.Pix())
		w.dirty = false
	}
	screen.DrawImage(w.image, nil)
	w.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.frame.Size()
}

// RunWindow opens a window and runs the session in it until the user quits,
// closes the window or ctx is cancelled.
func RunWindow(ctx context.Context, cfg Config, grid *core.Grid, opts session.Options) (*session.Stats, error) {
	var hud *ui.HUD
	if cfg.HUD {
		hud = ui.NewHUD()
	}
	width, height := cfg.WindowSize()
	window := NewWindow(width, height, hud)
	loop := session.New(grid, window, opts)
	pacer := core.NewPacer(cfg.TickDelay)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(pacer.TPS())
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(&Game{ctx: ctx, loop: loop, window: window})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		_ = loop.Close()
		return loop.Stats(), pkgerrors.Wrap(err, "run window")
	}
	return loop.Stats(), loop.Close()
}
