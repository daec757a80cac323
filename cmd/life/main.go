package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"lifeview/internal/app"
	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/term"
)

func main() {
	cfg, err := app.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, color, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := session.Options{
		Painter:    render.NewPainter(cfg.CellSize, cfg.Palette()),
		PausedView: session.PausedView(cfg.PausedView),
		Seed:       cfg.Seed,
		Density:    cfg.Density,
		Logger:     logger,
		Color:      color,
	}
	grid := cfg.NewGrid()
	logger.Printf("starting %s backend, %dx%d grid, %d live cells", cfg.Backend, cfg.Rows, cfg.Cols, grid.LiveCells())

	stats, err := run(ctx, cfg, grid, opts)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if stats != nil {
		fmt.Println(session.Summary(stats))
	}
}

func run(ctx context.Context, cfg app.Config, grid *core.Grid, opts session.Options) (*session.Stats, error) {
	switch cfg.Backend {
	case app.BackendTerminal:
		surface, err := term.Open(cfg.Rows, cfg.Cols, cfg.CellSize)
		if err != nil {
			return nil, err
		}
		l := session.New(grid, surface, opts)
		err = term.Serve(ctx, surface, l, core.NewPacer(cfg.TickDelay))
		return l.Stats(), err
	case app.BackendHeadless:
		w, h := cfg.WindowSize()
		l := session.New(grid, session.RunFor(w, h, cfg.Generations), opts)
		if err := session.Run(ctx, l, core.NewPacer(0)); err != nil {
			return l.Stats(), err
		}
		fmt.Print(session.RenderASCII(l.Grid()))
		return l.Stats(), nil
	default:
		return app.RunWindow(ctx, cfg, grid, opts)
	}
}

// newLogger writes to the log file when one is configured. Otherwise it
// writes to stderr, except for the terminal backend, which owns the screen.
func newLogger(cfg app.Config) (*log.Logger, bool, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, false, nil, errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		return log.New(f, "life: ", log.LstdFlags), false, func() { _ = f.Close() }, nil
	}
	if cfg.Backend == app.BackendTerminal {
		return log.New(io.Discard, "", 0), false, func() {}, nil
	}
	color := isatty.IsTerminal(os.Stderr.Fd())
	return log.New(os.Stderr, "life: ", log.LstdFlags), color, func() {}, nil
}
