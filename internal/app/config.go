package app

import (
	"encoding/json"
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/sims/life"
)

// Backends selectable with --backend.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// Colors holds the four RGB triples used for drawing.
type Colors struct {
	Background [3]uint8 `json:"background"`
	GridLine   [3]uint8 `json:"grid_line"`
	Dying      [3]uint8 `json:"dying"`
	Alive      [3]uint8 `json:"alive"`
}

// Config represents the startup configuration for the application.
type Config struct {
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	CellSize    int           `json:"cell_size"`
	TickDelay   time.Duration `json:"tick_delay"`
	Title       string        `json:"title"`
	Backend     string        `json:"backend"`
	Pattern     string        `json:"pattern"`
	PausedView  string        `json:"paused_view"`
	Seed        int64         `json:"seed"`
	Density     float64       `json:"density"`
	Generations int           `json:"generations"`
	HUD         bool          `json:"hud"`
	Colors      Colors        `json:"colors"`
	LogFile     string        `json:"log_file"`

	ConfigFile string `json:"-"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Rows:        60,
		Cols:        80,
		CellSize:    10,
		TickDelay:   core.DefaultTickDelay,
		Title:       "Game of Life",
		Backend:     BackendWindow,
		PausedView:  string(session.PausedPreview),
		Seed:        42,
		Density:     0.2,
		Generations: 100,
		HUD:         true,
		Colors: Colors{
			Background: [3]uint8{20, 20, 20},
			GridLine:   [3]uint8{20, 200, 20},
			Dying:      [3]uint8{170, 170, 170},
			Alive:      [3]uint8{255, 255, 255},
		},
	}
}

// LoadConfig reads a JSON configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", path)
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", path)
	}
	return cfg, nil
}

// UnmarshalJSON reads tick_delay as a duration string such as "10ms", the
// same form the --delay flag takes. A bare number is taken as nanoseconds.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		TickDelay json.RawMessage `json:"tick_delay"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.TickDelay) == 0 || string(aux.TickDelay) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(aux.TickDelay, &text); err == nil {
		d, err := time.ParseDuration(text)
		if err != nil {
			return errors.Wrapf(err, "tick_delay %q", text)
		}
		c.TickDelay = d
		return nil
	}
	var ns int64
	if err := json.Unmarshal(aux.TickDelay, &ns); err != nil {
		return errors.Errorf("tick_delay must be a duration such as \"10ms\", got %s", aux.TickDelay)
	}
	c.TickDelay = time.Duration(ns)
	return nil
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.ConfigFile, "f", "config", "JSON configuration file; flags override its values")
	p.Int(&c.Rows, "", "rows", "grid height in cells")
	p.Int(&c.Cols, "", "cols", "grid width in cells")
	p.Int(&c.CellSize, "s", "cell-size", "cell edge in pixels")
	p.Duration(&c.TickDelay, "d", "delay", "pause between iterations, e.g. 10ms")
	p.String(&c.Title, "t", "title", "window title")
	p.String(&c.Backend, "b", "backend", "surface to use [window|terminal|headless]")
	p.String(&c.Pattern, "p", "pattern", "seed pattern placed in the centre of the grid")
	p.String(&c.PausedView, "", "paused-view", "paused display [preview|current]")
	p.Int64(&c.Seed, "", "seed", "seed for the random fill key")
	p.Float64(&c.Density, "", "density", "live-cell probability for the random fill key")
	p.Int(&c.Generations, "g", "generations", "generations to run with the headless backend")
	p.Bool(&c.HUD, "", "hud", "show the status overlay in the window backend")
	p.String(&c.LogFile, "l", "log", "append logs to this file")
}

// Parse builds the configuration from command-line arguments. When a config
// file is named, it is loaded first and the flags are applied on top.
func Parse(args []string) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.parse(args); err != nil {
		return cfg, err
	}
	if cfg.ConfigFile == "" {
		return cfg, cfg.Validate()
	}
	loaded, err := LoadConfig(cfg.ConfigFile)
	if err != nil {
		return cfg, err
	}
	if err := loaded.parse(args); err != nil {
		return loaded, err
	}
	return loaded, loaded.Validate()
}

func (c *Config) parse(args []string) error {
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life. Space runs and pauses; click cells while paused."
	p.ShowHelpOnUnexpected = false
	c.Bind(p)
	return errors.Wrap(p.ParseArgs(args), "parse flags")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("grid must have positive dimensions, got %dx%d", c.Rows, c.Cols)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TickDelay < 0 {
		return errors.Errorf("delay must not be negative, got %s", c.TickDelay)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be within [0,1], got %g", c.Density)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal, BackendHeadless:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	switch session.PausedView(c.PausedView) {
	case session.PausedPreview, session.PausedCurrent:
	default:
		return errors.Errorf("unknown paused view %q", c.PausedView)
	}
	if c.Pattern != "" {
		if _, ok := life.Lookup(c.Pattern); !ok {
			return errors.Errorf("unknown pattern %q (have %v)", c.Pattern, life.PatternNames())
		}
	}
	if c.Backend == BackendHeadless && c.Generations <= 0 {
		return errors.Errorf("headless backend needs a positive generation count, got %d", c.Generations)
	}
	return nil
}

// Palette converts the configured colors.
func (c Config) Palette() render.Palette {
	return render.Palette{
		Background: render.RGB(c.Colors.Background),
		GridLine:   render.RGB(c.Colors.GridLine),
		Dying:      render.RGB(c.Colors.Dying),
		Alive:      render.RGB(c.Colors.Alive),
	}
}

// WindowSize returns the window dimensions in pixels.
func (c Config) WindowSize() (w, h int) {
	return c.Cols * c.CellSize, c.Rows * c.CellSize
}

// NewGrid allocates the grid and stamps the configured pattern, if any.
func (c Config) NewGrid() *core.Grid {
	g := core.NewGrid(c.Rows, c.Cols)
	if p, ok := life.Lookup(c.Pattern); ok {
		life.StampCentered(g, p)
	}
	return g
}
