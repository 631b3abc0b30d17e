package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// maxIntervalMS matches the slowest tick the HUD control allows.
const maxIntervalMS = 1000

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string `json:"-"`

	Sim         string  `json:"sim"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Rule        string  `json:"rule"`
	CellSize    int     `json:"cell_size"`
	Gap         int     `json:"gap"`
	IntervalMS  int     `json:"interval_ms"`
	TPS         int     `json:"tps"`
	Seed        int64   `json:"seed"`
	Density     float64 `json:"density"`
	Pattern     string  `json:"pattern"`
	PatternFile string  `json:"pattern_file"`
	Running     bool    `json:"running"`
	PanelWidth  int     `json:"panel_width"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "life",
		Width:      100,
		Height:     100,
		Rule:       "B3/S23",
		CellSize:   7,
		Gap:        1,
		IntervalMS: 10,
		TPS:        60,
		Seed:       42,
		PanelWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON config file; explicit flags override it")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid columns")
	fs.IntVar(&c.Height, "h", c.Height, "grid rows")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule in B/S notation")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Gap, "gap", c.Gap, "gap between cells in pixels")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "UI ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive at start (0 for an empty board)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern stamped at the centre on start")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext pattern file stamped at the centre on start")
	fs.BoolVar(&c.Running, "run", c.Running, "start the simulation immediately")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "control panel width in pixels (0 hides it)")
}

// Interval returns the tick period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// SimConfig converts the grid settings into the string map used by the
// simulation registry.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"rule":    c.Rule,
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Gap < 0:
		return errors.Errorf("gap must not be negative, got %d", c.Gap)
	case c.IntervalMS <= 0 || c.IntervalMS > maxIntervalMS:
		return errors.Errorf("interval must be within [1,%d]ms, got %dms", maxIntervalMS, c.IntervalMS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0,1], got %v", c.Density)
	case c.PanelWidth < 0:
		return errors.Errorf("panel width must not be negative, got %d", c.PanelWidth)
	}
	return nil
}

// Load parses args into a Config. When -config names a file, its values
// replace the defaults and explicitly passed flags still win.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigPath != "" {
		file := NewConfig()
		if err := file.LoadFile(c.ConfigPath); err != nil {
			return nil, err
		}
		file.ConfigPath = c.ConfigPath

		again := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		again.SetOutput(io.Discard)
		file.Bind(again)
		if err := again.Parse(args); err != nil {
			return nil, err
		}
		c = file
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return c, nil
}
