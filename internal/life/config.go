package life

import (
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the Life simulation dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Rule Rule

	// Density is the fraction of cells made alive by Reset; zero leaves the
	// board empty.
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard 100x100 Conway configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Rule:   Conway,
		Seed:   42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed numbers fall back to defaults; a malformed rule is an error.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		rule, err := ParseRule(v)
		if err != nil {
			return c, errors.Wrap(err, "life config")
		}
		c.Rule = rule
	}
	return c, nil
}
