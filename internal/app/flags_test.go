package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 100 || c.Height != 100 || c.Interval() != 10*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestLoadFlags(t *testing.T) {
	c, err := Load(newFlagSet(), []string{"-w", "40", "-h", "30", "-rule", "B36/S23", "-run"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 40 || c.Height != 30 || c.Rule != "B36/S23" || !c.Running {
		t.Fatalf("flags not applied: %+v", c)
	}
	m := c.SimConfig()
	if m["w"] != "40" || m["h"] != "30" || m["rule"] != "B36/S23" {
		t.Fatalf("SimConfig = %v", m)
	}
}

func TestLoadFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"width": 64, "height": 48, "interval_ms": 25, "pattern": "gosper"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(newFlagSet(), []string{"-config", path, "-h", "50"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 64 || c.Interval() != 25*time.Millisecond || c.Pattern != "gosper" {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Height != 50 {
		t.Fatalf("explicit flag should win over file, height = %d", c.Height)
	}
	if c.CellSize != 7 {
		t.Fatalf("unset values should keep defaults, cell = %d", c.CellSize)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Fatal("expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(newFlagSet(), []string{"-config", path}); err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	if _, err := Load(newFlagSet(), []string{"-interval", "0"}); err == nil {
		t.Fatal("expected validation error for zero interval")
	}
	if _, err := Load(newFlagSet(), []string{"-interval", "5000"}); err == nil {
		t.Fatal("expected validation error for interval above one second")
	}
	if _, err := Load(newFlagSet(), []string{"-density", "1.5"}); err == nil {
		t.Fatal("expected validation error for density above 1")
	}
}
