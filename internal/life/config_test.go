package life

import "testing"

func TestFromMapDefaults(t *testing.T) {
	c, err := FromMap(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c, err := FromMap(map[string]string{
		"w":       "64",
		"h":       "32",
		"density": "0.25",
		"seed":    "-5",
		"rule":    "B36/S23",
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 64 || c.Height != 32 || c.Density != 0.25 || c.Seed != -5 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Rule.String() != "B36/S23" {
		t.Fatalf("rule = %v", c.Rule)
	}
}

func TestFromMapIgnoresBadNumbers(t *testing.T) {
	c, err := FromMap(map[string]string{"w": "-3", "h": "abc", "density": "2"})
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if c.Width != def.Width || c.Height != def.Height || c.Density != def.Density {
		t.Fatalf("bad values were applied: %+v", c)
	}
}
