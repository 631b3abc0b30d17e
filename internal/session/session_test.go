package session

import (
	"testing"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/stats"
)

func newSession(w, h int, opts Options) (*Session, *life.Life) {
	sim := life.New(w, h)
	return New(sim, opts), sim
}

func TestAdvanceStepsOnlyWhileRunning(t *testing.T) {
	s, sim := newSession(5, 5, Options{Interval: 10 * time.Millisecond})
	for x := 1; x <= 3; x++ {
		sim.Set(x, 2, core.Alive)
	}
	base := time.Unix(0, 0)

	if n := s.Advance(base.Add(time.Second)); n != 0 {
		t.Fatalf("stopped session stepped %d times", n)
	}
	if !s.Toggle() {
		t.Fatal("Toggle should start the session")
	}
	s.Advance(base)
	if n := s.Advance(base.Add(10 * time.Millisecond)); n != 1 {
		t.Fatalf("stepped %d times, want 1", n)
	}
	if sim.Generation() != 1 || sim.StateAt(2, 1) != core.Alive {
		t.Fatal("blinker did not advance")
	}
	s.Toggle()
	if n := s.Advance(base.Add(time.Second)); n != 0 {
		t.Fatalf("session stepped %d times after stop", n)
	}
}

func TestPointerEditsWhileRunning(t *testing.T) {
	s, sim := newSession(8, 8, Options{Running: true})
	s.Pointer(core.PointerEvent{X: 1, Y: 1, Kind: core.PointerPress, Button: core.ButtonPrimary})
	s.Pointer(core.PointerEvent{X: 3, Y: 1, Kind: core.PointerMove})
	s.Pointer(core.PointerEvent{X: 3, Y: 1, Kind: core.PointerRelease, Button: core.ButtonPrimary})
	if sim.Population() != 3 {
		t.Fatalf("population = %d, want 3", sim.Population())
	}
	if !s.Running() {
		t.Fatal("editing should not stop the session")
	}
}

func TestStepOnceAndStats(t *testing.T) {
	s, sim := newSession(6, 6, Options{})
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		sim.Set(c[0], c[1], core.Alive)
	}
	s.StepOnce()
	s.StepOnce()
	if got := s.Stats().Status(); got != stats.Still {
		t.Fatalf("status = %v, want Still for a block", got)
	}
	p := s.Parameters()
	if v, ok := p.Lookup("generation"); !ok || v.Value != "2" {
		t.Fatalf("generation parameter = %+v", v)
	}
	if v, _ := p.Lookup("population"); v.Value != "4" {
		t.Fatalf("population parameter = %+v", v)
	}
}

func TestClearKeepsRunningState(t *testing.T) {
	s, sim := newSession(10, 10, Options{Running: true})
	s.Randomize(3)
	if sim.Population() == 0 {
		t.Fatal("Randomize produced an empty board")
	}
	s.Clear()
	if sim.Population() != 0 || sim.Generation() != 0 {
		t.Fatal("Clear did not empty the board")
	}
	if !s.Running() {
		t.Fatal("Clear should not stop the ticker")
	}
}

func TestStamp(t *testing.T) {
	s, sim := newSession(10, 10, Options{})
	if err := s.Stamp("glider", 5, 5); err != nil {
		t.Fatal(err)
	}
	if sim.Population() != 5 {
		t.Fatalf("population = %d, want 5", sim.Population())
	}
	if err := s.Stamp("nope", 0, 0); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestIntervalControl(t *testing.T) {
	s, _ := newSession(4, 4, Options{})
	if s.Interval() != core.DefaultInterval {
		t.Fatalf("interval = %v, want default", s.Interval())
	}
	if !s.SetIntParameter(keyInterval, 40) || s.Interval() != 40*time.Millisecond {
		t.Fatalf("interval = %v after SetIntParameter", s.Interval())
	}
	s.SetIntParameter(keyInterval, 5000)
	if s.Interval() != maxIntervalMS*time.Millisecond {
		t.Fatalf("interval = %v, want clamp to max", s.Interval())
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown key should be rejected")
	}
}

func TestNewClampsInterval(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, core.DefaultInterval},
		{5 * time.Second, maxIntervalMS * time.Millisecond},
		{300 * time.Microsecond, minIntervalMS * time.Millisecond},
		{25 * time.Millisecond, 25 * time.Millisecond},
	}
	for _, c := range cases {
		s, _ := newSession(4, 4, Options{Interval: c.in})
		if got := s.Interval(); got != c.want {
			t.Fatalf("New(Interval: %v) interval = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParametersShowAverageAndRule(t *testing.T) {
	s, sim := newSession(6, 6, Options{})
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		sim.Set(c[0], c[1], core.Alive)
	}
	s.StepOnce()
	s.StepOnce()

	p := s.Parameters()
	if v, ok := p.Lookup("average"); !ok || v.Value != "4.0" || v.Type != core.ParamTypeFloat {
		t.Fatalf("average = %+v", v)
	}
	if v, ok := p.Lookup("rule"); !ok || v.Value != life.Conway.String() {
		t.Fatalf("rule = %+v", v)
	}
}
