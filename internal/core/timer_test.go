package core

import (
	"testing"
	"time"
)

func TestTickerFiresPerInterval(t *testing.T) {
	calls := 0
	tk := NewTicker(10*time.Millisecond, func() { calls++ })
	base := time.Unix(0, 0)

	if n := tk.Advance(base.Add(time.Second)); n != 0 || calls != 0 {
		t.Fatalf("stopped ticker fired %d times", n)
	}

	tk.Start()
	if n := tk.Advance(base); n != 0 {
		t.Fatalf("first Advance should only prime the clock, fired %d", n)
	}
	if n := tk.Advance(base.Add(5 * time.Millisecond)); n != 0 {
		t.Fatalf("half interval fired %d", n)
	}
	if n := tk.Advance(base.Add(10 * time.Millisecond)); n != 1 {
		t.Fatalf("full interval fired %d, want 1", n)
	}
	if n := tk.Advance(base.Add(30 * time.Millisecond)); n != 2 {
		t.Fatalf("two intervals fired %d, want 2", n)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestTickerCatchUpIsBounded(t *testing.T) {
	calls := 0
	tk := NewTicker(time.Millisecond, func() { calls++ })
	base := time.Unix(0, 0)
	tk.Start()
	tk.Advance(base)
	if n := tk.Advance(base.Add(time.Second)); n != MaxCatchUp {
		t.Fatalf("fired %d, want %d", n, MaxCatchUp)
	}
	// Backlog is dropped after a saturated frame.
	if n := tk.Advance(base.Add(time.Second + time.Millisecond)); n != 1 {
		t.Fatalf("fired %d after saturation, want 1", n)
	}
}

func TestTickerToggleAndInterval(t *testing.T) {
	tk := NewTicker(0, nil)
	if tk.Interval() != DefaultInterval {
		t.Fatalf("Interval = %v, want default %v", tk.Interval(), DefaultInterval)
	}
	if !tk.Toggle() || !tk.Running() {
		t.Fatal("Toggle should start a stopped ticker")
	}
	if tk.Toggle() || tk.Running() {
		t.Fatal("Toggle should stop a running ticker")
	}
	tk.SetInterval(50 * time.Millisecond)
	if tk.Interval() != 50*time.Millisecond {
		t.Fatalf("Interval = %v", tk.Interval())
	}
}
