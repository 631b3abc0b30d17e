package core

import "time"

const (
	// DefaultInterval is the tick period used when none is configured.
	DefaultInterval = 10 * time.Millisecond
	// MaxCatchUp bounds how many callbacks a single Advance may run.
	MaxCatchUp = 4
)

// Ticker is a periodic callback driven by the host event loop. It never spawns
// goroutines: the owner calls Advance once per frame and the callback runs on
// that same goroutine.
type Ticker struct {
	fn          func()
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
}

// NewTicker constructs a stopped Ticker that will invoke fn every interval.
func NewTicker(interval time.Duration, fn func()) *Ticker {
	t := &Ticker{fn: fn}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the tick period. It is safe to call from the main loop.
func (t *Ticker) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	t.interval = d
	if t.accumulator > d {
		t.accumulator = d
	}
}

// Interval returns the current tick period.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Running reports whether the ticker is currently firing.
func (t *Ticker) Running() bool { return t.running }

// Start resumes ticking. The first callback fires one interval after the next
// Advance call.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.accumulator = 0
	t.last = time.Time{}
}

// Stop halts ticking; pending time is discarded.
func (t *Ticker) Stop() {
	t.running = false
	t.accumulator = 0
}

// Toggle flips between running and stopped and returns the new state.
func (t *Ticker) Toggle() bool {
	if t.running {
		t.Stop()
	} else {
		t.Start()
	}
	return t.running
}

// Advance runs the callback once for every whole interval elapsed since the
// previous call, up to MaxCatchUp times, and returns how many ran.
func (t *Ticker) Advance(now time.Time) int {
	if !t.running {
		return 0
	}
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	delta := now.Sub(t.last)
	t.last = now
	if delta < 0 {
		return 0
	}
	t.accumulator += delta

	fired := 0
	for t.accumulator >= t.interval && fired < MaxCatchUp {
		t.accumulator -= t.interval
		if t.fn != nil {
			t.fn()
		}
		fired++
	}
	if fired == MaxCatchUp && t.accumulator > t.interval {
		t.accumulator = 0
	}
	return fired
}
