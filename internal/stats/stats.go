package stats

import "time"

// Status classifies the recent behaviour of the board.
type Status int

const (
	// Active means the board is still changing.
	Active Status = iota
	// Empty means no cell is alive.
	Empty
	// Still means the last step changed nothing.
	Still
	// Oscillating means the board repeats with a short period.
	Oscillating
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Still:
		return "Still"
	case Oscillating:
		return "Oscillating"
	default:
		return "Active"
	}
}

// historyLen is the number of fingerprints kept for cycle detection.
const historyLen = 4

// Tracker accumulates per-generation statistics.
type Tracker struct {
	Generation           int
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64

	history  [historyLen]uint64
	filled   int
	lastTime time.Time
	status   Status
	period   int
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Reset forgets all history, e.g. after the board was cleared or edited.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Forget drops cycle history but keeps rates. Called after manual edits so a
// hand-drawn change is not reported as a cycle of the previous board.
func (t *Tracker) Forget() {
	t.filled = 0
	t.status = Active
	t.period = 0
}

// Observe records the board after a step.
func (t *Tracker) Observe(generation, population int, fingerprint uint64, now time.Time) {
	if !t.lastTime.IsZero() && generation > t.Generation {
		if elapsed := now.Sub(t.lastTime); elapsed > 0 {
			rate := float64(generation-t.Generation) / elapsed.Seconds()
			if t.GenerationsPerSecond == 0 {
				t.GenerationsPerSecond = rate
			} else {
				t.GenerationsPerSecond = t.GenerationsPerSecond*0.9 + rate*0.1
			}
		}
	}
	t.lastTime = now
	t.Generation = generation
	t.Population = population

	if t.AveragePopulation == 0 {
		t.AveragePopulation = float64(population)
	} else {
		t.AveragePopulation = t.AveragePopulation*0.9 + float64(population)*0.1
	}

	t.period = 0
	for i := 0; i < t.filled; i++ {
		if t.history[i] == fingerprint {
			t.period = i + 1
			break
		}
	}
	copy(t.history[1:], t.history[:historyLen-1])
	t.history[0] = fingerprint
	if t.filled < historyLen {
		t.filled++
	}

	switch {
	case population == 0:
		t.status = Empty
	case t.period == 1:
		t.status = Still
	case t.period > 1:
		t.status = Oscillating
	default:
		t.status = Active
	}
}

// Status returns the classification of the last observed generation.
func (t *Tracker) Status() Status { return t.status }

// Period returns the detected cycle length, or 0 when none was found.
func (t *Tracker) Period() int { return t.period }
