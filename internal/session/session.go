// Package session wires a simulation, its tick source and the pointer editor
// together. A Session is driven from a single goroutine (the UI loop), which
// serialises ticks, edits and commands.
package session

import (
	"hash/fnv"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/edit"
	"lifegrid/internal/life"
	"lifegrid/internal/patterns"
	"lifegrid/internal/stats"
)

const (
	keyInterval = "interval_ms"

	minIntervalMS = 1
	maxIntervalMS = 1000
)

type fingerprinter interface {
	Fingerprint() uint64
}

type ruled interface {
	Rule() life.Rule
}

// Options configures a Session.
type Options struct {
	Interval time.Duration
	// Density is used by Randomize.
	Density float64
	// Running starts the ticker immediately.
	Running bool
}

// Session owns the mutable state of one running board.
type Session struct {
	sim     core.Sim
	ticker  *core.Ticker
	input   *edit.InputState
	editor  *edit.Editor
	tracker *stats.Tracker
	density float64

	now   func() time.Time
	frame time.Time
}

// New builds a Session around sim.
func New(sim core.Sim, opts Options) *Session {
	s := &Session{
		sim:     sim,
		input:   &edit.InputState{},
		tracker: stats.NewTracker(),
		density: opts.Density,
		now:     time.Now,
	}
	if s.density <= 0 {
		s.density = 0.25
	}
	s.editor = edit.New(sim, s.input)
	s.ticker = core.NewTicker(core.DefaultInterval, func() { s.stepAt(s.frame) })
	if opts.Interval > 0 {
		s.SetInterval(opts.Interval)
	}
	if opts.Running {
		s.ticker.Start()
	}
	return s
}

// Sim returns the underlying simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Stats returns the statistics tracker.
func (s *Session) Stats() *stats.Tracker { return s.tracker }

// Running reports whether ticks are advancing the board.
func (s *Session) Running() bool { return s.ticker.Running() }

// Toggle starts or stops the tick source and returns the new running state.
func (s *Session) Toggle() bool { return s.ticker.Toggle() }

// Interval returns the tick period.
func (s *Session) Interval() time.Duration { return s.ticker.Interval() }

// SetInterval changes the tick period, clamped to [1ms, 1s].
func (s *Session) SetInterval(d time.Duration) {
	ms := int(d / time.Millisecond)
	ms = s.intervalControl().Clamp(ms)
	s.ticker.SetInterval(time.Duration(ms) * time.Millisecond)
}

// Advance runs any ticks that are due at now and returns how many ran.
func (s *Session) Advance(now time.Time) int {
	s.frame = now
	return s.ticker.Advance(now)
}

// StepOnce advances the board by a single generation regardless of the
// ticker state.
func (s *Session) StepOnce() {
	s.stepAt(s.now())
}

func (s *Session) stepAt(now time.Time) {
	s.sim.Step()
	s.tracker.Observe(s.sim.Generation(), s.sim.Population(), s.fingerprint(), now)
}

func (s *Session) fingerprint() uint64 {
	if fp, ok := s.sim.(fingerprinter); ok {
		return fp.Fingerprint()
	}
	h := fnv.New64a()
	h.Write(s.sim.Cells())
	return h.Sum64()
}

// Clear kills every cell. The running state is left unchanged.
func (s *Session) Clear() {
	s.sim.Clear()
	s.tracker.Reset()
}

// Randomize refills the board with a random soup.
func (s *Session) Randomize(seed int64) {
	s.sim.Clear()
	rng := core.NewRNG(seed)
	size := s.sim.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if rng.Chance(s.density) {
				s.sim.Set(x, y, core.Alive)
			}
		}
	}
	s.tracker.Reset()
}

// Stamp places the named built-in pattern centred on (x, y).
func (s *Session) Stamp(name string, x, y int) error {
	p, ok := patterns.Lookup(name)
	if !ok {
		return errors.Errorf("unknown pattern %q", name)
	}
	s.StampPattern(p, x, y)
	return nil
}

// StampPattern places p centred on (x, y).
func (s *Session) StampPattern(p patterns.Pattern, x, y int) {
	patterns.StampCentered(s.sim, p, x, y)
	s.tracker.Forget()
}

// Pointer applies a pointer event to the board and returns the number of
// cells written.
func (s *Session) Pointer(ev core.PointerEvent) int {
	n := s.editor.Handle(ev)
	if n > 0 {
		s.tracker.Forget()
	}
	return n
}

// Parameters reports values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := "Stopped"
	if s.Running() {
		state = "Running"
	}
	size := s.sim.Size()
	sim := []core.Parameter{
		textParam("state", "State", state),
		intParam("generation", "Generation", s.sim.Generation()),
		intParam("population", "Population", s.sim.Population()),
		{
			Key:   "average",
			Label: "Average",
			Type:  core.ParamTypeFloat,
			Value: strconv.FormatFloat(s.tracker.AveragePopulation, 'f', 1, 64),
		},
		textParam("status", "Status", s.tracker.Status().String()),
		textParam("size", "Grid", strconv.Itoa(size.W)+"x"+strconv.Itoa(size.H)),
	}
	if r, ok := s.sim.(ruled); ok {
		sim = append(sim, textParam("rule", "Rule", r.Rule().String()))
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name:   "Simulation",
				Params: sim,
			},
			{
				Name: "Timing",
				Params: []core.Parameter{
					intParam(keyInterval, "Tick (ms)", int(s.Interval()/time.Millisecond)),
					{
						Key:   "gps",
						Label: "Gen/s",
						Type:  core.ParamTypeFloat,
						Value: strconv.FormatFloat(s.tracker.GenerationsPerSecond, 'f', 1, 64),
					},
				},
			},
		},
	}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{s.intervalControl()}
}

func (s *Session) intervalControl() core.ParameterControl {
	return core.ParameterControl{
		Key:    keyInterval,
		Label:  "Tick (ms)",
		Step:   5,
		Min:    minIntervalMS,
		Max:    maxIntervalMS,
		HasMin: true,
		HasMax: true,
	}
}

// SetIntParameter updates an integer parameter from the HUD.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != keyInterval {
		return false
	}
	s.SetInterval(time.Duration(value) * time.Millisecond)
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func textParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: v}
}
