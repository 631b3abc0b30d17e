package life

import (
	"hash/fnv"

	"lifegrid/internal/core"
)

// Life implements a Life-like cellular automaton on a toroidal grid.
type Life struct {
	w, h int
	cfg  Config
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
	gen  int
}

// New returns a Conway simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation built from cfg. The board starts empty.
func NewWithConfig(cfg Config) *Life {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	return &Life{
		w:   cur.W,
		h:   cur.H,
		cfg: cfg,
		cur: cur,
		nxt: core.NewByteGrid(cur.W, cur.H),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Rule returns the active birth/survival rule.
func (l *Life) Rule() Rule { return l.cfg.Rule }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps taken since the last Clear or Reset.
func (l *Life) Generation() int { return l.gen }

// Set stores s at (x, y). Coordinates must be inside the grid.
func (l *Life) Set(x, y int, s core.State) {
	l.cur.Put(x, y, uint8(s))
}

// StateAt returns the state of the cell at (x, y).
func (l *Life) StateAt(x, y int) core.State {
	return core.State(l.cur.At(x, y))
}

// Population counts live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}

// Reset clears the board and, when the config has a non-zero density,
// randomizes it using seed.
func (l *Life) Reset(seed int64) {
	l.Clear()
	if l.cfg.Density > 0 {
		l.Randomize(seed, l.cfg.Density)
	}
}

// Randomize makes each cell alive with probability density.
func (l *Life) Randomize(seed int64, density float64) {
	core.FillDensity(core.NewRNG(seed), l.cur.Cells(), density)
	l.gen = 0
}

// Neighbors counts live cells among the eight toroidal neighbours of (x, y).
func (l *Life) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(l.cur.At(l.cur.Wrap(x+dx, y+dy)))
		}
	}
	return n
}

// Step advances the simulation by one generation. Every cell is computed from
// the current buffer into the scratch buffer before the two are swapped.
func (l *Life) Step() {
	rule := l.cfg.Rule
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			var next uint8
			if rule.Next(l.cur.At(x, y) == 1, l.Neighbors(x, y)) {
				next = 1
			}
			l.nxt.Put(x, y, next)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Fingerprint hashes the current cell buffer.
func (l *Life) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write(l.cur.Cells())
	return h.Sum64()
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c), nil
	})
}
