package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}

// State is the binary state of a single cell.
type State uint8

const (
	// Dead is the quiescent cell state.
	Dead State = 0
	// Alive marks a populated cell.
	Alive State = 1
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// CellSetter is anything that accepts point writes of cell state.
type CellSetter interface {
	Size() Size
	Set(x, y int, s State)
}

// Sim defines the contract the session and renderer rely on.
type Sim interface {
	CellSetter
	Name() string
	StateAt(x, y int) State
	Reset(seed int64)
	Step()
	Clear()
	Cells() []uint8
	Generation() int
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
