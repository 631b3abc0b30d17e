// Package edit maps pointer events onto cell writes.
package edit

import "lifegrid/internal/core"

// Editor paints cells: the primary button makes cells alive, the secondary
// button kills them. Dragging with a button held paints every cell along the
// pointer's path.
type Editor struct {
	dst   core.CellSetter
	input *InputState
}

// New returns an Editor writing into dst and tracking buttons in input.
func New(dst core.CellSetter, input *InputState) *Editor {
	if input == nil {
		input = &InputState{}
	}
	return &Editor{dst: dst, input: input}
}

// Handle applies ev and returns the number of cells written.
func (e *Editor) Handle(ev core.PointerEvent) int {
	inside := e.dst.Size().Contains(ev.X, ev.Y)
	switch ev.Kind {
	case core.PointerPress:
		if !inside || ev.Button == core.ButtonNone {
			return 0
		}
		e.input.press(ev.Button)
		if e.input.Active() != ev.Button {
			return 0
		}
		e.dst.Set(ev.X, ev.Y, stateFor(ev.Button))
		e.input.visit(ev.X, ev.Y)
		return 1
	case core.PointerRelease:
		e.input.release(ev.Button)
		return 0
	case core.PointerMove:
		if !inside {
			e.input.hasLast = false
			return 0
		}
		active := e.input.Active()
		if active == core.ButtonNone {
			return 0
		}
		state := stateFor(active)
		n := 0
		if x0, y0, ok := e.input.Last(); ok {
			Line(x0, y0, ev.X, ev.Y, func(x, y int) {
				e.dst.Set(x, y, state)
				n++
			})
		} else {
			e.dst.Set(ev.X, ev.Y, state)
			n = 1
		}
		e.input.visit(ev.X, ev.Y)
		return n
	}
	return 0
}

func stateFor(b core.Button) core.State {
	if b == core.ButtonPrimary {
		return core.Alive
	}
	return core.Dead
}

// Line calls fn for every cell on the Bresenham line from (x0, y0) to
// (x1, y1), endpoints included.
func Line(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
