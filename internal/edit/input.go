package edit

import "lifegrid/internal/core"

// InputState tracks which pointer buttons are held and the last cell a drag
// stroke visited.
type InputState struct {
	primary   bool
	secondary bool
	active    core.Button

	lastX, lastY int
	hasLast      bool
}

// Held reports whether b is currently down.
func (s *InputState) Held(b core.Button) bool {
	switch b {
	case core.ButtonPrimary:
		return s.primary
	case core.ButtonSecondary:
		return s.secondary
	default:
		return false
	}
}

// Active returns the button that currently paints, or ButtonNone.
func (s *InputState) Active() core.Button { return s.active }

// Last returns the last visited cell of the current stroke.
func (s *InputState) Last() (x, y int, ok bool) { return s.lastX, s.lastY, s.hasLast }

func (s *InputState) press(b core.Button) {
	switch b {
	case core.ButtonPrimary:
		s.primary = true
	case core.ButtonSecondary:
		s.secondary = true
	default:
		return
	}
	s.active = b
}

func (s *InputState) release(b core.Button) {
	switch b {
	case core.ButtonPrimary:
		s.primary = false
	case core.ButtonSecondary:
		s.secondary = false
	}
	if s.active != b {
		return
	}
	switch {
	case s.primary:
		s.active = core.ButtonPrimary
	case s.secondary:
		s.active = core.ButtonSecondary
	default:
		s.active = core.ButtonNone
		s.hasLast = false
	}
}

func (s *InputState) visit(x, y int) {
	s.lastX, s.lastY, s.hasLast = x, y, true
}

// Snapshot is the polled pointer state for one frame, in cell coordinates.
type Snapshot struct {
	X, Y      int
	Primary   bool
	Secondary bool
}

// Diff converts two consecutive polled snapshots into pointer events: a move
// when the cell changes, then presses and releases for button transitions.
func Diff(prev, cur Snapshot) []core.PointerEvent {
	var evs []core.PointerEvent
	if prev.X != cur.X || prev.Y != cur.Y {
		evs = append(evs, core.PointerEvent{X: cur.X, Y: cur.Y, Kind: core.PointerMove})
	}
	evs = appendTransition(evs, cur, prev.Primary, cur.Primary, core.ButtonPrimary)
	evs = appendTransition(evs, cur, prev.Secondary, cur.Secondary, core.ButtonSecondary)
	return evs
}

func appendTransition(evs []core.PointerEvent, at Snapshot, was, is bool, b core.Button) []core.PointerEvent {
	switch {
	case !was && is:
		return append(evs, core.PointerEvent{X: at.X, Y: at.Y, Kind: core.PointerPress, Button: b})
	case was && !is:
		return append(evs, core.PointerEvent{X: at.X, Y: at.Y, Kind: core.PointerRelease, Button: b})
	}
	return evs
}
