package core

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonNone is reported on plain moves.
	ButtonNone Button = iota
	// ButtonPrimary paints live cells.
	ButtonPrimary
	// ButtonSecondary erases cells.
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// EventKind enumerates pointer event types.
type EventKind uint8

const (
	// PointerMove reports that the pointer is over cell (X, Y).
	PointerMove EventKind = iota
	// PointerPress reports that Button went down over (X, Y).
	PointerPress
	// PointerRelease reports that Button went up.
	PointerRelease
)

// PointerEvent is a toolkit-neutral pointer event in cell coordinates.
type PointerEvent struct {
	X, Y   int
	Kind   EventKind
	Button Button
}
