package render

// Layout maps grid cells to screen pixels: each cell is a Cell×Cell square
// followed by Gap pixels of background.
type Layout struct {
	Cols, Rows int
	Cell       int
	Gap        int
}

// Pitch is the distance in pixels between the origins of adjacent cells.
func (l Layout) Pitch() int {
	if l.Cell <= 0 {
		return 1 + l.Gap
	}
	return l.Cell + l.Gap
}

// Bounds returns the pixel size of the whole grid.
func (l Layout) Bounds() (w, h int) {
	p := l.Pitch()
	return l.Cols * p, l.Rows * p
}

// Origin returns the top-left pixel of cell (x, y).
func (l Layout) Origin(x, y int) (px, py int) {
	p := l.Pitch()
	return x * p, y * p
}

// CellAt returns the cell under pixel (px, py). Pixels in the gap belong to
// the cell on their left/top so drags across gaps stay continuous.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return -1, -1, false
	}
	p := l.Pitch()
	x, y = px/p, py/p
	if x >= l.Cols || y >= l.Rows {
		return x, y, false
	}
	return x, y, true
}
