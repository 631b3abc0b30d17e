//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional visuals on top of the grid: an outline around the
// hovered cell and, when enabled, major grid lines every ten cells.
type Overlay struct {
	layout    render.Layout
	showLines bool

	hoverX, hoverY int
	hover          bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(l render.Layout) *Overlay {
	return &Overlay{layout: l}
}

// Update toggles grid lines and records the hovered cell.
func (o *Overlay) Update(cellX, cellY int, inside bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
	o.hoverX, o.hoverY, o.hover = cellX, cellY, inside
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showLines {
		o.drawLines(screen)
	}
	if o.hover {
		px, py := o.layout.Origin(o.hoverX, o.hoverY)
		size := float32(o.layout.Pitch() - o.layout.Gap)
		vector.StrokeRect(screen, float32(px), float32(py), size, size, 1, color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	}
}

func (o *Overlay) drawLines(screen *ebiten.Image) {
	const major = 10
	w, h := o.layout.Bounds()
	col := color.RGBA{R: 90, G: 90, B: 110, A: 160}
	pitch := o.layout.Pitch()
	for x := major; x < o.layout.Cols; x += major {
		fx := float32(x*pitch) - 0.5
		vector.StrokeLine(screen, fx, 0, fx, float32(h), 1, col, false)
	}
	for y := major; y < o.layout.Rows; y += major {
		fy := float32(y*pitch) - 0.5
		vector.StrokeLine(screen, 0, fy, float32(w), fy, 1, col, false)
	}
}
