package render

import "image/color"

var (
	// AliveColor is the fill for live cells.
	AliveColor = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	// DeadColor is the fill for dead cells.
	DeadColor = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	// GapColor is drawn between cells.
	GapColor = color.RGBA{R: 28, G: 28, B: 32, A: 255}
)

// Palette holds the colors used to paint the grid.
type Palette struct {
	On, Off, Gap color.Color
}

// DefaultPalette returns the green-on-grey palette.
func DefaultPalette() Palette {
	return Palette{On: AliveColor, Off: DeadColor, Gap: GapColor}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA converts binary cell data (0/1) into an RGBA pixel buffer of
// the size given by l.Bounds().
func fillCellsRGBA(buf []byte, l Layout, cells []uint8, pal Palette) {
	on, off, gap := rgba8(pal.On), rgba8(pal.Off), rgba8(pal.Gap)
	width, _ := l.Bounds()
	pitch := l.Pitch()
	cell := pitch - l.Gap

	for y := 0; y < l.Rows; y++ {
		for py := 0; py < pitch; py++ {
			row := (y*pitch + py) * width * 4
			for x := 0; x < l.Cols; x++ {
				col := off
				if cells[y*l.Cols+x] != 0 {
					col = on
				}
				if py >= cell {
					col = gap
				}
				base := row + x*pitch*4
				for px := 0; px < pitch; px++ {
					c := col
					if px >= cell {
						c = gap
					}
					copy(buf[base+px*4:base+px*4+4], c[:])
				}
			}
		}
	}
}
