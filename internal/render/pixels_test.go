package render

import (
	"image/color"
	"testing"
)

func pixelAt(buf []byte, width, x, y int) [4]byte {
	i := (y*width + x) * 4
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func TestFillCellsRGBA(t *testing.T) {
	l := Layout{Cols: 2, Rows: 2, Cell: 2, Gap: 1}
	w, h := l.Bounds()
	if w != 6 || h != 6 {
		t.Fatalf("bounds = %dx%d, want 6x6", w, h)
	}
	buf := make([]byte, 4*w*h)
	cells := []uint8{1, 0, 0, 1}
	pal := Palette{
		On:  color.RGBA{R: 255, A: 255},
		Off: color.RGBA{B: 255, A: 255},
		Gap: color.RGBA{G: 255, A: 255},
	}
	fillCellsRGBA(buf, l, cells, pal)

	on := [4]byte{255, 0, 0, 255}
	off := [4]byte{0, 0, 255, 255}
	gap := [4]byte{0, 255, 0, 255}

	checks := []struct {
		x, y int
		want [4]byte
	}{
		{0, 0, on}, {1, 1, on},
		{2, 0, gap}, {0, 2, gap}, {2, 2, gap},
		{3, 0, off}, {4, 1, off},
		{0, 3, off},
		{3, 3, on}, {4, 4, on},
		{5, 4, gap}, {4, 5, gap},
	}
	for _, c := range checks {
		if got := pixelAt(buf, w, c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := Layout{Cols: 100, Rows: 100, Cell: 7, Gap: 1}
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{7, 7, 0, 0, true},
		{8, 15, 1, 1, true},
		{799, 799, 99, 99, true},
		{800, 0, 100, 0, false},
		{-1, 4, -1, -1, false},
	}
	for _, c := range cases {
		x, y, ok := l.CellAt(c.px, c.py)
		if ok != c.ok || (ok && (x != c.x || y != c.y)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", c.px, c.py, x, y, ok, c.x, c.y, c.ok)
		}
	}
	if px, py := l.Origin(3, 2); px != 24 || py != 16 {
		t.Fatalf("Origin(3,2) = (%d,%d)", px, py)
	}
}
