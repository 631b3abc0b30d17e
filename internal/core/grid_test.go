package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, 0, 4, 0},
		{5, 0, 0, 0},
		{0, -1, 0, 2},
		{0, 3, 0, 0},
		{-6, -4, 4, 2},
		{12, 7, 2, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestByteGridPutCountClear(t *testing.T) {
	g := NewByteGrid(4, 4)
	g.Put(1, 2, 1)
	g.Put(3, 3, 1)
	if g.At(1, 2) != 1 || g.Cells()[g.Index(3, 3)] != 1 {
		t.Fatal("Put did not store values in row-major order")
	}
	if got := g.Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	g.Clear()
	if got := g.Count(); got != 0 {
		t.Fatalf("Count after Clear = %d, want 0", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 3, H: 2}
	if !s.Contains(0, 0) || !s.Contains(2, 1) {
		t.Fatal("expected corners to be inside")
	}
	if s.Contains(3, 0) || s.Contains(0, 2) || s.Contains(-1, 0) {
		t.Fatal("expected out-of-range coordinates to be outside")
	}
}

func TestByteGridWrapMatchesSize(t *testing.T) {
	g := NewByteGrid(5, 3)
	s := Size{W: 5, H: 3}
	for _, c := range [][2]int{{-1, -1}, {5, 3}, {-6, 7}, {2, 1}} {
		gx, gy := g.Wrap(c[0], c[1])
		sx, sy := s.Wrap(c[0], c[1])
		if gx != sx || gy != sy {
			t.Fatalf("Wrap(%d,%d): grid (%d,%d), size (%d,%d)", c[0], c[1], gx, gy, sx, sy)
		}
		if !s.Contains(sx, sy) {
			t.Fatalf("Wrap(%d,%d) = (%d,%d) outside %dx%d", c[0], c[1], sx, sy, s.W, s.H)
		}
	}
}
