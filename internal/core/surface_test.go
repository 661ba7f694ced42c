package core

import "testing"

func TestCellSurfaceViewport(t *testing.T) {
	s := NewScreen(80, 24)
	cs := NewCellSurface(s, NewRect(0, 1, 80, 22), 8, 16)

	w, h := cs.Viewport()
	if w != 640 || h != 352 {
		t.Errorf("Viewport() = (%v, %v), expected (640, 352)", w, h)
	}
}

func TestCellSurfaceDrawGlyph(t *testing.T) {
	s := NewScreen(10, 6)
	cs := NewCellSurface(s, NewRect(0, 1, 10, 5), 8, 16)

	g := NewGlyph("block")
	g.Fill([]string{"AB", "CD"}, ColorGreen)

	// 16x32 world pixels at (8, 16) covers cells x 1-2, y 1-2 of the region
	cs.DrawBitmap(g, 8, 16, 16, 32)

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 2, 'A'},
		{2, 2, 'B'},
		{1, 3, 'C'},
		{2, 3, 'D'},
		{0, 2, ' '},
		{3, 3, ' '},
		{1, 1, ' '}, // region starts at screen row 1, so row 1 is world y 0-15
	}
	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}
	if s.GetCell(1, 2).Color != ColorGreen {
		t.Errorf("glyph color not applied, got %v", s.GetCell(1, 2).Color)
	}
}

func TestCellSurfaceSkipsUnready(t *testing.T) {
	s := NewScreen(4, 4)
	cs := NewCellSurface(s, NewRect(0, 0, 4, 4), 1, 1)

	cs.DrawBitmap(NewGlyph("pending"), 0, 0, 4, 4)
	if s.String() != "    \n    \n    \n    " {
		t.Errorf("unready glyph should not draw, got %q", s.String())
	}
}

func TestCellSurfaceClipsToRegion(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "HUD")
	cs := NewCellSurface(s, NewRect(0, 1, 6, 2), 1, 1)

	g := NewGlyph("wall")
	g.Fill([]string{"#"}, ColorDefault)

	// Starts above and left of the region, extends past the right edge
	cs.DrawBitmap(g, -3, -1, 20, 2)

	if s.Row(0) != "HUD   " {
		t.Errorf("drawing must not leak outside the region, row 0 = %q", s.Row(0))
	}
	if s.Row(1) != "######" {
		t.Errorf("row 1 = %q, expected full fill", s.Row(1))
	}

	cs.Clear()
	if s.Row(1) != "      " || s.Row(0) != "HUD   " {
		t.Errorf("Clear should only blank the region, rows = %q / %q", s.Row(0), s.Row(1))
	}
}

func TestTransparentSpaces(t *testing.T) {
	s := NewScreen(3, 1)
	s.Fill('.')
	cs := NewCellSurface(s, NewRect(0, 0, 3, 1), 1, 1)

	g := NewGlyph("gap")
	g.Fill([]string{"x x"}, ColorDefault)
	cs.DrawBitmap(g, 0, 0, 3, 1)

	if s.Row(0) != "x.x" {
		t.Errorf("spaces in art should be transparent, got %q", s.Row(0))
	}
}
