package core

import "testing"

func TestGlyphNotReady(t *testing.T) {
	g := NewGlyph("player")
	if g.Ready() {
		t.Error("new glyph should not be ready")
	}
	if cols, rows := g.Size(); cols != 0 || rows != 0 {
		t.Errorf("Size() = (%d, %d), expected (0, 0)", cols, rows)
	}
	if r := g.At(0, 0); r != ' ' {
		t.Errorf("At(0, 0) = %q, expected ' '", r)
	}
}

func TestGlyphFill(t *testing.T) {
	g := NewGlyph("obstacle")
	g.Fill([]string{"ab", "cde"}, ColorGreen)

	if !g.Ready() {
		t.Fatal("glyph should be ready after Fill")
	}
	if cols, rows := g.Size(); cols != 3 || rows != 2 {
		t.Errorf("Size() = (%d, %d), expected (3, 2)", cols, rows)
	}
	if g.Color() != ColorGreen {
		t.Errorf("Color() = %v, expected %v", g.Color(), ColorGreen)
	}

	tests := []struct {
		col, row int
		expected rune
	}{
		{0, 0, 'a'},
		{2, 1, 'e'},
		{2, 0, ' '},
		{-1, 0, ' '},
		{0, 5, ' '},
	}
	for _, tt := range tests {
		if got := g.At(tt.col, tt.row); got != tt.expected {
			t.Errorf("At(%d, %d) = %q, expected %q", tt.col, tt.row, got, tt.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"", ColorDefault, true},
		{"green", ColorGreen, true},
		{"bright_yellow", ColorBrightYellow, true},
		{"chartreuse", ColorDefault, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tt.name, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestGlyphImage(t *testing.T) {
	g := NewGlyph("ground")
	if g.Image() != nil {
		t.Error("Image() of a not-ready glyph should be nil")
	}

	g.Fill([]string{"# ", " #"}, ColorRed)
	img := g.Image()
	if img == nil {
		t.Fatal("Image() = nil after Fill")
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("Bounds() = %v, expected 2x2", b)
	}
	if got := img.RGBAAt(0, 0); got != ColorRed.RGBA() {
		t.Errorf("pixel (0,0) = %v, expected %v", got, ColorRed.RGBA())
	}
	if got := img.RGBAAt(1, 0); got.A != 0 {
		t.Errorf("pixel (1,0) alpha = %d, expected transparent", got.A)
	}
}

func TestColorRGBAUnknown(t *testing.T) {
	if Color(200).RGBA() != ColorDefault.RGBA() {
		t.Error("unknown color should fall back to the default")
	}
}
