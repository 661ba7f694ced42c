package core

import (
	"image"
	"sync"
	"sync/atomic"
)

// Bitmap is an opaque handle to an image resource.
// Handles are requested before they are loaded; drawing a handle that is
// not ready yet is a no-op on every surface.
type Bitmap interface {
	Ready() bool
}

// Glyph is a bitmap made of character art, one string per row.
// Spaces are transparent. The zero value is a valid, not-ready handle.
type Glyph struct {
	name  string
	ready atomic.Bool

	mu    sync.RWMutex
	rows  [][]rune
	color Color
}

// NewGlyph returns an empty handle that becomes ready once Fill is called.
func NewGlyph(name string) *Glyph {
	return &Glyph{name: name}
}

// Name returns the sprite name the handle was requested for.
func (g *Glyph) Name() string {
	return g.name
}

// Ready reports whether the glyph data has been loaded.
func (g *Glyph) Ready() bool {
	return g.ready.Load()
}

// Fill stores the art and marks the handle ready.
// Safe to call from a loader goroutine while the game thread draws.
func (g *Glyph) Fill(rows []string, c Color) {
	data := make([][]rune, len(rows))
	for i, r := range rows {
		data[i] = []rune(r)
	}

	g.mu.Lock()
	g.rows = data
	g.color = c
	g.mu.Unlock()

	g.ready.Store(true)
}

// Size returns the art dimensions in characters (widest row by row count).
func (g *Glyph) Size() (cols, rows int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, r := range g.rows {
		cols = Max(cols, len(r))
	}
	return cols, len(g.rows)
}

// At returns the rune at (col, row) of the art, or space outside it.
func (g *Glyph) At(col, row int) rune {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if row < 0 || row >= len(g.rows) {
		return ' '
	}
	line := g.rows[row]
	if col < 0 || col >= len(line) {
		return ' '
	}
	return line[col]
}

// Color returns the foreground color of the art.
func (g *Glyph) Color() Color {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.color
}

// Image rasterizes the art one pixel per character. Spaces stay transparent.
// Returns nil while the glyph is not ready.
func (g *Glyph) Image() *image.RGBA {
	if !g.Ready() {
		return nil
	}
	cols, rows := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	c := g.Color().RGBA()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.At(x, y) != ' ' {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
