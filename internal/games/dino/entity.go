// Package dino implements Dino Run: an endless runner with a fixed cast of
// actors (player, obstacles, scrolling ground) driven by a frame scheduler.
package dino

import "github.com/vovakirdan/dino-run/internal/core"

// Entity is a drawable rectangle in world pixels.
type Entity struct {
	X, Y float64 // Top-left corner, may lie outside the viewport
	W, H float64

	bitmap  core.Bitmap
	surface core.Surface
}

// NewEntity creates an entity drawn with bitmap onto surface.
func NewEntity(surface core.Surface, bitmap core.Bitmap, x, y, w, h float64) Entity {
	if surface == nil {
		surface = core.NullSurface
	}
	return Entity{X: x, Y: y, W: w, H: h, bitmap: bitmap, surface: surface}
}

// Box returns the entity's bounds.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Render draws the bitmap at the entity's bounds.
// Nothing is drawn while the bitmap is not ready.
func (e *Entity) Render() {
	if e.bitmap == nil || !e.bitmap.Ready() {
		return
	}
	e.surface.DrawBitmap(e.bitmap, e.X, e.Y, e.W, e.H)
}
