package dino

import (
	"math"

	"github.com/vovakirdan/dino-run/internal/core"
)

// Background is the ground strip. It is drawn twice side by side and
// scrolls left with the game speed, wrapping at the viewport width.
type Background struct {
	Entity
	viewportW float64
	offset    float64
}

// NewBackground creates a strip spanning the viewport width at height y.
func NewBackground(surface core.Surface, bitmap core.Bitmap, viewportW, y, h float64) *Background {
	return &Background{
		Entity:    NewEntity(surface, bitmap, 0, y, viewportW, h),
		viewportW: viewportW,
	}
}

// Offset returns the current scroll offset in [0, viewport width).
func (b *Background) Offset() float64 {
	return b.offset
}

// Advance moves the strip by speed and returns the new offset.
func (b *Background) Advance(speed float64) float64 {
	if b.viewportW <= 0 {
		return 0
	}
	b.offset = math.Mod(b.offset+speed, b.viewportW)
	if b.offset < 0 {
		b.offset += b.viewportW
	}
	return b.offset
}

// DrawAndScroll draws both copies of the strip, then advances it by speed.
func (b *Background) DrawAndScroll(speed float64) {
	b.X = -b.offset
	b.Render()
	b.X = -b.offset + b.viewportW
	b.Render()
	b.Advance(speed)
}
