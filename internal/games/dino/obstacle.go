package dino

import "github.com/vovakirdan/dino-run/internal/core"

// Obstacle is a fixed-size block standing on the ground line.
// It has no behaviour of its own: the Scheduler moves it.
type Obstacle struct {
	Entity
}

// NewObstacle places an obstacle at the right edge of the viewport with its
// bottom on groundLine.
func NewObstacle(surface core.Surface, bitmap core.Bitmap, viewportW, groundLine, w, h float64) *Obstacle {
	return &Obstacle{Entity: NewEntity(surface, bitmap, viewportW, groundLine-h, w, h)}
}
