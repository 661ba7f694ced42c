package core

import "math"

// Surface is a 2D raster target measured in world pixels.
// Coordinates outside the surface are clipped silently.
type Surface interface {
	Clear()
	DrawBitmap(b Bitmap, x, y, w, h float64)
}

// CellSurface maps world pixels onto a rectangular region of a Screen.
// Each terminal cell covers cellW x cellH world pixels; Glyph bitmaps are
// sampled nearest-neighbour into the cells they cover.
type CellSurface struct {
	screen *Screen
	region Rect
	cellW  float64
	cellH  float64
}

// NewCellSurface creates a surface drawing into region of s.
func NewCellSurface(s *Screen, region Rect, cellW, cellH float64) *CellSurface {
	return &CellSurface{
		screen: s,
		region: region,
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Viewport returns the surface size in world pixels.
func (c *CellSurface) Viewport() (w, h float64) {
	return float64(c.region.W) * c.cellW, float64(c.region.H) * c.cellH
}

// Clear blanks the surface region, leaving the rest of the screen alone.
func (c *CellSurface) Clear() {
	c.screen.ClearRect(c.region)
}

// DrawBitmap stamps a Glyph into the cells covered by the world rectangle.
// Bitmaps of other kinds and not-ready glyphs are skipped.
func (c *CellSurface) DrawBitmap(b Bitmap, x, y, w, h float64) {
	g, ok := b.(*Glyph)
	if !ok || !g.Ready() || w <= 0 || h <= 0 {
		return
	}
	cols, rows := g.Size()
	if cols == 0 || rows == 0 {
		return
	}

	x0 := int(math.Floor(x / c.cellW))
	y0 := int(math.Floor(y / c.cellH))
	x1 := int(math.Ceil((x + w) / c.cellW))
	y1 := int(math.Ceil((y + h) / c.cellH))

	color := g.Color()
	for cy := Max(y0, 0); cy < Min(y1, c.region.H); cy++ {
		py := (float64(cy)+0.5)*c.cellH - y
		row := Clamp(int(py/h*float64(rows)), 0, rows-1)

		for cx := Max(x0, 0); cx < Min(x1, c.region.W); cx++ {
			px := (float64(cx)+0.5)*c.cellW - x
			col := Clamp(int(px/w*float64(cols)), 0, cols-1)

			r := g.At(col, row)
			if r == ' ' {
				continue
			}
			c.screen.SetCell(c.region.X+cx, c.region.Y+cy, r, color)
		}
	}
}

// NullSurface discards all drawing. Used for headless runs.
var NullSurface Surface = nullSurface{}

type nullSurface struct{}

func (nullSurface) Clear()                                                {}
func (nullSurface) DrawBitmap(Bitmap, float64, float64, float64, float64) {}
