// Package window runs Dino Run in a desktop window using Ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dino-run/internal/core"
)

// ImageSurface draws glyph bitmaps onto an offscreen Ebiten image, one
// world pixel per image pixel. Each glyph is rasterized once and scaled.
type ImageSurface struct {
	canvas *ebiten.Image
	bg     color.Color
	cache  map[*core.Glyph]*ebiten.Image
}

// NewImageSurface creates a w x h surface filled with bg.
func NewImageSurface(w, h int, bg color.Color) *ImageSurface {
	s := &ImageSurface{
		canvas: ebiten.NewImage(w, h),
		bg:     bg,
		cache:  make(map[*core.Glyph]*ebiten.Image),
	}
	s.Clear()
	return s
}

// Clear fills the canvas with the background color.
func (s *ImageSurface) Clear() {
	s.canvas.Fill(s.bg)
}

// DrawBitmap scales the glyph's raster to the world rectangle.
func (s *ImageSurface) DrawBitmap(b core.Bitmap, x, y, w, h float64) {
	g, ok := b.(*core.Glyph)
	if !ok || !g.Ready() || w <= 0 || h <= 0 {
		return
	}
	img := s.glyphImage(g)
	if img == nil {
		return
	}

	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(x, y)
	s.canvas.DrawImage(img, op)
}

func (s *ImageSurface) glyphImage(g *core.Glyph) *ebiten.Image {
	if img, ok := s.cache[g]; ok {
		return img
	}
	raster := g.Image()
	if raster == nil || raster.Bounds().Empty() {
		return nil
	}
	img := ebiten.NewImageFromImage(raster)
	s.cache[g] = img
	return img
}

// Image returns the canvas to blit onto the screen.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.canvas
}
