package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ParseColor looks up a color by its lowercase name (e.g. "bright_green").
// An empty name yields ColorDefault.
func ParseColor(name string) (Color, bool) {
	if name == "" {
		return ColorDefault, true
	}
	c, ok := colorNames[name]
	return c, ok
}

var colorRGBA = [...]color.RGBA{
	ColorDefault:       {R: 220, G: 220, B: 220, A: 255},
	ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	ColorGray:          {R: 128, G: 128, B: 128, A: 255},
}

// RGBA returns the color for pixel hosts. Unknown values map to ColorDefault.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(colorRGBA) {
		return colorRGBA[ColorDefault]
	}
	return colorRGBA[c]
}
