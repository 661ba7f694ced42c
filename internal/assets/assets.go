// Package assets loads the sprite sheet into bitmap handles.
package assets

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-run/internal/core"
)

// Sprite names used by the game.
const (
	Player   = "player"
	Obstacle = "obstacle"
	Ground   = "ground"
)

// ErrUnknownSprite is returned when a requested sprite is missing from the sheet.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

//go:embed sprites/sheet.yaml
var defaultSheet []byte

// Sprite is one entry of a sprite sheet.
type Sprite struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Sheet maps sprite names to their art.
type Sheet struct {
	Sprites map[string]Sprite `yaml:"sprites"`
}

// ParseSheet decodes a YAML sprite sheet.
func ParseSheet(data []byte) (Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sheet{}, fmt.Errorf("assets: parse sheet: %w", err)
	}
	return s, nil
}

// DefaultSheet returns the embedded sprite sheet.
func DefaultSheet() Sheet {
	s, err := ParseSheet(defaultSheet)
	if err != nil {
		panic(err) // embedded data is fixed at build time
	}
	return s
}

// LoadSheet reads a sheet from path, or returns the embedded one when path is empty.
func LoadSheet(path string) (Sheet, error) {
	if path == "" {
		return DefaultSheet(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("assets: read sheet %s: %w", path, err)
	}
	return ParseSheet(data)
}

// Fill loads the named sprite into g.
func (s Sheet) Fill(g *core.Glyph) error {
	sp, ok := s.Sprites[g.Name()]
	if !ok || len(sp.Rows) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSprite, g.Name())
	}
	c, ok := core.ParseColor(sp.Color)
	if !ok {
		return fmt.Errorf("assets: sprite %q: unknown color %q", g.Name(), sp.Color)
	}
	g.Fill(sp.Rows, c)
	return nil
}

// Set holds the handles the game draws with.
type Set struct {
	Player   *core.Glyph
	Obstacle *core.Glyph
	Ground   *core.Glyph
}

// NewSet requests handles for every game sprite. None of them is ready yet.
func NewSet() *Set {
	return &Set{
		Player:   core.NewGlyph(Player),
		Obstacle: core.NewGlyph(Obstacle),
		Ground:   core.NewGlyph(Ground),
	}
}

func (s *Set) handles() []*core.Glyph {
	return []*core.Glyph{s.Player, s.Obstacle, s.Ground}
}

// LoadAsync fills every handle of set from sheet concurrently and returns
// immediately. The returned wait function blocks until loading finishes
// and reports the first failure. Handles that failed stay not ready.
func LoadAsync(ctx context.Context, sheet Sheet, set *Set) (wait func() error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range set.handles() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return sheet.Fill(h)
		})
	}
	return g.Wait
}

// Load fills every handle synchronously.
func Load(ctx context.Context, sheet Sheet) (*Set, error) {
	set := NewSet()
	if err := LoadAsync(ctx, sheet, set)(); err != nil {
		return set, err
	}
	return set, nil
}
