// Package config provides YAML-based configuration loading, difficulty presets
// and validation for Dino Run sessions.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all tunables of a Dino Run session.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Schedule   Schedule   `yaml:"schedule"`
	Player     Player     `yaml:"player"`
	Obstacle   Obstacle   `yaml:"obstacle"`
	Background Background `yaml:"background"`
	Viewport   Viewport   `yaml:"viewport"`
	Detection  Detection  `yaml:"detection"`
}

// Physics defines movement parameters. Units are world pixels and ticks.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`         // Added to vertical velocity each airborne tick
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Initial vertical velocity of a jump (negative = up)
	BaseSpeed      float64 `yaml:"base_speed"`      // Horizontal speed at session start
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to speed every speedup_interval ticks
}

// Schedule defines the tick cadences of the game loop.
type Schedule struct {
	SpawnInterval   int `yaml:"spawn_interval"`   // A new obstacle every N ticks
	SpeedupInterval int `yaml:"speedup_interval"` // Speed increases every N ticks
}

// Player defines the player actor geometry.
type Player struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Distance from the viewport bottom to the player's feet
}

// Obstacle defines the fixed obstacle size.
type Obstacle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Background defines the scrolling ground strip.
type Background struct {
	Height float64 `yaml:"height"`
}

// Viewport defines how host dimensions become the world viewport.
type Viewport struct {
	CellWidth    float64 `yaml:"cell_width"`    // World pixels per terminal column
	CellHeight   float64 `yaml:"cell_height"`   // World pixels per terminal row
	ChromeCols   int     `yaml:"chrome_cols"`   // Terminal columns reserved for chrome
	ChromeRows   int     `yaml:"chrome_rows"`   // Terminal rows reserved for the HUD
	WindowWidth  int     `yaml:"window_width"`  // Desktop window width
	WindowHeight int     `yaml:"window_height"` // Desktop window height
	ChromeWidth  int     `yaml:"chrome_width"`  // Window pixels reserved horizontally
	ChromeHeight int     `yaml:"chrome_height"` // Window pixels reserved vertically
}

// Detection defines how the happiness feed becomes jump triggers.
type Detection struct {
	Threshold float64 `yaml:"threshold"`
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Schedule.SpawnInterval > 0, "schedule.spawn_interval"},
		{c.Schedule.SpeedupInterval > 0, "schedule.speedup_interval"},
		{c.Physics.BaseSpeed >= 0, "physics.base_speed"},
		{c.Physics.SpeedIncrement >= 0, "physics.speed_increment"},
		{c.Physics.Gravity > 0, "physics.gravity"},
		{c.Physics.JumpImpulse < 0, "physics.jump_impulse"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size"},
		{c.Obstacle.Width > 0 && c.Obstacle.Height > 0, "obstacle size"},
		{c.Background.Height > 0, "background.height"},
		{c.Viewport.CellWidth > 0 && c.Viewport.CellHeight > 0, "viewport cell size"},
		{c.Detection.Threshold > 0 && c.Detection.Threshold <= 1, "detection.threshold"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}
	return nil
}
