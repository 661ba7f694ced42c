package config

import (
	_ "embed"
)

//go:embed defaults/dinorun.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:        0.4,
			JumpImpulse:    -10,
			BaseSpeed:      3,
			SpeedIncrement: 1,
		},
		Schedule: Schedule{
			SpawnInterval:   144,
			SpeedupInterval: 500,
		},
		Player: Player{
			X:            10,
			Width:        50,
			Height:       50,
			GroundMargin: 16,
		},
		Obstacle: Obstacle{
			Width:  20,
			Height: 40,
		},
		Background: Background{
			Height: 16,
		},
		Viewport: Viewport{
			CellWidth:    8,
			CellHeight:   16,
			ChromeCols:   0,
			ChromeRows:   2,
			WindowWidth:  1000,
			WindowHeight: 560,
			ChromeWidth:  200,
			ChromeHeight: 300,
		},
		Detection: Detection{
			Threshold: 0.99,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
