package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset selects the starting speed and the speed ramp.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No speed ramp
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
	}
}

// ApplyPreset modifies the physics of cfg according to the preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed = 2
		cfg.Physics.SpeedIncrement = 0.5
	case DifficultyHard:
		cfg.Physics.BaseSpeed = 4
		cfg.Physics.SpeedIncrement = 1.5
	case DifficultyFixed:
		cfg.Physics.SpeedIncrement = 0
	}
}
