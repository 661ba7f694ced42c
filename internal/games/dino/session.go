package dino

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/assets"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/loop"
)

// SessionConfig carries everything a session needs. The viewport is fixed
// for the life of the session.
type SessionConfig struct {
	Config    config.Config
	ViewportW float64
	ViewportH float64

	Surface  core.Surface
	Sprites  *assets.Set
	Frames   loop.FrameRequester
	Trigger  JumpSource
	Reporter Reporter
	Logger   *log.Logger
}

// NewSession builds the actors and a Scheduler for one run.
// The player subscribes to the trigger immediately; call Start to run.
func NewSession(sc SessionConfig) *Scheduler {
	cfg := sc.Config
	sprites := sc.Sprites
	if sprites == nil {
		sprites = assets.NewSet()
	}

	groundLine := sc.ViewportH - cfg.Player.GroundMargin
	player := NewPlayer(sc.Surface, sprites.Player, PlayerConfig{
		X:           cfg.Player.X,
		Y:           groundLine - cfg.Player.Height,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		JumpImpulse: cfg.Physics.JumpImpulse,
		Gravity:     cfg.Physics.Gravity,
	}, sc.Trigger)
	ground := NewBackground(sc.Surface, sprites.Ground, sc.ViewportW, groundLine, cfg.Background.Height)

	params := Params{
		ViewportW:       sc.ViewportW,
		GroundLine:      groundLine,
		ObstacleW:       cfg.Obstacle.Width,
		ObstacleH:       cfg.Obstacle.Height,
		SpawnInterval:   cfg.Schedule.SpawnInterval,
		SpeedupInterval: cfg.Schedule.SpeedupInterval,
		BaseSpeed:       cfg.Physics.BaseSpeed,
		SpeedIncrement:  cfg.Physics.SpeedIncrement,
	}
	return NewScheduler(sc.Surface, sc.Frames, player, ground, sprites.Obstacle, params, sc.Reporter, sc.Logger)
}

// CellViewport returns the world size of a terminal play area of cols x rows
// cells, after removing the configured chrome.
func CellViewport(cols, rows int, v config.Viewport) (w, h float64, region core.Rect) {
	cols = core.Max(cols-v.ChromeCols, 1)
	rows = core.Max(rows-v.ChromeRows, 1)
	region = core.NewRect(0, 1, cols, rows)
	return float64(cols) * v.CellWidth, float64(rows) * v.CellHeight, region
}

// WindowViewport returns the world size of the desktop play area: the
// window size minus the configured chrome margins.
func WindowViewport(v config.Viewport) (w, h float64) {
	return float64(core.Max(v.WindowWidth-v.ChromeWidth, 1)), float64(core.Max(v.WindowHeight-v.ChromeHeight, 1))
}
