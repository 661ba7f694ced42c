package dino

import (
	"context"
	"testing"

	"github.com/vovakirdan/dino-run/internal/assets"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/loop"
)

func TestNewSessionGeometry(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(SessionConfig{
		Config:    cfg,
		ViewportW: 640,
		ViewportH: 352,
	})

	p := s.Player()
	if p.X != cfg.Player.X {
		t.Errorf("player x = %v, expected %v", p.X, cfg.Player.X)
	}
	groundLine := 352 - cfg.Player.GroundMargin
	if p.Y+p.H != groundLine {
		t.Errorf("player bottom = %v, expected %v", p.Y+p.H, groundLine)
	}
	if s.Background().Y != groundLine {
		t.Errorf("ground y = %v, expected %v", s.Background().Y, groundLine)
	}
	if s.Speed() != cfg.Physics.BaseSpeed {
		t.Errorf("Speed() = %v, expected %v", s.Speed(), cfg.Physics.BaseSpeed)
	}
}

func TestSessionRunsOnTicker(t *testing.T) {
	sprites, err := assets.Load(context.Background(), assets.DefaultSheet())
	if err != nil {
		t.Fatal(err)
	}
	frames := loop.NewTicker(0)
	var final []int
	s := NewSession(SessionConfig{
		Config:    config.DefaultConfig(),
		ViewportW: 640,
		ViewportH: 352,
		Sprites:   sprites,
		Frames:    frames,
		Trigger:   event.NewBus(),
		Reporter:  ReporterFuncs{Termination: func(score int) { final = append(final, score) }},
	})
	s.Start()

	n, err := frames.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n != 337 {
		t.Errorf("Run() = %d frames, expected 337", n)
	}
	if len(final) != 1 || final[0] != 337 {
		t.Errorf("terminations = %v, expected [337]", final)
	}
}

func TestSessionSurvivesWithJumps(t *testing.T) {
	bus := event.NewBus()
	frames := loop.NewManual()
	s := NewSession(SessionConfig{
		Config:    config.DefaultConfig(),
		ViewportW: 640,
		ViewportH: 352,
		Frames:    frames,
		Trigger:   bus,
	})
	s.Start()

	// Jump whenever an obstacle gets close, like a perfect smile detector.
	for i := 0; i < 1200 && frames.Step(); i++ {
		for _, o := range s.Obstacles() {
			if o.X > 60 && o.X < 60+4*s.Speed()+20 {
				bus.Dispatch(event.Jump)
			}
		}
	}

	if s.State() != Running {
		t.Errorf("State() = %v at score %d, expected %v", s.State(), s.Score(), Running)
	}
	if s.Score() != 1200 {
		t.Errorf("Score() = %d, expected 1200", s.Score())
	}
}

func TestCellViewport(t *testing.T) {
	v := config.DefaultConfig().Viewport
	w, h, region := CellViewport(80, 24, v)
	if w != 640 || h != 352 {
		t.Errorf("CellViewport(80, 24) = (%v, %v), expected (640, 352)", w, h)
	}
	if region.Y != 1 || region.W != 80 || region.H != 22 {
		t.Errorf("region = %+v, expected 80x22 at row 1", region)
	}
}

func TestWindowViewport(t *testing.T) {
	w, h := WindowViewport(config.DefaultConfig().Viewport)
	if w != 800 || h != 260 {
		t.Errorf("WindowViewport() = (%v, %v), expected (800, 260)", w, h)
	}
}
