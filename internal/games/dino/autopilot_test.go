package dino

import (
	"testing"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/loop"
)

func TestAutopilotSurvives(t *testing.T) {
	bus := event.NewBus()
	frames := loop.NewManual()
	ap := &Autopilot{Trigger: bus, Lead: DefaultAutopilotLead}
	s := NewSession(SessionConfig{
		Config:    config.DefaultConfig(),
		ViewportW: 640,
		ViewportH: 352,
		Frames:    frames,
		Trigger:   bus,
		Reporter:  ap,
	})
	ap.Attach(s)
	s.Start()

	for i := 0; i < 3000; i++ {
		if !frames.Step() {
			break
		}
	}

	if s.State() != Running {
		t.Fatalf("State() = %v at score %d, expected Running", s.State(), s.Score())
	}
	if s.Score() != 3000 {
		t.Errorf("Score() = %d, expected 3000", s.Score())
	}
	// One jump per spawned obstacle that reached the player.
	if ap.Jumps() < 15 {
		t.Errorf("Jumps() = %d, expected at least 15", ap.Jumps())
	}
}

func TestAutopilotDetached(t *testing.T) {
	bus := event.NewBus()
	fired := 0
	bus.Subscribe(event.Jump, func() { fired++ })

	ap := &Autopilot{Trigger: bus, Lead: DefaultAutopilotLead}
	ap.ReportScore(1)
	if fired != 0 || ap.Jumps() != 0 {
		t.Error("detached autopilot dispatched a jump")
	}
}
