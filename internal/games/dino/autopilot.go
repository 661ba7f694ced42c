package dino

import "github.com/vovakirdan/dino-run/internal/event"

// Dispatcher delivers a named event to its listeners.
type Dispatcher interface {
	Dispatch(name string) int
}

// Autopilot is a Reporter that fires the jump trigger once the nearest
// obstacle ahead is at most Lead ticks away from the player. It stands in for
// a happiness feed in simulations and demos.
type Autopilot struct {
	Trigger Dispatcher
	Lead    float64

	sched *Scheduler
	jumps int
}

// DefaultAutopilotLead clears an obstacle at any speed the default ramp reaches.
const DefaultAutopilotLead = 8

// Attach binds the autopilot to the scheduler it reports for.
func (a *Autopilot) Attach(s *Scheduler) {
	a.sched = s
}

// ReportScore runs after obstacles have moved and before the player does.
func (a *Autopilot) ReportScore(int) {
	if a.sched == nil || a.Trigger == nil {
		return
	}
	p := a.sched.Player()
	if p.Jumping() {
		return
	}

	reach := a.Lead * a.sched.Speed()
	front := p.X + p.W
	for _, o := range a.sched.Obstacles() {
		gap := o.X - front
		if gap >= 0 && gap <= reach {
			a.Trigger.Dispatch(event.Jump)
			a.jumps++
			return
		}
	}
}

// ReportTermination is a no-op.
func (a *Autopilot) ReportTermination(int) {}

// Jumps returns how many jumps the autopilot requested.
func (a *Autopilot) Jumps() int {
	return a.jumps
}
