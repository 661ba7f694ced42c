package dino

import (
	"sync"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
)

// JumpSource delivers the jump trigger. *event.Bus implements it.
type JumpSource interface {
	Subscribe(name string, fn event.Listener) *event.Subscription
}

// PlayerConfig positions the player and sets its jump physics.
type PlayerConfig struct {
	X, Y        float64 // Y is the resting (ground) position of the top edge
	W, H        float64
	JumpImpulse float64 // Initial vertical velocity, negative is up
	Gravity     float64 // Added to velocity every airborne tick
}

// Player is the runner. Its x never changes; y follows a ballistic arc
// while a jump is in progress and never goes below ground-y.
type Player struct {
	Entity
	groundY     float64
	jumpImpulse float64
	gravity     float64

	// Guarded by mu: written by the jump listener, read by Tick.
	mu      sync.Mutex
	vel     float64
	jumping bool
	armed   bool

	sub *event.Subscription
}

// NewPlayer creates a player at rest and subscribes it to the jump trigger.
// A nil trigger yields a player that never jumps on its own.
func NewPlayer(surface core.Surface, bitmap core.Bitmap, cfg PlayerConfig, trigger JumpSource) *Player {
	p := &Player{
		Entity:      NewEntity(surface, bitmap, cfg.X, cfg.Y, cfg.W, cfg.H),
		groundY:     cfg.Y,
		jumpImpulse: cfg.JumpImpulse,
		gravity:     cfg.Gravity,
	}
	if trigger != nil {
		p.sub = trigger.Subscribe(event.Jump, func() { p.Jump() })
	}
	return p
}

// Jump starts a jump unless one is already in progress.
// It reports whether a new jump started. Safe to call from any goroutine.
func (p *Player) Jump() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.jumping {
		return false
	}
	p.jumping = true
	p.vel = p.jumpImpulse
	return true
}

// Start arms the per-frame physics.
func (p *Player) Start() {
	p.mu.Lock()
	p.armed = true
	p.mu.Unlock()
}

// Stop disarms the player and unsubscribes it from the jump trigger.
func (p *Player) Stop() {
	p.mu.Lock()
	p.armed = false
	p.mu.Unlock()
	p.sub.Unsubscribe()
}

// Tick advances the vertical physics by one frame.
func (p *Player) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.armed || !p.jumping {
		return
	}

	p.vel += p.gravity
	p.Y += p.vel
	if p.Y >= p.groundY {
		p.Y = p.groundY
		p.vel = 0
		p.jumping = false
	}
}

// CollisionCheck returns the signed gaps between the player and o.
// Both negative means they overlap.
func (p *Player) CollisionCheck(o *Obstacle) (dx, dy float64) {
	return p.Box().Gap(o.Box())
}

// Collides reports whether the player overlaps o. Touching is not a collision.
func (p *Player) Collides(o *Obstacle) bool {
	return p.Box().Overlaps(o.Box())
}

// GroundY returns the resting y.
func (p *Player) GroundY() float64 {
	return p.groundY
}

// Jumping reports whether a jump is in progress.
func (p *Player) Jumping() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.jumping
}

// Velocity returns the vertical velocity.
func (p *Player) Velocity() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vel
}
