package dino

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/loop"
)

// State is the lifecycle state of a Scheduler.
type State int32

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reporter receives the score side channel.
type Reporter interface {
	// ReportScore is called once per frame with the current tick.
	ReportScore(score int)
	// ReportTermination is called exactly once, when a collision ends the run.
	ReportTermination(score int)
}

// ReporterFuncs adapts plain functions to Reporter. Nil fields are skipped.
type ReporterFuncs struct {
	Score       func(score int)
	Termination func(score int)
}

func (r ReporterFuncs) ReportScore(score int) {
	if r.Score != nil {
		r.Score(score)
	}
}

func (r ReporterFuncs) ReportTermination(score int) {
	if r.Termination != nil {
		r.Termination(score)
	}
}

// Reporters fans every report out to each non-nil reporter in order.
func Reporters(rs ...Reporter) Reporter {
	out := make(multiReporter, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type multiReporter []Reporter

func (m multiReporter) ReportScore(score int) {
	for _, r := range m {
		r.ReportScore(score)
	}
}

func (m multiReporter) ReportTermination(score int) {
	for _, r := range m {
		r.ReportTermination(score)
	}
}

// Params holds the session constants of a Scheduler.
type Params struct {
	ViewportW       float64
	GroundLine      float64 // y of the ground surface, where obstacles stand
	ObstacleW       float64
	ObstacleH       float64
	SpawnInterval   int // Spawn an obstacle when tick % SpawnInterval == 0
	SpeedupInterval int // Speed up when tick % SpeedupInterval == 0
	BaseSpeed       float64
	SpeedIncrement  float64
}

// Scheduler runs the game loop. It owns the surface and the obstacle list;
// every frame it moves the world, checks collisions and reports the score.
//
// All methods except Stop and State must be called from the frame thread.
type Scheduler struct {
	surface  core.Surface
	frames   loop.FrameRequester
	reporter Reporter
	logger   *log.Logger

	player         *Player
	ground         *Background
	obstacleBitmap core.Bitmap
	params         Params

	tick      int
	speed     float64
	obstacles []*Obstacle
	state     atomic.Int32
	started   bool

	mu      sync.Mutex // Guards frameID and stopped
	frameID loop.FrameID
	stopped bool
}

// NewScheduler creates a scheduler in the Running state. Nothing happens
// until Start requests the first frame.
func NewScheduler(surface core.Surface, frames loop.FrameRequester, player *Player, ground *Background,
	obstacle core.Bitmap, params Params, reporter Reporter, logger *log.Logger) *Scheduler {
	if surface == nil {
		surface = core.NullSurface
	}
	if reporter == nil {
		reporter = ReporterFuncs{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		surface:        surface,
		frames:         frames,
		reporter:       reporter,
		logger:         logger,
		player:         player,
		ground:         ground,
		obstacleBitmap: obstacle,
		params:         params,
		speed:          params.BaseSpeed,
		obstacles:      make([]*Obstacle, 0, 8),
	}
}

// Start arms the player and requests the first frame.
// Calling it again has no effect.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	s.player.Start()
	s.logger.Debug("session started",
		"viewport", s.params.ViewportW, "speed", s.speed,
		"spawn", s.params.SpawnInterval, "speedup", s.params.SpeedupInterval)
	s.schedule()
}

// Stop tears the session down from any goroutine: the pending frame is
// cancelled and no further frame runs. The state is left as is.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	id := s.frameID
	s.frameID = 0
	s.mu.Unlock()

	if id != 0 {
		s.frames.CancelFrame(id)
	}
	s.player.Stop()
}

// Stopped reports whether Stop was called.
func (s *Scheduler) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func (s *Scheduler) schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.frames == nil {
		return
	}
	s.frameID = s.frames.RequestFrame(s.frame)
}

func (s *Scheduler) cancel() {
	s.mu.Lock()
	id := s.frameID
	s.frameID = 0
	s.mu.Unlock()
	if id != 0 {
		s.frames.CancelFrame(id)
	}
}

func (s *Scheduler) frame() {
	s.mu.Lock()
	s.frameID = 0
	s.mu.Unlock()

	s.Tick()
	if s.State() == Running {
		s.schedule()
	}
}

// Tick runs one frame of game logic without requesting the next frame.
// It does nothing once the session has terminated.
func (s *Scheduler) Tick() {
	if s.State() == Terminated {
		return
	}

	s.surface.Clear()
	s.tick++

	if s.tick%s.params.SpawnInterval == 0 {
		s.obstacles = append(s.obstacles, NewObstacle(s.surface, s.obstacleBitmap,
			s.params.ViewportW, s.params.GroundLine, s.params.ObstacleW, s.params.ObstacleH))
	}
	if s.tick%s.params.SpeedupInterval == 0 {
		s.speed += s.params.SpeedIncrement
	}

	// Retained-list pass: obstacles that left the screen last frame are dropped.
	live := s.obstacles[:0]
	for i, o := range s.obstacles {
		if o.X < 0 {
			continue
		}
		o.X -= s.speed
		o.Render()
		live = append(live, o)

		if s.player.Collides(o) {
			live = append(live, s.obstacles[i+1:]...)
			s.terminate()
			break
		}
	}
	clear(s.obstacles[len(live):])
	s.obstacles = live

	s.reporter.ReportScore(s.tick)
	if s.State() == Terminated {
		return
	}

	s.player.Tick()
	s.player.Render()
	s.ground.DrawAndScroll(s.speed)
}

func (s *Scheduler) terminate() {
	s.surface.Clear()
	s.cancel()
	s.state.Store(int32(Terminated))
	s.logger.Debug("session terminated", "score", s.tick, "speed", s.speed)
	s.reporter.ReportTermination(s.tick)
	s.player.Stop()
}

// State returns the lifecycle state. Safe from any goroutine.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Score returns the tick counter.
func (s *Scheduler) Score() int {
	return s.tick
}

// Speed returns the current horizontal speed in pixels per tick.
func (s *Scheduler) Speed() float64 {
	return s.speed
}

// Obstacles returns a snapshot of the live obstacles in insertion order.
func (s *Scheduler) Obstacles() []*Obstacle {
	out := make([]*Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Player returns the player actor.
func (s *Scheduler) Player() *Player {
	return s.player
}

// Background returns the ground strip.
func (s *Scheduler) Background() *Background {
	return s.ground
}

// Snapshot returns the HUD-facing state.
func (s *Scheduler) Snapshot() core.GameState {
	return core.GameState{
		Score:    s.tick,
		Speed:    s.speed,
		GameOver: s.State() == Terminated,
	}
}
