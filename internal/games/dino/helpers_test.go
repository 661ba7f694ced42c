package dino

import (
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/loop"
)

// recordingSurface keeps the draw calls issued since the last Clear.
type recordingSurface struct {
	clears int
	draws  []core.Box
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.draws = r.draws[:0]
}

func (r *recordingSurface) DrawBitmap(_ core.Bitmap, x, y, w, h float64) {
	r.draws = append(r.draws, core.NewBox(x, y, w, h))
}

type recordingReporter struct {
	scores       []int
	terminations []int
}

func (r *recordingReporter) ReportScore(score int) { r.scores = append(r.scores, score) }
func (r *recordingReporter) ReportTermination(score int) {
	r.terminations = append(r.terminations, score)
}

const (
	testViewportW  = 640
	testGroundLine = 336
	safeY          = -1000 // Far above every obstacle
)

func readyGlyph() *core.Glyph {
	g := core.NewGlyph("test")
	g.Fill([]string{"#"}, core.ColorDefault)
	return g
}

func testParams() Params {
	return Params{
		ViewportW:       testViewportW,
		GroundLine:      testGroundLine,
		ObstacleW:       20,
		ObstacleH:       40,
		SpawnInterval:   144,
		SpeedupInterval: 500,
		BaseSpeed:       3,
		SpeedIncrement:  1,
	}
}

type fixture struct {
	s        *Scheduler
	surface  *recordingSurface
	reporter *recordingReporter
	frames   *loop.Manual
	bus      *event.Bus
}

// newFixture builds a scheduler whose player rests at playerY.
func newFixture(playerY float64, params Params) *fixture {
	f := &fixture{
		surface:  &recordingSurface{},
		reporter: &recordingReporter{},
		frames:   loop.NewManual(),
		bus:      event.NewBus(),
	}
	bmp := readyGlyph()
	player := NewPlayer(f.surface, bmp, PlayerConfig{
		X: 10, Y: playerY, W: 50, H: 50, JumpImpulse: -10, Gravity: 0.4,
	}, f.bus)
	ground := NewBackground(f.surface, bmp, params.ViewportW, params.GroundLine, 16)
	f.s = NewScheduler(f.surface, f.frames, player, ground, bmp, params, f.reporter, nil)
	return f
}

func newGroundFixture() *fixture {
	return newFixture(testGroundLine-50, testParams())
}

func newSafeFixture(params Params) *fixture {
	return newFixture(safeY, params)
}

// run steps frames until nothing is pending or max frames ran.
func (f *fixture) run(max int) int {
	n := 0
	for n < max && f.frames.Step() {
		n++
	}
	return n
}

func readyGlyphNotFilled() *core.Glyph {
	return core.NewGlyph("pending")
}
