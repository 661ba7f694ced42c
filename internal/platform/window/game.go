package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/dino-run/internal/assets"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/loop"
	"github.com/vovakirdan/dino-run/internal/storage"
)

var backgroundColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// Options configure a window session.
type Options struct {
	Config   config.Config
	Sprites  *assets.Set
	Store    *storage.Store // Optional
	Bus      *event.Bus     // Jump trigger shared with a happiness feed
	Player   string
	Room     string
	TickRate int
	Logger   *log.Logger
}

// Game is an ebiten.Game hosting Dino Run runs. Every Update steps one
// requested frame, so the scheduler runs at the window's tick rate.
type Game struct {
	opts    Options
	logger  *log.Logger
	face    text.Face
	frames  *loop.Manual
	canvas  *ImageSurface // Nil when drawing elsewhere
	surface core.Surface
	sched   *dino.Scheduler
	state   core.GameState
	best    int

	viewW, viewH float64
	originX      float64
	originY      float64

	terminated bool
	saved      bool
	overUI     *ebitenui.UI
	exit       bool
}

// NewGame creates a window game and starts its first run.
func NewGame(opts Options) (*Game, error) {
	w, h := dino.WindowViewport(opts.Config.Viewport)
	canvas := NewImageSurface(int(w), int(h), backgroundColor)
	g, err := newGame(opts, canvas)
	if err != nil {
		return nil, err
	}
	g.canvas = canvas
	return g, nil
}

// newGame builds a game that draws its runs onto surface.
func newGame(opts Options, surface core.Surface) (*Game, error) {
	if opts.Bus == nil {
		opts.Bus = event.NewBus()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Sprites == nil {
		sprites, err := assets.Load(context.Background(), assets.DefaultSheet())
		if err != nil {
			logger.Warn("default sprites not loaded", "err", err)
		}
		opts.Sprites = sprites
	}

	face, err := loadFace(20)
	if err != nil {
		return nil, err
	}

	vp := opts.Config.Viewport
	w, h := dino.WindowViewport(vp)
	g := &Game{
		opts:    opts,
		logger:  logger,
		face:    face,
		frames:  loop.NewManual(),
		surface: surface,
		viewW:   w,
		viewH:   h,
		originX: float64(vp.ChromeWidth) / 2,
		originY: float64(vp.ChromeHeight) / 2,
	}
	if opts.Store != nil {
		if best, err := opts.Store.PlayerBest(opts.Player); err == nil {
			g.best = best
		}
	}
	g.newRun()
	return g, nil
}

func (g *Game) newRun() {
	if g.sched != nil {
		g.sched.Stop()
	}
	g.terminated = false
	g.saved = false
	g.overUI = nil

	g.sched = dino.NewSession(dino.SessionConfig{
		Config:    g.opts.Config,
		ViewportW: g.viewW,
		ViewportH: g.viewH,
		Surface:   g.surface,
		Sprites:   g.opts.Sprites,
		Frames:    g.frames,
		Trigger:   g.opts.Bus,
		Reporter: dino.ReporterFuncs{
			Termination: func(int) { g.terminated = true },
		},
		Logger: g.logger,
	})
	g.sched.Start()
	g.state = g.sched.Snapshot()
}

// Update advances one frame and handles input.
func (g *Game) Update() error {
	if g.exit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sched.Stop()
		return ebiten.Termination
	}

	if g.terminated {
		g.finish()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.newRun()
			return nil
		}
		g.overUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.opts.Bus.Dispatch(event.Jump)
	}

	g.frames.Step()
	g.state = g.sched.Snapshot()
	return nil
}

// finish records the ended run once and builds the game-over panel.
func (g *Game) finish() {
	if g.saved {
		return
	}
	g.saved = true
	score := g.state.Score
	g.best = core.Max(g.best, score)
	if g.opts.Store != nil {
		if _, err := g.opts.Store.SaveScore(g.opts.Player, g.opts.Room, score); err != nil {
			g.logger.Warn("score not saved", "player", g.opts.Player, "score", score, "err", err)
		}
	}
	g.overUI = newGameOverUI(g.face, score, g.best, g.newRun, func() { g.exit = true })
}

// Draw renders the play area, the HUD and, after a run ends, the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.canvas != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.originX, g.originY)
		screen.DrawImage(g.canvas.Image(), op)
	}

	hud := fmt.Sprintf("SCORE %05d   HI %05d   SPEED %.1f", g.state.Score, core.Max(g.best, g.state.Score), g.state.Speed)
	ebitenutil.DebugPrintAt(screen, hud, int(g.originX), int(g.originY)-20)
	ebitenutil.DebugPrintAt(screen, "SPACE / click: jump   ESC: exit", int(g.originX), int(g.originY+g.viewH)+8)

	if g.overUI != nil {
		g.overUI.Draw(screen)
	}
}

// Layout keeps the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	vp := g.opts.Config.Viewport
	return vp.WindowWidth, vp.WindowHeight
}

// Best returns the best score seen by this window.
func (g *Game) Best() int {
	return g.best
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	vp := opts.Config.Viewport
	ebiten.SetWindowSize(vp.WindowWidth, vp.WindowHeight)
	ebiten.SetWindowTitle("Dino Run")
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
