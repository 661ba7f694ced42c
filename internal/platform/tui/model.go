package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/assets"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/loop"
	"github.com/vovakirdan/dino-run/internal/room"
	"github.com/vovakirdan/dino-run/internal/storage"
)

// Deps are the services shared by every session of a frontend.
type Deps struct {
	Config  config.Config
	Sprites *assets.Set
	Store   *storage.Store // Optional
	Hub     *room.Hub      // Optional
	Logger  *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// Identity names the player of a session and the room they play in.
type Identity struct {
	Player  string
	Room    string
	Session room.SessionID
	Conn    *Lifetime // Optional; ends with the hosting connection
}

const (
	liveScoreEvery = 15 // Frames between live scores relayed to the room
	minScreenW     = 20
	minScreenH     = 6
)

type runResult struct {
	terminated bool
	score      int
}

type peerScore struct {
	player string
	score  int
	final  bool
}

// GameModel runs Dino Run sessions in a terminal. Each TickMsg steps one
// frame; the jump key dispatches the same trigger a happiness feed would.
type GameModel struct {
	deps      Deps
	id        Identity
	bus       *event.Bus
	frames    *loop.Manual
	screen    *core.Screen
	sched     *dino.Scheduler
	result    *runResult
	run       uint64
	roomEvts  *room.ChannelSession
	peers     map[room.SessionID]peerScore
	keyMapper *KeyMapper
	config    core.RuntimeConfig
	state     core.GameState
	best      int

	// Unregister this model's cleanups from id.Conn.
	unhookRun  func()
	unhookRoom func()

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model and starts its first run. The bus carries the
// jump trigger; pass the one a happiness feed dispatches to, or nil.
func NewGameModel(deps Deps, id Identity, bus *event.Bus, cfg core.RuntimeConfig) GameModel {
	if bus == nil {
		bus = event.NewBus()
	}
	if deps.Sprites == nil {
		deps.Sprites = assets.NewSet()
	}
	m := GameModel{
		deps:      deps,
		id:        id,
		bus:       bus,
		frames:    loop.NewManual(),
		peers:     make(map[room.SessionID]peerScore),
		keyMapper: NewKeyMapper(),
		config:    cfg,
	}
	m.config.ScreenW = core.Max(cfg.ScreenW, minScreenW)
	m.config.ScreenH = core.Max(cfg.ScreenH, minScreenH)
	if m.id.Session == "" {
		m.id.Session = room.NewSessionID()
	}

	if deps.Store != nil {
		if best, err := deps.Store.PlayerBest(id.Player); err == nil {
			m.best = best
		}
	}
	if deps.Hub != nil {
		m.roomEvts = room.NewChannelSession(m.id.Session, 64)
		m.id.Room = deps.Hub.Join(id.Room, id.Player, m.roomEvts)
		m.unhookRoom = m.id.Conn.OnEnd(m.leaveRoom)
		for _, mem := range deps.Hub.Members(m.id.Room) {
			if mem.Session != m.id.Session {
				m.peers[mem.Session] = peerScore{player: mem.Player}
			}
		}
	}

	m.newRun()
	return m
}

// newRun replaces the current session with a fresh one sized to the terminal.
func (m *GameModel) newRun() {
	if m.sched != nil {
		m.sched.Stop()
		m.unhookRun()
	}

	vp := m.deps.Config.Viewport
	w, h, region := dino.CellViewport(m.config.ScreenW, m.config.ScreenH, vp)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	surface := core.NewCellSurface(m.screen, region, vp.CellWidth, vp.CellHeight)

	res := &runResult{}
	m.result = res
	m.run = nextRunID()
	reporter := dino.Reporters(dino.ReporterFuncs{
		Termination: func(score int) {
			res.terminated = true
			res.score = score
		},
	})
	if m.deps.Hub != nil {
		reporter = dino.Reporters(reporter, room.Relay{Hub: m.deps.Hub, Session: m.id.Session, Every: liveScoreEvery})
	}

	m.sched = dino.NewSession(dino.SessionConfig{
		Config:    m.deps.Config,
		ViewportW: w,
		ViewportH: h,
		Surface:   surface,
		Sprites:   m.deps.Sprites,
		Frames:    m.frames,
		Trigger:   m.bus,
		Reporter:  reporter,
		Logger:    m.deps.logger(),
	})
	m.unhookRun = m.id.Conn.OnEnd(m.sched.Stop)
	m.sched.Start()
	m.state = m.sched.Snapshot()
	m.scoreSaved = false
}

// Init starts the tick loop and the room listener.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate, m.run), m.waitForEvent())
}

// waitForEvent returns a command that waits for room events.
func (m GameModel) waitForEvent() tea.Cmd {
	if m.roomEvts == nil {
		return nil
	}
	events := m.roomEvts.Events()
	done := m.roomEvts.Done()
	return func() tea.Msg {
		select {
		case evt := <-events:
			return evt
		case <-done:
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The running session keeps its viewport; a restart picks up the new size.
		m.config.ScreenW = core.Max(msg.Width, minScreenW)
		m.config.ScreenH = core.Max(msg.Height, minScreenH)
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil

	case TickMsg:
		if msg.Run != m.run {
			return m, nil
		}
		return m.handleTick()

	case room.ScoreEvent:
		m.peers[msg.Session] = peerScore{player: msg.Player, score: msg.Score, final: msg.Final}
		return m, m.waitForEvent()

	case room.MemberJoinedEvent:
		m.peers[msg.Member.Session] = peerScore{player: msg.Member.Player}
		return m, m.waitForEvent()

	case room.MemberLeftEvent:
		delete(m.peers, msg.Member.Session)
		return m, m.waitForEvent()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.sched.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		if !m.state.GameOver {
			m.bus.Dispatch(event.Jump)
		}
	case core.ActionRestart:
		if m.state.GameOver {
			m.newRun()
			return m, tickCmd(m.config.TickRate, m.run)
		}
	case core.ActionBack:
		m.sched.Stop()
		m.backToMenu = true
	}
	return m, nil
}

// handleTick runs one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver || m.backToMenu || m.quitting || m.id.Conn.Ended() {
		return m, nil
	}

	m.frames.Step()
	m.state = m.sched.Snapshot()

	if m.result.terminated && !m.scoreSaved {
		m.saveScore(m.result.score)
		m.scoreSaved = true
	}
	if m.state.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.run)
}

func (m *GameModel) saveScore(score int) {
	m.best = core.Max(m.best, score)
	if m.deps.Store == nil {
		return
	}
	if _, err := m.deps.Store.SaveScore(m.id.Player, m.id.Room, score); err != nil {
		m.deps.logger().Warn("score not saved", "player", m.id.Player, "score", score, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.drawHUD()
	m.drawFooter()
	if m.state.GameOver {
		m.drawCenteredMessage("GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  B menu  Q quit", m.state.Score))
	}
	return RenderScreen(m.screen)
}

func (m GameModel) drawHUD() {
	s := m.screen
	s.ClearRect(core.NewRect(0, 0, s.Width(), 1))

	s.DrawTextColor(1, 0, fmt.Sprintf("SCORE %05d", m.state.Score), core.ColorBrightWhite)
	s.DrawTextColor(15, 0, fmt.Sprintf("HI %05d", core.Max(m.best, m.state.Score)), core.ColorGray)

	right := fmt.Sprintf("SPD %.1f ", m.state.Speed)
	if m.deps.Hub != nil {
		right = fmt.Sprintf("ROOM %s (%d)  %s", m.id.Room, len(m.peers)+1, right)
	}
	s.DrawTextColor(s.Width()-len([]rune(right)), 0, right, core.ColorYellow)
}

func (m GameModel) drawFooter() {
	s := m.screen
	y := s.Height() - 1
	s.ClearRect(core.NewRect(0, y, s.Width(), 1))

	if len(m.peers) == 0 {
		s.DrawTextColor(1, y, "SPACE jump  ESC menu  Q quit", core.ColorGray)
		return
	}
	s.DrawTextColor(1, y, m.peerLine(), core.ColorCyan)
}

// peerLine lists the other players of the room, best score first.
func (m GameModel) peerLine() string {
	peers := make([]peerScore, 0, len(m.peers))
	for _, p := range m.peers {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool {
		if peers[i].score != peers[j].score {
			return peers[i].score > peers[j].score
		}
		return peers[i].player < peers[j].player
	})

	parts := make([]string, len(peers))
	for i, p := range peers {
		parts[i] = fmt.Sprintf("%s %d", p.player, p.score)
		if p.final {
			parts[i] += " (out)"
		}
	}
	return strings.Join(parts, "  ")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m GameModel) drawCenteredMessage(title, subtitle string) {
	s := m.screen
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (s.Width() - boxW) / 2
	boxY := (s.Height() - boxH) / 2

	s.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	s.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	s.DrawTextCentered(boxY+1, title)
	s.DrawTextCentered(boxY+3, subtitle)
}

// Close stops the run and leaves the room. Ending id.Conn does the same.
func (m GameModel) Close() {
	m.unhookRun()
	m.sched.Stop()
	if m.unhookRoom != nil {
		m.unhookRoom()
	}
	m.leaveRoom()
}

// leaveRoom leaves the room and releases a pending waitForEvent.
func (m GameModel) leaveRoom() {
	if m.deps.Hub != nil {
		m.deps.Hub.Leave(m.id.Session)
		m.roomEvts.Close()
	}
}

// State returns the HUD state of the current run.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Best returns the best score the player has reached, stored or live.
func (m GameModel) Best() int {
	return core.Max(m.best, m.state.Score)
}
