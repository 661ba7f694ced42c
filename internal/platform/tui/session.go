package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/room"
)

type screenMode int

const (
	modeMenu screenMode = iota
	modeGame
	modeScores
)

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for local and SSH sessions.
type SessionModel struct {
	deps     Deps
	id       Identity
	bus      *event.Bus
	config   core.RuntimeConfig
	mode     screenMode
	best     int
	menu     MenuModel
	game     *GameModel
	board    *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model. The bus is shared by every
// run of the session so an external feed keeps reaching the current player.
func NewSessionModel(deps Deps, id Identity, bus *event.Bus, cfg core.RuntimeConfig) SessionModel {
	if bus == nil {
		bus = event.NewBus()
	}
	if id.Room == "" {
		id.Room = room.DefaultRoom
	}

	best := 0
	if deps.Store != nil {
		if b, err := deps.Store.PlayerBest(id.Player); err == nil {
			best = b
		}
	}

	return SessionModel{
		deps:   deps,
		id:     id,
		bus:    bus,
		config: cfg,
		best:   best,
		menu:   NewMenuModel(cfg, id.Player, id.Room, best),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		game := NewGameModel(m.deps, m.id, m.bus, m.config)
		m.id.Room = game.id.Room
		m.game = &game
		m.mode = modeGame
		return m, m.game.Init()

	case ChoiceScores:
		board := NewScoreboardModel(m.deps.Store, m.id.Room, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		m.mode = modeScores
		return m, m.board.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}
	m.best = core.Max(m.best, m.game.Best())

	if m.game.IsQuitting() {
		m.game.Close()
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game.Close()
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.board = nil
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.mode = modeMenu
	m.menu = NewMenuModel(m.config, m.id.Player, m.id.Room, m.best)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.board.View()
	}
	return m.menu.View()
}

// Close releases the running game, if any.
func (m SessionModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// Run runs a local session until the player quits or ctx is cancelled.
func Run(ctx context.Context, deps Deps, id Identity, bus *event.Bus, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, id, bus, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Close()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
