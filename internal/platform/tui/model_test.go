package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/assets"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/room"
	"github.com/vovakirdan/dino-run/internal/storage"
)

// Obstacle reaches the resting player on this frame of an 80x24 terminal.
const collisionFrame = 337

func testDeps(t *testing.T) Deps {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sprites, err := assets.Load(context.Background(), assets.DefaultSheet())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return Deps{
		Config:  config.DefaultConfig(),
		Sprites: sprites,
		Store:   store,
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func (m GameModel) tick() TickMsg {
	return TickMsg{Run: m.run}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm, cmd
}

// playOut ticks until the run ends or max frames pass.
func playOut(t *testing.T, m GameModel, max int) GameModel {
	t.Helper()
	for i := 0; i < max && !m.State().GameOver; i++ {
		m, _ = update(t, m, m.tick())
	}
	return m
}

func TestGameModelRunEndsAndSavesOnce(t *testing.T) {
	deps := testDeps(t)
	m := NewGameModel(deps, Identity{Player: "ann", Room: "lobby"}, nil, testRuntime())

	m = playOut(t, m, 1000)
	if !m.State().GameOver {
		t.Fatal("run did not end")
	}
	if m.State().Score != collisionFrame {
		t.Errorf("Score = %d, expected %d", m.State().Score, collisionFrame)
	}

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		m, cmd = update(t, m, m.tick())
		if cmd != nil {
			t.Error("ticks continued after game over")
		}
	}

	scores, err := deps.Store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Player != "ann" || scores[0].Score != collisionFrame {
		t.Errorf("saved %+v", scores[0])
	}
	if m.Best() != collisionFrame {
		t.Errorf("Best() = %d, expected %d", m.Best(), collisionFrame)
	}
}

func TestGameModelRestart(t *testing.T) {
	m := NewGameModel(testDeps(t), Identity{Player: "ann"}, nil, testRuntime())

	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil {
		t.Error("restart accepted while running")
	}

	m = playOut(t, m, 1000)
	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Error("restart did not resume ticking")
	}
	if m.State().GameOver || m.State().Score != 0 {
		t.Errorf("State() after restart = %+v", m.State())
	}

	m, _ = update(t, m, m.tick())
	if m.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", m.State().Score)
	}
}

func TestGameModelJumpKeyDispatches(t *testing.T) {
	bus := event.NewBus()
	jumps := 0
	bus.Subscribe(event.Jump, func() { jumps++ })

	m := NewGameModel(testDeps(t), Identity{Player: "ann"}, bus, testRuntime())
	m, _ = update(t, m, runeKey('w'))
	if jumps != 1 {
		t.Errorf("jumps = %d, expected 1", jumps)
	}

	m = playOut(t, m, 1000)
	update(t, m, runeKey('w'))
	if jumps != 1 {
		t.Error("jump dispatched after game over")
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := NewGameModel(testDeps(t), Identity{Player: "ann"}, nil, testRuntime())

	back, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() {
		t.Error("BackToMenu() = false, expected true")
	}
	if _, cmd := update(t, back, back.tick()); cmd != nil {
		t.Error("ticks continued after leaving")
	}

	quit, _ := update(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("IsQuitting() = false, expected true")
	}
	if quit.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(testDeps(t), Identity{Player: "ann"}, nil, testRuntime())
	m, _ = update(t, m, m.tick())

	m.View()
	if row := m.screen.Row(0); !strings.Contains(row, "SCORE 00001") {
		t.Errorf("HUD row = %q", row)
	}

	m = playOut(t, m, 1000)
	m.View()
	if !strings.Contains(m.screen.String(), "GAME OVER") {
		t.Error("game over box missing")
	}
}

func TestGameModelRoomPeers(t *testing.T) {
	deps := testDeps(t)
	deps.Hub = room.NewHub(nil)

	bob := room.NewChannelSession(room.NewSessionID(), 8)
	deps.Hub.Join("dunes", "bob", bob)

	m := NewGameModel(deps, Identity{Player: "ann", Room: "dunes", Session: room.NewSessionID()}, nil, testRuntime())
	defer m.Close()
	if len(m.peers) != 1 {
		t.Fatalf("peers = %d, expected 1", len(m.peers))
	}

	if err := deps.Hub.Publish(bob.ID(), 90, true); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	msg := m.waitForEvent()()
	m, cmd := update(t, m, msg)
	if cmd == nil {
		t.Error("room listener not re-armed")
	}
	if got := m.peerLine(); got != "bob 90 (out)" {
		t.Errorf("peerLine() = %q", got)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := NewGameModel(testDeps(t), Identity{Player: "ann"}, nil, testRuntime())
	stale := m.tick()

	m = playOut(t, m, 1000)
	m, _ = update(t, m, runeKey('r'))

	m, cmd := update(t, m, stale)
	if cmd != nil || m.State().Score != 0 {
		t.Errorf("stale tick ran a frame: cmd = %v, score = %d", cmd != nil, m.State().Score)
	}
}

func TestSessionModelFlow(t *testing.T) {
	sm := NewSessionModel(testDeps(t), Identity{Player: "ann"}, nil, testRuntime())
	if sm.id.Room != room.DefaultRoom {
		t.Errorf("room = %q, expected %q", sm.id.Room, room.DefaultRoom)
	}

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := sm.Update(msg)
		sm = next.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if sm.mode != modeGame {
		t.Fatalf("mode = %v after Play, expected game", sm.mode)
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.mode != modeMenu || sm.game != nil {
		t.Fatal("Esc did not return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if sm.mode != modeScores {
		t.Fatalf("mode = %v, expected scores", sm.mode)
	}
	step(tea.KeyMsg{Type: tea.KeyTab})
	if !sm.board.roomOnly {
		t.Error("tab did not switch to the room view")
	}

	step(runeKey('b'))
	if sm.mode != modeMenu {
		t.Fatal("b did not leave the scoreboard")
	}

	if cmd := step(runeKey('q')); cmd == nil {
		t.Error("quit returned no command")
	}
	if sm.View() != "" {
		t.Error("View() not empty after quit")
	}
}
