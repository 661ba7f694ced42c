package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/core"
)

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play", Choice: ChoicePlay},
	{Title: "High Scores", Choice: ChoiceScores},
	{Title: "Quit", Choice: ChoiceQuit},
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	config    core.RuntimeConfig
	player    string
	room      string
	best      int
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, player, room string, best int) MenuModel {
	return MenuModel{
		config:    cfg,
		player:    player,
		room:      room,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].Choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  D I N O   R U N  ", m.config.ScreenW))
	b.WriteString("\n\n")

	sub := fmt.Sprintf("%s in room %s  |  best %d", m.player, m.room, m.best)
	b.WriteString(centerText(sub, m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the confirmed selection, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
