// Package tui provides the Bubble Tea frontend for Dino Run.
// It pumps the game's frame requester from tick messages, maps keys to the
// jump trigger and renders the cell surface.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to run one game frame of run Run.
type TickMsg struct {
	Time time.Time
	Run  uint64
}

var runSeq atomic.Uint64

// nextRunID numbers runs so ticks left over from a finished run are ignored.
func nextRunID() uint64 {
	return runSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one frame interval.
func tickCmd(tickRate int, run uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Run: run}
	})
}
