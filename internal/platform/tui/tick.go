// Package tui provides the Bubble Tea front-end for flapper.
// It handles the terminal UI loop, input mapping, rendering of the canvas to
// terminal cells, the score board, and serving sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID identifies the model
// that scheduled it, so a stale tick from a finished round is dropped.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID returns a process-unique tick chain id.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
