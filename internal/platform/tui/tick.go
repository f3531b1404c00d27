// Package tui provides the Bubble Tea front end for lanes.
// It handles the terminal frame loop, key mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick chain; a model only acts on its own chain.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopSeq atomic.Int64

// nextLoopID returns a fresh tick chain identifier.
func nextLoopID() int64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
