// Package tui provides the Bubble Tea integration for the maze platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the wall time between two ticks.
// The first tick and clock jumps backwards fall back to the nominal interval.
func frameDelta(last, now time.Time, nominal time.Duration) time.Duration {
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last)
	if dt <= 0 {
		return nominal
	}
	return dt
}
