// Package tui provides the Bubble Tea integration for the kiosk.
// It handles the terminal UI loop, input mapping, and drives virtual time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the kiosk clock and step the active screen.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the virtual time to advance between two ticks.
func elapsed(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 30
		}
		return time.Second / time.Duration(tickRate)
	}
	if d := now.Sub(prev); d > 0 {
		return d
	}
	return 0
}
