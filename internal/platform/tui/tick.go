// Package tui provides the Bubble Tea integration for the game. It
// handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval converts a ticks-per-second rate to a frame duration. Rates
// below one tick per second are clamped so the division stays finite.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
