// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// holdDoneMsg ends the game over hold.
type holdDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd keeps the final screen up for d before the program exits.
func holdCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return holdDoneMsg{}
	})
}
