// Package tui provides the Bubble Tea frontend for the lander.
// It owns the frame loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a tick rate to a frame interval. Non-positive rates
// fall back to the default rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
