package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// LanderKeyMap holds the key bindings for flying the lander.
type LanderKeyMap struct {
	Thrust      key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns bindings for the one-line help view.
func (k LanderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.RotateLeft, k.RotateRight, k.Restart, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k LanderKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.RotateLeft, k.RotateRight},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultLanderKeyMap returns the default bindings.
func DefaultLanderKeyMap() LanderKeyMap {
	return LanderKeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w", "thrust"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to the game action it triggers.
// Help has no game action and maps to ActionNone.
func (k LanderKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
