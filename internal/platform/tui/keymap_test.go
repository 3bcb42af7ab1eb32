package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLanderKeyMapAction(t *testing.T) {
	km := DefaultLanderKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust},
		{"w", runeKey("w"), core.ActionThrust},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionThrust},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft},
		{"a", runeKey("a"), core.ActionRotateLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight},
		{"d", runeKey("d"), core.ActionRotateRight},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey("?"), core.ActionNone},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestLanderKeyMapHelp(t *testing.T) {
	km := DefaultLanderKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("full help lists %d bindings, expected 7", total)
	}
}
