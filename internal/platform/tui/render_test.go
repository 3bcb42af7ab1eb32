package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.SetColored(0, 1, '#', core.ColorSilver)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "#     " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBlue; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
