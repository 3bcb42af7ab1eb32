package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// recordingGame keeps every frame it is stepped with, without copying.
type recordingGame struct {
	frames []core.InputFrame
	resets []core.RuntimeConfig
	state  core.GameState
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "recording")
}

func (g *recordingGame) State() core.GameState { return g.state }

func newTestModel(g *recordingGame, now *time.Time) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 7}
	m := NewModel(g, cfg, config.DefaultLanderConfig().Input, nil)
	m.now = func() time.Time { return *now }
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickDt(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)

	t0 := time.Unix(100, 0)
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(40*time.Millisecond)))
	m = update(t, m, TickMsg(t0.Add(1*time.Second)))

	if len(g.frames) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(g.frames))
	}
	want := []float64{0, 0.04, 0.96}
	for i, w := range want {
		if d := g.frames[i].Dt - w; d > 1e-9 || d < -1e-9 {
			t.Errorf("frame %d dt = %f, expected %f", i, g.frames[i].Dt, w)
		}
	}
}

func TestModelHeldThrust(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)

	m = update(t, m, runeKey("w"))

	now = now.Add(100 * time.Millisecond)
	m = update(t, m, TickMsg(now))
	if !g.frames[0].Has(core.ActionThrust) {
		t.Error("thrust should be held right after the press")
	}

	now = now.Add(time.Second)
	m = update(t, m, TickMsg(now))
	if g.frames[1].Has(core.ActionThrust) {
		t.Error("thrust should release without repeats")
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(30*time.Millisecond)))

	if !g.frames[0].Has(core.ActionPause) {
		t.Error("first frame should carry pause")
	}
	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause should not repeat on the next frame")
	}
}

func TestModelRestart(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)
	m = update(t, m, runeKey("w"))

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg(now))

	if len(g.resets) != 2 {
		t.Fatalf("expected a second reset, got %d resets", len(g.resets))
	}
	if len(g.frames) != 0 {
		t.Error("restart tick should not step the game")
	}

	m = update(t, m, TickMsg(now.Add(30*time.Millisecond)))
	if g.frames[0].Has(core.ActionThrust) {
		t.Error("restart should release held keys")
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewLayout(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})
	view := m.View()

	if !strings.Contains(view, "recording") {
		t.Error("view should include the game render")
	}
	if !strings.Contains(view, "thrust") {
		t.Error("view should include the help line")
	}
	if m.screen.Width() != 60 || m.screen.Height() != 11 {
		t.Errorf("game screen = %dx%d, expected 60x11", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, runeKey("?"))
	m.View()
	if m.screen.Height() >= 11 {
		t.Errorf("full help should take more rows, game screen height %d", m.screen.Height())
	}
}

func TestModelFramesAreNotReused(t *testing.T) {
	g := &recordingGame{}
	now := time.Unix(100, 0)
	m := newTestModel(g, &now)

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(30*time.Millisecond)))

	if !g.frames[0].Has(core.ActionPause) {
		t.Error("a frame handed to the game should not change after later ticks")
	}
}

func TestModelZeroTickRate(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, config.DefaultLanderConfig().Input, nil)

	if m.config.TickRate <= 0 {
		t.Errorf("tick rate = %d, expected the default", m.config.TickRate)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}
