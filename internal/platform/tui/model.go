package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// Model is the Bubble Tea model that drives one game run.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      LanderKeyMap
	help      help.Model
	holds     *HoldTracker
	pending   core.InputFrame // one-shot actions since the last tick
	lastTick  time.Time
	gameState core.GameState
	logger    *log.Logger
	now       func() time.Time
	quitting  bool
}

// NewModel creates a model for game. A zero seed is replaced by a
// time-based one.
func NewModel(game registry.Game, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultLanderKeyMap(),
		help:    h,
		holds:   NewHoldTracker(input),
		pending: core.NewInputFrame(),
		logger:  logger,
		now:     time.Now,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action behind a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionThrust, core.ActionRotateLeft, core.ActionRotateRight:
		m.holds.Press(a, m.now())
	case core.ActionPause, core.ActionRestart:
		m.pending.Set(a)
	}

	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if m.pending.Has(core.ActionRestart) {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	frame.Dt = dt
	m.holds.Apply(&frame, m.now())

	prev := m.gameState
	m.gameState = m.game.Step(frame).State
	if m.gameState.GameOver && !prev.GameOver {
		m.logger.Info("run ended", "success", m.gameState.Success, "score", m.gameState.Score)
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.holds.Reset()
	m.pending.Clear()
	m.logger.Info("run restarted", "seed", m.config.Seed)
}

// View renders the game above the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	rows := m.config.ScreenH - lipgloss.Height(helpView)
	if rows < 1 {
		rows = 1
	}
	m.screen.Resize(m.config.ScreenW, rows)

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), helpView)
}

// Run starts a local Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, input, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
