// Package lander implements the Moon Lander game: rotate and throttle a
// falling craft onto one of the flat pads of a random moonscape.
package lander

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander/sim"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// GameID is the registry identifier of the lander.
const GameID = "lander"

// Game adapts a sim.State to the registry.Game interface.
type Game struct {
	state   *sim.State
	cfg     config.LanderConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	pads    [][2]sim.Point // cached; terrain is immutable for a run
	paused  bool
	clock   float64 // seconds of wall time since Reset, drives animations
}

// configPath stores the custom config path set via CLI
var configPath string

// defaultLogger receives simulation diagnostics for games built by the registry.
var defaultLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to games created afterwards.
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defaultLogger = logger
}

// New creates a new Moon Lander game instance.
func New() *Game {
	return &Game{logger: defaultLogger}
}

// NewWithConfig creates a game that skips config discovery.
func NewWithConfig(cfg config.LanderConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Moon Lander"
}

// Reset starts a fresh run: new terrain, new craft, no debris.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg == (config.LanderConfig{}) {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.logger.Warn("using default config", "error", err)
		}
		g.cfg = cfg
	}

	if g.state == nil {
		g.state = sim.New(runtime.Seed, g.cfg, g.logger)
	} else {
		g.state.Restart(runtime.Seed)
	}
	g.pads = g.state.Terrain().Pads(g.cfg.Landing.FlatWindow, g.cfg.Landing.FlatTolerance)
	g.paused = false
	g.clock = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock += in.Dt
	g.state.Step(in.Dt, sim.Controls{
		Thrust:      in.Has(core.ActionThrust),
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
	})

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Score is the fuel left after a
// safe landing and zero otherwise.
func (g *Game) State() core.GameState {
	score := 0
	if g.state.Success() {
		score = int(math.Round(g.state.Lander().Fuel))
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state.Terminal(),
		Success:  g.state.Success(),
		Paused:   g.paused,
	}
}

// Sim exposes the underlying simulation for read-only inspection.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
