// Package registry maps game IDs to factories. Games register themselves
// from init() so the frontends can build them by name without importing
// any particular game.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Game is what a frontend drives. Implementations hold pure simulation
// state and never touch the terminal; the platform owns input, timing and
// presentation.
type Game interface {
	// ID is the stable name used on the command line.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a new run. The seed in cfg fully determines the run's
	// randomness.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one frame. The frame carries the active actions and
	// the elapsed wall time in seconds; games clamp it as they see fit.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst may be any size.
	Render(dst *core.Screen)

	// State reports score and run status.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
