package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second requested from the platform
	Seed     int64 // RNG seed for terrain, stars and debris
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Display-only score for the current run
	GameOver bool // Whether the run has reached a terminal outcome
	Success  bool // Whether the terminal outcome was a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
