package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Up/W/Space  - Thrust
  Left/A      - Rotate left
  Right/D     - Rotate right
  P/Esc       - Pause
  R           - Restart with a new seed
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Land with the craft upright, moving slowly, on flat ground.

Examples:
  lander play
  lander play --seed 42
  lander play --config ./my-lander.yaml --log-file lander.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := lander.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if err := validateFPS(flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard, "lander")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	lander.SetConfigPath(flagConfig)
	lander.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, gameCfg.Input, logger); err != nil {
		logger.Error("tui exited", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
