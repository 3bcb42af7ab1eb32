// lander is a terminal moon-lander: rotate and throttle a falling craft
// onto a flat pad before the fuel runs out.
//
// Usage:
//
//	lander                   - Play (same as "lander play")
//	lander play              - Play in this terminal
//	lander serve             - Start SSH server for remote play
//	lander terrain           - Print the terrain generated for a seed
//	lander list              - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible terrain
//	--config <path>      - Load a custom lander.yaml
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-lander/internal/games/lander"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// maxFPS caps --fps; faster ticks only burn CPU in a terminal.
const maxFPS = 240

// validateFPS checks the --fps flag.
func validateFPS(fps int) error {
	if fps <= 0 || fps > maxFPS {
		return fmt.Errorf("--fps must be between 1 and %d, got %d", maxFPS, fps)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Moon Lander - land a craft on the moon in your terminal",
	Long: `Moon Lander drops a craft above a random moonscape. Rotate it,
burn fuel to slow the descent, and touch down gently on a flat pad.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  terrain  - Print the terrain generated for a seed
  list     - Show all available games

Examples:
  lander
  lander play --seed 42
  lander serve --ssh :2222
  lander terrain --seed 42 --yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lander config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(terrainCmd)
}
