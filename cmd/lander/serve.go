package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lander SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent run sized to its terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lander/host_key

Examples:
  lander serve                           # Listen on :23234 with auto-generated key
  lander serve --ssh :2222               # Listen on port 2222
  lander serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := validateFPS(flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr, "lander-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	lander.SetConfigPath(flagConfig)
	lander.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.Input = gameCfg.Input
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	fmt.Printf("Starting lander SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
