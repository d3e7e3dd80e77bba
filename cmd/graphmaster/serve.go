package main

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graph-master/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Graph Master SSH server",
	Long: `Start an SSH server that lets users connect and practice.

Each SSH connection gets its own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.graphmaster/host_key

Examples:
  graphmaster serve                           # Listen on :23234 with auto-generated key
  graphmaster serve --ssh :2222               # Listen on port 2222
  graphmaster serve --host-key ./my_host_key  # Use specific host key
  graphmaster serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "normal", "Difficulty the menu starts on")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applySettings(flagServeDifficulty); err != nil {
		return err
	}
	logger := newLogger("graphmaster-ssh")

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Difficulty = flagServeDifficulty

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		logger.Info("connect with ssh", "command", "ssh localhost -p "+port)
	}
	logger.Info("press Ctrl+C to stop")

	return server.ListenAndServe()
}
