// graphmaster is a terminal trainer for coordinate geometry: plotting
// points, gradients, line equations and graphing lines.
//
// Usage:
//
//	graphmaster list               - List practice variants
//	graphmaster play <variant>     - Start a session
//	graphmaster menu               - Pick variants interactively
//	graphmaster serve              - Start SSH server for remote practice
//	graphmaster scores [variant]   - Show high scores and per-question stats
//	graphmaster export             - Render a sample question to PNG
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.graphmaster/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/graph-master/internal/core"

	// Import the trainer to register its variants
	_ "github.com/vovakirdan/graph-master/internal/games/graphmaster"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newLogger("graphmaster").Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "graphmaster",
	Short: "Graph Master - Coordinate geometry practice in your terminal",
	Long: `Graph Master is a terminal trainer for coordinate geometry.
Plot points, read gradients, write line equations and graph lines
on a grid drawn right in your terminal.

Available commands:
  list     - Show all practice variants
  play     - Start a session of one variant
  menu     - Interactive variant picker
  serve    - Start SSH server for remote practice
  scores   - View high scores and per-question stats
  export   - Render a sample question to a PNG file

Examples:
  graphmaster list
  graphmaster play points
  graphmaster menu
  graphmaster serve --ssh :2222
  graphmaster scores equations
  graphmaster export --kind graph --out graph.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.graphmaster/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
}

// newLogger returns a stderr logger for output outside the alternate screen.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// runtimeConfig sizes a session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
