package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graph-master/internal/config"
	"github.com/vovakirdan/graph-master/internal/games/graphmaster"
	"github.com/vovakirdan/graph-master/internal/platform/tui"
	"github.com/vovakirdan/graph-master/internal/registry"
	"github.com/vovakirdan/graph-master/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Start a practice session",
	Long: `Start a session of the given variant.

Controls:
  Arrows        - Move the cursor / adjust the slider
  Space, click  - Place a point
  Digits, -, /  - Type into the answer box (Tab for the next box)
  Enter         - Check the answer
  H             - Hint
  G             - Toggle the grid
  [ / ]         - Zoom out / in
  N             - Next question after a reveal
  Esc           - Pause
  R             - Restart (after the session)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Small grid and slopes, generous timer
  normal - Starts a third of the way up, grows with your score
  hard   - Starts near the full grid, short timer
  fixed  - No progression, stays at the config's values

Examples:
  graphmaster play points
  graphmaster play equations --difficulty easy
  graphmaster play mixed --difficulty hard
  graphmaster play slider --config ./my-graphmaster.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applySettings validates the config path and difficulty preset and hands
// them to the trainer before any session is created.
func applySettings(difficulty string) error {
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	if difficulty != "" {
		if _, err := config.ParsePreset(difficulty); err != nil {
			return err
		}
	}
	graphmaster.SetConfigPath(flagConfig)
	graphmaster.SetDifficultyPreset(difficulty)
	return nil
}

// openStore opens the scores database. Practice works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		newLogger("graphmaster").Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := args[0]

	// Check if variant exists
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'graphmaster list' to see available variants", variantID)
	}
	if err := applySettings(flagDifficulty); err != nil {
		return err
	}

	game, err := tui.NewGame(variantID, flagDifficulty)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
