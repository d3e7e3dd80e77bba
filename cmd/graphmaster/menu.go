package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graph-master/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from the interactive menu",
	Long: `Start Graph Master in interactive menu mode.

Use arrow keys or j/k to pick a variant and left/right to pick the
difficulty, then Enter to start. After a session you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Start session
  Tab             - Scoreboard
  Q               - Quit

Examples:
  graphmaster menu
  graphmaster menu --difficulty easy
  graphmaster menu --db ./scores.db`,
	RunE: runMenu,
}

var flagMenuDifficulty string

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "normal", "Difficulty the menu starts on")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applySettings(flagMenuDifficulty); err != nil {
		return err
	}
	logger := newLogger("graphmaster")

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagMenuDifficulty

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}

		// Keep size and difficulty changes for the next round
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := tui.NewGame(menuResult.GameID, difficulty)
		if err != nil {
			logger.Error("could not create session", "variant", menuResult.GameID, "error", err)
			continue
		}

		// Fresh questions for each session unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("session failed", "variant", menuResult.GameID, "error", err)
		}
	}
}
