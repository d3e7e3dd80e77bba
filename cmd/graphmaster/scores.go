package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graph-master/internal/registry"
	"github.com/vovakirdan/graph-master/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and per-question stats",
	Long: `Display the top 10 scores and per-question accuracy for a variant.
Without a variant, every variant is summarized.

Examples:
  graphmaster scores
  graphmaster scores points
  graphmaster scores mixed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	variantID := args[0]
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'graphmaster list' to see available variants", variantID)
	}
	game, err := registry.Create(variantID)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	scores, err := store.TopScores(variantID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'graphmaster play %s' to set the first high score!\n", variantID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if highScore, err := store.HighScore(variantID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}

	kinds, err := store.KindStats(variantID)
	if err != nil {
		return fmt.Errorf("retrieving question stats: %w", err)
	}
	if len(kinds) > 0 {
		fmt.Println()
		fmt.Printf("  %-10s  %-8s  %-8s  %-8s  %s\n", "Question", "Tries", "Correct", "Accuracy", "Avg time")
		fmt.Printf("  %-10s  %-8s  %-8s  %-8s  %s\n", "--------", "-----", "-------", "--------", "--------")
		for _, k := range kinds {
			fmt.Printf("  %-10s  %-8d  %-8d  %-8s  %.1fs\n",
				k.Kind, k.Attempts, k.Correct, fmt.Sprintf("%.0f%%", k.Accuracy()), k.AvgElapsed.Seconds())
		}
	}
	return nil
}

// printSummary lists best and average scores for every variant played.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("Scores by variant")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-8s  %-8s  %s\n", "Variant", "Played", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-8s  %-8s  %-8s  %s\n", "-------", "------", "----", "-------", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-10s  %-8d  %-8s  %-8s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-10s  %-8d  %-8d  %-8.0f  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
