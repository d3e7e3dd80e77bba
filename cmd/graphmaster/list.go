package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graph-master/internal/games/graphmaster"
	"github.com/vovakirdan/graph-master/internal/quiz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all practice variants",
	Long:  `Shows every practice variant and the question kinds it asks.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := graphmaster.Variants()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Questions")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "---------")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, v.ID, maxTitleLen, v.Title, kindNames(v.Kinds))
	}

	fmt.Println()
	fmt.Println("Run 'graphmaster play <id>' to start a session.")
}

func kindNames(kinds []quiz.Kind) string {
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += ", "
		}
		s += k.String()
	}
	return s
}
