package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <layout>",
	Short: "Show best runs for a layout",
	Long: `Display the best runs and overall statistics for the given layout.

Examples:
  arkanoid scores classic
  arkanoid scores pyramid --limit 20
  arkanoid scores wall --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run for the layout")
}

func runScores(_ *cobra.Command, args []string) {
	layoutID := args[0]

	layout, err := registry.Get(layoutID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arkanoid layouts' to see available layouts.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(layoutID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", layout.Title())
		return
	}

	runs, err := store.TopRuns(layoutID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", layout.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arkanoid play %s' to set the first high score!\n", layoutID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Result", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "------", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-8d  %s\n", i+1, r.Score, r.Outcome, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(layoutID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Cleared: %d  Best: %d  Average: %.1f\n",
		stats.Runs, stats.Cleared, stats.HighScore, stats.AvgScore)
}
