package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var layoutsCmd = &cobra.Command{
	Use:     "layouts",
	Aliases: []string{"list"},
	Short:   "List all available layouts",
	Long:    `Shows every brick layout that can be played.`,
	Run:     runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// stats are optional, a missing database just leaves the columns empty
	stats := map[string]*storage.LayoutStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.AllStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "ID", "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "----")

	for _, l := range layouts {
		runs, best := "-", "-"
		if st, ok := stats[l.ID]; ok {
			runs, best = fmt.Sprint(st.Runs), fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, l.ID, l.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play <id>' to play a layout.")
}
