package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanes/internal/registry"
	"github.com/vovakirdan/lanes/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the best runs for the specified variant.

Examples:
  lanes scores lanes
  lanes scores lanes_rush --limit 20
  lanes scores lanes --player alice
  lanes scores lanes --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	variant := args[0]

	if !registry.Exists(variant) {
		fatal("unknown variant %q\nRun 'lanes list' to see available variants.", variant)
	}

	game, err := registry.Create(variant)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(variant); err != nil {
			exitWith(store, err)
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return
	}

	runs, err := loadRuns(store, variant)
	if err != nil {
		exitWith(store, err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lanes play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %-20s  %s\n", "Rank", "Score", "Player", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-20s  %s\n", "----", "-----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-12s  %-20d  %s\n", i+1, r.Score, r.Player, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.VariantStats(variant); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
}

// loadRuns returns the best runs, or one player's best runs with --player.
func loadRuns(store *storage.Store, variant string) ([]storage.Run, error) {
	if flagPlayer == "" {
		return store.TopRuns(variant, flagLimit)
	}

	// Player history is newest first; rank it by score for this table
	history, err := store.PlayerRuns(flagPlayer, 1000)
	if err != nil {
		return nil, err
	}
	runs := make([]storage.Run, 0, len(history))
	for _, r := range history {
		if r.Variant == variant {
			runs = append(runs, r)
		}
	}
	slices.SortStableFunc(runs, func(a, b storage.Run) int {
		return b.Score - a.Score
	})
	if flagLimit > 0 && len(runs) > flagLimit {
		runs = runs[:flagLimit]
	}
	return runs, nil
}

func exitWith(store *storage.Store, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitAfter(store)
}
