package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered variant with its fall speed and jump policy.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Rules")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, g.ID, g.Title, describe(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'lanes play <id>' to play a variant.")
}

// describe summarizes a variant's embedded defaults.
func describe(id string) string {
	cfg, err := config.Default(id)
	if err != nil {
		return ""
	}

	jump := "space jumps to a random lane"
	if cfg.Jump.Auto {
		jump = fmt.Sprintf("random lane every %g-%gs", cfg.Jump.MinInterval, cfg.Jump.MaxInterval)
	}
	return fmt.Sprintf("speed %g, %s", cfg.Obstacles.FallSpeed, jump)
}
