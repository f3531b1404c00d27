package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanes/internal/platform/tui"
	"github.com/vovakirdan/lanes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start lanes in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play. Esc/B in a game returns
to the menu. Tab opens the high score table.

Examples:
  lanes menu
  lanes menu --fps 30
  lanes menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	useConfigDir()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				logger.Error("cannot create game", "error", err)
				continue
			}

			// Each game from the menu gets its own seed unless one was given
			runCfg := cfg
			if flagSeed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}

			back, err := tui.Run(game, store, runCfg)
			if err != nil {
				logger.Error("game ended with error", "error", err)
				return
			}
			if !back {
				return
			}
		}
	}
}
