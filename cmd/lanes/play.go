package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/games/runner"
	"github.com/vovakirdan/lanes/internal/platform/gui"
	"github.com/vovakirdan/lanes/internal/platform/tui"
	"github.com/vovakirdan/lanes/internal/registry"
)

var (
	flagConfig     string
	flagGUI        bool
	flagBackground string
	flagFont       string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant in the terminal, or in an
800x600 window with --gui.

Controls:
  A/Left     - Move one lane left
  D/Right    - Move one lane right
  Space      - Jump to a random lane (lanes only)
  P          - Pause
  R          - Restart (after game over)
  Esc/B      - Back
  Ctrl+S     - Screenshot (terminal only)
  Q/Ctrl+C   - Quit

Examples:
  lanes play lanes
  lanes play lanes_rush --seed 7
  lanes play lanes --config ./my-lanes.yaml
  lanes play lanes --gui --background grass.png --font DejaVuSans.ttf`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (env "+config.EnvConfig+")")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().StringVar(&flagBackground, "background", "", "Background image for --gui (env "+config.EnvBackground+")")
	playCmd.Flags().StringVar(&flagFont, "font", "", "TrueType/OpenType font for --gui (env "+config.EnvFont+")")
}

func runPlay(_ *cobra.Command, args []string) {
	variant := args[0]

	if !registry.Exists(variant) {
		fatal("unknown variant %q\nRun 'lanes list' to see available variants.", variant)
	}

	cfgPath := firstNonEmpty(
		flagConfig,
		config.Env(config.EnvConfig, ""),
		config.VariantPath(config.Env(config.EnvConfigDir, ""), variant),
	)

	// Validate before the screen switches modes
	cfg, err := config.Load(variant, cfgPath)
	if err != nil {
		fatal("%v", err)
	}

	proto, err := registry.Create(variant)
	if err != nil {
		fatal("creating game: %v", err)
	}
	game := runner.NewWithConfig(variant, proto.Title(), cfg)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagGUI {
		config.ApplyAssetEnv(&cfg)
		opts := gui.Options{
			Background: firstNonEmpty(flagBackground, cfg.Assets.Background),
			Font:       firstNonEmpty(flagFont, cfg.Assets.Font),
			Store:      store,
			Logger:     logger,
		}
		if err := gui.Run(game, runtimeConfig(), opts); err != nil {
			logger.Error("window closed with error", "error", err)
			exitAfter(store)
		}
		return
	}

	if _, err := tui.Run(game, store, runtimeConfig()); err != nil {
		logger.Error("game ended with error", "error", err)
		exitAfter(store)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
