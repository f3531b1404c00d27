// lanes is a three-lane dodging game for the terminal, SSH and a desktop window.
//
// Usage:
//
//	lanes list               - List game variants
//	lanes play <variant>     - Play a variant
//	lanes menu               - Pick variants interactively
//	lanes serve              - Start SSH server for remote play
//	lanes scores <variant>   - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: $LANES_DB or ~/.lanes/scores.db)
//
// $LANES_CONFIG_DIR may hold <variant>.yaml files that override one variant each.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/core"
	"github.com/vovakirdan/lanes/internal/games/runner" // Also registers both variants
	"github.com/vovakirdan/lanes/internal/registry"
	"github.com/vovakirdan/lanes/internal/storage"
)

const defaultDBPath = "~/.lanes/scores.db"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lanes"})

func main() {
	if err := config.LoadEnv(); err != nil {
		logger.Warn("could not read .env", "error", err)
	}

	// Environment replaces the flag default; an explicit --db still wins
	flagDBPath = config.Env(config.EnvDB, defaultDBPath)
	rootCmd.PersistentFlags().Lookup("db").DefValue = flagDBPath

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanes",
	Short: "Lanes - dodge falling blocks in three lanes",
	Long: `Lanes is a small arcade game: your block sits at the bottom of three lanes
and blocks fall towards it. Switch lanes to dodge them. Every block that falls
past you scores a point.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly (terminal or --gui window)
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  lanes list
  lanes play lanes
  lanes play lanes_rush --gui
  lanes menu
  lanes serve --ssh :2222
  lanes scores lanes`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env "+config.EnvDB+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// useConfigDir points new games at $LANES_CONFIG_DIR and warns about every
// override in it that will not load, since games then fall back to defaults.
func useConfigDir() {
	dir := config.Env(config.EnvConfigDir, "")
	runner.SetConfigDir(dir)

	games := registry.List()
	variants := make([]string, 0, len(games))
	for _, g := range games {
		variants = append(variants, g.ID)
	}
	if err := config.CheckDir(dir, variants); err != nil {
		logger.Warn("using defaults for broken config", "dir", dir, "error", err)
	}
}

// exitAfter closes the store and exits with a failure status.
func exitAfter(store *storage.Store) {
	if store != nil {
		store.Close()
	}
	os.Exit(1)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
