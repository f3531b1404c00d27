package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override CLI defaults.
const (
	EnvDB         = "LANES_DB"
	EnvConfig     = "LANES_CONFIG"     // Config file for the variant given to play
	EnvConfigDir  = "LANES_CONFIG_DIR" // Directory of <variant>.yaml overrides
	EnvBackground = "LANES_BACKGROUND"
	EnvFont       = "LANES_FONT"
)

// LoadEnv reads KEY=VALUE pairs from the given .env files into the process
// environment. Variables that are already set win. Missing files are not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Env returns the value of key, or fallback when it is unset or empty.
func Env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// ApplyAssetEnv fills empty asset paths from the environment.
func ApplyAssetEnv(cfg *RunnerConfig) {
	if cfg.Assets.Background == "" {
		cfg.Assets.Background = Env(EnvBackground, "")
	}
	if cfg.Assets.Font == "" {
		cfg.Assets.Font = Env(EnvFont, "")
	}
}
