package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration for a variant.
// Search order: customPath -> ~/.lanes/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Files found
// on the search path are skipped when broken so a stale user file never blocks play.
func Load(variant, customPath string) (RunnerConfig, error) {
	base, err := Default(variant)
	if err != nil {
		return RunnerConfig{}, err
	}

	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath, base)
		if err != nil {
			return RunnerConfig{}, err
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath, base); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", filename), base); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	if cfg, err := parse(DefaultYAML(variant), base); err == nil {
		return cfg, nil
	}
	return base, nil // Fallback to hardcoded if embed fails
}

// loadFile reads and parses a YAML file on top of base.
// Keys missing from the file keep the value from base.
func loadFile(path string, base RunnerConfig) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data, base)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte, base RunnerConfig) (RunnerConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanes", "configs", filename)
}

// VariantPath returns dir/<variant>.yaml when that file exists, or "" so Load
// falls back to its search path. Each variant only ever sees its own file.
func VariantPath(dir, variant string) string {
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, variant+".yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// CheckDir loads every variant's override from dir and returns the
// combined errors of those that would not load.
func CheckDir(dir string, variants []string) error {
	var errs []error
	for _, v := range variants {
		if _, err := Load(v, VariantPath(dir, v)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", v, err))
		}
	}
	return errors.Join(errs...)
}
