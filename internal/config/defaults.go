package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/lanes.yaml
var defaultClassicYAML []byte

//go:embed defaults/lanes_rush.yaml
var defaultRushYAML []byte

// Default returns the hardcoded configuration for a variant.
// It is the last fallback when no YAML can be read.
func Default(variant string) (RunnerConfig, error) {
	cfg := RunnerConfig{
		World: WorldConfig{
			Width:      800,
			Height:     600,
			CullMargin: 50,
		},
		Lanes: LaneConfig{
			Width:  200,
			Margin: 170,
		},
		Player: PlayerConfig{
			Y:         500,
			StartLane: 1,
			Size:      50,
		},
		Obstacles: ObstacleConfig{
			Size:      50,
			FallSpeed: 175,
			SpawnY:    -50,
			FirstLane: 0,
			FirstY:    300,
		},
		Jump: JumpConfig{
			Manual: true,
		},
	}

	switch variant {
	case VariantClassic:
		return cfg, nil
	case VariantRush:
		cfg.Obstacles.FallSpeed = 250
		cfg.Jump = JumpConfig{
			Manual:      false,
			Auto:        true,
			MinInterval: 1.5,
			MaxInterval: 4.0,
		}
		return cfg, nil
	default:
		return RunnerConfig{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}
}

// DefaultYAML returns the embedded default YAML for a variant.
func DefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML
	case VariantRush:
		return defaultRushYAML
	default:
		return nil
	}
}
