// Package config provides YAML-based game configuration loading for lanes.
// Each game variant has an embedded default that can be overridden by a
// user file, a project file or an explicit --config path.
package config

import (
	"errors"
	"fmt"
)

// Variant IDs. They double as registry IDs and config file names.
const (
	VariantClassic = "lanes"
	VariantRush    = "lanes_rush"
)

// RunnerConfig contains all configuration for one variant of the lane runner.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Lanes     LaneConfig     `yaml:"lanes"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Jump      JumpConfig     `yaml:"jump"`
	Assets    AssetConfig    `yaml:"assets"`
}

// WorldConfig defines the size of the playfield in world units.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CullMargin float64 `yaml:"cull_margin"` // Distance below the bottom edge before obstacles are dropped
}

// LaneConfig defines the horizontal lane layout: x = lane*width + margin.
type LaneConfig struct {
	Width  float64 `yaml:"width"`
	Margin float64 `yaml:"margin"`
}

// PlayerConfig defines the player's fixed row and starting lane.
type PlayerConfig struct {
	Y         float64 `yaml:"y"`
	StartLane int     `yaml:"start_lane"`
	Size      float64 `yaml:"size"`
}

// ObstacleConfig defines obstacle size, fall speed and spawn positions.
type ObstacleConfig struct {
	Size      float64 `yaml:"size"`
	FallSpeed float64 `yaml:"fall_speed"` // Units per second
	SpawnY    float64 `yaml:"spawn_y"`
	FirstLane int     `yaml:"first_lane"`
	FirstY    float64 `yaml:"first_y"`
}

// JumpConfig defines the random lane jump policy.
type JumpConfig struct {
	Manual      bool    `yaml:"manual"`       // Space triggers a random jump
	Auto        bool    `yaml:"auto"`         // A timer triggers random jumps
	MinInterval float64 `yaml:"min_interval"` // Seconds
	MaxInterval float64 `yaml:"max_interval"` // Seconds
}

// AssetConfig holds file paths used by the windowed front end.
// Empty paths mean "use built-in drawing".
type AssetConfig struct {
	Background string `yaml:"background"`
	Font       string `yaml:"font"`
}

// LaneCount is the number of lanes. Lanes are indexed 0..LaneCount-1.
const LaneCount = 3

// ErrUnknownVariant is returned when a variant has no defaults.
var ErrUnknownVariant = errors.New("config: unknown variant")

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.CullMargin < 0 {
		return fmt.Errorf("config: cull_margin must not be negative, got %g", c.World.CullMargin)
	}
	if c.Lanes.Width <= 0 {
		return fmt.Errorf("config: lane width must be positive, got %g", c.Lanes.Width)
	}
	if c.Lanes.Margin < 0 {
		return fmt.Errorf("config: lane margin must not be negative, got %g", c.Lanes.Margin)
	}
	if c.Player.Size <= 0 || c.Obstacles.Size <= 0 {
		return fmt.Errorf("config: entity sizes must be positive")
	}
	if right := c.Lanes.Margin + float64(LaneCount-1)*c.Lanes.Width + c.Player.Size; right > c.World.Width {
		return fmt.Errorf("config: last lane ends at %g, beyond world width %g", right, c.World.Width)
	}
	if c.Player.Y < 0 || c.Player.Y+c.Player.Size > c.World.Height {
		return fmt.Errorf("config: player y %g is outside the world", c.Player.Y)
	}
	if !validLane(c.Player.StartLane) {
		return fmt.Errorf("config: start_lane %d out of range [0, %d]", c.Player.StartLane, LaneCount-1)
	}
	if !validLane(c.Obstacles.FirstLane) {
		return fmt.Errorf("config: first_lane %d out of range [0, %d]", c.Obstacles.FirstLane, LaneCount-1)
	}
	if c.Obstacles.FallSpeed <= 0 {
		return fmt.Errorf("config: fall_speed must be positive, got %g", c.Obstacles.FallSpeed)
	}
	if c.Jump.Auto {
		if c.Jump.MinInterval <= 0 || c.Jump.MaxInterval < c.Jump.MinInterval {
			return fmt.Errorf("config: jump interval [%g, %g] is invalid", c.Jump.MinInterval, c.Jump.MaxInterval)
		}
	}
	return nil
}

func validLane(lane int) bool {
	return lane >= 0 && lane < LaneCount
}
