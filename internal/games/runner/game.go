// Package runner implements a three-lane dodging game.
// Obstacles fall towards the player's row; the player shifts between lanes to
// avoid them and scores a point for every obstacle that falls past.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/core"
	"github.com/vovakirdan/lanes/internal/registry"
)

// Phase is the game's state machine position.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// configDir holds per-variant override files, set via CLI
var configDir string

// SetConfigDir sets the directory searched for <variant>.yaml before the
// usual search path. A variant without its own file there is unaffected.
func SetConfigDir(dir string) {
	configDir = dir
}

// Game implements the lane runner for one variant.
type Game struct {
	id      string
	title   string
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	lanes   Lanes
	player  *Player
	field   *ObstacleField
	jumps   *JumpTimer // nil unless timed jumps are enabled
	score   int
	phase   Phase
	paused  bool
	frames  int // Frames simulated since the last (re)start
}

// New creates a game for a variant. Configuration is loaded on Reset.
func New(variant, title string) *Game {
	return &Game{id: variant, title: title}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
// Such a game ignores SetConfigDir.
func NewWithConfig(variant, title string, cfg config.RunnerConfig) *Game {
	return &Game{id: variant, title: title, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes the game from scratch with a freshly seeded RNG.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Front ends run config.CheckDir at start-up and report broken files
	if g.cfg == (config.RunnerConfig{}) {
		cfg, err := config.Load(g.id, config.VariantPath(configDir, g.id))
		if err != nil {
			cfg, _ = config.Default(g.id)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.lanes = Lanes{Width: g.cfg.Lanes.Width, Margin: g.cfg.Lanes.Margin}
	g.field = NewObstacleField(g.rng, g.lanes, g.cfg.Obstacles)
	g.jumps = nil
	if g.cfg.Jump.Auto {
		g.jumps = NewJumpTimer(g.rng, g.cfg.Jump.MinInterval, g.cfg.Jump.MaxInterval)
	}

	g.start()
}

// start puts the game into its initial Playing state without reseeding.
func (g *Game) start() {
	g.player = NewPlayer(g.lanes, g.cfg.Player.StartLane, g.cfg.Player.Y, g.cfg.Player.Size)
	g.field.Seed(g.cfg.Obstacles.FirstLane, g.cfg.Obstacles.FirstY)
	if g.jumps != nil {
		g.jumps.Reset()
	}
	g.score = 0
	g.phase = Playing
	g.paused = false
	g.frames = 0
}

// restart leaves GameOver: a fresh field and the player thrown into a random lane.
func (g *Game) restart() {
	g.start()
	g.player.RandomMove(g.rng)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == GameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	g.handleInput(in)
	g.advance(in.Seconds(g.runtime.TickRate))

	return core.StepResult{State: g.State()}
}

// handleInput applies every lane change requested this frame, in the order
// the keys were pressed.
func (g *Game) handleInput(in core.InputFrame) {
	for _, a := range in.Events {
		switch a {
		case core.ActionLeft:
			g.player.MoveLeft()
		case core.ActionRight:
			g.player.MoveRight()
		case core.ActionRandomJump:
			if g.cfg.Jump.Manual {
				g.player.RandomMove(g.rng)
			}
		}
	}
}

// advance runs the simulation for dt seconds: movement, timed jumps,
// progress detection and finally the collision test.
func (g *Game) advance(dt float64) {
	g.player.Update(dt)
	g.field.Update(dt)

	if g.jumps != nil && g.jumps.Advance(dt) {
		g.player.RandomMove(g.rng)
	}

	if g.field.Passed(g.player.Y) {
		g.score++
	}
	g.field.Sweep(g.cfg.World.Height + g.cfg.World.CullMargin)

	if g.field.CheckCollision(g.player.Bounds()) {
		g.phase = GameOver
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == GameOver,
		Paused:   g.paused,
	}
}

// Scene returns a world-space snapshot for windowed front ends.
func (g *Game) Scene() core.Scene {
	obstacles := make([]core.Box, 0, g.field.Len())
	for _, o := range g.field.Obstacles() {
		obstacles = append(obstacles, o.Bounds())
	}
	return core.Scene{
		WorldW:    g.cfg.World.Width,
		WorldH:    g.cfg.World.Height,
		LaneEdges: g.lanes.Edges(g.cfg.Player.Size),
		Player:    g.player.Bounds(),
		Obstacles: obstacles,
		State:     g.State(),
	}
}

// Frames returns the number of frames simulated since the last (re)start.
func (g *Game) Frames() int {
	return g.frames
}

// Controls reports whether the manual random jump is available.
func (g *Game) Controls() registry.Controls {
	return registry.Controls{RandomJump: g.cfg.Jump.Manual}
}

// Config returns the configuration in use.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

var (
	_ registry.SceneSource   = (*Game)(nil)
	_ registry.ControlSource = (*Game)(nil)
	_ registry.FrameCounter  = (*Game)(nil)
)

// Register both variants with the registry
func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return New(config.VariantClassic, "Lanes Classic")
	})
	registry.Register(config.VariantRush, func() registry.Game {
		return New(config.VariantRush, "Lanes Rush")
	})
}
