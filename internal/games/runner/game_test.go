package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/core"
	"github.com/vovakirdan/lanes/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame(t *testing.T, variant string, edit func(*config.RunnerConfig)) *Game {
	t.Helper()
	cfg, err := config.Default(variant)
	if err != nil {
		t.Fatalf("Default(%q): %v", variant, err)
	}
	if edit != nil {
		edit(&cfg)
	}
	g := NewWithConfig(variant, "Test", cfg)
	g.Reset(testRuntime())
	return g
}

func frame(elapsed time.Duration, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = elapsed
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// sameLane puts the first obstacle in the player's lane.
func sameLane(cfg *config.RunnerConfig) {
	cfg.Obstacles.FirstLane = 1
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{config.VariantClassic, config.VariantRush} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	g, err := registry.Create(config.VariantRush)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Lanes Rush" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestConfigDirIsPerVariant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	classic := "obstacles:\n  fall_speed: 300\njump:\n  manual: true\n  auto: false\n"
	if err := os.WriteFile(filepath.Join(dir, config.VariantClassic+".yaml"), []byte(classic), 0o600); err != nil {
		t.Fatal(err)
	}
	// An invalid rush file must not leak another variant's settings
	if err := os.WriteFile(filepath.Join(dir, config.VariantRush+".yaml"), []byte("obstacles:\n  fall_speed: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })

	tests := []struct {
		variant string
		fall    float64
		auto    bool
		manual  bool
	}{
		{config.VariantClassic, 300, false, true},
		{config.VariantRush, 250, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			g, err := registry.Create(tc.variant)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			g.Reset(testRuntime())

			cfg := g.(*Game).Config()
			if cfg.Obstacles.FallSpeed != tc.fall || cfg.Jump.Auto != tc.auto || cfg.Jump.Manual != tc.manual {
				t.Errorf("fall=%g auto=%v manual=%v, expected fall=%g auto=%v manual=%v",
					cfg.Obstacles.FallSpeed, cfg.Jump.Auto, cfg.Jump.Manual, tc.fall, tc.auto, tc.manual)
			}
		})
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)

	if g.Phase() != Playing {
		t.Errorf("Phase() = %v, expected Playing", g.Phase())
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}
	if g.player.Lane() != 1 || g.player.X != 370 || g.player.Y != 500 {
		t.Errorf("player lane %d at (%g, %g)", g.player.Lane(), g.player.X, g.player.Y)
	}
	if g.field.Len() != 1 {
		t.Fatalf("obstacles = %d, expected 1", g.field.Len())
	}
	first := g.field.Obstacles()[0]
	if first.X != 170 || first.Y != 300 {
		t.Errorf("first obstacle at (%g, %g), expected (170, 300)", first.X, first.Y)
	}
	if g.jumps != nil {
		t.Error("classic variant should not run a jump timer")
	}
}

func TestGameLaneInput(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)

	steps := []struct {
		action   core.Action
		expected int
	}{
		{core.ActionLeft, 0},
		{core.ActionLeft, 0},
		{core.ActionRight, 1},
		{core.ActionRight, 2},
		{core.ActionRight, 2},
	}

	for i, s := range steps {
		g.Step(frame(0, s.action))
		if g.player.Lane() != s.expected {
			t.Errorf("step %d (%v): lane = %d, expected %d", i, s.action, g.player.Lane(), s.expected)
		}
	}
}

func TestGameLaneInputInOrder(t *testing.T) {
	L, R := core.ActionLeft, core.ActionRight
	tests := []struct {
		name     string
		presses  []core.Action
		expected int
	}{
		{"two rights", []core.Action{R, R}, 2},
		{"two lefts", []core.Action{L, L}, 0},
		{"right then left", []core.Action{R, L}, 1},
		{"left clamps before right", []core.Action{L, L, R}, 1},
		{"right clamps before left", []core.Action{R, R, R, L}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, config.VariantClassic, nil)
			g.Step(frame(0, tc.presses...))
			if g.player.Lane() != tc.expected {
				t.Errorf("lane = %d, expected %d", g.player.Lane(), tc.expected)
			}
		})
	}
}

func TestGamePassScoresAndSpawns(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, sameLane)

	// 300 + 175*1.2 = 510, below the player's row at 500
	res := g.Step(frame(1200 * time.Millisecond))

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if g.field.Len() != 2 {
		t.Fatalf("obstacles = %d, expected 2", g.field.Len())
	}
	if y := g.field.Obstacles()[1].Y; y != -50 {
		t.Errorf("spawned obstacle Y = %g, expected -50", y)
	}
	// The passed obstacle still overlaps the player in the same lane
	if !res.State.GameOver || g.Phase() != GameOver {
		t.Error("overlapping obstacle should end the game")
	}
}

func TestGamePassWithoutCollision(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)

	var res core.StepResult
	for i := 0; i < 80; i++ {
		res = g.Step(frame(0))
	}

	if res.State.GameOver {
		t.Fatal("obstacle in another lane should not end the game")
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if g.field.Len() != 2 {
		t.Errorf("obstacles = %d, expected 2", g.field.Len())
	}
}

func TestGameExactOverlap(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, func(cfg *config.RunnerConfig) {
		cfg.Obstacles.FirstLane = 1
		cfg.Obstacles.FirstY = 500
		cfg.Obstacles.FallSpeed = 1
	})

	res := g.Step(frame(time.Millisecond))
	if !res.State.GameOver {
		t.Fatal("obstacle on top of the player should end the game")
	}
}

func TestGameOverIgnoresInput(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, sameLane)
	g.Step(frame(1200 * time.Millisecond))
	if g.Phase() != GameOver {
		t.Fatal("setup: expected GameOver")
	}

	lane := g.player.Lane()
	y := g.field.Obstacles()[0].Y
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionRandomJump, core.ActionPause} {
		res := g.Step(frame(time.Second, a))
		if !res.State.GameOver || res.Restarted {
			t.Fatalf("%v left GameOver", a)
		}
	}
	if g.player.Lane() != lane {
		t.Errorf("lane changed during GameOver: %d -> %d", lane, g.player.Lane())
	}
	if g.field.Obstacles()[0].Y != y {
		t.Error("obstacles moved during GameOver")
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected it frozen at 1", g.State().Score)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, sameLane)
	g.Step(frame(1200 * time.Millisecond))

	res := g.Step(frame(0, core.ActionRestart))
	if !res.Restarted {
		t.Error("Restarted = false, expected true")
	}
	if res.State.GameOver || g.Phase() != Playing {
		t.Error("restart should return to Playing")
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0", res.State.Score)
	}
	if g.field.Len() != 1 || g.field.Current() != 0 {
		t.Errorf("obstacles = %d current = %d, expected 1 and 0", g.field.Len(), g.field.Current())
	}
	if !laneXs[g.player.X] {
		t.Errorf("player X = %g after restart", g.player.X)
	}
}

func TestGameRestartOnlyFromGameOver(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)
	for i := 0; i < 10; i++ {
		g.Step(frame(0))
	}
	y := g.field.Obstacles()[0].Y

	res := g.Step(frame(0, core.ActionRestart))
	if res.Restarted {
		t.Error("restart honoured while playing")
	}
	if g.field.Obstacles()[0].Y <= y {
		t.Error("game should keep running")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)

	res := g.Step(frame(0, core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Paused = false after pause toggle")
	}

	y := g.field.Obstacles()[0].Y
	lane := g.player.Lane()
	g.Step(frame(time.Second, core.ActionLeft))
	if g.field.Obstacles()[0].Y != y {
		t.Error("obstacles moved while paused")
	}
	if g.player.Lane() != lane {
		t.Error("player moved while paused")
	}

	res = g.Step(frame(0, core.ActionPause))
	if res.State.Paused {
		t.Error("Paused = true after second toggle")
	}
	if g.field.Obstacles()[0].Y <= y {
		t.Error("obstacles should move once unpaused")
	}
}

func TestGameManualJump(t *testing.T) {
	tests := []struct {
		variant  string
		expected bool
	}{
		{config.VariantClassic, true},
		{config.VariantRush, false},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			g := newTestGame(t, tc.variant, nil)
			seen := map[int]bool{}
			for i := 0; i < 30; i++ {
				g.Step(frame(0, core.ActionRandomJump))
				seen[g.player.Lane()] = true
			}
			if moved := len(seen) > 1; moved != tc.expected {
				t.Errorf("visited lanes %v, expected jumping=%v", seen, tc.expected)
			}
		})
	}
}

func TestGameRushAutoJump(t *testing.T) {
	g := newTestGame(t, config.VariantRush, nil)
	if g.jumps == nil {
		t.Fatal("rush variant should run a jump timer")
	}

	// Longer than the maximum interval: the timer fires and re-arms
	g.Step(frame(4100 * time.Millisecond))
	if g.jumps.Elapsed() != 0 {
		t.Errorf("timer Elapsed() = %g, expected a reset", g.jumps.Elapsed())
	}
	if n := g.jumps.Next(); n < 1.5 || n > 4.0 {
		t.Errorf("timer threshold %g outside [1.5, 4.0]", n)
	}

	// 300 + 250*4.1 lies past the cull line so the passed obstacle is gone
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
	if g.field.Len() != 1 || g.field.Current() != 0 {
		t.Errorf("obstacles = %d current = %d, expected 1 and 0", g.field.Len(), g.field.Current())
	}
	if g.Phase() != Playing {
		t.Error("fresh obstacle at the spawn row should not collide")
	}
}

func TestGameDeterministic(t *testing.T) {
	run := func() []int {
		g := newTestGame(t, config.VariantClassic, nil)
		lanes := make([]int, 0, 50)
		for i := 0; i < 50; i++ {
			g.Step(frame(0, core.ActionRandomJump))
			lanes = append(lanes, g.player.Lane())
		}
		return lanes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at frame %d", i)
		}
	}
}

func TestGameScene(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)
	s := g.Scene()

	if s.WorldW != 800 || s.WorldH != 600 {
		t.Errorf("world = %gx%g, expected 800x600", s.WorldW, s.WorldH)
	}
	if s.Player != core.NewBox(370, 500, 50, 50) {
		t.Errorf("Player = %+v", s.Player)
	}
	if len(s.Obstacles) != 1 || s.Obstacles[0] != core.NewBox(170, 300, 50, 50) {
		t.Errorf("Obstacles = %+v", s.Obstacles)
	}
	if len(s.LaneEdges) != 4 {
		t.Errorf("LaneEdges = %v", s.LaneEdges)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, sameLane)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("score label missing")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player missing")
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Error("obstacle missing")
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("game over box drawn while playing")
	}

	// Player cell: x 370/10 = 37, y 500/25 = 20
	if c := screen.GetCell(37, 20); c.Rune != PlayerChar || c.Color != core.ColorPlayer {
		t.Errorf("cell (37, 20) = %+v, expected player", c)
	}

	g.Step(frame(1200 * time.Millisecond))
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over box missing")
	}
	if !strings.Contains(out, "Score: 1") {
		t.Error("final score missing")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)
	g.Step(frame(0, core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box missing")
	}
}

func TestGameFramesAndControls(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, nil)
	if !g.Controls().RandomJump {
		t.Error("classic variant should offer the random jump key")
	}

	for i := 0; i < 5; i++ {
		g.Step(frame(0))
	}
	g.Step(frame(0, core.ActionPause))
	g.Step(frame(0))
	if g.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5 (paused frames excluded)", g.Frames())
	}

	rush := newTestGame(t, config.VariantRush, nil)
	if rush.Controls().RandomJump {
		t.Error("rush variant should not offer the random jump key")
	}
}
