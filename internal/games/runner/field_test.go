package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/core"
)

func newTestField(seed int64) *ObstacleField {
	cfg := config.ObstacleConfig{Size: 50, FallSpeed: 175, SpawnY: -50, FirstLane: 0, FirstY: 300}
	return NewObstacleField(rand.New(rand.NewSource(seed)), testLanes, cfg)
}

func TestFieldSeed(t *testing.T) {
	f := newTestField(1)
	f.Seed(0, 300)
	f.Spawn()
	f.Seed(2, 100)

	if f.Len() != 1 {
		t.Fatalf("Len() after Seed = %d, expected 1", f.Len())
	}
	if f.Current() != 0 {
		t.Errorf("Current() after Seed = %d, expected 0", f.Current())
	}
	o := f.Obstacles()[0]
	if o.Lane() != 2 || o.X != 570 || o.Y != 100 {
		t.Errorf("seeded obstacle lane %d at (%g, %g)", o.Lane(), o.X, o.Y)
	}
}

func TestFieldPassed(t *testing.T) {
	f := newTestField(1)
	f.Seed(1, 300)

	if f.Passed(500) {
		t.Fatal("obstacle above the player should not count as passed")
	}

	f.Update(1.2) // 300 + 175*1.2 = 510
	if !f.Passed(500) {
		t.Fatal("obstacle below the player should count as passed")
	}
	if f.Len() != 2 {
		t.Fatalf("Len() after pass = %d, expected 2", f.Len())
	}
	if f.Current() != 1 {
		t.Errorf("Current() after pass = %d, expected 1", f.Current())
	}

	spawned := f.Obstacles()[1]
	if spawned.Y != -50 {
		t.Errorf("spawned obstacle Y = %g, expected -50", spawned.Y)
	}
	if !laneXs[spawned.X] {
		t.Errorf("spawned obstacle X = %g, not a lane position", spawned.X)
	}

	// Only the new current obstacle is checked now
	if f.Passed(500) {
		t.Error("second call in the same frame should not pass the fresh obstacle")
	}
}

func TestFieldPassedEqualRow(t *testing.T) {
	f := newTestField(1)
	f.Seed(0, 500)
	if f.Passed(500) {
		t.Error("obstacle level with the player has not been passed yet")
	}
}

func TestFieldSweep(t *testing.T) {
	f := newTestField(1)
	f.Seed(0, 300)
	f.Update(2) // 650
	f.Passed(500)

	if n := f.Sweep(700); n != 0 {
		t.Errorf("Sweep(700) removed %d, expected 0", n)
	}

	f.Update(1) // first at 825, second at 125
	if n := f.Sweep(700); n != 1 {
		t.Errorf("Sweep(700) removed %d, expected 1", n)
	}
	if f.Len() != 1 || f.Current() != 0 {
		t.Errorf("after sweep Len=%d Current=%d, expected 1 and 0", f.Len(), f.Current())
	}
	if f.Obstacles()[0].Y != 125 {
		t.Errorf("remaining obstacle Y = %g, expected 125", f.Obstacles()[0].Y)
	}
}

func TestFieldSweepKeepsUnpassed(t *testing.T) {
	f := newTestField(1)
	f.Seed(0, 900)
	if n := f.Sweep(700); n != 0 {
		t.Errorf("Sweep removed %d unpassed obstacles", n)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", f.Len())
	}
}

func TestFieldWorkingSetBounded(t *testing.T) {
	f := newTestField(3)
	f.Seed(0, 300)

	passes := 0
	for i := 0; i < 60*120; i++ {
		f.Update(1.0 / 60)
		if f.Passed(500) {
			passes++
		}
		f.Sweep(650)
		if f.Len() > 4 {
			t.Fatalf("frame %d: %d obstacles alive", i, f.Len())
		}
	}
	if passes < 30 {
		t.Errorf("only %d passes in two simulated minutes", passes)
	}
}

func TestFieldCheckCollision(t *testing.T) {
	f := newTestField(1)
	f.Seed(1, 500)

	tests := []struct {
		name     string
		box      core.Box
		expected bool
	}{
		{"exact overlap", core.NewBox(370, 500, 50, 50), true},
		{"partial overlap", core.NewBox(370, 540, 50, 50), true},
		{"touching below", core.NewBox(370, 550, 50, 50), false},
		{"other lane", core.NewBox(170, 500, 50, 50), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.CheckCollision(tc.box); got != tc.expected {
				t.Errorf("CheckCollision(%+v) = %v, expected %v", tc.box, got, tc.expected)
			}
		})
	}
}
