package runner

import (
	"math/rand"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/core"
)

// ObstacleField owns the falling obstacles and tracks which one the player
// has to pass next.
type ObstacleField struct {
	obstacles []*Obstacle
	current   int // Index of the next obstacle the player must pass
	rng       *rand.Rand
	lanes     Lanes
	cfg       config.ObstacleConfig
}

// NewObstacleField creates an empty field that spawns with the given RNG.
func NewObstacleField(rng *rand.Rand, lanes Lanes, cfg config.ObstacleConfig) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]*Obstacle, 0, 8),
		rng:       rng,
		lanes:     lanes,
		cfg:       cfg,
	}
}

// Seed clears the field and places a single obstacle.
func (f *ObstacleField) Seed(lane int, y float64) {
	f.obstacles = f.obstacles[:0]
	f.current = 0
	f.add(lane, y)
}

// Update moves every obstacle by dt seconds.
func (f *ObstacleField) Update(dt float64) {
	for _, o := range f.obstacles {
		o.Update(dt)
	}
}

// Passed reports whether the player, at row playerY, has just passed the
// current obstacle. On a pass a new obstacle spawns in a random lane above the
// view and the next obstacle becomes current. At most one pass is counted per call.
func (f *ObstacleField) Passed(playerY float64) bool {
	if f.current >= len(f.obstacles) {
		return false
	}
	if playerY >= f.obstacles[f.current].Y {
		return false
	}
	f.Spawn()
	f.current++
	return true
}

// Spawn appends a new obstacle in a random lane at the spawn height.
func (f *ObstacleField) Spawn() *Obstacle {
	return f.add(f.rng.Intn(config.LaneCount), f.cfg.SpawnY)
}

// Sweep drops obstacles that are already passed and lie below limitY.
// Returns the number removed.
func (f *ObstacleField) Sweep(limitY float64) int {
	kept := f.obstacles[:0]
	removed := 0
	for i, o := range f.obstacles {
		if i < f.current && o.Y > limitY {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	// Clear the tail so dropped obstacles can be collected
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept
	f.current -= removed
	return removed
}

// CheckCollision tests if the given box overlaps any obstacle.
func (f *ObstacleField) CheckCollision(box core.Box) bool {
	for _, o := range f.obstacles {
		if box.Intersects(o.Bounds()) {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacles in spawn order.
func (f *ObstacleField) Obstacles() []*Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Current returns the index of the obstacle the player must pass next.
func (f *ObstacleField) Current() int {
	return f.current
}

func (f *ObstacleField) add(lane int, y float64) *Obstacle {
	o := NewObstacle(f.lanes, lane, y, f.cfg.Size, f.cfg.FallSpeed)
	f.obstacles = append(f.obstacles, o)
	return o
}
