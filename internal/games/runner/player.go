package runner

import (
	"math/rand"

	"github.com/vovakirdan/lanes/internal/config"
	"github.com/vovakirdan/lanes/internal/core"
)

// Lanes maps lane indexes to x-coordinates: x = lane*Width + Margin.
type Lanes struct {
	Width  float64
	Margin float64
}

// X returns the x-coordinate of the given lane.
func (l Lanes) X(lane int) float64 {
	return float64(lane)*l.Width + l.Margin
}

// Edges returns the x-coordinates of the boundaries between lanes,
// including the outer edges, for drawing lane markings.
func (l Lanes) Edges(entitySize float64) []float64 {
	gap := (l.Width - entitySize) / 2
	edges := make([]float64, 0, config.LaneCount+1)
	for lane := 0; lane <= config.LaneCount; lane++ {
		edges = append(edges, l.X(lane)-gap)
	}
	return edges
}

// clampLane restricts a lane index to the valid range.
func clampLane(lane int) int {
	return core.Clamp(lane, 0, config.LaneCount-1)
}

// Player is the player's block. It never moves on its own; the lane is
// changed explicitly and x is recomputed on every change.
type Player struct {
	Entity
	lane  int
	lanes Lanes
}

// NewPlayer creates a player at row y in the given lane.
func NewPlayer(lanes Lanes, lane int, y, size float64) *Player {
	p := &Player{
		Entity: NewEntity(0, y, size, Pinned),
		lanes:  lanes,
	}
	p.SetLane(lane)
	return p
}

// Lane returns the current lane index.
func (p *Player) Lane() int {
	return p.lane
}

// SetLane moves the player to a lane, clamped to the valid range.
func (p *Player) SetLane(lane int) {
	p.lane = clampLane(lane)
	p.updatePosition()
}

// MoveLeft shifts one lane left. No-op in the leftmost lane.
func (p *Player) MoveLeft() {
	if p.lane > 0 {
		p.lane--
		p.updatePosition()
	}
}

// MoveRight shifts one lane right. No-op in the rightmost lane.
func (p *Player) MoveRight() {
	if p.lane < config.LaneCount-1 {
		p.lane++
		p.updatePosition()
	}
}

// RandomMove jumps to a uniformly random lane. The new lane may equal the current one.
func (p *Player) RandomMove(rng *rand.Rand) {
	p.lane = rng.Intn(config.LaneCount)
	p.updatePosition()
}

func (p *Player) updatePosition() {
	p.X = p.lanes.X(p.lane)
}
