package runner

// Obstacle is a block that falls at a fixed speed inside a lane.
type Obstacle struct {
	Entity
	lane  int
	lanes Lanes
}

// NewObstacle creates an obstacle in the given lane at height y.
func NewObstacle(lanes Lanes, lane int, y, size, fallSpeed float64) *Obstacle {
	o := &Obstacle{
		Entity: NewEntity(0, y, size, Fall(fallSpeed)),
		lanes:  lanes,
	}
	o.SetLane(lane)
	return o
}

// Lane returns the obstacle's lane index.
func (o *Obstacle) Lane() int {
	return o.lane
}

// SetLane moves the obstacle to a lane and recomputes x immediately.
func (o *Obstacle) SetLane(lane int) {
	o.lane = clampLane(lane)
	o.X = o.lanes.X(o.lane)
}
