package runner

import "github.com/vovakirdan/lanes/internal/core"

// Motion is a per-kind movement policy. It is called once per frame with the
// elapsed time in seconds and may move the entity however it likes.
type Motion func(e *Entity, dt float64)

// Drift moves the entity by its configured velocity.
func Drift(e *Entity, dt float64) {
	e.X += float64(e.VX) * dt
	e.Y += float64(e.VY) * dt
}

// Fall returns a policy that moves the entity straight down at speed units per
// second, ignoring its configured velocity.
func Fall(speed float64) Motion {
	return func(e *Entity, dt float64) {
		e.Y += speed * dt
	}
}

// Pinned never moves the entity; its position is set explicitly.
func Pinned(*Entity, float64) {}

// Entity is a positioned square hitbox with an optional constant velocity.
type Entity struct {
	X, Y   float64 // Top-left corner in world units
	Size   float64
	VX, VY int // Velocity in units per second, used by Drift
	motion Motion
}

// NewEntity creates an entity at (x, y) that moves with the given policy.
// A nil policy behaves like Drift.
func NewEntity(x, y, size float64, motion Motion) Entity {
	return Entity{X: x, Y: y, Size: size, motion: motion}
}

// SetSpeed sets the velocity used by Drift.
func (e *Entity) SetSpeed(vx, vy int) {
	e.VX = vx
	e.VY = vy
}

// SetPosition moves the entity to (x, y).
func (e *Entity) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
}

// Position returns the top-left corner.
func (e *Entity) Position() (float64, float64) {
	return e.X, e.Y
}

// Update advances the entity by dt seconds using its motion policy.
func (e *Entity) Update(dt float64) {
	if e.motion == nil {
		Drift(e, dt)
		return
	}
	e.motion(e, dt)
}

// Bounds returns the entity's collision box.
func (e *Entity) Bounds() core.Box {
	return core.NewBox(e.X, e.Y, e.Size, e.Size)
}
