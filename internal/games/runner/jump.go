package runner

import "math/rand"

// JumpTimer fires at random intervals drawn uniformly from [min, max] seconds.
type JumpTimer struct {
	elapsed float64
	next    float64
	min     float64
	max     float64
	rng     *rand.Rand
}

// NewJumpTimer creates an armed timer.
func NewJumpTimer(rng *rand.Rand, min, max float64) *JumpTimer {
	t := &JumpTimer{min: min, max: max, rng: rng}
	t.Reset()
	return t
}

// Reset zeroes the elapsed time and draws a fresh threshold.
func (t *JumpTimer) Reset() {
	t.elapsed = 0
	t.next = t.min + t.rng.Float64()*(t.max-t.min)
}

// Advance adds dt seconds and reports whether the timer fired.
// A fired timer re-arms itself with a new threshold.
func (t *JumpTimer) Advance(dt float64) bool {
	t.elapsed += dt
	if t.elapsed <= t.next {
		return false
	}
	t.Reset()
	return true
}

// Next returns the current threshold in seconds.
func (t *JumpTimer) Next() float64 {
	return t.next
}

// Elapsed returns the time accumulated since the last reset.
func (t *JumpTimer) Elapsed() float64 {
	return t.elapsed
}
