package core

import (
	"math/rand"
	"time"
)

// Clock is the time source used for gravity pacing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. Simulation tests use it
// to feed exact time deltas into the game loop.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// RandomSource picks piece kinds. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandom returns a seeded pseudo-random source.
func NewRandom(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
