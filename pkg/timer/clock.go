// Package timer supplies the two timing collaborators the gameplay rules
// rely on: a monotonically advancing game clock and a per-entity table of
// repeat timers keyed by action.
package timer

import "time"

// Clock reports the current game tick as the time elapsed since the game
// started.
type Clock interface {
	Now() time.Duration
}

// FrameClock is a Clock advanced explicitly by the host loop once per frame.
// The zero value starts at tick zero.
type FrameClock struct {
	now time.Duration
}

// NewFrameClock creates a clock starting at tick zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now implements Clock.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by dt. Negative deltas are ignored so the
// clock never runs backwards.
func (c *FrameClock) Advance(dt time.Duration) time.Duration {
	if dt > 0 {
		c.now += dt
	}
	return c.now
}

// Set jumps the clock to t; used when restarting a match and in tests.
func (c *FrameClock) Set(t time.Duration) {
	c.now = t
}
