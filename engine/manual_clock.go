package engine

import (
	"sync"
	"time"
)

// ManualClock is a TimeProvider stepped explicitly by tests
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward and returns the new reading
// Negative durations are ignored to keep readings monotonic
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

// AdvanceSeconds is Advance for fractional seconds
func (c *ManualClock) AdvanceSeconds(s float64) time.Time {
	return c.Advance(time.Duration(s * float64(time.Second)))
}
