package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sprite-quest/constants"
)

// ManualClock is a TimeProvider that only moves when told to
// Tests drive key hold windows and the pausable clock with it
type ManualClock struct {
	start   time.Time
	elapsed atomic.Int64 // Nanoseconds since start
}

// NewManualClock creates a clock reading start until advanced
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{start: start}
}

// Now returns start plus everything advanced so far
func (c *ManualClock) Now() time.Time {
	return c.start.Add(time.Duration(c.elapsed.Load()))
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.elapsed.Add(int64(d))
}

// AdvanceTicks moves the clock forward by n simulation ticks
func (c *ManualClock) AdvanceTicks(n int) {
	c.Advance(time.Duration(n) * constants.GameUpdateInterval)
}

// Elapsed returns the total time advanced
func (c *ManualClock) Elapsed() time.Duration {
	return time.Duration(c.elapsed.Load())
}
