package clock

import (
	"sync/atomic"
	"time"
)

// Clock supplies the logical time the rental ledger compares windows
// against. Values are monotonically non-decreasing.
type Clock interface {
	Now() uint64
}

// SystemClock reads logical time from the wall clock, one unit per second.
type SystemClock struct{}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// ManualClock is a hand-advanced clock for tests and local runs.
type ManualClock struct {
	now atomic.Uint64
}

func NewManualClock(start uint64) *ManualClock {
	c := &ManualClock{}
	c.now.Store(start)
	return c
}

func (c *ManualClock) Now() uint64 {
	return c.now.Load()
}

// Advance moves the clock forward by units.
func (c *ManualClock) Advance(units uint64) {
	c.now.Add(units)
}

// Set jumps the clock to t. Moving backwards is not allowed; a smaller
// value is ignored.
func (c *ManualClock) Set(t uint64) {
	for {
		cur := c.now.Load()
		if t <= cur {
			return
		}
		if c.now.CompareAndSwap(cur, t) {
			return
		}
	}
}
