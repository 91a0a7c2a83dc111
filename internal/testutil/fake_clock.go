package testutil

import (
	"sync"
	"time"
)

// FakeClock is a countdown.Clock that never blocks. It records every sleep
// and can run a hook during a chosen tick, typically to raise the
// cancellation flag.
type FakeClock struct {
	mu     sync.Mutex
	sleeps []time.Duration

	// OnTick runs during the tick with the given 1-based index
	OnTick map[int]func()
}

// NewFakeClock returns a clock with no hooks
func NewFakeClock() *FakeClock {
	return &FakeClock{OnTick: make(map[int]func())}
}

// At registers fn to run during tick n
func (c *FakeClock) At(n int, fn func()) *FakeClock {
	c.OnTick[n] = fn
	return c
}

// Sleep records d and runs the hook for this tick, if any
func (c *FakeClock) Sleep(d time.Duration, cancel <-chan struct{}) {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	hook := c.OnTick[len(c.sleeps)]
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
	select {
	case <-cancel:
	default:
	}
}

// Ticks returns how many sleeps happened
func (c *FakeClock) Ticks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sleeps)
}

// Elapsed returns the total simulated time
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total time.Duration
	for _, d := range c.sleeps {
		total += d
	}
	return total
}
