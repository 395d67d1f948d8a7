package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock turns wall time into per-tick deltas in seconds
// While paused Tick returns 0 and paused wall time never reaches game time
type Clock struct {
	mu       sync.Mutex
	provider TimeProvider
	maxStep  float64

	last    time.Time
	started bool
	elapsed float64 // game seconds since first tick
	ticks   uint64

	paused atomic.Bool
}

// NewClock creates a clock; maxStep caps a single delta (0 disables the cap)
func NewClock(provider TimeProvider, maxStep float64) *Clock {
	if provider == nil {
		provider = MonotonicTimeProvider{}
	}
	return &Clock{provider: provider, maxStep: maxStep}
}

// Tick returns seconds since the previous tick, clamped to maxStep
// The first tick after construction or Resume returns 0
func (c *Clock) Tick() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if !c.started || c.paused.Load() {
		c.last = now
		c.started = true
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		dt = c.maxStep
	}
	c.elapsed += dt
	c.ticks++
	return dt
}

func (c *Clock) Pause() {
	c.paused.Store(true)
}

// Resume continues from now; the paused interval is dropped
func (c *Clock) Resume() {
	if c.paused.CompareAndSwap(true, false) {
		c.mu.Lock()
		c.last = c.provider.Now()
		c.mu.Unlock()
	}
}

func (c *Clock) IsPaused() bool {
	return c.paused.Load()
}

// Elapsed returns accumulated game time in seconds
func (c *Clock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Ticks returns the number of non-zero advancing ticks
func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}
