package engine

import (
	"math"
	"testing"
	"time"
)

func TestClockDelta(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(100, 0))
	c := NewClock(tp, 0)

	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected first tick 0, got %f", dt)
	}
	tp.Advance(16 * time.Millisecond)
	if dt := c.Tick(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Expected 0.016, got %f", dt)
	}
	t.Logf("✓ Delta measured from provider")
}

func TestClockClampsStalls(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(0, 0))
	c := NewClock(tp, 0.05)
	c.Tick()
	tp.Advance(3 * time.Second)
	if dt := c.Tick(); dt != 0.05 {
		t.Errorf("Expected clamp to 0.05, got %f", dt)
	}
}

func TestClockPauseDropsInterval(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(0, 0))
	c := NewClock(tp, 0)
	c.Tick()
	tp.Advance(100 * time.Millisecond)
	c.Tick()

	c.Pause()
	tp.Advance(10 * time.Second)
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected 0 while paused, got %f", dt)
	}
	c.Resume()
	tp.Advance(20 * time.Millisecond)
	dt := c.Tick()
	if math.Abs(dt-0.02) > 1e-9 {
		t.Errorf("Expected 0.02 after resume, got %f", dt)
	}
	if e := c.Elapsed(); math.Abs(e-0.12) > 1e-9 {
		t.Errorf("Expected elapsed 0.12, got %f", e)
	}
	if c.Ticks() != 2 {
		t.Errorf("Expected 2 advancing ticks, got %d", c.Ticks())
	}
}
