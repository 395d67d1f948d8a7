package parameter

import "time"

// Loop timing
const (
	// TicksPerSecond is the nominal host frame rate
	TicksPerSecond = 60

	// FrameInterval is the host ticker period for TicksPerSecond
	FrameInterval = time.Second / TicksPerSecond

	// MaxTickStep caps a single tick delta in seconds after a stall (window drag, breakpoint)
	MaxTickStep = 1.0 / 20.0

	// CommandQueueSize bounds pending controller commands between ticks
	CommandQueueSize = 64
)

// Probability models for per-second chances
const (
	// RateModelPoisson treats chances as Poisson rates: p = 1 - exp(-rate*dt)
	RateModelPoisson = "poisson"

	// RateModelPerTick divides the rate by TicksPerSecond regardless of dt
	RateModelPerTick = "per_tick"
)
