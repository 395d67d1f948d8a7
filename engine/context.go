package engine

import (
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/render"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Assets is the sprite and sound repository entities draw and play through
type Assets interface {
	// Image returns the decoded sheet or nil when it is not loaded
	Image(id string) image.Image
	PlayAudio(id string, volume float64)
	StopAudio(id string)
}

// Rand is the randomness source; *rand.Rand satisfies it
type Rand interface {
	Float64() float64
}

// Input is the pointer snapshot for one tick
type Input struct {
	Pointer          vmath.Vec2
	Clicked          bool // primary button pressed this tick
	SecondaryClicked bool
	Down             bool // primary button held
}

// Context is passed to every Update and Draw
// It replaces ambient globals: loop timing, bounds, assets and the registry all travel here
type Context struct {
	DT    float64 // seconds since the previous tick
	Time  float64 // game seconds
	Tick  uint64
	Input Input

	Bounds   vmath.Bounds
	Assets   Assets
	Renderer render.Renderer
	Registry *Registry
	Rand     Rand
	Log      *zap.Logger

	Running   bool
	Debug     bool
	RateModel string

	warned map[string]struct{}
}

// Chance draws against a per-second rate for this tick
// Poisson: p = 1 - exp(-rate*dt); per_tick: p = rate / TicksPerSecond
func (c *Context) Chance(rate float64) bool {
	if rate <= 0 {
		return false
	}
	var p float64
	if c.RateModel == parameter.RateModelPerTick {
		p = rate / parameter.TicksPerSecond
	} else {
		p = 1 - math.Exp(-rate*c.DT)
	}
	return c.Rand.Float64() < p
}

// Spawn registers e for update and draw starting next pass
func (c *Context) Spawn(layer Layer, e Entity) {
	c.Registry.Add(layer, e)
}

// Image resolves a sheet through Assets
func (c *Context) Image(id string) image.Image {
	if c.Assets == nil {
		return nil
	}
	return c.Assets.Image(id)
}

func (c *Context) Play(id string, volume float64) {
	if c.Assets != nil {
		c.Assets.PlayAudio(id, volume)
	}
}

func (c *Context) Stop(id string) {
	if c.Assets != nil {
		c.Assets.StopAudio(id)
	}
}

// Skip records a draw that could not happen; each distinct error is logged once
func (c *Context) Skip(err error) {
	if err == nil {
		return
	}
	key := err.Error()
	if _, seen := c.warned[key]; seen {
		return
	}
	if c.warned == nil {
		c.warned = make(map[string]struct{})
	}
	c.warned[key] = struct{}{}
	c.Log.Warn("draw skipped", zap.Error(err))
}

// Between returns a uniform value in [lo, lo+span)
func (c *Context) Between(lo, span float64) float64 {
	return lo + c.Rand.Float64()*span
}

// Pick returns a uniform index in [0, n)
func (c *Context) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	i := int(c.Rand.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// TestContext builds a context for unit tests of single entities
func TestContext(rng Rand, bounds vmath.Bounds) *Context {
	return &Context{
		DT:       1.0 / parameter.TicksPerSecond,
		Bounds:   bounds,
		Registry: NewRegistry(),
		Rand:     rng,
		Log:      zap.NewNop(),
		Running:  true,
	}
}

func (c *Context) String() string {
	return fmt.Sprintf("tick=%d dt=%.4f t=%.2f", c.Tick, c.DT, c.Time)
}
