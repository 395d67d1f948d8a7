// Package engine runs the fixed-taxonomy entity loop: one update pass then one draw pass per tick.
package engine

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/render"
	"github.com/lixenwraith/loose-goose/status"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Options configures an Engine; nil fields get working defaults
type Options struct {
	Clock     *Clock
	Assets    Assets
	Rand      Rand
	Log       *zap.Logger
	Status    *status.Registry
	RateModel string
	Debug     bool
}

// Engine owns the registry and drives Update/Draw with a shared Context
type Engine struct {
	registry *Registry
	clock    *Clock
	log      *zap.Logger
	hooks    []func(*Context)
	ctx      Context

	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statFaults   *atomic.Int64
	statPaused   *atomic.Bool
}

// New creates an engine with an empty registry
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = NewClock(nil, 0)
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Rand == nil {
		opts.Rand = newDefaultRand()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	e := &Engine{
		registry: NewRegistry(),
		clock:    opts.Clock,
		log:      opts.Log,

		statTicks:    opts.Status.Ints.Get("engine.ticks"),
		statEntities: opts.Status.Ints.Get("engine.entities"),
		statFaults:   opts.Status.Ints.Get("engine.faults"),
		statPaused:   opts.Status.Bools.Get("engine.paused"),
	}
	e.ctx = Context{
		Registry:  e.registry,
		Assets:    opts.Assets,
		Rand:      opts.Rand,
		Log:       opts.Log,
		Debug:     opts.Debug,
		RateModel: opts.RateModel,
	}
	return e
}

func (e *Engine) Registry() *Registry { return e.registry }
func (e *Engine) Clock() *Clock       { return e.clock }

// Context returns the live context; valid between ticks for command handlers
func (e *Engine) Context() *Context { return &e.ctx }

// OnTick adds a hook run after purge and before the update pass, also while paused
// Hooks are where the registry may be restructured between ticks
func (e *Engine) OnTick(fn func(*Context)) {
	e.hooks = append(e.hooks, fn)
}

// SetDebug toggles debug overlays at runtime
func (e *Engine) SetDebug(on bool) {
	e.ctx.Debug = on
}

// Update advances one tick
func (e *Engine) Update(in Input, bounds vmath.Bounds) {
	dt := e.clock.Tick()

	ctx := &e.ctx
	ctx.DT = dt
	ctx.Time = e.clock.Elapsed()
	ctx.Tick++
	ctx.Input = in
	ctx.Bounds = bounds
	ctx.Running = !e.clock.IsPaused()

	e.registry.Purge()

	for _, hook := range e.hooks {
		hook(ctx)
	}

	e.statPaused.Store(!ctx.Running)
	if ctx.Running {
		e.registry.Each(func(_ Layer, ent Entity) {
			if !ent.Dead() {
				e.safeUpdate(ctx, ent)
			}
		})
		e.statTicks.Add(1)
	}
	e.statEntities.Store(int64(e.registry.Live()))
}

// Draw renders every live entity through r
func (e *Engine) Draw(r render.Renderer) {
	ctx := &e.ctx
	ctx.Renderer = r
	e.registry.Each(func(_ Layer, ent Entity) {
		if !ent.Dead() {
			e.safeDraw(ctx, ent)
		}
	})
}

// Entity faults are contained to the entity; the rest of the pass continues
func (e *Engine) safeUpdate(ctx *Context, ent Entity) {
	defer e.recoverEntity("update", ent)
	ent.Update(ctx)
}

func (e *Engine) safeDraw(ctx *Context, ent Entity) {
	defer e.recoverEntity("draw", ent)
	ent.Draw(ctx)
}

func (e *Engine) recoverEntity(phase string, ent Entity) {
	if r := recover(); r != nil {
		e.statFaults.Add(1)
		e.log.Error("entity fault",
			zap.String("phase", phase),
			zap.String("entity", fmt.Sprintf("%T", ent)),
			zap.Any("panic", r),
			zap.ByteString("stack", debug.Stack()),
		)
	}
}
