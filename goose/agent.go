// Package goose is the agent: its behavior state machine, the companions it owns
// (shadow, hat, eggs, goslings) and the spawn/kill entry points the host calls.
package goose

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/engine/fsm"
	"github.com/lixenwraith/loose-goose/motion"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/status"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Options configures a spawned agent
type Options struct {
	Log    *zap.Logger
	Status *status.Registry
}

// Agent is the goose
type Agent struct {
	engine.Lifecycle
	id  string
	log *zap.Logger

	pos    vmath.Vec2
	vel    vmath.Vec2
	speed  float64
	facing motion.Facing

	anim    Anim
	anims   [animCount]*animation.Animator
	bending bool

	machine *fsm.Machine[Kind, *engine.Context]

	shadow     *Shadow
	hat        *Hat
	marker     *companion.TargetMarker
	belongings companion.Set // outlive their state: honk bursts, hatching eggs, released props
	goslings   []*Gosling
	eggs       int

	strikeCooldown float64
	flying         bool
	dancing        bool

	stats           *status.Registry
	statEntered     [kindCount]*atomic.Int64
	statState       *status.Text
	statX, statY    *status.Float
	statTransitions *atomic.Int64
	statGoslings    *atomic.Int64
}

// Spawn creates the agent near the viewport centre, registers it with its
// shadow and hat, and starts it wandering
func Spawn(ctx *engine.Context, opts Options) *Agent {
	a := newAgent(ctx, opts)
	c := ctx.Bounds.Centre()
	a.pos = vmath.V(
		c.X+(ctx.Rand.Float64()-0.5)*parameter.SpawnJitter,
		c.Y+(ctx.Rand.Float64()-0.5)*parameter.SpawnJitter,
	)
	a.register(ctx)
	a.SetState(ctx, Wander)
	a.log.Info("goose spawned", zap.Float64("x", a.pos.X), zap.Float64("y", a.pos.Y))
	return a
}

// SpawnAt places the agent exactly and starts it in kind
func SpawnAt(ctx *engine.Context, opts Options, at vmath.Vec2, kind Kind) *Agent {
	a := newAgent(ctx, opts)
	a.pos = at
	a.register(ctx)
	a.SetState(ctx, kind)
	return a
}

func newAgent(ctx *engine.Context, opts Options) *Agent {
	if opts.Log == nil {
		opts.Log = ctx.Log
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	id := uuid.New().String()
	a := &Agent{
		id:    id,
		log:   opts.Log.With(zap.String("goose", id)),
		anims: newGooseAnimators(),

		stats:           opts.Status,
		statState:       opts.Status.Strings.Get("goose.state"),
		statX:           opts.Status.Floats.Get("goose.x"),
		statY:           opts.Status.Floats.Get("goose.y"),
		statTransitions: opts.Status.Ints.Get("goose.transitions"),
		statGoslings:    opts.Status.Ints.Get("goose.goslings"),
	}
	for k := range kindCount {
		a.statEntered[k] = opts.Status.Ints.Get("goose.entered." + k.String())
	}
	a.machine = a.buildMachine()
	a.shadow = newShadow(a)
	a.hat = newHat(a)
	return a
}

func (a *Agent) register(ctx *engine.Context) {
	a.shadow.follow()
	a.hat.follow()
	ctx.Spawn(engine.Background, a.shadow)
	ctx.Spawn(engine.Midground, a)
	ctx.Spawn(engine.Midground, a.hat)
	a.marker = companion.NewTargetMarker(a.Target)
	ctx.Spawn(engine.Foreground, a.marker)
}

func (a *Agent) buildMachine() *fsm.Machine[Kind, *engine.Context] {
	m := fsm.New[Kind, *engine.Context]()
	m.Register(Idle, func() fsm.State[*engine.Context] { return &idleState{base: base{g: a}} })
	m.Register(Wander, func() fsm.State[*engine.Context] { return &wanderState{base: base{g: a}} })
	m.Register(Chase, func() fsm.State[*engine.Context] { return &chaseState{base: base{g: a}} })
	m.Register(Bite, func() fsm.State[*engine.Context] { return &biteState{base: base{g: a}} })
	m.Register(Bonk, func() fsm.State[*engine.Context] { return &bonkState{base: base{g: a}} })
	m.Register(Fly, func() fsm.State[*engine.Context] { return &flyState{base: base{g: a}} })
	m.Register(Swim, func() fsm.State[*engine.Context] { return &swimState{base: base{g: a}} })
	m.Register(Dance, func() fsm.State[*engine.Context] { return &danceState{base: base{g: a}} })
	m.Register(TrackMud, func() fsm.State[*engine.Context] { return &trackMudState{base: base{g: a}} })
	m.Register(DragMemes, func() fsm.State[*engine.Context] { return &dragMemesState{base: base{g: a}} })
	m.Register(LayEgg, func() fsm.State[*engine.Context] { return &layEggState{base: base{g: a}} })
	m.Register(Shooed, func() fsm.State[*engine.Context] { return &shooedState{base: base{g: a}} })
	m.OnTransition(a.onTransition)
	return m
}

// onTransition runs between Exit and Enter: reset motion, honk, count
func (a *Agent) onTransition(ctx *engine.Context, from Kind, hasFrom bool, to Kind) {
	a.speed = 0
	a.vel = vmath.Vec2{}
	a.honk(ctx)
	a.statTransitions.Add(1)
	a.statEntered[to].Add(1)
	a.statState.Store(to.String())
	if hasFrom {
		a.log.Debug("state transition", zap.Stringer("from", from), zap.Stringer("to", to))
	}
}

// honk plays a random honk cue with a beak burst
func (a *Agent) honk(ctx *engine.Context) {
	a.honkInto(ctx, &a.belongings)
}

func (a *Agent) honkInto(ctx *engine.Context, set *companion.Set) {
	ctx.Play(asset.Honks[ctx.Pick(len(asset.Honks))], 1)
	set.Spawn(ctx, engine.Foreground, companion.NewHonk(a))
}

// SetState transitions to kind; an unregistered kind panics
func (a *Agent) SetState(ctx *engine.Context, kind Kind) {
	if !kind.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownState, kind))
	}
	a.machine.SetState(ctx, kind)
}

// State returns the active kind
func (a *Agent) State() Kind {
	k, _ := a.machine.Current()
	return k
}

func (a *Agent) ID() string { return a.id }

func (a *Agent) Position() vmath.Vec2     { return a.pos }
func (a *Agent) Velocity() vmath.Vec2     { return a.vel }
func (a *Agent) Speed() float64           { return a.speed }
func (a *Agent) Facing() motion.Facing    { return a.facing }
func (a *Agent) BendingDown() bool        { return a.bending }
func (a *Agent) Anim() Anim               { return a.anim }
func (a *Agent) Goslings() []*Gosling     { return a.goslings }
func (a *Agent) Flying() bool             { return a.flying }
func (a *Agent) Dancing() bool            { return a.dancing }
func (a *Agent) Shadow() *Shadow          { return a.shadow }
func (a *Agent) Hat() *Hat                { return a.hat }
func (a *Agent) SetVelocity(v vmath.Vec2) { a.vel = v }

// Target returns the point the active state steers toward, if any
func (a *Agent) Target() (vmath.Vec2, bool) {
	if t, ok := a.machine.State().(interface{ target() (vmath.Vec2, bool) }); ok {
		return t.target()
	}
	return vmath.Vec2{}, false
}

// setAnim switches the active animation; switching restarts the new strip
func (a *Agent) setAnim(k Anim) {
	if a.anim == k {
		return
	}
	a.anim = k
	a.anims[k].Reset()
}

// replay restarts k even when it is already active; one-shots re-entered
// back to back would otherwise stay completed
func (a *Agent) replay(k Anim) {
	a.anim = k
	a.anims[k].Reset()
}

func (a *Agent) animator() *animation.Animator {
	return a.anims[a.anim]
}

// HitBox is the clickable area
func (a *Agent) HitBox() vmath.Rect {
	return vmath.Centered(a.pos, parameter.HitHalfExtent)
}

// randomPoint picks a uniform point inside the padded viewport
func (a *Agent) randomPoint(ctx *engine.Context) vmath.Vec2 {
	lo, hi := ctx.Bounds.Inset(parameter.Padding)
	return vmath.V(
		lo.X+ctx.Rand.Float64()*(hi.X-lo.X),
		lo.Y+ctx.Rand.Float64()*(hi.Y-lo.Y),
	)
}

// say spawns a bubble with a random line from pool, owned by set
func (a *Agent) say(ctx *engine.Context, set *companion.Set, pool []string) {
	set.Spawn(ctx, engine.Foreground, companion.NewBubble(a, pool[ctx.Pick(len(pool))], set))
}

func (a *Agent) Update(ctx *engine.Context) {
	a.facing = motion.Face(a.facing, a.vel.X)
	if a.strikeCooldown > 0 {
		a.strikeCooldown -= ctx.DT
	}

	// Global transitions, evaluated before the active state
	in := ctx.Input
	if in.Clicked && a.HitBox().Contains(in.Pointer) {
		a.SetState(ctx, Chase)
	} else if in.SecondaryClicked && a.HitBox().Contains(in.Pointer) {
		a.SetState(ctx, Shooed)
	}

	a.machine.Update(ctx)

	a.pos = a.pos.Add(a.vel.Scale(ctx.DT))
	a.animator().Advance(ctx.DT)

	a.statX.Set(a.pos.X)
	a.statY.Set(a.pos.Y)
}

func (a *Agent) Draw(ctx *engine.Context) {
	flip := a.facing == motion.FacingLeft
	if err := a.animator().Draw(ctx.Renderer, ctx.Image(asset.SheetGoose), a.pos.X, a.pos.Y, flip); err != nil {
		ctx.Skip(err)
	}
}

// SetHat swaps the hat and comments on it; hat ids outside the catalogue are rejected
func (a *Agent) SetHat(ctx *engine.Context, h HatType) error {
	if !h.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownHat, h)
	}
	a.hat.SetType(h)
	text := companion.NoHatLine
	if h != HatNone {
		text = companion.NewHatLines[ctx.Pick(len(companion.NewHatLines))]
	}
	a.belongings.Spawn(ctx, engine.Foreground, companion.NewBubble(a, text, &a.belongings))
	a.log.Info("hat changed", zap.Stringer("hat", h))
	return nil
}

// Despawn is the cancellation path: exit the active state, then mark every
// entity in the registry dead so the next tick starts empty
func (a *Agent) Despawn(ctx *engine.Context) {
	ctx.Play(asset.ClipHonkEcho, 1)
	a.machine.Exit(ctx)
	a.belongings.KillAll()
	for _, g := range a.goslings {
		g.Kill()
	}
	a.goslings = nil
	a.shadow.Kill()
	a.hat.Kill()
	if a.marker != nil {
		a.marker.Kill()
	}
	a.Kill()
	ctx.Registry.KillAll()
	a.stats.ResetPrefix("goose.")
	a.log.Info("goose killed")
}

// layEgg drops an egg at the feet; the caller owns it until it is handed to belongings
func (a *Agent) layEgg(ctx *engine.Context, set *companion.Set) *Egg {
	a.eggs++
	e := newEgg(a, a.pos, len(a.goslings)+a.eggs)
	set.Spawn(ctx, engine.Background, e)
	return e
}

// hatch is called by an egg when its hatching animation ends
func (a *Agent) hatch(ctx *engine.Context, at vmath.Vec2, childNumber int) {
	if a.Dead() {
		return
	}
	if a.eggs > 0 {
		a.eggs--
	}
	g := newGosling(ctx, a, at, childNumber)
	a.goslings = append(a.goslings, g)
	a.belongings.Spawn(ctx, engine.Midground, g)
	a.statGoslings.Store(int64(len(a.goslings)))
	a.log.Info("gosling hatched", zap.Int("child", childNumber))
}

// brood is the number of goslings plus unhatched eggs
func (a *Agent) brood() int {
	return len(a.goslings) + a.eggs
}
