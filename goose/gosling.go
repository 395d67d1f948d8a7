package goose

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/engine/fsm"
	"github.com/lixenwraith/loose-goose/motion"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// GoslingKind names a gosling state
type GoslingKind uint8

const (
	GoslingIdle GoslingKind = iota
	GoslingFollow
	GoslingChase
)

func (k GoslingKind) String() string {
	switch k {
	case GoslingIdle:
		return "idle"
	case GoslingFollow:
		return "follow_parent"
	case GoslingChase:
		return "chase_parent"
	}
	return "unknown"
}

var goslingSheet = animation.SquareSheet(asset.SheetGosling, parameter.GoslingFrame, parameter.GoslingScale)

const (
	goslingBobbing = iota
	goslingWalking
	goslingRunning
	goslingDancing
	goslingAnimCount
)

var goslingStrips = [goslingAnimCount]animation.Strip{
	goslingBobbing: animation.Loop(0, 2, 0.7),
	goslingWalking: animation.Loop(1, 4, 0.2),
	goslingRunning: animation.Loop(2, 4, 0.15),
	goslingDancing: animation.Loop(3, 4, 0.2),
}

// Gosling trails its parent at a distance set by its birth order
type Gosling struct {
	engine.Lifecycle
	parent *Agent
	child  int
	trail  float64

	pos    vmath.Vec2
	vel    vmath.Vec2
	speed  float64
	facing motion.Facing

	// trailing point behind the parent's heading, refreshed every tick
	target    vmath.Vec2
	trailBack vmath.Vec2

	anim    int
	anims   [goslingAnimCount]*animation.Animator
	machine *fsm.Machine[GoslingKind, *engine.Context]

	age     float64
	grownUp bool
	dancing bool
}

func newGosling(ctx *engine.Context, parent *Agent, at vmath.Vec2, child int) *Gosling {
	g := &Gosling{
		parent: parent,
		child:  child,
		trail:  float64(child)*parameter.GoslingTrailStep + parameter.GoslingTrailBase,
		pos:    at,
	}
	for i, s := range goslingStrips {
		g.anims[i] = animation.Must(goslingSheet, s)
	}
	g.machine = fsm.New[GoslingKind, *engine.Context]().
		Register(GoslingIdle, func() fsm.State[*engine.Context] { return &goslingIdle{g: g} }).
		Register(GoslingFollow, func() fsm.State[*engine.Context] { return &goslingFollow{g: g} }).
		Register(GoslingChase, func() fsm.State[*engine.Context] { return &goslingChase{g: g} })
	g.machine.OnTransition(func(*engine.Context, GoslingKind, bool, GoslingKind) {
		g.speed = 0
		g.vel = vmath.Vec2{}
	})
	g.machine.SetState(ctx, GoslingFollow)
	return g
}

func (g *Gosling) Position() vmath.Vec2     { return g.pos }
func (g *Gosling) Speed() float64           { return g.speed }
func (g *Gosling) SetVelocity(v vmath.Vec2) { g.vel = v }
func (g *Gosling) Child() int               { return g.child }
func (g *Gosling) TrailDistance() float64   { return g.trail }
func (g *Gosling) GrownUp() bool            { return g.grownUp }

// State returns the active gosling state
func (g *Gosling) State() GoslingKind {
	k, _ := g.machine.Current()
	return k
}

func (g *Gosling) setAnim(i int) {
	if g.anim != i {
		g.anim = i
		g.anims[i].Reset()
	}
}

// trailPoint sits behind the parent along its heading; it holds its last offset when the parent stops
func (g *Gosling) trailPoint() vmath.Vec2 {
	p := g.parent
	if p.speed > 0 && !p.vel.IsZero() {
		g.trailBack = p.vel.Scale(-g.trail / p.speed)
	}
	return p.pos.Add(g.trailBack)
}

func (g *Gosling) peep(ctx *engine.Context, rate float64) {
	if ctx.Chance(rate) {
		ctx.Play(asset.Peeps[ctx.Pick(len(asset.Peeps))], 1)
	}
}

func (g *Gosling) Update(ctx *engine.Context) {
	// Frozen while the parent is airborne
	if g.parent.flying {
		return
	}

	g.age += ctx.DT
	if !g.grownUp && g.age >= parameter.GoslingGrowUpSecond {
		g.grownUp = true
		g.parent.log.Info("gosling grew up", zap.Int("child", g.child))
	}

	switch {
	case g.parent.dancing:
		g.dancing = true
		g.vel = vmath.Vec2{}
		g.setAnim(goslingDancing)
	case g.dancing:
		g.dancing = false
		g.machine.SetState(ctx, GoslingIdle)
	default:
		g.target = g.trailPoint()
		g.machine.Update(ctx)
	}

	g.facing = motion.Face(g.facing, g.vel.X)
	g.pos = g.pos.Add(g.vel.Scale(ctx.DT))
	g.anims[g.anim].Advance(ctx.DT)
}

func (g *Gosling) Draw(ctx *engine.Context) {
	flip := g.facing == motion.FacingLeft
	if err := g.anims[g.anim].Draw(ctx.Renderer, ctx.Image(asset.SheetGosling), g.pos.X, g.pos.Y, flip); err != nil {
		ctx.Skip(err)
	}
}

type goslingIdle struct {
	g    *Gosling
	seek motion.Seeker
}

func (s *goslingIdle) Enter(*engine.Context) { s.g.setAnim(goslingBobbing) }
func (s *goslingIdle) Exit(*engine.Context)  {}

func (s *goslingIdle) Update(ctx *engine.Context) {
	s.seek.SetTarget(s.g, s.g.target)
	if s.seek.Distance > parameter.GoslingStartFollow {
		s.g.machine.SetState(ctx, GoslingFollow)
	}
}

type goslingFollow struct {
	g    *Gosling
	seek motion.Seeker
}

func (s *goslingFollow) Enter(*engine.Context) {
	s.g.speed = parameter.GoslingSpeedFollow
	s.g.setAnim(goslingWalking)
}
func (s *goslingFollow) Exit(*engine.Context) {}

func (s *goslingFollow) Update(ctx *engine.Context) {
	s.seek.SetTarget(s.g, s.g.target)
	s.seek.MoveToTarget(s.g)
	s.g.peep(ctx, parameter.GoslingPeepFollow)

	switch {
	case s.seek.Distance > parameter.GoslingStartChase:
		s.g.machine.SetState(ctx, GoslingChase)
	case s.seek.Distance < parameter.GoslingStopFollow:
		s.g.machine.SetState(ctx, GoslingIdle)
	}
}

type goslingChase struct {
	g    *Gosling
	seek motion.Seeker
}

func (s *goslingChase) Enter(*engine.Context) {
	s.g.speed = parameter.GoslingSpeedChase
	s.g.setAnim(goslingRunning)
}
func (s *goslingChase) Exit(*engine.Context) {}

func (s *goslingChase) Update(ctx *engine.Context) {
	s.seek.SetTarget(s.g, s.g.target)
	s.seek.MoveToTarget(s.g)
	s.g.peep(ctx, parameter.GoslingPeepChase)

	switch {
	case s.seek.Distance < parameter.GoslingStopFollow:
		s.g.machine.SetState(ctx, GoslingIdle)
	case s.seek.Distance < parameter.GoslingStopChase:
		s.g.machine.SetState(ctx, GoslingFollow)
	}
}
