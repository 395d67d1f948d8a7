package goose

import (
	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/motion"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// base is embedded by every state: the agent, a seeker and the companions the
// state owns. Exit kills whatever the state still owns.
type base struct {
	g         *Agent
	seek      motion.Seeker
	hasTarget bool
	owned     companion.Set
	elapsed   float64
}

func (b *base) Enter(*engine.Context) {}

func (b *base) Exit(*engine.Context) { b.owned.KillAll() }

func (b *base) target() (vmath.Vec2, bool) { return b.seek.Target, b.hasTarget }

func (b *base) walkTo(t vmath.Vec2) {
	b.seek.SetTarget(b.g, t)
	b.hasTarget = true
}

// steer points velocity at the target and reports arrival
func (b *base) steer(threshold float64) bool {
	b.seek.MoveToTarget(b.g)
	return b.seek.Arrived(threshold)
}

func (b *base) tick(ctx *engine.Context) { b.elapsed += ctx.DT }

// Idle bobs in place and rolls for the next activity
type idleState struct {
	base
	glancing bool
}

func (s *idleState) Enter(ctx *engine.Context) {
	s.g.speed = 0
	s.g.setAnim(AnimBobbing)
}

// idleRolls is evaluated in order; the first success wins
var idleRolls = []struct {
	kind Kind
	rate float64
}{
	{Wander, parameter.ChanceWander},
	{Fly, parameter.ChanceFly},
	{Swim, parameter.ChanceSwim},
	{Dance, parameter.ChanceDance},
	{TrackMud, parameter.ChanceTrackMud},
	{DragMemes, parameter.ChanceDragMemes},
	{LayEgg, parameter.ChanceLayEgg},
}

func (s *idleState) Update(ctx *engine.Context) {
	s.g.vel = vmath.Vec2{}

	if s.glancing {
		if s.g.animator().Completed() {
			s.glancing = false
			s.g.setAnim(AnimBobbing)
		}
	} else if ctx.Chance(parameter.ChanceIdleGlance) {
		s.glancing = true
		if ctx.Pick(2) == 0 {
			s.g.setAnim(AnimLookingAround)
		} else {
			s.g.setAnim(AnimLookingUp)
		}
	}

	for _, r := range idleRolls {
		if r.kind == LayEgg && s.g.brood() >= parameter.MaxBrood {
			continue
		}
		if ctx.Chance(r.rate) {
			s.g.SetState(ctx, r.kind)
			return
		}
	}
}

// Wander walks to a random point
type wanderState struct {
	base
}

func (s *wanderState) Enter(ctx *engine.Context) {
	s.g.speed = parameter.SpeedWander
	s.g.setAnim(AnimWalking)
	s.walkTo(s.g.randomPoint(ctx))
	s.g.say(ctx, &s.owned, companion.WanderLines)
}

func (s *wanderState) Update(ctx *engine.Context) {
	if s.steer(parameter.ArrivalDistance) {
		s.g.SetState(ctx, Idle)
	}
}

// Shooed flees from the pointer to an in-bounds point
type shooedState struct {
	base
}

func (s *shooedState) Enter(ctx *engine.Context) {
	s.g.speed = parameter.SpeedShooed
	s.g.setAnim(AnimShooed)
	away := s.g.pos.Sub(ctx.Input.Pointer).Normalize()
	if away.IsZero() {
		away = vmath.V(-s.g.facing.Sign(), 0)
	}
	dest := s.g.pos.Add(away.Scale(parameter.ShooedDistance))
	s.walkTo(ctx.Bounds.Clamp(dest, parameter.Padding))
}

func (s *shooedState) Update(ctx *engine.Context) {
	s.tick(ctx)
	if s.steer(parameter.ArrivalDistance) || s.elapsed > parameter.ShooedTimeLimit {
		s.g.SetState(ctx, Idle)
	}
}
