package goose

import (
	"math"

	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// swimState walks to a fresh puddle and paddles in it
type swimState struct {
	base
	swimming bool
	duration float64
}

// placePuddle samples a point at a random heading and distance, retrying until it
// lands inside the padded viewport; the last sample is clamped if none does
func placePuddle(ctx *engine.Context, from vmath.Vec2) vmath.Vec2 {
	var p vmath.Vec2
	for range parameter.SwimPlacementTries {
		angle := ctx.Rand.Float64() * 2 * math.Pi
		dist := ctx.Between(parameter.SwimPuddleMin, parameter.SwimPuddleSpread)
		p = from.Add(vmath.FromAngle(angle, dist))
		if ctx.Bounds.ContainsInset(p, parameter.Padding) {
			return p
		}
	}
	return ctx.Bounds.Clamp(p, parameter.Padding)
}

func (s *swimState) Enter(ctx *engine.Context) {
	s.g.speed = parameter.SpeedSwimWalk
	s.g.setAnim(AnimWalking)
	at := placePuddle(ctx, s.g.pos)
	s.owned.Spawn(ctx, engine.Background, companion.NewPuddle(at))
	s.walkTo(at)
}

func (s *swimState) Update(ctx *engine.Context) {
	if !s.swimming {
		if !s.steer(parameter.SwimArrival) {
			return
		}
		s.swimming = true
		s.g.vel = vmath.Vec2{}
		s.g.shadow.Hide()
		s.g.setAnim(AnimSwimming)
		s.duration = ctx.Between(parameter.SwimDurationMin, parameter.SwimDurationRange)
		ctx.Play(asset.ClipSplash, 1)
		return
	}

	s.g.vel = vmath.Vec2{}
	s.tick(ctx)
	if s.elapsed >= s.duration {
		s.g.SetState(ctx, Idle)
	}
}

func (s *swimState) Exit(ctx *engine.Context) {
	s.g.shadow.Show()
	s.base.Exit(ctx)
}
