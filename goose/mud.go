package goose

import (
	"math"

	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

type mudPhase uint8

const (
	mudWalk mudPhase = iota
	mudDwell
	mudTrack
)

// trackMudState steps in mud, then wanders leaving footprints
type trackMudState struct {
	base
	phase      mudPhase
	dwell      float64
	duration   float64
	drift      vmath.Vec2 // secondary target the agent chases while tracking
	heading    vmath.Vec2
	sincePrint float64
}

func (s *trackMudState) Enter(ctx *engine.Context) {
	s.g.speed = parameter.SpeedMud
	s.g.setAnim(AnimWalking)
	at := s.g.randomPoint(ctx)
	s.owned.Spawn(ctx, engine.Background, companion.NewMud(at))
	s.walkTo(at)
}

func (s *trackMudState) newHeading(ctx *engine.Context) {
	s.heading = vmath.FromAngle(ctx.Rand.Float64()*2*math.Pi, 1)
}

func (s *trackMudState) Update(ctx *engine.Context) {
	switch s.phase {
	case mudWalk:
		if s.steer(parameter.ArrivalDistance) {
			s.phase = mudDwell
			s.g.vel = vmath.Vec2{}
			s.g.setAnim(AnimBobbing)
			ctx.Play(asset.ClipSplat, 1)
		}

	case mudDwell:
		s.g.vel = vmath.Vec2{}
		s.dwell += ctx.DT
		if s.dwell >= parameter.MudDwell {
			s.phase = mudTrack
			s.g.setAnim(AnimWalking)
			s.duration = ctx.Between(parameter.MudTrackMin, parameter.MudTrackRange)
			s.drift = s.g.pos
			s.newHeading(ctx)
		}

	case mudTrack:
		s.tick(ctx)
		if s.elapsed >= s.duration {
			s.g.SetState(ctx, Idle)
			return
		}
		s.advanceDrift(ctx)
		s.walkTo(s.drift)
		s.seek.MoveToTarget(s.g)

		s.sincePrint += ctx.DT
		if s.sincePrint >= parameter.MudFootprintEvery && !s.g.vel.IsZero() {
			s.sincePrint = 0
			s.owned.Spawn(ctx, engine.Background, companion.NewFootprint(s.g.pos, s.g.vel.Angle()+math.Pi/2))
		}
	}
}

// advanceDrift moves the secondary target, turning at random and reflecting off the padded edges
func (s *trackMudState) advanceDrift(ctx *engine.Context) {
	if ctx.Chance(parameter.MudTurnChance) {
		s.newHeading(ctx)
	}
	next := s.drift.Add(s.heading.Scale(parameter.MudDriftSpeed * ctx.DT))
	lo, hi := ctx.Bounds.Inset(parameter.Padding)
	if next.X < lo.X || next.X > hi.X {
		s.heading = s.heading.ReflectAxisX()
	}
	if next.Y < lo.Y || next.Y > hi.Y {
		s.heading = s.heading.ReflectAxisY()
	}
	s.drift = ctx.Bounds.Clamp(next, parameter.Padding)
}

func (s *trackMudState) Exit(ctx *engine.Context) {
	s.g.shadow.Show()
	s.base.Exit(ctx)
}
