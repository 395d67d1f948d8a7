package goose

import (
	"math"

	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

type flyPhase uint8

const (
	flyAscend flyPhase = iota
	flyHover
	flyDescend
)

// flyState rises above its start, hovers, then lands where it took off
type flyState struct {
	base
	phase flyPhase
	start vmath.Vec2
	hover float64
}

func (s *flyState) Enter(ctx *engine.Context) {
	s.g.flying = true
	s.g.shadow.FreezeHeight()
	s.g.speed = parameter.SpeedFly
	s.g.setAnim(AnimFlying)
	s.start = s.g.pos
	s.walkTo(vmath.V(s.start.X, s.start.Y-parameter.FlyRise))
}

func (s *flyState) bob(scale float64) float64 {
	return math.Sin(s.elapsed*parameter.FlyBobFrequency*2*math.Pi) * parameter.FlyBobAmplitude * scale
}

func (s *flyState) Update(ctx *engine.Context) {
	s.tick(ctx)
	switch s.phase {
	case flyAscend:
		if s.steer(parameter.FlyAscendArrival) {
			s.phase = flyHover
			s.g.vel = vmath.Vec2{}
			return
		}
		s.g.vel.Y += s.bob(1)

	case flyHover:
		s.hover += ctx.DT
		s.g.vel = vmath.V(0, s.bob(1))
		if s.hover >= parameter.FlyHover {
			s.phase = flyDescend
			s.g.speed = parameter.SpeedFlyDown
			s.walkTo(vmath.V(s.start.X, s.start.Y+parameter.FlyLandOffset))
		}

	case flyDescend:
		if s.steer(parameter.FlyLandArrival) {
			s.g.SetState(ctx, Idle)
			return
		}
		// Bob dies out as the ground gets closer
		s.g.vel.Y += s.bob(math.Min(1, s.seek.Distance/parameter.FlyRise))
	}
}

func (s *flyState) Exit(ctx *engine.Context) {
	s.g.flying = false
	s.g.shadow.UnfreezeHeight()
	s.base.Exit(ctx)
}
