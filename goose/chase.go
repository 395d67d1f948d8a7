package goose

import (
	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// chaseState runs after a smoothed copy of the pointer
type chaseState struct {
	base
	interp   vmath.Vec2
	holding  bool
	nextHonk float64
	nextTalk float64
}

func (s *chaseState) Enter(ctx *engine.Context) {
	s.g.speed = parameter.SpeedChase
	s.g.setAnim(AnimAngry)
	s.interp = s.g.pos
	s.walkTo(s.interp)
	s.nextHonk = ctx.Between(parameter.ChaseHonkMin, parameter.ChaseHonkSpread)
	s.nextTalk = parameter.ChaseTalkInterval
	s.g.say(ctx, &s.owned, companion.ChaseStartLines)
}

func (s *chaseState) Update(ctx *engine.Context) {
	s.tick(ctx)
	if s.elapsed > parameter.ChaseTimeLimit {
		s.g.SetState(ctx, Wander)
		return
	}

	pointer := ctx.Input.Pointer
	if s.elapsed > parameter.StrikeDelay && s.g.strikeCooldown <= 0 &&
		vmath.Distance(s.g.pos, pointer) < parameter.StrikeDistance {
		if ctx.Pick(2) == 0 {
			s.g.SetState(ctx, Bite)
		} else {
			s.g.SetState(ctx, Bonk)
		}
		return
	}

	s.interp = s.interp.Add(pointer.Sub(s.interp).Scale(parameter.ChaseSmoothing))
	s.seek.SetTarget(s.g, s.interp)

	// Hysteresis keeps the agent from jittering on top of the pointer
	switch {
	case s.seek.Distance < parameter.ChaseHoldDistance:
		s.holding = true
	case s.seek.Distance > parameter.ChaseResumeDistance:
		s.holding = false
	}
	if s.holding {
		s.g.vel = vmath.Vec2{}
	} else {
		s.seek.MoveToTarget(s.g)
	}

	if s.elapsed >= s.nextHonk {
		s.nextHonk = s.elapsed + ctx.Between(parameter.ChaseHonkMin, parameter.ChaseHonkSpread)
		s.g.honkInto(ctx, &s.owned)
	}
	if s.elapsed >= s.nextTalk {
		s.nextTalk = s.elapsed + parameter.ChaseTalkInterval
		s.g.say(ctx, &s.owned, companion.ChaseLines)
	}
}

// Smoothed returns the interpolated pursuit point
func (s *chaseState) smoothed() vmath.Vec2 { return s.interp }

// biteState bends down and nips; cooldown starts on entry
type biteState struct {
	base
}

func (s *biteState) Enter(ctx *engine.Context) {
	s.g.speed = 0
	s.g.bending = true
	s.g.strikeCooldown = parameter.StrikeCooldown
	s.g.replay(AnimBiting)
	s.owned.Spawn(ctx, engine.Foreground, companion.NewAngry(s.g))
	s.g.honkInto(ctx, &s.owned)
}

func (s *biteState) Update(ctx *engine.Context) {
	s.g.vel = vmath.Vec2{}
	if s.g.animator().Completed() {
		s.g.SetState(ctx, Wander)
	}
}

func (s *biteState) Exit(ctx *engine.Context) {
	s.g.bending = false
	s.base.Exit(ctx)
}

// bonkState swings a bat
type bonkState struct {
	base
	bat *companion.Bat
}

func (s *bonkState) Enter(ctx *engine.Context) {
	s.g.speed = 0
	s.g.strikeCooldown = parameter.StrikeCooldown
	s.g.replay(AnimBonking)
	s.bat = companion.NewBat(s.g)
	s.owned.Spawn(ctx, engine.Foreground, s.bat)
	s.bat.Whack(ctx)
}

func (s *bonkState) Update(ctx *engine.Context) {
	s.g.vel = vmath.Vec2{}
	if s.bat.Swung() && s.g.animator().Completed() {
		s.g.SetState(ctx, Wander)
	}
}
