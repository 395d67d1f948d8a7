package goose

import (
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// danceState plays the distraction dance under a disco ball; goslings join in
type danceState struct {
	base
}

func (s *danceState) Enter(ctx *engine.Context) {
	s.g.speed = 0
	s.g.dancing = true
	s.g.setAnim(AnimDancing)
	s.owned.Spawn(ctx, engine.Foreground, companion.NewDiscoBall(s.g.pos))
	ctx.Play(asset.ClipDance, parameter.DanceVolume)
}

func (s *danceState) Update(ctx *engine.Context) {
	s.tick(ctx)
	if s.elapsed >= parameter.DanceDuration {
		s.g.SetState(ctx, Idle)
	}
}

func (s *danceState) Exit(ctx *engine.Context) {
	s.g.dancing = false
	ctx.Stop(asset.ClipDance)
	s.base.Exit(ctx)
}

// dragMemesState carries a meme to a random point and leaves it for the user
type dragMemesState struct {
	base
	prop *companion.Prop
}

func (s *dragMemesState) Enter(ctx *engine.Context) {
	s.g.speed = parameter.SpeedDragMemes
	s.g.setAnim(AnimWalking)
	s.walkTo(s.g.randomPoint(ctx))
	s.prop = companion.NewProp(ctx.Pick(asset.MemeCount), s.carryPoint())
	ctx.Spawn(engine.Foreground, s.prop)
}

// carryPoint trails the prop behind the beak
func (s *dragMemesState) carryPoint() vmath.Vec2 {
	return s.g.pos.Add(vmath.V(-s.g.facing.Sign()*parameter.PropFrame, 0))
}

func (s *dragMemesState) Update(ctx *engine.Context) {
	if s.steer(parameter.ArrivalDistance) {
		s.g.SetState(ctx, Idle)
		return
	}
	s.prop.Carry(s.carryPoint())
}

// Exit releases the prop on arrival or when cut short; the agent keeps it so kill removes it
func (s *dragMemesState) Exit(ctx *engine.Context) {
	s.prop.Release()
	s.g.belongings.Add(s.prop)
	s.base.Exit(ctx)
}

// layEggState sits on a fresh egg for a while
type layEggState struct {
	base
}

func (s *layEggState) Enter(ctx *engine.Context) {
	s.g.speed = 0
	s.g.setAnim(AnimLaying)
	s.g.layEgg(ctx, &s.owned)
}

func (s *layEggState) Update(ctx *engine.Context) {
	s.g.vel = vmath.Vec2{}
	s.tick(ctx)
	if s.elapsed >= parameter.LayEggTime {
		s.g.SetState(ctx, Wander)
	}
}

// Exit hands the egg to the agent; it has to outlive this state to hatch
func (s *layEggState) Exit(ctx *engine.Context) {
	s.owned.Take(&s.g.belongings)
}
