package goose

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var eggSheet = animation.SquareSheet(asset.SheetEgg, parameter.EggFrame, parameter.EggScale)

type eggPhase uint8

const (
	eggResting eggPhase = iota
	eggWiggling
	eggHatching
)

// Egg rests, wiggles, cracks and hatches into a gosling
type Egg struct {
	engine.Lifecycle
	parent *Agent
	child  int
	pos    vmath.Vec2

	phase   eggPhase
	elapsed float64

	rest   *animation.Animator
	wiggle *animation.Animator
	hatch  *animation.Animator
}

func newEgg(parent *Agent, at vmath.Vec2, child int) *Egg {
	return &Egg{
		parent: parent,
		child:  child,
		pos:    vmath.V(at.X, at.Y+parameter.EggOffsetY),
		rest:   animation.Must(eggSheet, animation.Loop(0, 1, 1)),
		wiggle: animation.Must(eggSheet, animation.Loop(0, 5, 0.8)),
		hatch:  animation.Must(eggSheet, animation.Once(1, 8, 1)),
	}
}

func (e *Egg) Position() vmath.Vec2 { return e.pos }

func (e *Egg) Update(ctx *engine.Context) {
	e.elapsed += ctx.DT
	switch e.phase {
	case eggResting:
		e.rest.Advance(ctx.DT)
		if e.elapsed >= parameter.EggRest {
			e.phase, e.elapsed = eggWiggling, 0
		}
	case eggWiggling:
		e.wiggle.Advance(ctx.DT)
		if e.elapsed >= parameter.EggWiggle {
			e.phase, e.elapsed = eggHatching, 0
			ctx.Play(asset.ClipEggCrack, 1)
		}
	case eggHatching:
		e.hatch.Advance(ctx.DT)
		if e.hatch.Completed() {
			e.Kill()
			e.parent.hatch(ctx, vmath.V(e.pos.X, e.pos.Y-parameter.EggHatchDrop), e.child)
		}
	}
}

func (e *Egg) animator() *animation.Animator {
	switch e.phase {
	case eggWiggling:
		return e.wiggle
	case eggHatching:
		return e.hatch
	}
	return e.rest
}

func (e *Egg) Draw(ctx *engine.Context) {
	if err := e.animator().Draw(ctx.Renderer, ctx.Image(asset.SheetEgg), e.pos.X, e.pos.Y, false); err != nil {
		ctx.Skip(err)
	}
}
