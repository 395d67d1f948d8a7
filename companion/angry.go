package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var angrySheet = animation.SquareSheet(asset.SheetAngry, 16, 2)

// Angry is the vein symbol over the head during a bite; fixed lifetime
type Angry struct {
	engine.Lifecycle
	anchor  Anchor
	pos     vmath.Vec2
	elapsed float64
	anim    *animation.Animator
}

func NewAngry(anchor Anchor) *Angry {
	a := &Angry{
		anchor: anchor,
		anim:   animation.Must(angrySheet, animation.Loop(0, 2, 0.3)),
	}
	a.pos = offset(anchor, parameter.AngryOffsetX, parameter.AngryOffsetY)
	return a
}

func (a *Angry) Update(ctx *engine.Context) {
	a.elapsed += ctx.DT
	a.pos = offset(a.anchor, parameter.AngryOffsetX, parameter.AngryOffsetY)
	a.anim.Advance(ctx.DT)
	if a.elapsed >= parameter.AngryAlive {
		a.Kill()
	}
}

func (a *Angry) Draw(ctx *engine.Context) {
	if err := a.anim.Draw(ctx.Renderer, ctx.Image(asset.SheetAngry), a.pos.X, a.pos.Y, false); err != nil {
		ctx.Skip(err)
	}
}
