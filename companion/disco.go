package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var discoSheet = animation.Sheet{
	ID:     asset.SheetDisco,
	FrameW: parameter.DiscoFrameW,
	FrameH: parameter.DiscoFrameH,
	Scale:  parameter.DiscoScale,
}

// DiscoBall hangs above the dance floor until the Dance state kills it
type DiscoBall struct {
	engine.Lifecycle
	pos  vmath.Vec2
	anim *animation.Animator
}

func NewDiscoBall(over vmath.Vec2) *DiscoBall {
	return &DiscoBall{
		pos:  vmath.V(over.X, over.Y+parameter.DiscoOffsetY),
		anim: animation.Must(discoSheet, animation.Loop(0, 2, 0.2)),
	}
}

func (d *DiscoBall) Update(ctx *engine.Context) {
	d.anim.Advance(ctx.DT)
}

func (d *DiscoBall) Draw(ctx *engine.Context) {
	if err := d.anim.Draw(ctx.Renderer, ctx.Image(asset.SheetDisco), d.pos.X, d.pos.Y, false); err != nil {
		ctx.Skip(err)
	}
}
