package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/vmath"
)

var targetSheet = animation.SquareSheet(asset.SheetTarget, 16, 1)

// TargetMarker shows where the active state is steering; debug only
type TargetMarker struct {
	engine.Lifecycle
	source  func() (vmath.Vec2, bool)
	pos     vmath.Vec2
	visible bool
}

// NewTargetMarker polls source each tick; ok=false hides the marker
func NewTargetMarker(source func() (vmath.Vec2, bool)) *TargetMarker {
	return &TargetMarker{source: source}
}

func (t *TargetMarker) Update(*engine.Context) {
	t.pos, t.visible = t.source()
}

func (t *TargetMarker) Draw(ctx *engine.Context) {
	if !t.visible || !ctx.Debug {
		return
	}
	if err := animation.DrawFrame(ctx.Renderer, ctx.Image(asset.SheetTarget), targetSheet, 0, 0, t.pos.X, t.pos.Y, 0, false); err != nil {
		ctx.Skip(err)
	}
}
