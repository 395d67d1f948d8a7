package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var honkSheet = animation.SquareSheet(asset.SheetHonk, parameter.HonkFrame, parameter.HonkScale)

// Honk is the burst drawn at the beak on every transition; dies when its one-shot ends
type Honk struct {
	engine.Lifecycle
	anchor Anchor
	pos    vmath.Vec2
	anim   *animation.Animator
}

func NewHonk(anchor Anchor) *Honk {
	h := &Honk{
		anchor: anchor,
		anim:   animation.Must(honkSheet, animation.Once(0, 3, 0.12)),
	}
	h.follow()
	return h
}

func (h *Honk) follow() {
	if h.anchor.BendingDown() {
		h.pos = offset(h.anchor, parameter.HonkLowX, parameter.HonkLowY)
	} else {
		h.pos = offset(h.anchor, parameter.HonkHighX, parameter.HonkHighY)
	}
}

func (h *Honk) Update(ctx *engine.Context) {
	h.follow()
	h.anim.Advance(ctx.DT)
	if h.anim.Completed() {
		h.Kill()
	}
}

func (h *Honk) Draw(ctx *engine.Context) {
	flip := h.anchor.Facing().Sign() < 0
	if err := h.anim.Draw(ctx.Renderer, ctx.Image(asset.SheetHonk), h.pos.X, h.pos.Y, flip); err != nil {
		ctx.Skip(err)
	}
}
