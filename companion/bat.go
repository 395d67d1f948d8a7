package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var batSheet = animation.SquareSheet(asset.SheetBat, 16, 3)

// Bat is the baseball bat held over the agent during a bonk
type Bat struct {
	engine.Lifecycle
	anchor   Anchor
	pos      vmath.Vec2
	idle     *animation.Animator
	whack    *animation.Animator
	swinging bool
	swung    bool
}

func NewBat(anchor Anchor) *Bat {
	b := &Bat{
		anchor: anchor,
		idle:   animation.Must(batSheet, animation.Loop(0, 1, 1)),
		whack:  animation.Must(batSheet, animation.Once(1, 3, 0.1)),
	}
	b.follow()
	return b
}

func (b *Bat) follow() {
	p := b.anchor.Position()
	b.pos = vmath.V(p.X, p.Y+parameter.BatOffsetY)
}

// Whack starts the swing and plays the bonk cue
func (b *Bat) Whack(ctx *engine.Context) {
	ctx.Play(asset.ClipBonk, 1)
	b.whack.Reset()
	b.swinging = true
}

// Swung reports whether a whack has finished
func (b *Bat) Swung() bool { return b.swung }

func (b *Bat) Update(ctx *engine.Context) {
	b.follow()
	if !b.swinging {
		b.idle.Advance(ctx.DT)
		return
	}
	b.whack.Advance(ctx.DT)
	if b.whack.Completed() {
		b.swinging = false
		b.swung = true
	}
}

func (b *Bat) Draw(ctx *engine.Context) {
	anim := b.idle
	if b.swinging {
		anim = b.whack
	}
	flip := b.anchor.Facing().Sign() < 0
	if err := anim.Draw(ctx.Renderer, ctx.Image(asset.SheetBat), b.pos.X, b.pos.Y, flip); err != nil {
		ctx.Skip(err)
	}
}
