package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var propSheet = animation.SquareSheet(asset.SheetMemes, parameter.PropFrame, parameter.PropScale)

// Prop is a meme image the agent drags across the screen
// Once released the user can pick it up with the pointer; a secondary click closes it
type Prop struct {
	engine.Lifecycle
	frame    int
	pos      vmath.Vec2
	released bool

	grabbed bool
	grab    vmath.Vec2 // pointer offset from centre while held
}

// NewProp picks the meme frame index; out-of-range values wrap
func NewProp(frame int, at vmath.Vec2) *Prop {
	if frame < 0 {
		frame = -frame
	}
	return &Prop{frame: frame % asset.MemeCount, pos: at}
}

// Carry moves a carried prop; ignored after release
func (p *Prop) Carry(at vmath.Vec2) {
	if !p.released {
		p.pos = at
	}
}

// Release hands the prop over to the user
func (p *Prop) Release() { p.released = true }

func (p *Prop) Released() bool       { return p.released }
func (p *Prop) Position() vmath.Vec2 { return p.pos }
func (p *Prop) Frame() int           { return p.frame }

func (p *Prop) box() vmath.Rect {
	w, h := propSheet.DisplaySize()
	return vmath.Rect{X: p.pos.X - w/2, Y: p.pos.Y - h/2, W: w, H: h}
}

func (p *Prop) Update(ctx *engine.Context) {
	if !p.released {
		return
	}
	in := ctx.Input
	switch {
	case in.SecondaryClicked && p.box().Contains(in.Pointer):
		p.Kill()
	case in.Clicked && p.box().Contains(in.Pointer):
		p.grabbed = true
		p.grab = in.Pointer.Sub(p.pos)
	case p.grabbed && in.Down:
		p.pos = in.Pointer.Sub(p.grab)
	default:
		p.grabbed = false
	}
}

func (p *Prop) Draw(ctx *engine.Context) {
	if err := animation.DrawFrame(ctx.Renderer, ctx.Image(asset.SheetMemes), propSheet, p.frame, 0, p.pos.X, p.pos.Y, 0, false); err != nil {
		ctx.Skip(err)
	}
}
