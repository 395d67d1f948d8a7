package goose

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

var shadowSheet = animation.SquareSheet(asset.SheetShadow, parameter.GooseFrame, parameter.GooseScale)

// Shadow sits under the agent; it stays on the ground while flying and vanishes while swimming
type Shadow struct {
	engine.Lifecycle
	g      *Agent
	pos    vmath.Vec2
	frozen bool
	hidden bool
}

func newShadow(g *Agent) *Shadow {
	s := &Shadow{g: g}
	s.follow()
	return s
}

func (s *Shadow) FreezeHeight()        { s.frozen = true }
func (s *Shadow) UnfreezeHeight()      { s.frozen = false }
func (s *Shadow) Hide()                { s.hidden = true }
func (s *Shadow) Show()                { s.hidden = false }
func (s *Shadow) Hidden() bool         { return s.hidden }
func (s *Shadow) Position() vmath.Vec2 { return s.pos }

func (s *Shadow) follow() {
	dx := parameter.ShadowOffsetX
	if s.g.anim.wide() {
		dx = parameter.ShadowOffsetXWide
	}
	p := s.g.pos
	s.pos.X = p.X + dx*s.g.facing.Sign()
	if !s.frozen {
		s.pos.Y = p.Y + parameter.ShadowOffsetY
	}
}

func (s *Shadow) Update(*engine.Context) { s.follow() }

func (s *Shadow) Draw(ctx *engine.Context) {
	if s.hidden {
		return
	}
	if err := animation.DrawFrame(ctx.Renderer, ctx.Image(asset.SheetShadow), shadowSheet, 0, 0, s.pos.X, s.pos.Y, 0, false); err != nil {
		ctx.Skip(err)
	}
}
