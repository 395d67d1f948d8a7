package goose

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// HatType indexes the hat sheet; HatNone draws nothing
type HatType uint8

const (
	HatNone HatType = iota
	HatSanta
	HatIrish
	HatTopHat
	HatBeach
	HatPirate
	HatCowboy
	HatFedora
	HatFancyPink
	HatWizard
	HatGraduation
	HatCrown
	HatPolice
	HatUWashington
	HatJester

	hatCount
)

var hatNames = [hatCount]string{
	"none", "santa", "irish", "top_hat", "beach", "pirate", "cowboy", "fedora",
	"fancy_pink", "wizard", "graduation", "crown", "police", "u_washington", "jester",
}

func (h HatType) Valid() bool { return h < hatCount }

// Next cycles through the hats, wrapping to HatNone
func (h HatType) Next() HatType { return (h + 1) % hatCount }

func (h HatType) String() string {
	if h.Valid() {
		return hatNames[h]
	}
	return fmt.Sprintf("hat(%d)", h)
}

// ParseHat accepts a hat name
func ParseHat(s string) (HatType, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range hatNames {
		if n == name {
			return HatType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHat, s)
}

var hatSheet = animation.SquareSheet(asset.SheetHat, parameter.HatFrame, parameter.HatScale)

// Hat rides on the agent's head
type Hat struct {
	engine.Lifecycle
	g    *Agent
	kind HatType
	pos  vmath.Vec2
}

func newHat(g *Agent) *Hat {
	h := &Hat{g: g}
	h.follow()
	return h
}

func (h *Hat) Type() HatType     { return h.kind }
func (h *Hat) SetType(t HatType)  { h.kind = t }

// follow tracks the head, which drops while the neck is bent
func (h *Hat) follow() {
	dy := parameter.HatOffsetY
	if h.g.bending {
		dy = parameter.HatOffsetLowY
	}
	p := h.g.pos
	h.pos = vmath.V(p.X+parameter.HatOffsetX*h.g.facing.Sign(), p.Y+dy)
}

func (h *Hat) Update(*engine.Context) { h.follow() }

func (h *Hat) Draw(ctx *engine.Context) {
	if h.kind == HatNone {
		return
	}
	flip := h.g.facing.Sign() < 0
	if err := animation.DrawFrame(ctx.Renderer, ctx.Image(asset.SheetHat), hatSheet, int(h.kind), 0, h.pos.X, h.pos.Y, 0, flip); err != nil {
		ctx.Skip(err)
	}
}
