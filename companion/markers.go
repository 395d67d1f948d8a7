package companion

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Marker is a static ground sprite: puddle, mud or a single footprint
type Marker struct {
	engine.Lifecycle
	sheet    animation.Sheet
	pos      vmath.Vec2
	rotation float64
}

// NewPuddle places a puddle under a point the agent will stand on
func NewPuddle(at vmath.Vec2) *Marker {
	return &Marker{
		sheet: animation.Sheet{ID: asset.SheetPuddle, FrameW: 64, FrameH: 32, Scale: 2},
		pos:   vmath.V(at.X, at.Y+parameter.MarkerOffsetY),
	}
}

// NewMud places a mud patch under a point the agent will stand on
func NewMud(at vmath.Vec2) *Marker {
	return &Marker{
		sheet: animation.Sheet{ID: asset.SheetMud, FrameW: 64, FrameH: 32, Scale: 2},
		pos:   vmath.V(at.X, at.Y+parameter.MarkerOffsetY),
	}
}

// NewFootprint drops a print at the feet, rotated to the walking heading
func NewFootprint(at vmath.Vec2, rotation float64) *Marker {
	return &Marker{
		sheet:    animation.SquareSheet(asset.SheetFootprints, 10, 2),
		pos:      vmath.V(at.X, at.Y+parameter.FootprintOffsetY),
		rotation: rotation,
	}
}

// Position returns the drawn centre
func (m *Marker) Position() vmath.Vec2 { return m.pos }

func (m *Marker) Update(*engine.Context) {}

func (m *Marker) Draw(ctx *engine.Context) {
	if err := animation.DrawFrame(ctx.Renderer, ctx.Image(m.sheet.ID), m.sheet, 0, 0, m.pos.X, m.pos.Y, m.rotation, false); err != nil {
		ctx.Skip(err)
	}
}
