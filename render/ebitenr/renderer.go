// Package ebitenr draws sprites onto an ebiten frame.
package ebitenr

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/loose-goose/render"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Renderer adapts the transform stack onto GeoM for one ebiten frame
// Decoded images are uploaded once and cached by identity
type Renderer struct {
	render.Stack
	target *ebiten.Image
	cache  map[image.Image]*ebiten.Image
}

// New creates a renderer; Begin must be called with the frame target before drawing
func New() *Renderer {
	return &Renderer{
		Stack: render.NewStack(),
		cache: make(map[image.Image]*ebiten.Image),
	}
}

// Begin binds the frame's screen image and resets transforms
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.target = screen
	r.Reset()
}

// Forget drops a cached upload, e.g. after an asset reload
func (r *Renderer) Forget(img image.Image) {
	if e, ok := r.cache[img]; ok {
		e.Deallocate()
		delete(r.cache, img)
	}
}

func (r *Renderer) upload(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := r.cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	r.cache[img] = e
	return e
}

func (r *Renderer) DrawImage(img image.Image, src image.Rectangle, dst vmath.Rect) {
	if r.target == nil || img == nil || src.Empty() {
		return
	}
	sheet := r.upload(img)
	frame := sheet.SubImage(src).(*ebiten.Image)

	m := r.Current()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)

	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.E)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.F)
	op.GeoM.Concat(g)

	r.target.DrawImage(frame, op)
}

// DrawText uses the debug font; only the translation of the transform applies
func (r *Renderer) DrawText(text string, x, y float64) {
	if r.target == nil {
		return
	}
	p := r.Current().Apply(vmath.V(x, y))
	ebitenutil.DebugPrintAt(r.target, text, int(p.X), int(p.Y))
}
