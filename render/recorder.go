package render

import (
	"image"

	"github.com/lixenwraith/loose-goose/vmath"
)

// DrawCall is one recorded DrawImage or DrawText
type DrawCall struct {
	Image    image.Image
	Src      image.Rectangle
	Dst      vmath.Rect // device space, after transform
	Mirrored bool
	Text     string
}

// Recorder is a Renderer that keeps every call; used by tests and headless runs
type Recorder struct {
	Stack
	Calls []DrawCall
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{Stack: NewStack()}
}

func (r *Recorder) DrawImage(img image.Image, src image.Rectangle, dst vmath.Rect) {
	m := r.Current()
	r.Calls = append(r.Calls, DrawCall{
		Image:    img,
		Src:      src,
		Dst:      m.BoundsOf(dst),
		Mirrored: m.Mirrored(),
	})
}

func (r *Recorder) DrawText(text string, x, y float64) {
	p := r.Current().Apply(vmath.V(x, y))
	r.Calls = append(r.Calls, DrawCall{Text: text, Dst: vmath.Rect{X: p.X, Y: p.Y}})
}

// Clear drops recorded calls and resets the transform
func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Reset()
}
