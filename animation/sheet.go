package animation

import (
	"image"

	"github.com/lixenwraith/loose-goose/vmath"
)

// Sheet describes a sprite sheet laid out as a grid of equally sized frames
// Rows are animations, columns are frames
type Sheet struct {
	ID     string
	FrameW int
	FrameH int
	Scale  float64
}

// SquareSheet is a sheet with square frames
func SquareSheet(id string, size int, scale float64) Sheet {
	return Sheet{ID: id, FrameW: size, FrameH: size, Scale: scale}
}

// Source returns the source rectangle of (frame, row)
func (s Sheet) Source(frame, row int) image.Rectangle {
	x := frame * s.FrameW
	y := row * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}

// DisplaySize returns the scaled frame size
func (s Sheet) DisplaySize() (w, h float64) {
	return float64(s.FrameW) * s.Scale, float64(s.FrameH) * s.Scale
}

// Dest returns the destination box centred on (x, y)
func (s Sheet) Dest(x, y float64) vmath.Rect {
	w, h := s.DisplaySize()
	return vmath.Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
