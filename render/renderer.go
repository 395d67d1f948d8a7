// Package render defines the drawing capability entities draw through.
// Backends (ebitenr, termr) share the canvas-style transform stack in Stack.
package render

import (
	"image"

	"github.com/lixenwraith/loose-goose/vmath"
)

// Renderer is a canvas-like surface with a save/restore transform stack
// All coordinates are pre-transform pixels
type Renderer interface {
	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(theta float64)

	// DrawImage draws src of img into dst under the current transform
	DrawImage(img image.Image, src image.Rectangle, dst vmath.Rect)

	// DrawText draws a single line with its top-left at (x, y)
	DrawText(text string, x, y float64)
}
