package animation

import (
	"fmt"
	"image"

	"github.com/lixenwraith/loose-goose/render"
)

// DrawFrame draws a single frame without an animator, optionally rotated about its centre
// Used by props with one pose (hat, puddle, footprints)
func DrawFrame(r render.Renderer, img image.Image, sheet Sheet, frame, row int, x, y, rotation float64, flip bool) error {
	if img == nil {
		return fmt.Errorf("%w: %s", ErrMissingAsset, sheet.ID)
	}
	r.Save()
	if rotation != 0 || flip {
		r.Translate(x, y)
		if flip {
			r.Scale(-1, 1)
		}
		r.Rotate(rotation)
		r.Translate(-x, -y)
	}
	r.DrawImage(img, sheet.Source(frame, row), sheet.Dest(x, y))
	r.Restore()
	return nil
}
