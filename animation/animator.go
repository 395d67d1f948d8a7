// Package animation times sprite strips and draws the current frame.
package animation

import (
	"fmt"
	"image"
	"math"

	"github.com/lixenwraith/loose-goose/render"
)

// Animator plays one Strip of one Sheet
// Time only moves through Advance, which the owning entity calls from Update;
// the engine skips Update while paused so frames hold still
type Animator struct {
	sheet Sheet
	strip Strip

	elapsed   float64
	frame     int
	completed bool

	onComplete func()
}

// New validates the strip and returns an animator at frame 0
func New(sheet Sheet, strip Strip) (*Animator, error) {
	if err := strip.Validate(); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet.ID, err)
	}
	return &Animator{sheet: sheet, strip: strip}, nil
}

// Must is New for compile-time animation tables; panics on invalid parameters
func Must(sheet Sheet, strip Strip) *Animator {
	a, err := New(sheet, strip)
	if err != nil {
		panic(err)
	}
	return a
}

// OnComplete sets a callback fired once per reset cycle when a one-shot ends
// The callback must not Reset this animator; owners poll Completed for re-arming
func (a *Animator) OnComplete(fn func()) {
	a.onComplete = fn
}

// Advance adds dt seconds and settles the frame
func (a *Animator) Advance(dt float64) {
	if dt > 0 {
		a.elapsed += dt
	}
	a.settle()
}

func (a *Animator) settle() {
	total := a.strip.Total()
	if a.elapsed >= total {
		if a.strip.Looped {
			a.elapsed = math.Mod(a.elapsed, total)
		} else {
			a.frame = a.strip.Frames - 1
			if !a.completed {
				a.completed = true
				if a.onComplete != nil {
					a.onComplete()
				}
			}
			return
		}
	}
	a.frame = int(a.elapsed / a.strip.FrameDuration)
	if a.frame >= a.strip.Frames {
		a.frame = a.strip.Frames - 1
	}
}

// CurrentFrame is always in [0, Frames)
func (a *Animator) CurrentFrame() int {
	return a.frame
}

// Completed reports whether a one-shot has reached its end; always false for loops
func (a *Animator) Completed() bool {
	return a.completed
}

// Elapsed returns time into the current cycle
func (a *Animator) Elapsed() float64 {
	return a.elapsed
}

// Reset rewinds to frame 0 and re-arms completion
func (a *Animator) Reset() {
	a.elapsed = 0
	a.frame = 0
	a.completed = false
}

func (a *Animator) Sheet() Sheet { return a.sheet }
func (a *Animator) Strip() Strip { return a.strip }

// Draw renders the current frame centred on (x, y), mirrored around x when flip is set
// A nil image returns ErrMissingAsset and draws nothing
func (a *Animator) Draw(r render.Renderer, img image.Image, x, y float64, flip bool) error {
	if img == nil {
		return fmt.Errorf("%w: %s", ErrMissingAsset, a.sheet.ID)
	}
	r.Save()
	if flip {
		r.Translate(x, y)
		r.Scale(-1, 1)
		r.Translate(-x, -y)
	}
	r.DrawImage(img, a.sheet.Source(a.frame, a.strip.Row), a.sheet.Dest(x, y))
	r.Restore()
	return nil
}
