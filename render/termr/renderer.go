// Package termr rasterises sprite draws into a tcell screen using half-block glyphs.
package termr

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/loose-goose/render"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Renderer maps canvas pixels onto terminal cells
// One cell covers CellW x CellH canvas pixels, split into an upper and lower sample
type Renderer struct {
	render.Stack
	screen tcell.Screen
	buf    *pixelBuffer
	cellW  float64
	cellH  float64
	bg     tcell.Color
}

// New creates a renderer over screen; cellW/cellH are canvas pixels per cell
func New(screen tcell.Screen, cellW, cellH float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		Stack:  render.NewStack(),
		screen: screen,
		buf:    newPixelBuffer(w, h),
		cellW:  cellW,
		cellH:  cellH,
		bg:     tcell.ColorReset,
	}
}

// Bounds returns the canvas size covered by the screen
func (r *Renderer) Bounds() vmath.Bounds {
	return vmath.Bounds{
		Width:  float64(r.buf.width) * r.cellW,
		Height: float64(r.buf.height) * r.cellH,
	}
}

// CanvasPoint converts a cell coordinate (mouse event) to canvas pixels
func (r *Renderer) CanvasPoint(cx, cy int) vmath.Vec2 {
	return vmath.V((float64(cx)+0.5)*r.cellW, (float64(cy)+0.5)*r.cellH)
}

// Begin resets the frame; picks up terminal resizes
func (r *Renderer) Begin() {
	w, h := r.screen.Size()
	if w != r.buf.width || h != r.buf.height {
		r.buf.resize(w, h)
	} else {
		r.buf.clear()
	}
	r.Reset()
}

// DrawImage samples img through the inverse transform for every half-cell
// whose centre falls inside the transformed destination
func (r *Renderer) DrawImage(img image.Image, src image.Rectangle, dst vmath.Rect) {
	if img == nil || dst.W == 0 || dst.H == 0 || src.Empty() {
		return
	}
	m := r.Current()
	inv, ok := m.Invert()
	if !ok {
		return
	}
	box := m.BoundsOf(dst)

	halfH := r.cellH / 2
	x0 := int(math.Floor(box.X / r.cellW))
	x1 := int(math.Ceil((box.X + box.W) / r.cellW))
	y0 := int(math.Floor(box.Y / halfH))
	y1 := int(math.Ceil((box.Y + box.H) / halfH))

	sw := float64(src.Dx()) / dst.W
	sh := float64(src.Dy()) / dst.H

	for py := y0; py < y1; py++ {
		for x := x0; x < x1; x++ {
			centre := vmath.V((float64(x)+0.5)*r.cellW, (float64(py)+0.5)*halfH)
			local := inv.Apply(centre)
			if local.X < dst.X || local.Y < dst.Y || local.X >= dst.X+dst.W || local.Y >= dst.Y+dst.H {
				continue
			}
			sx := src.Min.X + int((local.X-dst.X)*sw)
			sy := src.Min.Y + int((local.Y-dst.Y)*sh)
			c := color.RGBAModel.Convert(img.At(sx, sy)).(color.RGBA)
			r.buf.set(x, py, c)
		}
	}
}

// DrawText writes runes starting at the cell under (x, y)
func (r *Renderer) DrawText(text string, x, y float64) {
	p := r.Current().Apply(vmath.V(x, y))
	cx := int(p.X / r.cellW)
	cy := int(p.Y / r.cellH)
	for _, ch := range text {
		r.buf.setRune(cx, cy, ch)
		cx++
	}
}

// Flush pushes the frame to the screen and shows it
func (r *Renderer) Flush() {
	base := tcell.StyleDefault.Background(r.bg)
	for y := 0; y < r.buf.height; y++ {
		for x := 0; x < r.buf.width; x++ {
			if ch, ok := r.buf.text[y*r.buf.width+x]; ok {
				r.screen.SetContent(x, y, ch, nil, base.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
				continue
			}
			top, hasTop := r.buf.sample(x, y*2)
			bot, hasBot := r.buf.sample(x, y*2+1)
			switch {
			case hasTop && hasBot:
				r.screen.SetContent(x, y, '▀', nil, base.Foreground(toColor(top)).Background(toColor(bot)))
			case hasTop:
				r.screen.SetContent(x, y, '▀', nil, base.Foreground(toColor(top)))
			case hasBot:
				r.screen.SetContent(x, y, '▄', nil, base.Foreground(toColor(bot)))
			default:
				r.screen.SetContent(x, y, ' ', nil, base)
			}
		}
	}
	r.screen.Show()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
