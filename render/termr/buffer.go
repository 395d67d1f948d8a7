package termr

import "image/color"

// pixelBuffer holds two vertical samples per terminal cell (upper/lower half block)
// with touched tracking so untouched halves keep the background
type pixelBuffer struct {
	px      []color.RGBA
	touched []bool
	text    map[int]rune
	width   int // cells
	height  int // cells
}

func newPixelBuffer(width, height int) *pixelBuffer {
	b := &pixelBuffer{text: make(map[int]rune)}
	b.resize(width, height)
	return b
}

// resize reallocates only if capacity insufficient
func (b *pixelBuffer) resize(width, height int) {
	size := width * height * 2
	if cap(b.px) < size {
		b.px = make([]color.RGBA, size)
		b.touched = make([]bool, size)
	} else {
		b.px = b.px[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.clear()
}

// clear resets samples using exponential copy
func (b *pixelBuffer) clear() {
	clear(b.text)
	if len(b.px) == 0 {
		return
	}
	b.px[0] = color.RGBA{}
	b.touched[0] = false
	for filled := 1; filled < len(b.px); filled *= 2 {
		copy(b.px[filled:], b.px[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// set blends c over the sample at pixel row py (two rows per cell)
func (b *pixelBuffer) set(x, py int, c color.RGBA) {
	if x < 0 || x >= b.width || py < 0 || py >= b.height*2 {
		return
	}
	if c.A == 0 {
		return
	}
	i := py*b.width + x
	if c.A < 255 && b.touched[i] {
		c = blend(b.px[i], c)
	}
	b.px[i] = c
	b.touched[i] = true
}

func (b *pixelBuffer) setRune(x, y int, r rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.text[y*b.width+x] = r
}

// sample returns the pixel at (x, py) and whether anything was drawn there
func (b *pixelBuffer) sample(x, py int) (color.RGBA, bool) {
	i := py*b.width + x
	return b.px[i], b.touched[i]
}

// blend is a straight alpha-over in 8-bit
func blend(dst, src color.RGBA) color.RGBA {
	a := uint32(src.A)
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv) / 255),
		A: 255,
	}
}
