package vmath

// Bounds is the viewport size; origin is top-left
type Bounds struct {
	Width, Height float64
}

// Inset returns the rectangle [pad, dim-pad] on both axes
// Degenerates to the centre line when the viewport is smaller than 2*pad
func (b Bounds) Inset(pad float64) (min, max Vec2) {
	min = Vec2{pad, pad}
	max = Vec2{b.Width - pad, b.Height - pad}
	if max.X < min.X {
		min.X, max.X = b.Width/2, b.Width/2
	}
	if max.Y < min.Y {
		min.Y, max.Y = b.Height/2, b.Height/2
	}
	return min, max
}

// Contains reports whether p lies inside the viewport
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= b.Width && p.Y <= b.Height
}

// ContainsInset reports whether p lies inside the viewport inset by pad
func (b Bounds) ContainsInset(p Vec2, pad float64) bool {
	min, max := b.Inset(pad)
	return p.X >= min.X && p.Y >= min.Y && p.X <= max.X && p.Y <= max.Y
}

// Clamp pins p into the viewport inset by pad
func (b Bounds) Clamp(p Vec2, pad float64) Vec2 {
	min, max := b.Inset(pad)
	return Vec2{Clamp(p.X, min.X, max.X), Clamp(p.Y, min.Y, max.Y)}
}

// Centre of the viewport
func (b Bounds) Centre() Vec2 {
	return Vec2{b.Width / 2, b.Height / 2}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned box
type Rect struct {
	X, Y, W, H float64
}

// Centered returns a box of half extent h around p
func Centered(p Vec2, h float64) Rect {
	return Rect{p.X - h, p.Y - h, 2 * h, 2 * h}
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}
