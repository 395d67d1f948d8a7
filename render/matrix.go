package render

import (
	"math"

	"github.com/lixenwraith/loose-goose/vmath"
)

// Matrix is a 2D affine transform
// x' = A*x + C*y + E, y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity transform
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns m*n: n applied first, then m
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms a point
func (m Matrix) Apply(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse transform; ok is false for a singular matrix
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// Mirrored reports whether the transform flips handedness
func (m Matrix) Mirrored() bool {
	return m.A*m.D-m.B*m.C < 0
}

// BoundsOf returns the axis-aligned box enclosing r after transform
func (m Matrix) BoundsOf(r vmath.Rect) vmath.Rect {
	pts := [4]vmath.Vec2{
		m.Apply(vmath.V(r.X, r.Y)),
		m.Apply(vmath.V(r.X+r.W, r.Y)),
		m.Apply(vmath.V(r.X, r.Y+r.H)),
		m.Apply(vmath.V(r.X+r.W, r.Y+r.H)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return vmath.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
