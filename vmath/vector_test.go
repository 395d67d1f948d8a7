package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZeroSafe(t *testing.T) {
	n := Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("Expected zero vector, got %+v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize produced NaN")
	}
}

func TestNormalizeUnit(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", n.Magnitude())
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Expected (0.6,0.8), got %+v", n)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := V(30, 40).ClampMagnitude(10)
	if math.Abs(v.Magnitude()-10) > 1e-9 {
		t.Errorf("Expected magnitude 10, got %f", v.Magnitude())
	}
	short := V(1, 1).ClampMagnitude(10)
	if short != V(1, 1) {
		t.Errorf("Expected unchanged vector, got %+v", short)
	}
}

func TestBoundsInset(t *testing.T) {
	tests := []struct {
		name     string
		b        Bounds
		pad      float64
		min, max Vec2
	}{
		{"normal", Bounds{800, 600}, 100, V(100, 100), V(700, 500)},
		{"narrow", Bounds{150, 600}, 100, V(75, 100), V(75, 500)},
		{"tiny", Bounds{50, 50}, 100, V(25, 25), V(25, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.b.Inset(tt.pad)
			if min != tt.min || max != tt.max {
				t.Errorf("Expected [%v,%v], got [%v,%v]", tt.min, tt.max, min, max)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{800, 600}
	p := b.Clamp(V(-50, 900), 0)
	if p != V(0, 600) {
		t.Errorf("Expected (0,600), got %+v", p)
	}
	if !b.ContainsInset(b.Clamp(V(5, 5), 100), 100) {
		t.Error("Clamped point should be inside inset bounds")
	}
}
