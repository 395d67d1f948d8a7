package render

import (
	"image"
	"math"
	"testing"

	"github.com/lixenwraith/loose-goose/vmath"
)

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestStackSaveRestore(t *testing.T) {
	s := NewStack()
	s.Save()
	s.Translate(10, 20)
	s.Scale(2, 2)

	p := s.Current().Apply(vmath.V(1, 1))
	if !near(p, vmath.V(12, 22)) {
		t.Errorf("Expected (12,22), got %+v", p)
	}

	s.Restore()
	if s.Current() != Identity() {
		t.Errorf("Expected identity after restore, got %+v", s.Current())
	}

	// Unbalanced restore is a no-op
	s.Restore()
	if s.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", s.Depth())
	}
}

func TestMirrorAroundPoint(t *testing.T) {
	s := NewStack()
	s.Translate(100, 0)
	s.Scale(-1, 1)
	s.Translate(-100, 0)

	p := s.Current().Apply(vmath.V(90, 5))
	if !near(p, vmath.V(110, 5)) {
		t.Errorf("Expected (110,5), got %+v", p)
	}
	if !s.Current().Mirrored() {
		t.Error("Expected mirrored transform")
	}
}

func TestInvertRoundTrip(t *testing.T) {
	s := NewStack()
	s.Translate(40, -3)
	s.Rotate(0.7)
	s.Scale(2, 3)

	inv, ok := s.Current().Invert()
	if !ok {
		t.Fatal("Expected invertible matrix")
	}
	p := vmath.V(13, 17)
	back := inv.Apply(s.Current().Apply(p))
	if !near(back, p) {
		t.Errorf("Expected %+v, got %+v", p, back)
	}

	if _, ok := (Matrix{}).Invert(); ok {
		t.Error("Zero matrix should not invert")
	}
}

func TestRecorderDeviceRect(t *testing.T) {
	r := NewRecorder()
	r.Save()
	r.Translate(50, 50)
	r.DrawImage(nil, image.Rect(0, 0, 32, 32), vmath.Rect{X: -32, Y: -32, W: 64, H: 64})
	r.Restore()
	r.DrawText("hi", 1, 2)

	if len(r.Calls) != 2 {
		t.Fatalf("Expected 2 calls, got %d", len(r.Calls))
	}
	if got := r.Calls[0].Dst; got != (vmath.Rect{X: 18, Y: 18, W: 64, H: 64}) {
		t.Errorf("Expected dst (18,18,64,64), got %+v", got)
	}
	if r.Calls[1].Text != "hi" || r.Calls[1].Dst.X != 1 {
		t.Errorf("Unexpected text call %+v", r.Calls[1])
	}
}
