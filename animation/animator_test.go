package animation

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/loose-goose/render"
	"github.com/lixenwraith/loose-goose/vmath"
)

var testSheet = SquareSheet("goose", 32, 2)

func TestNewRejectsInvalidStrips(t *testing.T) {
	tests := []struct {
		name  string
		strip Strip
		err   error
	}{
		{"zero frames", Loop(0, 0, 0.1), ErrInvalidFrameCount},
		{"negative frames", Loop(0, -2, 0.1), ErrInvalidFrameCount},
		{"zero duration", Once(0, 3, 0), ErrInvalidFrameDuration},
		{"negative duration", Once(0, 3, -1), ErrInvalidFrameDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(testSheet, tt.strip)
			if a != nil {
				t.Errorf("Expected nil animator, got %+v", a)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestMustPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic from Must with zero frames")
		}
	}()
	Must(testSheet, Loop(0, 0, 0.1))
}

func TestFrameAlwaysInRange(t *testing.T) {
	strips := []Strip{Loop(0, 4, 0.2), Once(1, 3, 0.7), Loop(2, 1, 0.05), Once(3, 8, 1)}
	steps := []float64{0, 0.001, 0.016, 0.05, 0.33, 1.7, 9.9}

	for _, s := range strips {
		a := Must(testSheet, s)
		for i := 0; i < 500; i++ {
			a.Advance(steps[i%len(steps)])
			if f := a.CurrentFrame(); f < 0 || f >= s.Frames {
				t.Fatalf("Frame %d out of range [0,%d) for %+v", f, s.Frames, s)
			}
		}
	}
}

func TestOneShotCompletesOncePerReset(t *testing.T) {
	a := Must(testSheet, Once(0, 3, 0.12))
	fired := 0
	a.OnComplete(func() { fired++ })

	for i := 0; i < 100; i++ {
		a.Advance(0.05)
	}
	assert.Equal(t, 1, fired)
	assert.True(t, a.Completed())
	assert.Equal(t, 2, a.CurrentFrame())

	a.Reset()
	assert.False(t, a.Completed())
	assert.Equal(t, 0, a.CurrentFrame())

	for i := 0; i < 100; i++ {
		a.Advance(0.05)
	}
	assert.Equal(t, 2, fired)
}

func TestLoopWrapsToRemainder(t *testing.T) {
	const fd = 0.25
	s := Loop(0, 4, fd)
	total := s.Total()

	for k := 0; k < 4; k++ {
		for _, r := range []float64{0, 0.1, 0.3, 0.6, 0.9} {
			a := Must(testSheet, s)
			a.Advance(float64(k)*total + r)
			want := int(math.Floor(r / fd))
			if got := a.CurrentFrame(); got != want {
				t.Errorf("k=%d r=%v: expected frame %d, got %d", k, r, want, got)
			}
			if a.Completed() {
				t.Error("Looping animator must never complete")
			}
		}
	}
}

func TestDrawBeforeAdvanceUsesFrameZero(t *testing.T) {
	a := Must(testSheet, Loop(3, 4, 0.2))
	rec := render.NewRecorder()
	img := image.NewRGBA(image.Rect(0, 0, 128, 320))

	require.NoError(t, a.Draw(rec, img, 100, 100, false))
	require.Len(t, rec.Calls, 1)

	call := rec.Calls[0]
	assert.Equal(t, image.Rect(0, 96, 32, 128), call.Src)
	assert.Equal(t, vmath.Rect{X: 68, Y: 68, W: 64, H: 64}, call.Dst)
	assert.False(t, call.Mirrored)
	assert.Equal(t, 0, rec.Depth())
}

func TestDrawMirrorsAroundCentre(t *testing.T) {
	a := Must(testSheet, Loop(0, 2, 0.7))
	rec := render.NewRecorder()
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))

	require.NoError(t, a.Draw(rec, img, 100, 50, true))
	call := rec.Calls[0]
	assert.True(t, call.Mirrored)
	assert.InDelta(t, 68, call.Dst.X, 1e-9)
	assert.InDelta(t, 64, call.Dst.W, 1e-9)
}

func TestDrawMissingAsset(t *testing.T) {
	a := Must(testSheet, Loop(0, 2, 0.7))
	rec := render.NewRecorder()

	err := a.Draw(rec, nil, 0, 0, false)
	if !errors.Is(err, ErrMissingAsset) {
		t.Errorf("Expected ErrMissingAsset, got %v", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("Expected no draw calls, got %d", len(rec.Calls))
	}
}
