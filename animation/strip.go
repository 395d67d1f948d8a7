package animation

import "fmt"

// Strip is one animation: a sheet row played over a number of frames
type Strip struct {
	Row           int
	Frames        int
	FrameDuration float64 // seconds
	Looped        bool
}

// Loop is a looping strip
func Loop(row, frames int, frameDuration float64) Strip {
	return Strip{Row: row, Frames: frames, FrameDuration: frameDuration, Looped: true}
}

// Once is a one-shot strip that holds its last frame
func Once(row, frames int, frameDuration float64) Strip {
	return Strip{Row: row, Frames: frames, FrameDuration: frameDuration}
}

// Total returns the duration of one run through the strip
func (s Strip) Total() float64 {
	return float64(s.Frames) * s.FrameDuration
}

// Validate rejects strips that cannot be timed
func (s Strip) Validate() error {
	if s.Frames <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameCount, s.Frames)
	}
	if s.FrameDuration <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFrameDuration, s.FrameDuration)
	}
	if s.Row < 0 {
		return fmt.Errorf("%w: row %d", ErrInvalidFrameCount, s.Row)
	}
	return nil
}
