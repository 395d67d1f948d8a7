package render

import "math"

// Stack implements the Save/Restore/Translate/Scale/Rotate half of Renderer
// Backends embed it and read Current when drawing
type Stack struct {
	current Matrix
	saved   []Matrix
}

// NewStack returns a stack at identity
func NewStack() Stack {
	return Stack{current: Identity()}
}

// Current returns the active transform
func (s *Stack) Current() Matrix {
	return s.current
}

// Reset drops all saved states; called at frame start
func (s *Stack) Reset() {
	s.current = Identity()
	s.saved = s.saved[:0]
}

func (s *Stack) Save() {
	s.saved = append(s.saved, s.current)
}

// Restore pops the last saved transform; unbalanced calls are ignored
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(x, y float64) {
	s.current = s.current.Mul(Matrix{A: 1, D: 1, E: x, F: y})
}

func (s *Stack) Scale(sx, sy float64) {
	s.current = s.current.Mul(Matrix{A: sx, D: sy})
}

func (s *Stack) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	s.current = s.current.Mul(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// Depth returns the number of saved states
func (s *Stack) Depth() int {
	return len(s.saved)
}
