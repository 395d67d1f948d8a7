package engine

import (
	"math/rand/v2"
	"time"
)

func newDefaultRand() Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// SeededRand returns a deterministic source for reproducible runs
func SeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedRand always returns the same value; tests use it to force or forbid every draw
type FixedRand float64

func (f FixedRand) Float64() float64 { return float64(f) }

// ScriptedRand replays values in order, then repeats the last one
type ScriptedRand struct {
	Values []float64
	i      int
}

func (s *ScriptedRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[min(s.i, len(s.Values)-1)]
	s.i++
	return v
}
