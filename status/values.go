package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as bits; zero value is 0.0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Text is an atomic string; zero value is empty
type Text struct {
	ptr atomic.Pointer[string]
}

// MaxTextLen truncates stored labels
const MaxTextLen = 48

func (s *Text) Store(val string) {
	if len(val) > MaxTextLen {
		val = val[:MaxTextLen]
	}
	s.ptr.Store(&val)
}

func (s *Text) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
