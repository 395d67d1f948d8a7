// Package status collects runtime metrics written from the tick loop and read by the control API.
package status

import (
	"strings"
	"sync/atomic"
)

// Registry groups metrics by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[Float]
	Strings *MetricMap[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[Float](),
		Strings: NewMetricMap[Text](),
	}
}

// Snapshot copies every metric into a flat map for serialization
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *Float) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *Text) { out[k] = v.Load() })
	return out
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// ResetPrefix zeroes every metric whose key starts with prefix and returns how
// many were cleared. Keys stay registered so cached pointers remain valid
func (r *Registry) ResetPrefix(prefix string) int {
	n := 0
	match := func(k string) bool {
		if strings.HasPrefix(k, prefix) {
			n++
			return true
		}
		return false
	}
	r.Bools.Range(func(k string, v *atomic.Bool) {
		if match(k) {
			v.Store(false)
		}
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		if match(k) {
			v.Store(0)
		}
	})
	r.Floats.Range(func(k string, v *Float) {
		if match(k) {
			v.Set(0)
		}
	})
	r.Strings.Range(func(k string, v *Text) {
		if match(k) {
			v.Store("")
		}
	})
	return n
}
