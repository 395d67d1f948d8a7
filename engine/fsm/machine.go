// Package fsm is a replaceable-state machine: every transition builds a fresh state
// from a factory keyed by kind, so no state carries fields across activations.
package fsm

import (
	"errors"
	"fmt"
)

// ErrUnknownState is the panic value (wrapped) for a kind with no registered factory
var ErrUnknownState = errors.New("fsm: unknown state")

// State is one activation of a mode; C is the per-tick context
type State[C any] interface {
	Enter(ctx C)
	Update(ctx C)
	Exit(ctx C)
}

// Factory constructs a fresh state instance
type Factory[C any] func() State[C]

// TransitionFunc runs between the outgoing Exit and the incoming Enter
// hasFrom is false for the first transition
type TransitionFunc[K comparable, C any] func(ctx C, from K, hasFrom bool, to K)

// Machine holds the active state and the factory table
type Machine[K comparable, C any] struct {
	factories map[K]Factory[C]
	hooks     []TransitionFunc[K, C]

	current State[C]
	kind    K
	active  bool

	// Set while Enter runs; a SetState issued from Enter is deferred until after the swap
	entering bool
	pending  *K

	transitions uint64
}

func New[K comparable, C any]() *Machine[K, C] {
	return &Machine[K, C]{factories: make(map[K]Factory[C])}
}

// Register binds kind to a factory; returns the machine for chaining
func (m *Machine[K, C]) Register(kind K, f Factory[C]) *Machine[K, C] {
	m.factories[kind] = f
	return m
}

// OnTransition adds a hook fired on every transition
func (m *Machine[K, C]) OnTransition(fn TransitionFunc[K, C]) {
	m.hooks = append(m.hooks, fn)
}

// Known reports whether kind has a factory
func (m *Machine[K, C]) Known(kind K) bool {
	_, ok := m.factories[kind]
	return ok
}

// SetState performs exit -> hooks -> construct -> enter -> swap
// Panics with ErrUnknownState for an unregistered kind; this is a programming error
func (m *Machine[K, C]) SetState(ctx C, kind K) {
	factory, ok := m.factories[kind]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownState, kind))
	}
	if m.entering {
		k := kind
		m.pending = &k
		return
	}

	from, hadFrom := m.kind, m.active
	if m.current != nil {
		m.current.Exit(ctx)
		m.current = nil
		m.active = false
	}

	for _, hook := range m.hooks {
		hook(ctx, from, hadFrom, kind)
	}

	next := factory()
	m.entering = true
	next.Enter(ctx)
	m.entering = false

	m.current = next
	m.kind = kind
	m.active = true
	m.transitions++

	if m.pending != nil {
		k := *m.pending
		m.pending = nil
		m.SetState(ctx, k)
	}
}

// Update runs the active state's Update; no-op when inactive
func (m *Machine[K, C]) Update(ctx C) {
	if m.current != nil {
		m.current.Update(ctx)
	}
}

// Exit leaves the active state without entering another (terminal)
func (m *Machine[K, C]) Exit(ctx C) {
	if m.current == nil {
		return
	}
	s := m.current
	m.current = nil
	m.active = false
	s.Exit(ctx)
}

// Current returns the active kind; ok is false before the first SetState or after Exit
func (m *Machine[K, C]) Current() (kind K, ok bool) {
	return m.kind, m.active
}

// State returns the active state instance or nil
func (m *Machine[K, C]) State() State[C] {
	return m.current
}

// Transitions counts completed transitions
func (m *Machine[K, C]) Transitions() uint64 {
	return m.transitions
}
