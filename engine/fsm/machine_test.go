package fsm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind int

const (
	kindA kind = iota
	kindB
	kindC
	kindMissing
)

type trace struct {
	events []string
}

type recState struct {
	name    string
	fields  int
	onEnter func(*trace)
}

func (s *recState) Enter(t *trace) {
	t.events = append(t.events, "enter:"+s.name)
	if s.onEnter != nil {
		s.onEnter(t)
	}
}
func (s *recState) Update(t *trace) {
	s.fields++
	t.events = append(t.events, fmt.Sprintf("update:%s:%d", s.name, s.fields))
}
func (s *recState) Exit(t *trace) { t.events = append(t.events, "exit:"+s.name) }

func newMachine() *Machine[kind, *trace] {
	m := New[kind, *trace]()
	m.Register(kindA, func() State[*trace] { return &recState{name: "a"} }).
		Register(kindB, func() State[*trace] { return &recState{name: "b"} })
	return m
}

func TestExitBeforeEnter(t *testing.T) {
	m := newMachine()
	tr := &trace{}
	m.OnTransition(func(t *trace, from kind, hasFrom bool, to kind) {
		t.events = append(t.events, fmt.Sprintf("hook:%v:%d->%d", hasFrom, from, to))
	})

	m.SetState(tr, kindA)
	m.SetState(tr, kindB)

	want := []string{
		"hook:false:0->0", "enter:a",
		"exit:a", "hook:true:0->1", "enter:b",
	}
	assert.Equal(t, want, tr.events)

	k, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, kindB, k)
	assert.Equal(t, uint64(2), m.Transitions())
}

func TestFreshInstancePerActivation(t *testing.T) {
	m := newMachine()
	tr := &trace{}
	m.SetState(tr, kindA)
	m.Update(tr)
	m.Update(tr)
	m.SetState(tr, kindA)
	m.Update(tr)

	assert.Equal(t, "update:a:1", tr.events[len(tr.events)-1], "re-entered state must not keep old fields")
}

func TestUnknownStatePanics(t *testing.T) {
	m := newMachine()
	tr := &trace{}
	m.SetState(tr, kindA)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnknownState))

		// Active state untouched by the failed dispatch
		k, _ := m.Current()
		assert.Equal(t, kindA, k)
		assert.NotContains(t, tr.events, "exit:a")
	}()
	m.SetState(tr, kindMissing)
}

func TestSetStateFromEnterIsDeferred(t *testing.T) {
	m := newMachine()
	tr := &trace{}
	m.Register(kindC, func() State[*trace] {
		return &recState{name: "c", onEnter: func(t *trace) { m.SetState(t, kindB) }}
	})

	m.SetState(tr, kindC)
	assert.Equal(t, []string{"enter:c", "exit:c", "enter:b"}, tr.events)
	k, _ := m.Current()
	assert.Equal(t, kindB, k)
}

func TestTerminalExit(t *testing.T) {
	m := newMachine()
	tr := &trace{}
	m.SetState(tr, kindA)
	m.Exit(tr)
	m.Exit(tr)
	m.Update(tr)

	_, ok := m.Current()
	assert.False(t, ok)
	assert.Nil(t, m.State())
	assert.Equal(t, []string{"enter:a", "exit:a"}, tr.events)
}
