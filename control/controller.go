// Package control owns the single agent slot and serializes outside commands onto
// the tick goroutine. The HTTP API and host key bindings both go through it.
package control

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/goose"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/status"
)

var (
	ErrAgentExists = errors.New("control: agent already spawned")
	ErrNoAgent     = errors.New("control: no agent")
	ErrQueueFull   = errors.New("control: command queue full")
)

// Audio is the part of the player the controller drives
type Audio interface {
	Pause()
	Resume()
	ToggleMute() bool
	Muted() bool
}

// OpKind enumerates controller commands
type OpKind uint8

const (
	OpSpawn OpKind = iota
	OpKill
	OpSetState
	OpSetHat
	OpToggleDebug
)

// Op is one command; State and Hat apply to their kinds only
type Op struct {
	Kind  OpKind
	State goose.Kind
	Hat   goose.HatType
}

type command struct {
	op    Op
	reply chan error
}

// AgentInfo is a copy of agent state safe to read off the tick goroutine
type AgentInfo struct {
	ID       string  `json:"id"`
	State    string  `json:"state"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Hat      string  `json:"hat"`
	Goslings int     `json:"goslings"`
}

// Snapshot is the controller's view published once per tick
type Snapshot struct {
	Agent   *AgentInfo     `json:"agent"`
	Paused  bool           `json:"paused"`
	Muted   bool           `json:"muted"`
	Metrics map[string]any `json:"metrics"`
}

// Controller holds the agent slot
type Controller struct {
	eng    *engine.Engine
	audio  Audio
	status *status.Registry
	log    *zap.Logger

	queue chan command

	// tick goroutine only
	agent *goose.Agent

	mu   sync.RWMutex
	info *AgentInfo
}

// New registers the controller's drain hook on eng
func New(eng *engine.Engine, audio Audio, st *status.Registry, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if st == nil {
		st = status.NewRegistry()
	}
	c := &Controller{
		eng:    eng,
		audio:  audio,
		status: st,
		log:    log,
		queue:  make(chan command, parameter.CommandQueueSize),
	}
	eng.OnTick(c.drain)
	return c
}

// Post queues op without waiting; safe from any goroutine including the tick goroutine
func (c *Controller) Post(op Op) error {
	select {
	case c.queue <- command{op: op}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Exec queues op and waits until the tick goroutine has applied it
// Must not be called from the tick goroutine
func (c *Controller) Exec(ctx context.Context, op Op) error {
	cmd := command{op: op, reply: make(chan error, 1)}
	select {
	case c.queue <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// drain runs between ticks: purge has happened and the update pass has not started
func (c *Controller) drain(ctx *engine.Context) {
	for {
		select {
		case cmd := <-c.queue:
			err := c.apply(ctx, cmd.op)
			if err != nil {
				c.log.Debug("command rejected", zap.Uint8("op", uint8(cmd.op.Kind)), zap.Error(err))
			}
			if cmd.reply != nil {
				cmd.reply <- err
			}
		default:
			c.publish()
			return
		}
	}
}

func (c *Controller) apply(ctx *engine.Context, op Op) error {
	if op.Kind == OpToggleDebug {
		c.eng.SetDebug(!ctx.Debug)
		return nil
	}
	if op.Kind == OpSpawn {
		if c.agent != nil {
			return ErrAgentExists
		}
		c.agent = goose.Spawn(ctx, goose.Options{Log: c.log, Status: c.status})
		return nil
	}

	if c.agent == nil {
		return ErrNoAgent
	}
	switch op.Kind {
	case OpKill:
		c.agent.Despawn(ctx)
		c.agent = nil
	case OpSetState:
		if !op.State.Valid() {
			return fmt.Errorf("%w: %d", goose.ErrUnknownState, op.State)
		}
		c.agent.SetState(ctx, op.State)
	case OpSetHat:
		return c.agent.SetHat(ctx, op.Hat)
	default:
		return fmt.Errorf("control: unknown op %d", op.Kind)
	}
	return nil
}

func (c *Controller) publish() {
	var info *AgentInfo
	if g := c.agent; g != nil {
		p := g.Position()
		info = &AgentInfo{
			ID:       g.ID(),
			State:    g.State().String(),
			X:        p.X,
			Y:        p.Y,
			Hat:      g.Hat().Type().String(),
			Goslings: len(g.Goslings()),
		}
	}
	c.mu.Lock()
	c.info = info
	c.mu.Unlock()
}

// Snapshot returns the state published at the last tick
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	info := c.info
	c.mu.RUnlock()
	s := Snapshot{
		Paused:  c.eng.Clock().IsPaused(),
		Metrics: c.status.Snapshot(),
	}
	if info != nil {
		cp := *info
		s.Agent = &cp
	}
	if c.audio != nil {
		s.Muted = c.audio.Muted()
	}
	return s
}

// Pause freezes the clock and audio; the tick loop keeps draining commands
func (c *Controller) Pause() {
	c.eng.Clock().Pause()
	if c.audio != nil {
		c.audio.Pause()
	}
	c.log.Info("paused")
}

func (c *Controller) Resume() {
	c.eng.Clock().Resume()
	if c.audio != nil {
		c.audio.Resume()
	}
	c.log.Info("resumed")
}

// TogglePause flips pause and returns the new state
func (c *Controller) TogglePause() bool {
	if c.eng.Clock().IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// ToggleMute flips mute; false when there is no audio
func (c *Controller) ToggleMute() bool {
	if c.audio == nil {
		return false
	}
	return c.audio.ToggleMute()
}
