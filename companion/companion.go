// Package companion holds the short-lived effects states spawn around the agent.
// Every companion ends by marking itself dead; owners kill them early through a Set.
package companion

import (
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/motion"
	"github.com/lixenwraith/loose-goose/vmath"
)

// Anchor is the entity a companion follows
type Anchor interface {
	Position() vmath.Vec2
	Facing() motion.Facing
	BendingDown() bool
}

// Set tracks companions owned by one state (or the agent)
// Killing the set kills every member that is still alive
type Set struct {
	members []engine.Entity
}

// compactAt is the smallest full slice worth scanning for dead members before growing
const compactAt = 16

// Add records e and returns it for chaining into ctx.Spawn
// A full set drops its dead members before growing, so long-lived sets stay
// proportional to what is alive
func (s *Set) Add(e engine.Entity) engine.Entity {
	if n := len(s.members); n >= compactAt && n == cap(s.members) {
		s.prune()
	}
	s.members = append(s.members, e)
	return e
}

// Spawn registers e with the registry and the set in one step
func (s *Set) Spawn(ctx *engine.Context, layer engine.Layer, e engine.Entity) {
	ctx.Spawn(layer, s.Add(e))
}

// KillAll kills every member and empties the set
func (s *Set) KillAll() {
	for _, e := range s.members {
		e.Kill()
	}
	s.members = s.members[:0]
}

// Take moves all members into dst without killing them
func (s *Set) Take(dst *Set) {
	dst.members = append(dst.members, s.members...)
	s.members = s.members[:0]
}

// Live counts members still alive; dead members are dropped as a side effect
func (s *Set) Live() int {
	s.prune()
	return len(s.members)
}

// Len is the number of tracked members, dead or alive
func (s *Set) Len() int { return len(s.members) }

func (s *Set) prune() {
	live := s.members[:0]
	for _, e := range s.members {
		if !e.Dead() {
			live = append(live, e)
		}
	}
	clear(s.members[len(live):])
	s.members = live
}

// offset mirrors a right-facing anchor offset by facing
func offset(a Anchor, dx, dy float64) vmath.Vec2 {
	p := a.Position()
	return vmath.V(p.X+dx*a.Facing().Sign(), p.Y+dy)
}
