// Package motion holds the target-seeking primitive shared by every moving state.
// States decide target and speed; position is integrated once per tick by the owner.
package motion

import "github.com/lixenwraith/loose-goose/vmath"

// Mover is anything a Seeker can steer
type Mover interface {
	Position() vmath.Vec2
	Speed() float64
	SetVelocity(v vmath.Vec2)
}

// Seeker stores a target point and the last measured distance to it
type Seeker struct {
	Target   vmath.Vec2
	Distance float64
}

// SetTarget stores the target and recomputes distance from the mover
func (s *Seeker) SetTarget(m Mover, target vmath.Vec2) {
	s.Target = target
	s.Distance = vmath.Distance(m.Position(), target)
}

// Refresh recomputes distance to the stored target
func (s *Seeker) Refresh(m Mover) float64 {
	s.Distance = vmath.Distance(m.Position(), s.Target)
	return s.Distance
}

// MoveToTarget assigns velocity = unit(target - position) * speed
// Zero distance yields zero velocity
func (s *Seeker) MoveToTarget(m Mover) {
	s.Refresh(m)
	if s.Distance == 0 {
		m.SetVelocity(vmath.Vec2{})
		return
	}
	dir := s.Target.Sub(m.Position()).Scale(1 / s.Distance)
	m.SetVelocity(dir.Scale(m.Speed()))
}

// Arrived reports whether the last measured distance is under threshold
func (s *Seeker) Arrived(threshold float64) bool {
	return s.Distance < threshold
}
