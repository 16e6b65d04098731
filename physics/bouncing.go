package physics

import (
	"fmt"
	"math"
)

// MaxSpringTransferVelocity caps the velocity handed from the friction
// phase to the overscroll spring, so an extremely fast fling does not
// launch the spring into a wild oscillation.
const MaxSpringTransferVelocity = 5000.0

// bouncingFrictionDrag is the in-range drag of a rubber-band fling.
const bouncingFrictionDrag = 0.135

// DefaultBouncingSpring is the spring used to pull an overscrolled
// position back into range: slightly overdamped so it settles without
// visible oscillation.
var DefaultBouncingSpring = NewSpringWithDampingRatio(0.5, 100.0, 1.1)

// BouncingSimulation models rubber-band scrolling: friction while the
// position is inside [leadingExtent, trailingExtent], with a spring
// hand-off the moment the fling would cross either extent. If the
// simulation starts out of range it is a pure spring back to the nearer
// extent.
type BouncingSimulation struct {
	leading  float64
	trailing float64
	tol      Tolerance

	friction *FrictionSimulation
	spring   *SpringSimulation

	// springTime is when the spring takes over; -Inf when the simulation
	// starts as a spring, +Inf when the fling never leaves the range.
	springTime float64
}

// NewBouncingSimulation creates a bouncing simulation. Panics if
// leadingExtent > trailingExtent or any input is non-finite.
func NewBouncingSimulation(spring SpringDescription, position, velocity, leadingExtent, trailingExtent float64, tol Tolerance) *BouncingSimulation {
	checkFinite("position", position)
	checkFinite("velocity", velocity)
	checkFinite("leadingExtent", leadingExtent)
	checkFinite("trailingExtent", trailingExtent)
	if leadingExtent > trailingExtent {
		panic(fmt.Sprintf("physics: leadingExtent (%v) must not exceed trailingExtent (%v)",
			leadingExtent, trailingExtent))
	}

	s := &BouncingSimulation{leading: leadingExtent, trailing: trailingExtent, tol: tol}
	switch {
	case position < leadingExtent:
		s.spring = s.underscroll(spring, position, velocity)
		s.springTime = math.Inf(-1)
	case position > trailingExtent:
		s.spring = s.overscroll(spring, position, velocity)
		s.springTime = math.Inf(-1)
	default:
		s.friction = NewFrictionSimulation(bouncingFrictionDrag, position, velocity, tol)
		finalX := s.friction.FinalX()
		switch {
		case velocity > 0 && finalX > trailingExtent:
			s.springTime = s.friction.TimeAtX(trailingExtent)
			s.spring = s.overscroll(spring, trailingExtent,
				math.Min(s.friction.DX(s.springTime), MaxSpringTransferVelocity))
		case velocity < 0 && finalX < leadingExtent:
			s.springTime = s.friction.TimeAtX(leadingExtent)
			s.spring = s.underscroll(spring, leadingExtent,
				math.Max(s.friction.DX(s.springTime), -MaxSpringTransferVelocity))
		default:
			s.springTime = math.Inf(1)
		}
	}
	return s
}

func (s *BouncingSimulation) underscroll(spring SpringDescription, x, dx float64) *SpringSimulation {
	return NewSpringSimulation(spring, x, s.leading, dx, s.tol)
}

func (s *BouncingSimulation) overscroll(spring SpringDescription, x, dx float64) *SpringSimulation {
	return NewSpringSimulation(spring, x, s.trailing, dx, s.tol)
}

// at resolves which phase governs time t and the phase-local time.
func (s *BouncingSimulation) at(t float64) (Simulation, float64) {
	if t >= s.springTime {
		if math.IsInf(s.springTime, -1) {
			return s.spring, t
		}
		return s.spring, t - s.springTime
	}
	return s.friction, t
}

// X returns the position at time t.
func (s *BouncingSimulation) X(t float64) float64 {
	sim, local := s.at(t)
	return sim.X(local)
}

// DX returns the velocity at time t.
func (s *BouncingSimulation) DX(t float64) float64 {
	sim, local := s.at(t)
	return sim.DX(local)
}

// Done reports whether the governing phase has settled at time t.
func (s *BouncingSimulation) Done(t float64) bool {
	sim, local := s.at(t)
	return sim.Done(local)
}
