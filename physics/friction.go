package physics

import (
	"fmt"
	"math"
)

// FrictionSimulation decays an initial velocity exponentially.
//
// The drag coefficient is the fraction of velocity retained after one
// second; it must lie strictly between 0 and 1. Position and velocity
// follow the closed forms
//
//	x(t)  = x0 + v0·(drag^t − 1)/ln(drag)
//	dx(t) = v0·drag^t
//
// so the simulation approaches a finite terminal position, FinalX.
type FrictionSimulation struct {
	drag     float64
	dragLog  float64
	x0       float64
	v0       float64
	tol      Tolerance
	constant bool
}

// NewFrictionSimulation creates a friction simulation starting at the
// given position and velocity. Panics if drag is outside (0, 1) or any
// input is non-finite.
func NewFrictionSimulation(drag, position, velocity float64, tol Tolerance) *FrictionSimulation {
	checkFinite("drag", drag)
	checkFinite("position", position)
	checkFinite("velocity", velocity)
	if drag <= 0 || drag >= 1 {
		panic(fmt.Sprintf("physics: drag must be in (0, 1), got %v", drag))
	}
	return &FrictionSimulation{
		drag:     drag,
		dragLog:  math.Log(drag),
		x0:       position,
		v0:       velocity,
		tol:      tol,
		constant: velocity == 0,
	}
}

// X returns the position at time t.
func (s *FrictionSimulation) X(t float64) float64 {
	if s.constant {
		return s.x0
	}
	return s.x0 + s.v0*(math.Pow(s.drag, t)-1)/s.dragLog
}

// DX returns the velocity at time t.
func (s *FrictionSimulation) DX(t float64) float64 {
	return s.v0 * math.Pow(s.drag, t)
}

// FinalX returns the position the simulation converges to.
func (s *FrictionSimulation) FinalX() float64 {
	if s.constant {
		return s.x0
	}
	return s.x0 - s.v0/s.dragLog
}

// TimeAtX returns the time at which the simulation passes through x, or
// +Inf if it never reaches x.
func (s *FrictionSimulation) TimeAtX(x float64) float64 {
	if x == s.x0 {
		return 0
	}
	if s.constant {
		return math.Inf(1)
	}
	// Reachable only if x lies between the start and the terminal position.
	if s.v0 > 0 && (x < s.x0 || x > s.FinalX()) {
		return math.Inf(1)
	}
	if s.v0 < 0 && (x > s.x0 || x < s.FinalX()) {
		return math.Inf(1)
	}
	return math.Log(s.dragLog*(x-s.x0)/s.v0+1) / s.dragLog
}

// Done reports whether the velocity has decayed inside tolerance.
func (s *FrictionSimulation) Done(t float64) bool {
	return math.Abs(s.DX(t)) < s.tol.Velocity
}
