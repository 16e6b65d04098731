package physics

import (
	"fmt"
	"math"
)

// decelerationRate matches the feel of platform scrollers that slow a
// fling along a fixed easing tail.
var decelerationRate = math.Log(0.78) / math.Log(0.9)

// Cubic easing tail of the fling and its derivative. The curve does not
// quite land on its endpoint: penetration(1) = 0.995 with a residual
// slope of 0.125, so the terminal position is 0.995 of the nominal
// distance and the simulation stops by time, not by velocity.
func flingDistancePenetration(t float64) float64 {
	return 1.2*t*t*t - 3.27*t*t + 3.065*t
}

func flingVelocityPenetration(t float64) float64 {
	return 3.6*t*t - 6.54*t + 3.065
}

// initialVelocityPenetration is flingVelocityPenetration(0).
const initialVelocityPenetration = 3.065

// ClampingSimulation models a fling that decelerates to a complete stop
// over a finite duration, the motion used by hard-edged scroll physics.
//
// friction scales how quickly the fling dies; the default of 0.015
// matches conventional touch scrolling.
type ClampingSimulation struct {
	x0       float64
	velocity float64
	duration float64
	distance float64
	tol      Tolerance
}

// DefaultClampingFriction is the friction used by NewClampingSimulation
// when 0 is supplied.
const DefaultClampingFriction = 0.015

// NewClampingSimulation creates a clamping fling from the given position
// and velocity. Pass friction 0 to use DefaultClampingFriction. Panics on
// zero or non-finite velocity: a fling needs motion.
func NewClampingSimulation(position, velocity, friction float64, tol Tolerance) *ClampingSimulation {
	checkFinite("position", position)
	checkFinite("velocity", velocity)
	checkFinite("friction", friction)
	if velocity == 0 {
		panic("physics: clamping simulation requires a nonzero velocity")
	}
	if friction == 0 {
		friction = DefaultClampingFriction
	}
	if friction < 0 {
		panic(fmt.Sprintf("physics: friction must be positive, got %v", friction))
	}
	s := &ClampingSimulation{x0: position, velocity: velocity, tol: tol}
	s.duration = s.flingDuration(velocity, friction)
	s.distance = math.Abs(velocity) * s.duration / initialVelocityPenetration
	return s
}

// flingDuration returns the total time the fling takes to stop.
func (s *ClampingSimulation) flingDuration(velocity, friction float64) float64 {
	// Scaled friction in physical units (px/s²).
	scaledFriction := friction * 61774.04968 * 0.84
	deceleration := math.Log(0.35 * math.Abs(velocity) / scaledFriction)
	return math.Exp(deceleration / (decelerationRate - 1.0))
}

// X returns the position at time t.
func (s *ClampingSimulation) X(t float64) float64 {
	p := clamp01(t / s.duration)
	return s.x0 + s.distance*flingDistancePenetration(p)*sign(s.velocity)
}

// DX returns the velocity at time t.
func (s *ClampingSimulation) DX(t float64) float64 {
	p := clamp01(t / s.duration)
	return s.distance * flingVelocityPenetration(p) * sign(s.velocity) / s.duration
}

// Duration returns the total fling time in seconds.
func (s *ClampingSimulation) Duration() float64 { return s.duration }

// Distance returns the total distance the fling covers.
func (s *ClampingSimulation) Distance() float64 { return s.distance }

// Done reports whether the fling has run its full duration.
func (s *ClampingSimulation) Done(t float64) bool {
	return t >= s.duration
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
