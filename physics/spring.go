package physics

import (
	"fmt"
	"math"
)

// SpringDescription characterizes a damped harmonic spring by mass,
// stiffness (spring constant), and damping coefficient.
type SpringDescription struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// NewSpringWithDampingRatio builds a spring from a damping ratio instead
// of a raw damping coefficient. A ratio of 1 is critically damped, below
// 1 underdamped (bouncy), above 1 overdamped (sluggish).
func NewSpringWithDampingRatio(mass, stiffness, ratio float64) SpringDescription {
	checkFinite("mass", mass)
	checkFinite("stiffness", stiffness)
	checkFinite("ratio", ratio)
	return SpringDescription{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   ratio * 2 * math.Sqrt(mass*stiffness),
	}
}

// springRegime identifies which analytic solution applies.
type springRegime int

const (
	springCritical springRegime = iota
	springOverdamped
	springUnderdamped
)

// SpringSimulation drives a position from start toward end under the
// given spring, beginning with the given velocity. Positions reported by
// X are absolute (the end position is added back in).
type SpringSimulation struct {
	end float64
	sol springSolution
	tol Tolerance
}

// NewSpringSimulation creates a spring simulation. Panics if the spring
// has non-positive mass or stiffness, or if any input is non-finite.
func NewSpringSimulation(spring SpringDescription, start, end, velocity float64, tol Tolerance) *SpringSimulation {
	checkFinite("start", start)
	checkFinite("end", end)
	checkFinite("velocity", velocity)
	checkFinite("spring", spring.Mass, spring.Stiffness, spring.Damping)
	if spring.Mass <= 0 || spring.Stiffness <= 0 {
		panic(fmt.Sprintf("physics: spring mass and stiffness must be positive, got mass=%v stiffness=%v",
			spring.Mass, spring.Stiffness))
	}
	return &SpringSimulation{
		end: end,
		sol: solveSpring(spring, start-end, velocity),
		tol: tol,
	}
}

// X returns the position at time t.
func (s *SpringSimulation) X(t float64) float64 { return s.end + s.sol.x(t) }

// DX returns the velocity at time t.
func (s *SpringSimulation) DX(t float64) float64 { return s.sol.dx(t) }

// Regime returns which damping regime the simulation is in.
func (s *SpringSimulation) Regime() springRegime { return s.sol.regime }

// Done reports whether the spring has settled at its end position.
func (s *SpringSimulation) Done(t float64) bool {
	return NearEqual(s.X(t), s.end, s.tol.Distance) && NearZero(s.DX(t), s.tol.Velocity)
}

// springSolution is the analytic solution of m·x″ + c·x′ + k·x = 0 for
// initial displacement d and velocity v, in end-relative coordinates.
type springSolution struct {
	regime springRegime

	// critical / underdamped share r; overdamped uses r1, r2.
	r, r1, r2 float64
	c1, c2    float64
	w         float64 // damped angular frequency (underdamped only)
}

func solveSpring(spring SpringDescription, distance, velocity float64) springSolution {
	cv := spring.Damping*spring.Damping - 4*spring.Mass*spring.Stiffness
	switch {
	case cv == 0:
		r := -spring.Damping / (2 * spring.Mass)
		return springSolution{
			regime: springCritical,
			r:      r,
			c1:     distance,
			c2:     velocity - r*distance,
		}
	case cv > 0:
		r1 := (-spring.Damping - math.Sqrt(cv)) / (2 * spring.Mass)
		r2 := (-spring.Damping + math.Sqrt(cv)) / (2 * spring.Mass)
		c2 := (velocity - r1*distance) / (r2 - r1)
		return springSolution{
			regime: springOverdamped,
			r1:     r1,
			r2:     r2,
			c1:     distance - c2,
			c2:     c2,
		}
	default:
		w := math.Sqrt(4*spring.Mass*spring.Stiffness-spring.Damping*spring.Damping) / (2 * spring.Mass)
		r := -spring.Damping / (2 * spring.Mass)
		return springSolution{
			regime: springUnderdamped,
			r:      r,
			w:      w,
			c1:     distance,
			c2:     (velocity - r*distance) / w,
		}
	}
}

func (s springSolution) x(t float64) float64 {
	switch s.regime {
	case springCritical:
		return (s.c1 + s.c2*t) * math.Exp(s.r*t)
	case springOverdamped:
		return s.c1*math.Exp(s.r1*t) + s.c2*math.Exp(s.r2*t)
	default:
		return math.Exp(s.r*t) * (s.c1*math.Cos(s.w*t) + s.c2*math.Sin(s.w*t))
	}
}

func (s springSolution) dx(t float64) float64 {
	switch s.regime {
	case springCritical:
		e := math.Exp(s.r * t)
		return (s.c1+s.c2*t)*s.r*e + s.c2*e
	case springOverdamped:
		return s.c1*s.r1*math.Exp(s.r1*t) + s.c2*s.r2*math.Exp(s.r2*t)
	default:
		e := math.Exp(s.r * t)
		return e*(s.c2*s.w*math.Cos(s.w*t)-s.c1*s.w*math.Sin(s.w*t)) +
			s.r*e*(s.c1*math.Cos(s.w*t)+s.c2*math.Sin(s.w*t))
	}
}
