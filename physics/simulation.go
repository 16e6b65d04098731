package physics

import (
	"fmt"
	"math"
)

// Simulation models one-dimensional motion over time.
//
// Time is measured in seconds from the simulation's own start. X and DX
// must be pure: evaluating the same time twice yields the same result.
type Simulation interface {
	// X returns the position at time t.
	X(t float64) float64

	// DX returns the velocity at time t.
	DX(t float64) float64

	// Done reports whether the simulation has settled at time t. Once a
	// simulation reports done for some t, it reports done for every
	// later time.
	Done(t float64) bool
}

// Tolerance describes how close to the end state a simulation must be
// before it counts as settled.
type Tolerance struct {
	// Distance is the magnitude of position error treated as zero.
	Distance float64

	// Time is the magnitude of time error treated as zero.
	Time float64

	// Velocity is the magnitude of velocity treated as zero.
	Velocity float64
}

// DefaultTolerance is the tolerance used when none is supplied.
var DefaultTolerance = Tolerance{
	Distance: 1e-3,
	Time:     1e-3,
	Velocity: 1e-3,
}

// NearEqual reports whether a is within epsilon of b.
func NearEqual(a, b, epsilon float64) bool {
	return (a > b-epsilon) && (a < b+epsilon)
}

// NearZero reports whether a is within epsilon of zero.
func NearZero(a, epsilon float64) bool {
	return NearEqual(a, 0, epsilon)
}

// checkFinite panics if any value is NaN or infinite. The name identifies
// the constructor argument for the panic message.
func checkFinite(name string, values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("physics: %s must be finite, got %v", name, v))
		}
	}
}
