package scroll

import (
	"math"

	"github.com/gogpu/motion/physics"
)

// Physics decides how a scroll position responds to user input and to
// boundaries: whether drags register, how deltas are attenuated, where
// the hard edges are, and what simulation resolves residual motion.
// Implementations are stateless value objects; one instance may serve
// many positions.
type Physics interface {
	// ShouldAcceptUserOffset reports whether a drag may move the
	// position described by m.
	ShouldAcceptUserOffset(m Metrics) bool

	// ApplyPhysicsToUserOffset transforms a drag delta before it reaches
	// the offset, for example to add overscroll resistance. The sign of
	// offset follows DragUpdateDetails.PrimaryDelta.
	ApplyPhysicsToUserOffset(m Metrics, offset float64) float64

	// ApplyBoundaryConditions returns the part of a proposed move from
	// m.Pixels to value that the boundary forbids. Zero means the move
	// is allowed in full; the returned overscroll is subtracted before
	// the offset is stored.
	ApplyBoundaryConditions(m Metrics, value float64) float64

	// CreateBallisticSimulation returns the simulation that resolves
	// residual velocity at m, or nil if the position should simply stop.
	CreateBallisticSimulation(m Metrics, velocity float64) physics.Simulation

	// MinFlingVelocity is the release speed below which a drag ends in a
	// stop rather than a fling.
	MinFlingVelocity() float64

	// MaxFlingVelocity caps the speed at which a fling may start.
	MaxFlingVelocity() float64

	// CarriedMomentum converts the velocity of an interrupted activity
	// into the velocity a subsequent drag carries.
	CarriedMomentum(existingVelocity float64) float64

	// DragStartDistanceMotionThreshold is the motion-start distance
	// threshold for drags, or nil for none.
	DragStartDistanceMotionThreshold() *float64

	// Tolerance is the settling tolerance for simulations created by
	// this physics.
	Tolerance() physics.Tolerance
}

// Standard fling velocity bounds, in pixels per second.
const (
	minFlingVelocity = 50.0
	maxFlingVelocity = 8000.0
)

// DefaultScrollSpring is the spring used to pull an overscrolled
// position back into range. Slightly overdamped so the settle has no
// visible wobble.
var DefaultScrollSpring = physics.NewSpringWithDampingRatio(0.5, 100, 1.1)

// ClampingPhysics keeps the offset strictly inside the scrollable
// range: drags stop dead at the extents and flings decelerate with a
// platform-style friction curve. The one way to be out of range is a
// dimension change, which the ballistic resolution answers with a
// spring back to the nearest extent.
type ClampingPhysics struct {
	// Tol overrides the settling tolerance; zero value means
	// physics.DefaultTolerance.
	Tol physics.Tolerance
}

func (p ClampingPhysics) ShouldAcceptUserOffset(m Metrics) bool {
	return m.MinExtent != m.MaxExtent || m.OutOfRange()
}

func (p ClampingPhysics) ApplyPhysicsToUserOffset(_ Metrics, offset float64) float64 {
	return offset
}

func (p ClampingPhysics) ApplyBoundaryConditions(m Metrics, value float64) float64 {
	switch {
	case value < m.Pixels && m.Pixels <= m.MinExtent:
		// Already at or past the leading edge, moving further out.
		return value - m.Pixels
	case m.MaxExtent <= m.Pixels && m.Pixels < value:
		// Already at or past the trailing edge, moving further out.
		return value - m.Pixels
	case value < m.MinExtent && m.MinExtent < m.Pixels:
		// In range, crossing the leading edge this move.
		return value - m.MinExtent
	case m.Pixels < m.MaxExtent && m.MaxExtent < value:
		// In range, crossing the trailing edge this move.
		return value - m.MaxExtent
	}
	return 0
}

// outOfRangeBeyond reports whether the offset is out of range by more
// than epsilon. Ballistic resolution uses this rather than a strict
// range check: a settled spring leaves the offset a hair outside the
// extent, and relaunching a simulation for that residue would keep the
// position scrolling forever.
func outOfRangeBeyond(m Metrics, epsilon float64) bool {
	return m.Pixels < m.MinExtent-epsilon || m.Pixels > m.MaxExtent+epsilon
}

func (p ClampingPhysics) CreateBallisticSimulation(m Metrics, velocity float64) physics.Simulation {
	tol := p.Tolerance()
	if outOfRangeBeyond(m, tol.Distance) {
		end := m.MaxExtent
		if m.Pixels < m.MinExtent {
			end = m.MinExtent
		}
		return physics.NewSpringSimulation(DefaultScrollSpring, m.Pixels, end,
			math.Min(0, velocity), tol)
	}
	if math.Abs(velocity) < tol.Velocity {
		return nil
	}
	if velocity > 0 && m.Pixels >= m.MaxExtent {
		return nil
	}
	if velocity < 0 && m.Pixels <= m.MinExtent {
		return nil
	}
	return physics.NewClampingSimulation(m.Pixels, velocity, 0, tol)
}

func (p ClampingPhysics) MinFlingVelocity() float64 { return minFlingVelocity }
func (p ClampingPhysics) MaxFlingVelocity() float64 { return maxFlingVelocity }

func (p ClampingPhysics) CarriedMomentum(float64) float64 { return 0 }

func (p ClampingPhysics) DragStartDistanceMotionThreshold() *float64 { return nil }

func (p ClampingPhysics) Tolerance() physics.Tolerance {
	if p.Tol == (physics.Tolerance{}) {
		return physics.DefaultTolerance
	}
	return p.Tol
}

// bouncingDragThreshold is the motion-start distance threshold for
// BouncingPhysics drags.
var bouncingDragThreshold = 3.5

// BouncingPhysics lets the offset run past the extents under
// progressive resistance and springs it back on release. Flings
// preserve momentum across interruption: stopping a fast fling and
// flinging again accelerates.
type BouncingPhysics struct {
	// Tol overrides the settling tolerance; zero value means
	// physics.DefaultTolerance.
	Tol physics.Tolerance
}

func (p BouncingPhysics) ShouldAcceptUserOffset(Metrics) bool {
	// Even an unscrollable viewport accepts drags so the user gets the
	// overscroll stretch as feedback.
	return true
}

// frictionFactor is the multiplier applied to drag deltas as a function
// of how far past the extent the position already is, expressed as a
// fraction of the viewport.
func (p BouncingPhysics) frictionFactor(overscrollFraction float64) float64 {
	return 0.52 * math.Pow(1-overscrollFraction, 2)
}

func (p BouncingPhysics) ApplyPhysicsToUserOffset(m Metrics, offset float64) float64 {
	if !m.OutOfRange() {
		return offset
	}
	overscrollPastStart := math.Max(m.MinExtent-m.Pixels, 0)
	overscrollPastEnd := math.Max(m.Pixels-m.MaxExtent, 0)
	overscrollPast := math.Max(overscrollPastStart, overscrollPastEnd)
	// Moving back toward the range gets the friction it will have once
	// the move lands, so easing out feels symmetric with pushing in.
	easing := (overscrollPastStart > 0 && offset < 0) ||
		(overscrollPastEnd > 0 && offset > 0)
	var friction float64
	if easing {
		friction = p.frictionFactor((overscrollPast - math.Abs(offset)) / m.ViewportDimension)
	} else {
		friction = p.frictionFactor(overscrollPast / m.ViewportDimension)
	}
	return sign(offset) * applyBouncingFriction(overscrollPast, math.Abs(offset), friction)
}

// applyBouncingFriction attenuates absDelta by gamma for the portion of
// the move inside the existing overscroll, and passes the remainder
// through untouched.
func applyBouncingFriction(extentOutside, absDelta, gamma float64) float64 {
	total := 0.0
	if extentOutside > 0 {
		deltaToLimit := extentOutside / gamma
		if absDelta < deltaToLimit {
			return absDelta * gamma
		}
		total += extentOutside
		absDelta -= deltaToLimit
	}
	return total + absDelta
}

// ApplyBoundaryConditions never forbids motion; the spring in the
// ballistic phase is what brings the offset home.
func (p BouncingPhysics) ApplyBoundaryConditions(Metrics, float64) float64 { return 0 }

func (p BouncingPhysics) CreateBallisticSimulation(m Metrics, velocity float64) physics.Simulation {
	tol := p.Tolerance()
	if math.Abs(velocity) >= tol.Velocity || outOfRangeBeyond(m, tol.Distance) {
		return physics.NewBouncingSimulation(physics.DefaultBouncingSpring,
			m.Pixels, velocity, m.MinExtent, m.MaxExtent, tol)
	}
	return nil
}

// MinFlingVelocity is raised over the clamping default: brief swipes
// that barely move should settle rather than drift.
func (p BouncingPhysics) MinFlingVelocity() float64 { return minFlingVelocity * 2 }

func (p BouncingPhysics) MaxFlingVelocity() float64 { return maxFlingVelocity }

// CarriedMomentum grows sublinearly with the interrupted velocity, so
// repeated flicks build speed without running away.
func (p BouncingPhysics) CarriedMomentum(existingVelocity float64) float64 {
	return sign(existingVelocity) *
		math.Min(0.000816*math.Pow(math.Abs(existingVelocity), 1.967), 40000)
}

func (p BouncingPhysics) DragStartDistanceMotionThreshold() *float64 {
	return &bouncingDragThreshold
}

func (p BouncingPhysics) Tolerance() physics.Tolerance {
	if p.Tol == (physics.Tolerance{}) {
		return physics.DefaultTolerance
	}
	return p.Tol
}
