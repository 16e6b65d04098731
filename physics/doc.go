// Package physics provides time-parameterized one-dimensional motion
// simulations for scrolling and animation.
//
// A [Simulation] maps elapsed time in seconds to a position and a
// velocity. Simulations are immutable once constructed and are always
// evaluated on absolute time from their own start, which makes them
// trivially replayable and testable.
//
// The package contains:
//
//   - [FrictionSimulation]: exponential velocity decay, the inner part of
//     a touch fling.
//   - [SpringSimulation]: damped harmonic spring in all three damping
//     regimes, used to settle an offset back into range.
//   - [ClampingSimulation]: a fling that decelerates to a full stop
//     within its scroll range, matching the feel of hard-edged scrolling.
//   - [BouncingSimulation]: friction while in range with a spring
//     hand-off past either extent, matching the feel of rubber-band
//     scrolling.
//
// All constructors treat invalid inputs (non-finite values, degenerate
// coefficients) as programmer errors and panic.
package physics
