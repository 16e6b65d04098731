// Package animation provides frame scheduling and value animation for
// the motion library.
//
// # Scheduling Model
//
// Everything is single-threaded and cooperative. A [Scheduler] owns the
// frame clock: some driver — a render loop, a terminal event loop, a test
// — calls [Scheduler.Tick] with a monotonically increasing timestamp, and
// the scheduler synchronously runs every active [Ticker]. No code ever
// blocks waiting for a frame; "animating" means having an active ticker
// whose callback will run inside the next Tick.
//
// # Controllers
//
// A [Controller] animates a single unbounded float64 value. It can run
// any [physics.Simulation] ([Controller.AnimateWith]) or tween to a
// target over a fixed duration along a [Curve]
// ([Controller.AnimateTo]). Both return a [Completion] that resolves
// naturally when the simulation settles, or as cancelled when the
// animation is pre-empted or the controller disposed. Disposal stops the
// ticker first, so a disposed controller can never fire a natural
// completion afterwards.
package animation
