// Package motion provides physics simulations, frame-scheduled animation,
// and input-driven scrolling for GoGPU user interfaces.
//
// # Overview
//
// motion is the interaction layer that sits beside gg the same way
// ggcanvas does: gg draws, motion moves. It turns pointer drags, flings,
// and programmatic requests into per-frame scroll offsets using the same
// single-threaded, frame-driven model the rest of the GoGPU ecosystem
// uses for rendering.
//
// # Packages
//
//   - motion (this package): shared primitives — axis directions,
//     listener registries, and the library logger.
//   - physics: time-parameterized simulations (friction, springs,
//     platform fling curves) with a shared tolerance model.
//   - animation: the frame scheduler, tickers, easing curves, and an
//     unbounded value animator that drives simulations or tweens.
//   - scroll: the scroll activity state machine — idle, hold, drag,
//     ballistic, and driven activities — plus scroll physics policies,
//     positions, and the multi-viewport scroll controller.
//   - integration/ggscroll: scrollable viewports painted through
//     gg.Context, with a GPU-backed variant over ggcanvas.
//   - integration/termscroll: kinetic scrolling for tcell terminal
//     applications.
//
// # Quick Start
//
//	sched := animation.NewScheduler()
//	pos := scroll.NewPosition(scroll.PositionConfig{
//	    Physics:   scroll.ClampingPhysics{},
//	    Vsync:     sched,
//	    Direction: motion.AxisDirectionDown,
//	})
//	pos.ApplyViewportDimension(600)
//	pos.ApplyContentDimensions(0, 2400)
//
//	// Fling at 800 px/s and let the physics settle it:
//	pos.GoBallistic(800)
//	for t := time.Duration(0); t < time.Second; t += 16 * time.Millisecond {
//	    sched.Tick(t)
//	}
//
// # Threading Model
//
// The entire library is single-threaded and cooperatively scheduled: all
// mutation happens between frame callbacks on the goroutine that pumps
// the animation.Scheduler. There is no internal locking. Drivers that
// receive input on other goroutines (for example terminal event loops)
// must funnel events onto the frame goroutine before calling in.
//
// # Errors
//
// Recoverable conditions return errors. Violated preconditions — double
// attach, accessors on an unattached controller, non-positive durations —
// are programmer errors and panic, mirroring how the library is meant to
// be used: misuse should be caught in development, not handled at runtime.
package motion

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
