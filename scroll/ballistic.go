package scroll

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/physics"
)

// overscrollEpsilon separates real overscroll from floating point noise
// when a ballistic frame lands on an extent.
const overscrollEpsilon = 1e-10

// BallisticActivity drives the offset with a physics simulation,
// typically the tail of a fling or a spring-back into range. It
// self-terminates: hitting a boundary the simulation did not expect
// yields to GoIdle, and natural settling yields to GoBallistic(0) so
// the physics gets a final say on the resting position.
type BallisticActivity struct {
	baseActivity
	controller *animation.Controller
}

// NewBallisticActivity starts sim immediately on a ticker from vsync.
func NewBallisticActivity(delegate ActivityDelegate, notify NotificationHandler, sim physics.Simulation, vsync animation.TickerProvider) *BallisticActivity {
	if sim == nil {
		panic("scroll: NewBallisticActivity requires a simulation")
	}
	a := &BallisticActivity{baseActivity: newBaseActivity(delegate, notify)}
	a.controller = animation.NewController(vsync)
	a.controller.AddListener(a.tick)
	a.controller.AnimateWith(sim).WhenComplete(a.end)
	return a
}

func (a *BallisticActivity) tick() {
	value := a.controller.Value()
	if overscroll := a.delegate.SetPixels(value); math.Abs(overscroll) > overscrollEpsilon {
		// The simulation tried to leave the scrollable range and the
		// boundary refused. This activity's mandate is over.
		a.delegate.GoIdle()
	}
}

func (a *BallisticActivity) end() {
	a.delegate.GoBallistic(0)
}

func (a *BallisticActivity) DispatchOverscroll(m Metrics, overscroll float64) {
	a.notify(OverscrollNotification{Metrics: m, Overscroll: overscroll, Velocity: a.Velocity()})
}

// ResetActivity relaunches the ballistic resolution at the current
// velocity.
func (a *BallisticActivity) ResetActivity() {
	a.delegate.GoBallistic(a.Velocity())
}

// ApplyNewDimensions relaunches at the current velocity so the physics
// can re-plan against the new extents.
func (a *BallisticActivity) ApplyNewDimensions() {
	a.delegate.GoBallistic(a.Velocity())
}

func (a *BallisticActivity) ShouldIgnorePointer() bool { return true }
func (a *BallisticActivity) IsScrolling() bool         { return true }
func (a *BallisticActivity) Velocity() float64         { return a.controller.Velocity() }

func (a *BallisticActivity) Dispose() {
	// Disposing the controller first guarantees the completion can no
	// longer resolve naturally, so end never fires for a dead activity.
	a.controller.Dispose()
	a.baseActivity.Dispose()
}

// DrivenActivity animates the offset to an explicit target over a fixed
// duration and curve, for programmatic AnimateTo calls. Unlike
// ballistic motion it knows its destination in advance; like ballistic
// motion it yields to GoIdle the moment a boundary interferes.
type DrivenActivity struct {
	baseActivity
	controller *animation.Controller
	done       *animation.Completion
}

// NewDrivenActivity starts animating from `from` to `to`. Duration must
// be strictly positive; animating over no time is a programming error
// (use JumpTo).
func NewDrivenActivity(delegate ActivityDelegate, notify NotificationHandler, from, to float64, duration time.Duration, curve animation.Curve, vsync animation.TickerProvider) *DrivenActivity {
	if duration <= 0 {
		panic(fmt.Sprintf("scroll: NewDrivenActivity requires a positive duration, got %v", duration))
	}
	a := &DrivenActivity{
		baseActivity: newBaseActivity(delegate, notify),
		done:         animation.NewCompletion(),
	}
	a.controller = animation.NewController(vsync, animation.WithValue(from))
	a.controller.AddListener(a.tick)
	a.controller.AnimateTo(to, duration, curve).WhenComplete(a.end)
	return a
}

// Done resolves when the animation finishes: naturally on reaching the
// target, cancelled if the activity is interrupted first.
func (a *DrivenActivity) Done() *animation.Completion { return a.done }

func (a *DrivenActivity) tick() {
	if a.delegate.SetPixels(a.controller.Value()) != 0 {
		a.delegate.GoIdle()
	}
}

func (a *DrivenActivity) end() {
	// Exiting at the tween's residual velocity lets the physics carry
	// the motion onward instead of stopping dead.
	velocity := a.controller.Velocity()
	a.done.Resolve(true)
	a.delegate.GoBallistic(velocity)
}

func (a *DrivenActivity) DispatchOverscroll(m Metrics, overscroll float64) {
	a.notify(OverscrollNotification{Metrics: m, Overscroll: overscroll, Velocity: a.Velocity()})
}

func (a *DrivenActivity) ShouldIgnorePointer() bool { return true }
func (a *DrivenActivity) IsScrolling() bool         { return true }
func (a *DrivenActivity) Velocity() float64         { return a.controller.Velocity() }

func (a *DrivenActivity) Dispose() {
	a.done.Resolve(false)
	a.controller.Dispose()
	a.baseActivity.Dispose()
}
