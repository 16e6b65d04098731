package animation

import (
	"fmt"
	"time"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/physics"
)

// Controller animates a single unbounded float64 value.
//
// A controller owns exactly one ticker for its lifetime. At any moment
// it is either idle or running one simulation; starting a new animation
// cancels the previous one. Value listeners fire on every change,
// including the final value of a finished animation.
//
// Controller is not safe for concurrent use; it lives on the frame
// goroutine like everything else in the library.
type Controller struct {
	ticker      *Ticker
	value       float64
	sim         physics.Simulation
	lastElapsed float64
	completion  *Completion
	listeners   motion.Listeners
	disposed    bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithValue sets the controller's initial value.
func WithValue(v float64) ControllerOption {
	return func(c *Controller) { c.value = v }
}

// NewController creates an idle controller whose ticker is bound to
// vsync. The value range is unbounded: scroll offsets routinely run
// past their extents mid-animation.
func NewController(vsync TickerProvider, opts ...ControllerOption) *Controller {
	if vsync == nil {
		panic("animation: NewController requires a TickerProvider")
	}
	c := &Controller{}
	c.ticker = vsync.CreateTicker(c.tick)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the current value.
func (c *Controller) Value() float64 { return c.value }

// SetValue stops any running animation (cancelled) and jumps to v,
// notifying listeners.
func (c *Controller) SetValue(v float64) {
	c.cancelCurrent()
	c.sim = nil
	c.value = v
	c.listeners.Notify()
}

// Velocity returns the velocity of the current or just-finished
// simulation, or 0 if the controller has been stopped or never animated.
func (c *Controller) Velocity() float64 {
	if c.sim == nil {
		return 0
	}
	return c.sim.DX(c.lastElapsed)
}

// Animating reports whether a simulation is currently ticking.
func (c *Controller) Animating() bool { return c.ticker.Active() }

// AddListener registers a value-change listener and returns its remover.
func (c *Controller) AddListener(fn func()) (remove func()) {
	return c.listeners.Add(fn)
}

// AnimateWith drives the value with the given simulation until it
// reports done. The returned completion resolves naturally on settle,
// or as cancelled if the animation is pre-empted or the controller
// disposed.
func (c *Controller) AnimateWith(sim physics.Simulation) *Completion {
	if c.disposed {
		panic("animation: AnimateWith on a disposed controller")
	}
	if sim == nil {
		panic("animation: AnimateWith requires a simulation")
	}
	c.cancelCurrent()
	c.sim = sim
	c.lastElapsed = 0
	c.completion = NewCompletion()
	c.value = sim.X(0)
	c.ticker.Start()
	c.listeners.Notify()
	return c.completion
}

// AnimateTo tweens from the current value to target over duration along
// curve. Duration must be strictly positive; a zero or negative duration
// is a programming error and panics.
func (c *Controller) AnimateTo(target float64, duration time.Duration, curve Curve) *Completion {
	if duration <= 0 {
		panic(fmt.Sprintf("animation: AnimateTo requires a positive duration, got %v", duration))
	}
	if curve == nil {
		curve = Linear
	}
	return c.AnimateWith(newInterpolationSimulation(c.value, target, duration, curve))
}

// Stop cancels the running animation, if any, leaving the value where
// it is. The pending completion resolves as cancelled.
func (c *Controller) Stop() {
	c.cancelCurrent()
	c.sim = nil
}

// Dispose stops the ticker permanently. The ticker is stopped before
// anything else, so a pending natural completion can never fire after
// disposal.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.ticker.Dispose()
	if c.completion != nil {
		comp := c.completion
		c.completion = nil
		comp.Resolve(false)
	}
	c.listeners.Clear()
}

// cancelCurrent stops ticking and resolves any pending completion as
// cancelled.
func (c *Controller) cancelCurrent() {
	c.ticker.Stop()
	if c.completion != nil {
		comp := c.completion
		c.completion = nil
		comp.Resolve(false)
	}
}

// tick runs once per frame while animating.
func (c *Controller) tick(elapsed time.Duration) {
	t := elapsed.Seconds()
	c.lastElapsed = t
	c.value = c.sim.X(t)
	if c.sim.Done(t) {
		// Stop ticking before resolving: completion callbacks may start
		// a new animation on this same controller.
		c.ticker.Stop()
		comp := c.completion
		c.completion = nil
		c.listeners.Notify()
		if comp != nil {
			// A listener may have disposed the controller or started a
			// new animation; the settle was then pre-empted, not natural.
			comp.Resolve(!c.disposed && c.completion == nil)
		}
		return
	}
	c.listeners.Notify()
}

// interpolationSimulation adapts a (from, to, duration, curve) tween to
// the physics.Simulation interface so AnimateTo and AnimateWith share
// one ticking path. Velocity is a numeric derivative of the eased
// position.
type interpolationSimulation struct {
	from, to float64
	duration float64
	curve    Curve
}

func newInterpolationSimulation(from, to float64, duration time.Duration, curve Curve) *interpolationSimulation {
	return &interpolationSimulation{
		from:     from,
		to:       to,
		duration: duration.Seconds(),
		curve:    curve,
	}
}

func (s *interpolationSimulation) X(t float64) float64 {
	p := clampUnit(t / s.duration)
	return s.from + (s.to-s.from)*s.curve.Transform(p)
}

func (s *interpolationSimulation) DX(t float64) float64 {
	const epsilon = 1e-4
	return (s.X(t+epsilon) - s.X(t-epsilon)) / (2 * epsilon)
}

func (s *interpolationSimulation) Done(t float64) bool {
	return t >= s.duration
}
