package scroll

import (
	"time"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/animation"
)

// Controller is the application-facing handle on scrolling. Positions
// attach to it as their scrollables come and go; offset commands fan
// out to every attached position, and offset changes fan back in to the
// controller's listeners.
//
// Most controllers spend their life attached to exactly one position,
// and the singular accessors (Position, Offset) insist on that. The
// plural operations (JumpTo, AnimateTo) work with any number attached.
type Controller struct {
	initialOffset  float64
	createPosition func(cfg PositionConfig) *Position

	positions []*Position
	removers  map[*Position]func()
	listeners motion.Listeners
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithInitialOffset sets the offset that positions created through
// CreatePosition start at.
func WithInitialOffset(offset float64) ControllerOption {
	return func(c *Controller) { c.initialOffset = offset }
}

// WithPositionFactory overrides how CreatePosition builds positions,
// for embedders with a Position subclass of their own.
func WithPositionFactory(factory func(cfg PositionConfig) *Position) ControllerOption {
	return func(c *Controller) { c.createPosition = factory }
}

// NewController creates a controller with nothing attached.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		createPosition: NewPosition,
		removers:       make(map[*Position]func()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreatePosition builds a position for a scrollable that will attach to
// this controller, seeded with the controller's initial offset.
func (c *Controller) CreatePosition(cfg PositionConfig) *Position {
	cfg.InitialPixels = c.initialOffset
	return c.createPosition(cfg)
}

// Attach registers p with the controller. Attaching the same position
// twice is a programming error.
func (c *Controller) Attach(p *Position) {
	if p == nil {
		panic("scroll: Attach requires a position")
	}
	if _, ok := c.removers[p]; ok {
		panic("scroll: position already attached to this controller")
	}
	c.positions = append(c.positions, p)
	c.removers[p] = p.AddListener(c.listeners.Notify)
	motion.Logger().Info("position attached", "positions", len(c.positions))
}

// Detach unregisters p. Detaching a position that is not attached is a
// programming error.
func (c *Controller) Detach(p *Position) {
	remove, ok := c.removers[p]
	if !ok {
		panic("scroll: position not attached to this controller")
	}
	if p.IsScrolling() {
		motion.Logger().Warn("detaching a scrolling position", "pixels", p.Pixels())
	}
	remove()
	delete(c.removers, p)
	for i, attached := range c.positions {
		if attached == p {
			c.positions = append(c.positions[:i], c.positions[i+1:]...)
			break
		}
	}
	motion.Logger().Info("position detached", "positions", len(c.positions))
}

// HasClients reports whether any position is attached.
func (c *Controller) HasClients() bool { return len(c.positions) > 0 }

// Positions returns the attached positions.
func (c *Controller) Positions() []*Position {
	out := make([]*Position, len(c.positions))
	copy(out, c.positions)
	return out
}

// Position returns the single attached position. It panics when zero or
// more than one position is attached; use Positions for the fan-out
// cases.
func (c *Controller) Position() *Position {
	switch len(c.positions) {
	case 0:
		panic("scroll: controller not attached to any scroll views")
	case 1:
		return c.positions[0]
	}
	panic("scroll: controller attached to multiple scroll views")
}

// Offset returns the offset of the single attached position.
func (c *Controller) Offset() float64 { return c.Position().Pixels() }

// AddListener registers a listener that fires whenever any attached
// position's offset changes, and returns its remover.
func (c *Controller) AddListener(fn func()) (remove func()) {
	return c.listeners.Add(fn)
}

// JumpTo jumps every attached position to value. At least one position
// must be attached.
func (c *Controller) JumpTo(value float64) {
	if len(c.positions) == 0 {
		panic("scroll: controller not attached to any scroll views")
	}
	// Iterate a copy: jumping can detach a position mid-loop.
	for _, p := range c.Positions() {
		p.JumpTo(value)
	}
}

// AnimateTo animates every attached position to offset. The returned
// completion resolves once every per-position animation has, naturally
// only if all of them finished naturally. At least one position must be
// attached.
func (c *Controller) AnimateTo(offset float64, duration time.Duration, curve animation.Curve) *animation.Completion {
	if len(c.positions) == 0 {
		panic("scroll: controller not attached to any scroll views")
	}
	completions := make([]*animation.Completion, 0, len(c.positions))
	for _, p := range c.Positions() {
		completions = append(completions, p.AnimateTo(offset, duration, curve))
	}
	return animation.JoinCompletions(completions...)
}

// Dispose detaches every position. The positions themselves stay alive;
// their owners dispose them.
func (c *Controller) Dispose() {
	for _, p := range c.Positions() {
		c.Detach(p)
	}
	c.listeners.Clear()
}
