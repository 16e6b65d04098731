package scroll

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/physics"
)

// PositionConfig configures a [Position].
type PositionConfig struct {
	// Physics decides edge behavior and ballistic motion. Required.
	Physics Physics

	// Vsync supplies tickers for ballistic and driven activities.
	// Required.
	Vsync animation.TickerProvider

	// Direction is the direction in which the offset increases. The
	// zero value is motion.AxisDirectionUp; most vertical scrollables
	// want motion.AxisDirectionDown.
	Direction motion.AxisDirection

	// OnNotification receives the position's scroll notifications.
	// Optional.
	OnNotification NotificationHandler

	// SetIgnorePointer, if non-nil, is called when the current
	// activity's pointer-blocking requirement changes, so the embedding
	// view can gate hit-testing.
	SetIgnorePointer func(ignore bool)

	// InitialPixels is the starting offset.
	InitialPixels float64
}

// Position owns one scrollable's offset. It is the concrete
// [ActivityDelegate]: it holds the current [Activity], applies boundary
// conditions through its [Physics], and turns activity transitions into
// notifications. All methods must be called from the frame goroutine.
type Position struct {
	physics          Physics
	vsync            animation.TickerProvider
	direction        motion.AxisDirection
	notify           NotificationHandler
	setIgnorePointer func(bool)

	pixels            float64
	minExtent         float64
	maxExtent         float64
	viewportDimension float64
	haveDimensions    bool

	activity             Activity
	currentDrag          *DragController
	heldPreviousVelocity float64

	listeners motion.Listeners
}

// NewPosition creates a position resting at cfg.InitialPixels with an
// idle activity installed.
func NewPosition(cfg PositionConfig) *Position {
	if cfg.Physics == nil {
		panic("scroll: NewPosition requires a Physics")
	}
	if cfg.Vsync == nil {
		panic("scroll: NewPosition requires a TickerProvider")
	}
	notify := cfg.OnNotification
	if notify == nil {
		notify = func(Notification) {}
	}
	p := &Position{
		physics:          cfg.Physics,
		vsync:            cfg.Vsync,
		direction:        cfg.Direction,
		notify:           notify,
		setIgnorePointer: cfg.SetIgnorePointer,
		pixels:           cfg.InitialPixels,
	}
	p.GoIdle()
	return p
}

// Pixels returns the current offset.
func (p *Position) Pixels() float64 { return p.pixels }

// Physics returns the position's physics policy.
func (p *Position) Physics() Physics { return p.physics }

// Metrics snapshots the position.
func (p *Position) Metrics() Metrics {
	return Metrics{
		MinExtent:         p.minExtent,
		MaxExtent:         p.maxExtent,
		Pixels:            p.pixels,
		ViewportDimension: p.viewportDimension,
		Direction:         p.direction,
	}
}

// Activity returns the current activity. Never nil on a live position.
func (p *Position) Activity() Activity { return p.activity }

// IsScrolling reports whether the offset is logically in motion.
func (p *Position) IsScrolling() bool { return p.activity.IsScrolling() }

// AddListener registers an offset-change listener and returns its
// remover.
func (p *Position) AddListener(fn func()) (remove func()) {
	return p.listeners.Add(fn)
}

// AxisDirection implements ActivityDelegate.
func (p *Position) AxisDirection() motion.AxisDirection { return p.direction }

// SetPixels implements ActivityDelegate: it proposes the new offset to
// the boundary conditions, stores what they allow, and returns the
// overscroll they refused.
func (p *Position) SetPixels(pixels float64) float64 {
	if pixels == p.pixels {
		return 0
	}
	overscroll := p.physics.ApplyBoundaryConditions(p.Metrics(), pixels)
	oldPixels := p.pixels
	p.pixels = pixels - overscroll
	if p.pixels != oldPixels {
		p.listeners.Notify()
		p.didUpdateScrollPositionBy(p.pixels - oldPixels)
	}
	if overscroll != 0 {
		p.didOverscrollBy(overscroll)
		return overscroll
	}
	return 0
}

// forcePixels bypasses the boundary conditions. JumpTo uses it; nothing
// else should.
func (p *Position) forcePixels(value float64) {
	p.pixels = value
	p.listeners.Notify()
}

// ApplyUserOffset implements ActivityDelegate. A positive delta is the
// user pulling the content with the axis, which scrolls backwards, so
// the offset decreases.
func (p *Position) ApplyUserOffset(delta float64) {
	p.SetPixels(p.pixels - p.physics.ApplyPhysicsToUserOffset(p.Metrics(), delta))
}

// GoIdle implements ActivityDelegate.
func (p *Position) GoIdle() {
	p.beginActivity(NewIdleActivity(p, p.notify))
}

// GoBallistic implements ActivityDelegate: it asks the physics for a
// simulation to resolve velocity from here, and goes idle if there is
// nothing to resolve.
func (p *Position) GoBallistic(velocity float64) {
	if sim := p.physics.CreateBallisticSimulation(p.Metrics(), velocity); sim != nil {
		p.beginActivity(NewBallisticActivity(p, p.notify, sim, p.vsync))
	} else {
		p.GoIdle()
	}
}

// beginActivity installs next as the current activity, disposing the
// old one and emitting the start/end notifications implied by the
// transition. The swap is atomic from the activities' point of view: no
// code path observes the position with two live activities.
func (p *Position) beginActivity(next Activity) {
	if next == nil {
		return
	}
	wasScrolling, oldIgnorePointer := false, false
	if p.activity != nil {
		motion.Logger().Debug("activity handoff",
			"from", fmt.Sprintf("%T", p.activity),
			"to", fmt.Sprintf("%T", next),
			"pixels", p.pixels)
		oldIgnorePointer = p.activity.ShouldIgnorePointer()
		wasScrolling = p.activity.IsScrolling()
		if wasScrolling && !next.IsScrolling() {
			// Dispatched through the outgoing activity so it can attach
			// its final gesture details.
			p.didEndScroll()
		}
		p.activity.Dispose()
	}
	p.heldPreviousVelocity = 0
	p.activity = next
	if oldIgnorePointer != next.ShouldIgnorePointer() && p.setIgnorePointer != nil {
		p.setIgnorePointer(next.ShouldIgnorePointer())
	}
	if !wasScrolling && next.IsScrolling() {
		p.didStartScroll()
	}
	if p.currentDrag != nil {
		p.currentDrag.Dispose()
		p.currentDrag = nil
	}
}

func (p *Position) didStartScroll() {
	p.activity.DispatchScrollStart(p.Metrics())
}

func (p *Position) didUpdateScrollPositionBy(delta float64) {
	p.activity.DispatchScrollUpdate(p.Metrics(), delta)
}

func (p *Position) didOverscrollBy(value float64) {
	p.activity.DispatchOverscroll(p.Metrics(), value)
}

func (p *Position) didEndScroll() {
	p.activity.DispatchScrollEnd(p.Metrics())
}

// Hold stops any motion and pins the offset until the returned
// controller is cancelled, preserving the interrupted velocity so a
// drag that follows can carry it as momentum.
func (p *Position) Hold(onHoldCanceled func()) HoldController {
	previousVelocity := p.activity.Velocity()
	hold := NewHoldActivity(p, p.notify, onHoldCanceled)
	p.beginActivity(hold)
	p.heldPreviousVelocity = previousVelocity
	return hold
}

// Drag starts a drag from details. The returned controller receives
// the rest of the gesture; the drag ends when its End or Cancel is
// called, or when another activity pre-empts it (which runs
// onDragCanceled).
func (p *Position) Drag(details DragStartDetails, onDragCanceled func()) *DragController {
	drag := NewDragController(DragConfig{
		Delegate:                     p,
		Details:                      details,
		OnDragCanceled:               onDragCanceled,
		CarriedVelocity:              p.physics.CarriedMomentum(p.heldPreviousVelocity),
		MotionStartDistanceThreshold: p.physics.DragStartDistanceMotionThreshold(),
	})
	p.beginActivity(NewDragActivity(p, drag, p.notify))
	p.currentDrag = drag
	return drag
}

// JumpTo moves the offset to value immediately, with start/update/end
// notifications but no animation, then lets the physics settle the
// result (which matters if value is out of range).
func (p *Position) JumpTo(value float64) {
	p.GoIdle()
	if p.pixels != value {
		oldPixels := p.pixels
		p.forcePixels(value)
		p.didStartScroll()
		p.didUpdateScrollPositionBy(p.pixels - oldPixels)
		p.didEndScroll()
	}
	p.GoBallistic(0)
}

// AnimateTo animates the offset to value over duration along curve. If
// the target is already within the physics tolerance of the current
// offset it degenerates to JumpTo and resolves immediately.
func (p *Position) AnimateTo(value float64, duration time.Duration, curve animation.Curve) *animation.Completion {
	if physics.NearEqual(value, p.pixels, p.physics.Tolerance().Distance) {
		p.JumpTo(value)
		return animation.ResolvedCompletion()
	}
	activity := NewDrivenActivity(p, p.notify, p.pixels, value, duration, curve, p.vsync)
	done := activity.Done()
	p.beginActivity(activity)
	return done
}

// ApplyViewportDimension records a new viewport extent.
func (p *Position) ApplyViewportDimension(dimension float64) {
	if p.viewportDimension == dimension {
		return
	}
	p.viewportDimension = dimension
	p.applyNewDimensions()
}

// ApplyContentDimensions records new content extents. Min must not
// exceed max.
func (p *Position) ApplyContentDimensions(minExtent, maxExtent float64) {
	if minExtent > maxExtent {
		panic("scroll: ApplyContentDimensions requires min <= max")
	}
	if p.minExtent == minExtent && p.maxExtent == maxExtent && p.haveDimensions {
		return
	}
	p.minExtent = minExtent
	p.maxExtent = maxExtent
	p.haveDimensions = true
	p.applyNewDimensions()
}

func (p *Position) applyNewDimensions() {
	p.activity.ApplyNewDimensions()
}

// SetPhysics swaps the physics policy and restarts the current activity
// against it.
func (p *Position) SetPhysics(ph Physics) {
	if ph == nil {
		panic("scroll: SetPhysics requires a Physics")
	}
	p.physics = ph
	p.activity.ResetActivity()
}

// Absorb takes over other's state, activity included. The activity is
// retargeted at this position rather than restarted, so a fling
// survives the hand-off seamlessly. Afterwards other is disposed.
func (p *Position) Absorb(other *Position) {
	if other == nil || other.activity == nil {
		panic("scroll: Absorb requires a live position")
	}
	p.pixels = other.pixels
	p.minExtent = other.minExtent
	p.maxExtent = other.maxExtent
	p.viewportDimension = other.viewportDimension
	p.haveDimensions = other.haveDimensions

	if p.activity != nil {
		p.activity.Dispose()
	}
	p.activity = other.activity
	p.activity.UpdateDelegate(p)
	p.currentDrag = other.currentDrag
	if p.currentDrag != nil {
		p.currentDrag.UpdateDelegate(p)
	}
	other.activity = nil
	other.currentDrag = nil
	other.listeners.Clear()
}

// MoveTo is a convenience front for JumpTo clamped to the scrollable
// range.
func (p *Position) MoveTo(value float64) {
	p.JumpTo(math.Max(p.minExtent, math.Min(value, p.maxExtent)))
}

// Dispose tears the position down. The current activity is disposed;
// the position must not be used afterwards.
func (p *Position) Dispose() {
	if p.currentDrag != nil {
		p.currentDrag.Dispose()
		p.currentDrag = nil
	}
	if p.activity != nil {
		p.activity.Dispose()
		p.activity = nil
	}
	p.listeners.Clear()
}
