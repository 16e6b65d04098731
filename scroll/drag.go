package scroll

import (
	"fmt"
	"math"
	"time"
)

const (
	// momentumRetainStationaryThreshold is how long the pointer may sit
	// still before carried fling momentum is forfeited.
	momentumRetainStationaryThreshold = 20 * time.Millisecond

	// momentumRetainVelocityThresholdFactor: the release velocity must
	// be at least this fraction of the carried velocity for the two to
	// be added.
	momentumRetainVelocityThresholdFactor = 0.5

	// motionStoppedDurationThreshold is how long the pointer must be
	// stationary before the motion-start threshold re-arms.
	motionStoppedDurationThreshold = 50 * time.Millisecond

	// bigThresholdBreakDistance: a single update at least this large
	// breaks through the motion-start threshold at full size.
	bigThresholdBreakDistance = 24.0
)

// dragDetails is the union of gesture detail records a DragController
// can hold as its most recent event.
type dragDetails interface {
	isDragDetails()
}

func (DragStartDetails) isDragDetails()  {}
func (DragUpdateDetails) isDragDetails() {}
func (DragEndDetails) isDragDetails()    {}

// DragConfig configures a [DragController].
type DragConfig struct {
	// Delegate receives the scroll effects of the drag. Required.
	Delegate ActivityDelegate

	// Details describes the recognizing pointer event.
	Details DragStartDetails

	// OnDragCanceled, if non-nil, runs when the drag is torn down
	// without the gesture side ending it.
	OnDragCanceled func()

	// CarriedVelocity is residual velocity from an interrupted fling,
	// added back at release if the new fling agrees with it.
	CarriedVelocity float64

	// MotionStartDistanceThreshold, if non-nil, is the cumulative
	// distance the pointer must move after a pause before offsets flow
	// again. Must be strictly positive when set.
	MotionStartDistanceThreshold *float64
}

// DragController turns a stream of pointer events into delegate calls:
// Update into ApplyUserOffset, End and Cancel into GoBallistic. It owns
// the fiddly parts of touch feel — carried momentum and the
// motion-start distance threshold — so [DragActivity] stays a thin
// state-machine shell around it.
type DragController struct {
	delegate       ActivityDelegate
	onDragCanceled func()

	carriedVelocity              float64
	motionStartDistanceThreshold float64
	hasThreshold                 bool

	retainMomentum             bool
	lastNonStationaryTimestamp time.Time

	// offsetSinceLastStop accumulates pointer travel while the
	// motion-start threshold is engaged; thresholdEngaged false means
	// motion is flowing freely.
	offsetSinceLastStop float64
	thresholdEngaged    bool

	lastDetails dragDetails
}

// NewDragController begins tracking a drag. The motion-start threshold,
// when configured, starts engaged: the gesture recognizer's own touch
// slop has just been exceeded, which does not prove deliberate motion.
func NewDragController(cfg DragConfig) *DragController {
	if cfg.Delegate == nil {
		panic("scroll: NewDragController requires a delegate")
	}
	if cfg.MotionStartDistanceThreshold != nil && *cfg.MotionStartDistanceThreshold <= 0 {
		panic(fmt.Sprintf("scroll: motion start distance threshold must be positive, got %v",
			*cfg.MotionStartDistanceThreshold))
	}
	c := &DragController{
		delegate:                   cfg.Delegate,
		onDragCanceled:             cfg.OnDragCanceled,
		carriedVelocity:            cfg.CarriedVelocity,
		retainMomentum:             cfg.CarriedVelocity != 0,
		lastNonStationaryTimestamp: cfg.Details.Timestamp,
		lastDetails:                cfg.Details,
	}
	if cfg.MotionStartDistanceThreshold != nil {
		c.motionStartDistanceThreshold = *cfg.MotionStartDistanceThreshold
		c.hasThreshold = true
		c.thresholdEngaged = true
	}
	return c
}

// Delegate returns the delegate currently receiving the drag.
func (c *DragController) Delegate() ActivityDelegate { return c.delegate }

// UpdateDelegate retargets the drag at a new delegate.
func (c *DragController) UpdateDelegate(d ActivityDelegate) {
	if d == nil {
		panic("scroll: UpdateDelegate requires a delegate")
	}
	c.delegate = d
}

func (c *DragController) reversed() bool {
	return c.delegate.AxisDirection().Reversed()
}

// maybeLoseMomentum forfeits carried momentum once the pointer has been
// stationary for too long. An absent timestamp forfeits immediately:
// without timing there is no way to tell a twitch from a pause.
func (c *DragController) maybeLoseMomentum(offset float64, timestamp time.Time) {
	if c.retainMomentum && offset == 0 &&
		(timestamp.IsZero() ||
			timestamp.Sub(c.lastNonStationaryTimestamp) > momentumRetainStationaryThreshold) {
		c.retainMomentum = false
	}
}

// adjustForScrollStartThreshold gates offsets behind the motion-start
// distance threshold. While engaged, travel accumulates invisibly; once
// the cumulative distance clears the threshold the gate opens, with the
// breaking update attenuated unless it was decisively large.
func (c *DragController) adjustForScrollStartThreshold(offset float64, timestamp time.Time) float64 {
	if timestamp.IsZero() {
		// The heuristic needs timing; without it, pass everything.
		return offset
	}
	if offset == 0 {
		if c.hasThreshold && !c.thresholdEngaged &&
			timestamp.Sub(c.lastNonStationaryTimestamp) > motionStoppedDurationThreshold {
			// Enough hesitation: re-arm the threshold.
			c.thresholdEngaged = true
			c.offsetSinceLastStop = 0
		}
		return 0
	}
	if !c.thresholdEngaged {
		return offset
	}
	c.offsetSinceLastStop += offset
	if math.Abs(c.offsetSinceLastStop) <= c.motionStartDistanceThreshold {
		return 0
	}
	c.thresholdEngaged = false
	if math.Abs(offset) > bigThresholdBreakDistance {
		// The pointer is moving fast: no need to ease into motion.
		return offset
	}
	return math.Min(c.motionStartDistanceThreshold/3, math.Abs(offset)) * sign(offset)
}

// Update applies one pointer movement to the delegate.
func (c *DragController) Update(details DragUpdateDetails) {
	c.lastDetails = details
	offset := details.PrimaryDelta
	if offset != 0 {
		c.lastNonStationaryTimestamp = details.Timestamp
	}
	c.maybeLoseMomentum(offset, details.Timestamp)
	offset = c.adjustForScrollStartThreshold(offset, details.Timestamp)
	if offset == 0 {
		return
	}
	if c.reversed() {
		offset = -offset
	}
	c.delegate.ApplyUserOffset(offset)
}

// End releases the drag, handing the release velocity (plus any
// retained carried momentum) to the delegate for ballistic resolution.
func (c *DragController) End(details DragEndDetails) {
	// A positive pointer velocity moves content with the axis, which
	// decreases the offset.
	velocity := -details.PrimaryVelocity
	if c.reversed() {
		velocity = -velocity
	}
	c.lastDetails = details
	if c.retainMomentum {
		// Build momentum only when the new fling agrees with the carried
		// one and is not substantially weaker.
		sameDirection := sign(velocity) == sign(c.carriedVelocity)
		strongEnough := math.Abs(velocity) >
			math.Abs(c.carriedVelocity)*momentumRetainVelocityThresholdFactor
		if sameDirection && strongEnough {
			velocity += c.carriedVelocity
		}
	}
	c.delegate.GoBallistic(velocity)
}

// Cancel abandons the drag without a fling.
func (c *DragController) Cancel() {
	c.delegate.GoBallistic(0)
}

// Dispose detaches the controller from the gesture stream.
func (c *DragController) Dispose() {
	c.lastDetails = nil
	if c.onDragCanceled != nil {
		c.onDragCanceled()
	}
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DragActivity is the state-machine face of an active drag. The
// position installs it alongside the [DragController] that actually
// receives the pointer events; the activity's job is to answer the
// state queries and to decorate notifications with the controller's
// most recent gesture details.
type DragActivity struct {
	baseActivity
	controller *DragController
}

// NewDragActivity creates the activity for controller.
func NewDragActivity(delegate ActivityDelegate, controller *DragController, notify NotificationHandler) *DragActivity {
	if controller == nil {
		panic("scroll: NewDragActivity requires a controller")
	}
	return &DragActivity{
		baseActivity: newBaseActivity(delegate, notify),
		controller:   controller,
	}
}

func (a *DragActivity) DispatchScrollStart(m Metrics) {
	d, ok := a.controller.lastDetails.(DragStartDetails)
	if !ok {
		panic("scroll: drag started without start details")
	}
	a.notify(StartNotification{Metrics: m, DragDetails: &d})
}

func (a *DragActivity) DispatchScrollUpdate(m Metrics, delta float64) {
	d, ok := a.controller.lastDetails.(DragUpdateDetails)
	if !ok {
		panic("scroll: drag moved without update details")
	}
	a.notify(UpdateNotification{Metrics: m, ScrollDelta: delta, DragDetails: &d})
}

func (a *DragActivity) DispatchOverscroll(m Metrics, overscroll float64) {
	d, ok := a.controller.lastDetails.(DragUpdateDetails)
	if !ok {
		panic("scroll: drag overscrolled without update details")
	}
	a.notify(OverscrollNotification{Metrics: m, Overscroll: overscroll, DragDetails: &d})
}

func (a *DragActivity) DispatchScrollEnd(m Metrics) {
	// The end details may not have arrived yet if the drag is being
	// pre-empted rather than released.
	n := EndNotification{Metrics: m}
	if d, ok := a.controller.lastDetails.(DragEndDetails); ok {
		n.DragDetails = &d
	}
	a.notify(n)
}

func (a *DragActivity) ShouldIgnorePointer() bool { return true }
func (a *DragActivity) IsScrolling() bool         { return true }

// Velocity is zero: during a drag the pointer drives the offset, the
// activity does not.
func (a *DragActivity) Velocity() float64 { return 0 }

func (a *DragActivity) Dispose() {
	a.controller = nil
	a.baseActivity.Dispose()
}
