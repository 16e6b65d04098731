package scroll

import "github.com/gogpu/motion"

// ActivityDelegate is the narrow view of a scroll position that
// activities manipulate. [Position] implements it; tests substitute
// their own.
type ActivityDelegate interface {
	// AxisDirection is the direction in which the offset increases.
	AxisDirection() motion.AxisDirection

	// SetPixels moves the offset to the given value, subject to the
	// boundary conditions, and returns the overscroll: the portion of
	// the requested move that was not applied. Zero means the move
	// landed in full.
	SetPixels(pixels float64) float64

	// ApplyUserOffset applies a drag delta, routed through the physics
	// so resistance can attenuate it.
	ApplyUserOffset(delta float64)

	// GoIdle ends the current activity and installs an idle one.
	GoIdle()

	// GoBallistic ends the current activity and starts ballistic motion
	// with the given starting velocity, or goes idle if the physics has
	// no work to do.
	GoBallistic(velocity float64)
}

// Activity is one state of the scroll state machine. Exactly one
// activity governs a position at a time; installing a new one disposes
// the old.
type Activity interface {
	// Delegate returns the position this activity drives.
	Delegate() ActivityDelegate

	// UpdateDelegate points the activity at a new delegate, used when an
	// activity outlives the position that created it (see
	// [Position.Absorb]).
	UpdateDelegate(d ActivityDelegate)

	// DispatchScrollStart, DispatchScrollUpdate, DispatchOverscroll and
	// DispatchScrollEnd emit the corresponding notification. The
	// position calls these so the activity can attach whatever gesture
	// details it holds.
	DispatchScrollStart(m Metrics)
	DispatchScrollUpdate(m Metrics, delta float64)
	DispatchOverscroll(m Metrics, overscroll float64)
	DispatchScrollEnd(m Metrics)

	// ShouldIgnorePointer reports whether pointer events should be
	// blocked from reaching the scrolled content while this activity is
	// current.
	ShouldIgnorePointer() bool

	// IsScrolling reports whether the offset is logically in motion.
	// Transitions of this bit across activity changes produce the
	// start/end notifications.
	IsScrolling() bool

	// Velocity is the activity's current self-driven rate of offset
	// change in pixels per second, 0 when the activity is not driving
	// the offset itself.
	Velocity() float64

	// ResetActivity restarts the activity, used when the physics or
	// delegate configuration changed under it.
	ResetActivity()

	// ApplyNewDimensions reacts to changed content or viewport
	// dimensions.
	ApplyNewDimensions()

	// Dispose releases the activity's resources. The activity must not
	// be used afterwards; disposing twice is a programming error.
	Dispose()
}

// baseActivity supplies the delegate plumbing and default notification
// dispatch shared by every activity.
type baseActivity struct {
	delegate ActivityDelegate
	notify   NotificationHandler
}

func newBaseActivity(delegate ActivityDelegate, notify NotificationHandler) baseActivity {
	if delegate == nil {
		panic("scroll: activity requires a delegate")
	}
	if notify == nil {
		notify = func(Notification) {}
	}
	return baseActivity{delegate: delegate, notify: notify}
}

func (a *baseActivity) Delegate() ActivityDelegate { return a.delegate }

func (a *baseActivity) UpdateDelegate(d ActivityDelegate) {
	if d == nil {
		panic("scroll: UpdateDelegate requires a delegate")
	}
	a.delegate = d
}

func (a *baseActivity) DispatchScrollStart(m Metrics) {
	a.notify(StartNotification{Metrics: m})
}

func (a *baseActivity) DispatchScrollUpdate(m Metrics, delta float64) {
	a.notify(UpdateNotification{Metrics: m, ScrollDelta: delta})
}

func (a *baseActivity) DispatchOverscroll(m Metrics, overscroll float64) {
	a.notify(OverscrollNotification{Metrics: m, Overscroll: overscroll})
}

func (a *baseActivity) DispatchScrollEnd(m Metrics) {
	a.notify(EndNotification{Metrics: m})
}

func (a *baseActivity) ResetActivity()      {}
func (a *baseActivity) ApplyNewDimensions() {}

func (a *baseActivity) Dispose() {
	if a.delegate == nil {
		panic("scroll: activity disposed twice")
	}
	a.delegate = nil
}

// IdleActivity is the resting state: nothing is moving and nothing is
// pending.
type IdleActivity struct {
	baseActivity
}

// NewIdleActivity creates an idle activity bound to delegate.
func NewIdleActivity(delegate ActivityDelegate, notify NotificationHandler) *IdleActivity {
	return &IdleActivity{baseActivity: newBaseActivity(delegate, notify)}
}

// ApplyNewDimensions restarts ballistic resolution so the physics can
// react to the new extents, for example by springing back in range.
func (a *IdleActivity) ApplyNewDimensions() {
	a.delegate.GoBallistic(0)
}

func (a *IdleActivity) ShouldIgnorePointer() bool { return false }
func (a *IdleActivity) IsScrolling() bool         { return false }
func (a *IdleActivity) Velocity() float64         { return 0 }

// HoldController lets the gesture side release a hold established with
// [Position.Hold].
type HoldController interface {
	// Cancel releases the hold, returning the position to ballistic
	// resolution.
	Cancel()
}

// HoldActivity pins the offset while a pointer is down but not yet
// dragging. It preserves the look of being stopped without blocking
// hit-testing, so a tap can both stop a fling and reach the content.
type HoldActivity struct {
	baseActivity
	onHoldCanceled func()
}

// NewHoldActivity creates a hold activity. onHoldCanceled, if non-nil,
// runs when the hold is torn down for any reason.
func NewHoldActivity(delegate ActivityDelegate, notify NotificationHandler, onHoldCanceled func()) *HoldActivity {
	return &HoldActivity{
		baseActivity:   newBaseActivity(delegate, notify),
		onHoldCanceled: onHoldCanceled,
	}
}

// Cancel releases the hold.
func (a *HoldActivity) Cancel() {
	a.delegate.GoBallistic(0)
}

func (a *HoldActivity) ShouldIgnorePointer() bool { return false }
func (a *HoldActivity) IsScrolling() bool         { return false }
func (a *HoldActivity) Velocity() float64         { return 0 }

func (a *HoldActivity) Dispose() {
	if a.onHoldCanceled != nil {
		a.onHoldCanceled()
	}
	a.baseActivity.Dispose()
}
