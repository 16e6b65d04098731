package scroll

// Notification is a scroll lifecycle event. The concrete types are
// StartNotification, UpdateNotification, OverscrollNotification and
// EndNotification; consumers type-switch on them.
type Notification interface {
	isNotification()
}

// NotificationHandler receives scroll notifications. Handlers run
// synchronously on the frame goroutine, in dispatch order.
type NotificationHandler func(n Notification)

// StartNotification reports that a scroll has begun: the position
// transitioned from a non-scrolling activity to a scrolling one.
type StartNotification struct {
	Metrics Metrics

	// DragDetails is set when a drag started the scroll, nil for
	// programmatic starts.
	DragDetails *DragStartDetails
}

// UpdateNotification reports that the offset changed by ScrollDelta.
type UpdateNotification struct {
	Metrics Metrics

	// ScrollDelta is the applied change in pixels.
	ScrollDelta float64

	// DragDetails is set when a drag produced the change, nil for
	// ballistic or driven motion.
	DragDetails *DragUpdateDetails
}

// OverscrollNotification reports motion that the boundary conditions
// refused: Overscroll pixels were requested past the extent and not
// applied.
type OverscrollNotification struct {
	Metrics Metrics

	// Overscroll is the unapplied delta. Its sign matches the direction
	// the offset was pushed.
	Overscroll float64

	// Velocity is the speed at which the boundary was hit; zero for
	// drags, the simulation velocity for ballistic motion.
	Velocity float64

	// DragDetails is set when a drag caused the overscroll.
	DragDetails *DragUpdateDetails
}

// EndNotification reports that scrolling stopped: the position
// transitioned from a scrolling activity to a non-scrolling one.
type EndNotification struct {
	Metrics Metrics

	// DragDetails is set when the scroll ended with a pointer release
	// whose details had already arrived, nil otherwise.
	DragDetails *DragEndDetails
}

func (StartNotification) isNotification()      {}
func (UpdateNotification) isNotification()     {}
func (OverscrollNotification) isNotification() {}
func (EndNotification) isNotification()        {}
