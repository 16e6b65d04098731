package scroll

import "time"

// DragStartDetails describes the moment a drag gesture is recognized.
type DragStartDetails struct {
	// Timestamp is when the triggering pointer event occurred. The zero
	// value means no timestamp is available.
	Timestamp time.Time

	// Position is the pointer coordinate along the scroll axis, in the
	// viewport's local space.
	Position float64
}

// DragUpdateDetails describes one pointer movement during a drag.
type DragUpdateDetails struct {
	// Timestamp is when the pointer event occurred. The zero value means
	// no timestamp is available, which disables the time-based drag
	// heuristics (momentum retention, motion-start thresholding).
	Timestamp time.Time

	// PrimaryDelta is the pointer movement along the scroll axis since
	// the previous update. Positive values follow the axis direction on
	// screen, not the offset: for a downward axis a positive delta is
	// the finger moving down, which scrolls the content up.
	PrimaryDelta float64
}

// DragEndDetails describes the release that ends a drag.
type DragEndDetails struct {
	// Timestamp is when the pointer was released. The zero value means
	// no timestamp is available.
	Timestamp time.Time

	// PrimaryVelocity is the pointer velocity along the scroll axis at
	// release, in pixels per second, using the same sign convention as
	// DragUpdateDetails.PrimaryDelta.
	PrimaryVelocity float64
}
