package motion

// Axis is one of the two dimensions a viewport can scroll along.
type Axis int

const (
	// Horizontal is the axis along which reading order flows.
	Horizontal Axis = iota

	// Vertical is the up/down axis.
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// AxisDirection identifies which way scroll offsets grow along an axis.
//
// For AxisDirectionDown, an offset of zero shows the top of the content
// and increasing offsets reveal content further down; AxisDirectionUp is
// the reverse, and likewise for Left/Right on the horizontal axis.
type AxisDirection int

const (
	// AxisDirectionUp: increasing offsets reveal content above.
	AxisDirectionUp AxisDirection = iota

	// AxisDirectionRight: increasing offsets reveal content to the right.
	AxisDirectionRight

	// AxisDirectionDown: increasing offsets reveal content below.
	AxisDirectionDown

	// AxisDirectionLeft: increasing offsets reveal content to the left.
	AxisDirectionLeft
)

// Axis returns the axis the direction runs along.
func (d AxisDirection) Axis() Axis {
	switch d {
	case AxisDirectionUp, AxisDirectionDown:
		return Vertical
	}
	return Horizontal
}

// Reversed reports whether the direction runs against the coordinate
// axis: up and left grow offsets opposite to increasing screen
// coordinates. Drag handling uses this to fix its sign convention.
func (d AxisDirection) Reversed() bool {
	return d == AxisDirectionUp || d == AxisDirectionLeft
}

// Flip returns the opposite direction on the same axis.
func (d AxisDirection) Flip() AxisDirection {
	switch d {
	case AxisDirectionUp:
		return AxisDirectionDown
	case AxisDirectionDown:
		return AxisDirectionUp
	case AxisDirectionLeft:
		return AxisDirectionRight
	}
	return AxisDirectionLeft
}

// String returns the direction name.
func (d AxisDirection) String() string {
	switch d {
	case AxisDirectionUp:
		return "up"
	case AxisDirectionRight:
		return "right"
	case AxisDirectionDown:
		return "down"
	case AxisDirectionLeft:
		return "left"
	}
	return "unknown"
}
