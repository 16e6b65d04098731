package animation

// Curve maps animation progress to eased progress.
//
// Transform takes t in [0, 1] (values outside are clamped) and returns
// the eased fraction. Curves must map 0 to 0 and 1 to 1.
type Curve interface {
	Transform(t float64) float64
}

// linearCurve is the identity easing.
type linearCurve struct{}

func (linearCurve) Transform(t float64) float64 { return clampUnit(t) }

// decelerateCurve starts fast and flattens out, the feel of content
// gliding to a stop.
type decelerateCurve struct{}

func (decelerateCurve) Transform(t float64) float64 {
	t = 1 - clampUnit(t)
	return 1 - t*t
}

// Standard curves.
var (
	// Linear is the identity curve.
	Linear Curve = linearCurve{}

	// Decelerate eases out quadratically.
	Decelerate Curve = decelerateCurve{}

	// Ease starts slowly, speeds up, then ends slowly.
	Ease = NewCubic(0.25, 0.1, 0.25, 1)

	// EaseIn starts slowly and ends at full speed.
	EaseIn = NewCubic(0.42, 0, 1, 1)

	// EaseOut starts at full speed and ends slowly.
	EaseOut = NewCubic(0, 0, 0.58, 1)

	// EaseInOut starts and ends slowly.
	EaseInOut = NewCubic(0.42, 0, 0.58, 1)

	// FastOutSlowIn is the standard material motion curve.
	FastOutSlowIn = NewCubic(0.4, 0, 0.2, 1)
)

// Cubic is a third-order Bézier easing curve through (0,0), (X1,Y1),
// (X2,Y2), (1,1). Transform solves the parametric form for the given
// time by bisection and returns the corresponding eased value.
type Cubic struct {
	X1, Y1, X2, Y2 float64
}

// NewCubic creates a cubic Bézier curve from its two control points.
func NewCubic(x1, y1, x2, y2 float64) Cubic {
	return Cubic{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// cubicErrorBound is the bisection termination width. Tighter than the
// visible resolution of any animation.
const cubicErrorBound = 1e-6

// evaluateCubic evaluates a one-dimensional cubic Bézier with inner
// control values a and b at parameter m.
func evaluateCubic(a, b, m float64) float64 {
	return 3*a*(1-m)*(1-m)*m + 3*b*(1-m)*m*m + m*m*m
}

// Transform returns the eased value at time t.
func (c Cubic) Transform(t float64) float64 {
	t = clampUnit(t)
	if t == 0 || t == 1 {
		return t
	}
	lo, hi := 0.0, 1.0
	for hi-lo > cubicErrorBound {
		mid := (lo + hi) / 2
		if evaluateCubic(c.X1, c.X2, mid) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	m := (lo + hi) / 2
	return evaluateCubic(c.Y1, c.Y2, m)
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
