package scroll

import (
	"fmt"
	"math"

	"github.com/gogpu/motion"
)

// Metrics is an immutable snapshot of a scroll position: where the
// offset sits relative to the scrollable extents and the viewport.
//
// Pixels grows in the axis direction: for AxisDirectionDown, larger
// values mean content further down has been scrolled into view.
type Metrics struct {
	// MinExtent and MaxExtent bound the in-range values of Pixels.
	// MinExtent <= MaxExtent always holds.
	MinExtent float64
	MaxExtent float64

	// Pixels is the current offset. It may lie outside
	// [MinExtent, MaxExtent] while overscrolled.
	Pixels float64

	// ViewportDimension is the extent of the viewport along the scroll
	// axis.
	ViewportDimension float64

	// Direction is the direction in which Pixels increases.
	Direction motion.AxisDirection
}

// Axis returns the scroll axis.
func (m Metrics) Axis() motion.Axis { return m.Direction.Axis() }

// OutOfRange reports whether Pixels is outside [MinExtent, MaxExtent].
func (m Metrics) OutOfRange() bool {
	return m.Pixels < m.MinExtent || m.Pixels > m.MaxExtent
}

// AtEdge reports whether Pixels sits exactly on either extent.
func (m Metrics) AtEdge() bool {
	return m.Pixels == m.MinExtent || m.Pixels == m.MaxExtent
}

// ExtentBefore is the amount of content scrolled off the leading edge.
func (m Metrics) ExtentBefore() float64 {
	return math.Max(m.Pixels-m.MinExtent, 0)
}

// ExtentAfter is the amount of content still beyond the trailing edge.
func (m Metrics) ExtentAfter() float64 {
	return math.Max(m.MaxExtent-m.Pixels, 0)
}

// ExtentInside is the viewport extent occupied by content, which is
// less than the viewport dimension only while overscrolled.
func (m Metrics) ExtentInside() float64 {
	return m.ViewportDimension -
		clamp(m.MinExtent-m.Pixels, 0, m.ViewportDimension) -
		clamp(m.Pixels-m.MaxExtent, 0, m.ViewportDimension)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func (m Metrics) String() string {
	return fmt.Sprintf("Metrics(%.1f in [%.1f..%.1f], viewport %.1f, %v)",
		m.Pixels, m.MinExtent, m.MaxExtent, m.ViewportDimension, m.Direction)
}
