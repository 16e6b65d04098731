package scroll

import (
	"testing"

	"github.com/gogpu/motion"
)

func TestMetrics_RangeQueries(t *testing.T) {
	tests := []struct {
		name       string
		m          Metrics
		outOfRange bool
		atEdge     bool
	}{
		{"inside", Metrics{MaxExtent: 100, Pixels: 50}, false, false},
		{"at min", Metrics{MaxExtent: 100, Pixels: 0}, false, true},
		{"at max", Metrics{MaxExtent: 100, Pixels: 100}, false, true},
		{"below min", Metrics{MaxExtent: 100, Pixels: -10}, true, false},
		{"above max", Metrics{MaxExtent: 100, Pixels: 110}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.OutOfRange(); got != tt.outOfRange {
				t.Errorf("OutOfRange() = %v, want %v", got, tt.outOfRange)
			}
			if got := tt.m.AtEdge(); got != tt.atEdge {
				t.Errorf("AtEdge() = %v, want %v", got, tt.atEdge)
			}
		})
	}
}

func TestMetrics_Extents(t *testing.T) {
	m := Metrics{MinExtent: 0, MaxExtent: 500, Pixels: 120, ViewportDimension: 80}
	if got := m.ExtentBefore(); got != 120 {
		t.Errorf("ExtentBefore() = %v, want 120", got)
	}
	if got := m.ExtentAfter(); got != 380 {
		t.Errorf("ExtentAfter() = %v, want 380", got)
	}
	if got := m.ExtentInside(); got != 80 {
		t.Errorf("ExtentInside() = %v, want 80", got)
	}
}

func TestMetrics_ExtentInsideShrinksWhileOverscrolled(t *testing.T) {
	m := Metrics{MinExtent: 0, MaxExtent: 500, Pixels: -30, ViewportDimension: 80}
	if got := m.ExtentInside(); got != 50 {
		t.Errorf("ExtentInside() = %v, want 50", got)
	}
	if got := m.ExtentBefore(); got != 0 {
		t.Errorf("ExtentBefore() = %v, want 0 while overscrolled at the start", got)
	}
}

func TestMetrics_Axis(t *testing.T) {
	m := Metrics{Direction: motion.AxisDirectionDown}
	if got := m.Axis(); got != motion.Vertical {
		t.Errorf("Axis() = %v, want vertical", got)
	}
}
