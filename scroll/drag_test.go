package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/motion"
)

// recordDelegate captures every delegate call so tests can assert on
// exactly what a controller or activity did.
type recordDelegate struct {
	direction  motion.AxisDirection
	pixels     float64
	overscroll float64 // returned from SetPixels
	offsets    []float64
	ballistics []float64
	idles      int
}

func (d *recordDelegate) AxisDirection() motion.AxisDirection { return d.direction }

func (d *recordDelegate) SetPixels(pixels float64) float64 {
	d.pixels = pixels
	return d.overscroll
}

func (d *recordDelegate) ApplyUserOffset(delta float64) {
	d.offsets = append(d.offsets, delta)
}

func (d *recordDelegate) GoIdle() { d.idles++ }

func (d *recordDelegate) GoBallistic(velocity float64) {
	d.ballistics = append(d.ballistics, velocity)
}

var dragEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return dragEpoch.Add(time.Duration(ms) * time.Millisecond) }

func newTestDrag(d *recordDelegate, carried float64, threshold *float64) *DragController {
	return NewDragController(DragConfig{
		Delegate:                     d,
		Details:                      DragStartDetails{Timestamp: at(0)},
		CarriedVelocity:              carried,
		MotionStartDistanceThreshold: threshold,
	})
}

func TestDragController_ForwardsOffsets(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 0, nil)

	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 20})
	c.Update(DragUpdateDetails{Timestamp: at(20), PrimaryDelta: -5})

	want := []float64{20, -5}
	if len(d.offsets) != len(want) {
		t.Fatalf("offsets = %v, want %v", d.offsets, want)
	}
	for i := range want {
		if d.offsets[i] != want[i] {
			t.Errorf("offset %d = %v, want %v", i, d.offsets[i], want[i])
		}
	}
}

func TestDragController_ReversedAxisNegatesOffsets(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionUp}
	c := newTestDrag(d, 0, nil)

	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 20})

	if len(d.offsets) != 1 || d.offsets[0] != -20 {
		t.Errorf("offsets = %v, want [-20]", d.offsets)
	}
}

func TestDragController_EndNegatesPointerVelocity(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 0, nil)
	c.End(DragEndDetails{Timestamp: at(50), PrimaryVelocity: -500})

	if len(d.ballistics) != 1 || d.ballistics[0] != 500 {
		t.Errorf("ballistics = %v, want [500]", d.ballistics)
	}

	rd := &recordDelegate{direction: motion.AxisDirectionUp}
	rc := newTestDrag(rd, 0, nil)
	rc.End(DragEndDetails{Timestamp: at(50), PrimaryVelocity: -500})

	if len(rd.ballistics) != 1 || rd.ballistics[0] != -500 {
		t.Errorf("reversed ballistics = %v, want [-500]", rd.ballistics)
	}
}

func TestDragController_CarriedMomentumAddedOnAgreeingFling(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 100, nil)

	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 5})
	c.End(DragEndDetails{Timestamp: at(20), PrimaryVelocity: -80})

	if len(d.ballistics) != 1 || d.ballistics[0] != 180 {
		t.Errorf("ballistics = %v, want [180]", d.ballistics)
	}
}

func TestDragController_MomentumLostAfterStationaryPause(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 100, nil)

	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 5})
	// Stationary for 25ms, past the 20ms retention window.
	c.Update(DragUpdateDetails{Timestamp: at(35), PrimaryDelta: 0})
	c.End(DragEndDetails{Timestamp: at(40), PrimaryVelocity: -60})

	if len(d.ballistics) != 1 || d.ballistics[0] != 60 {
		t.Errorf("ballistics = %v, want [60] with momentum forfeited", d.ballistics)
	}
}

func TestDragController_WeakFlingDoesNotCollectMomentum(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 100, nil)
	// 40 is less than half the carried 100.
	c.End(DragEndDetails{Timestamp: at(10), PrimaryVelocity: -40})
	if len(d.ballistics) != 1 || d.ballistics[0] != 40 {
		t.Errorf("ballistics = %v, want [40]", d.ballistics)
	}
}

func TestDragController_OpposingFlingDoesNotCollectMomentum(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 100, nil)
	c.End(DragEndDetails{Timestamp: at(10), PrimaryVelocity: 80})
	if len(d.ballistics) != 1 || d.ballistics[0] != -80 {
		t.Errorf("ballistics = %v, want [-80]", d.ballistics)
	}
}

func TestDragController_MotionStartThresholdGatesSmallMotion(t *testing.T) {
	threshold := 10.0
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 0, &threshold)

	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 4})
	c.Update(DragUpdateDetails{Timestamp: at(20), PrimaryDelta: 4})
	if len(d.offsets) != 0 {
		t.Fatalf("offsets below threshold leaked through: %v", d.offsets)
	}

	// Cumulative travel 12 clears the threshold of 10; the breaking
	// update is attenuated to threshold/3.
	c.Update(DragUpdateDetails{Timestamp: at(30), PrimaryDelta: 4})
	if len(d.offsets) != 1 || math.Abs(d.offsets[0]-threshold/3) > 1e-12 {
		t.Fatalf("breaking offset = %v, want %v", d.offsets, threshold/3)
	}

	// Once open, offsets flow untouched.
	c.Update(DragUpdateDetails{Timestamp: at(40), PrimaryDelta: 4})
	if len(d.offsets) != 2 || d.offsets[1] != 4 {
		t.Errorf("post-threshold offset = %v, want 4", d.offsets)
	}
}

func TestDragController_ThresholdRearmsAfterMotionStops(t *testing.T) {
	threshold := 10.0
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 0, &threshold)

	// Break through with one decisive move.
	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 30})
	if len(d.offsets) != 1 || d.offsets[0] != 30 {
		t.Fatalf("big break offset = %v, want [30]", d.offsets)
	}

	// A stationary event 60ms after the last motion re-arms the gate.
	c.Update(DragUpdateDetails{Timestamp: at(70), PrimaryDelta: 0})
	c.Update(DragUpdateDetails{Timestamp: at(80), PrimaryDelta: 4})
	if len(d.offsets) != 1 {
		t.Errorf("offset after re-armed threshold leaked through: %v", d.offsets)
	}
}

func TestDragController_BigMovePassesThresholdAtFullSize(t *testing.T) {
	threshold := 10.0
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 0, &threshold)

	// 30 exceeds both the threshold and the 24px break distance.
	c.Update(DragUpdateDetails{Timestamp: at(10), PrimaryDelta: 30})
	if len(d.offsets) != 1 || d.offsets[0] != 30 {
		t.Errorf("offsets = %v, want [30] unattenuated", d.offsets)
	}
}

func TestDragController_ThresholdBypassedWithoutTimestamps(t *testing.T) {
	threshold := 10.0
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := NewDragController(DragConfig{
		Delegate:                     d,
		Details:                      DragStartDetails{},
		MotionStartDistanceThreshold: &threshold,
	})

	c.Update(DragUpdateDetails{PrimaryDelta: 2})
	if len(d.offsets) != 1 || d.offsets[0] != 2 {
		t.Errorf("offsets = %v, want [2]; the heuristic needs timestamps", d.offsets)
	}
}

func TestDragController_NonPositiveThresholdPanics(t *testing.T) {
	threshold := 0.0
	defer func() {
		if recover() == nil {
			t.Error("zero threshold did not panic")
		}
	}()
	NewDragController(DragConfig{
		Delegate:                     &recordDelegate{},
		MotionStartDistanceThreshold: &threshold,
	})
}

func TestDragController_CancelGoesBallisticAtZero(t *testing.T) {
	d := &recordDelegate{direction: motion.AxisDirectionDown}
	c := newTestDrag(d, 0, nil)
	c.Cancel()
	if len(d.ballistics) != 1 || d.ballistics[0] != 0 {
		t.Errorf("ballistics = %v, want [0]", d.ballistics)
	}
}

func TestDragController_DisposeRunsOnDragCanceled(t *testing.T) {
	canceled := false
	c := NewDragController(DragConfig{
		Delegate:       &recordDelegate{},
		OnDragCanceled: func() { canceled = true },
	})
	c.Dispose()
	if !canceled {
		t.Error("OnDragCanceled did not run")
	}
}
