package scroll

import (
	"testing"

	"github.com/gogpu/motion"
)

func TestIdleActivity_Queries(t *testing.T) {
	a := NewIdleActivity(&recordDelegate{}, nil)
	if a.ShouldIgnorePointer() {
		t.Error("idle blocks pointers")
	}
	if a.IsScrolling() {
		t.Error("idle reports scrolling")
	}
	if a.Velocity() != 0 {
		t.Error("idle reports velocity")
	}
}

func TestIdleActivity_NewDimensionsResolveBallistically(t *testing.T) {
	d := &recordDelegate{}
	a := NewIdleActivity(d, nil)
	a.ApplyNewDimensions()
	if len(d.ballistics) != 1 || d.ballistics[0] != 0 {
		t.Errorf("ballistics = %v, want [0]", d.ballistics)
	}
}

func TestHoldActivity_CancelReleasesHold(t *testing.T) {
	d := &recordDelegate{}
	a := NewHoldActivity(d, nil, nil)
	a.Cancel()
	if len(d.ballistics) != 1 || d.ballistics[0] != 0 {
		t.Errorf("ballistics = %v, want [0]", d.ballistics)
	}
}

func TestHoldActivity_DisposeRunsOnHoldCanceled(t *testing.T) {
	canceled := false
	a := NewHoldActivity(&recordDelegate{}, nil, func() { canceled = true })
	a.Dispose()
	if !canceled {
		t.Error("onHoldCanceled did not run")
	}
}

func TestActivity_DoubleDisposePanics(t *testing.T) {
	a := NewIdleActivity(&recordDelegate{}, nil)
	a.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("second Dispose did not panic")
		}
	}()
	a.Dispose()
}

func TestActivity_UpdateDelegateRetargets(t *testing.T) {
	first := &recordDelegate{direction: motion.AxisDirectionDown}
	second := &recordDelegate{direction: motion.AxisDirectionUp}
	a := NewIdleActivity(first, nil)
	a.UpdateDelegate(second)
	if a.Delegate() != ActivityDelegate(second) {
		t.Error("delegate not retargeted")
	}
}

func TestBaseActivity_DispatchesPlainNotifications(t *testing.T) {
	var got []Notification
	a := NewIdleActivity(&recordDelegate{}, func(n Notification) { got = append(got, n) })
	m := Metrics{MaxExtent: 100, Pixels: 10, ViewportDimension: 50}

	a.DispatchScrollStart(m)
	a.DispatchScrollUpdate(m, 5)
	a.DispatchOverscroll(m, -3)
	a.DispatchScrollEnd(m)

	if len(got) != 4 {
		t.Fatalf("dispatched %d notifications, want 4", len(got))
	}
	if n, ok := got[1].(UpdateNotification); !ok || n.ScrollDelta != 5 || n.DragDetails != nil {
		t.Errorf("update notification = %#v", got[1])
	}
	if n, ok := got[2].(OverscrollNotification); !ok || n.Overscroll != -3 {
		t.Errorf("overscroll notification = %#v", got[2])
	}
}
