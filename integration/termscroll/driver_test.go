// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termscroll

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/scroll"
)

// newTestDriver builds a driver over a 10-row viewport of 100 rows of
// content, resting at offset 500.
func newTestDriver(t *testing.T, physics scroll.Physics) (*Driver, *animation.Scheduler) {
	t.Helper()
	s := animation.NewScheduler()
	pos := scroll.NewPosition(scroll.PositionConfig{
		Physics:       physics,
		Vsync:         s,
		Direction:     motion.AxisDirectionDown,
		InitialPixels: 500,
	})
	pos.ApplyViewportDimension(10 * DefaultCellSize)
	pos.ApplyContentDimensions(0, 90*DefaultCellSize)
	return NewDriver(pos, s), s
}

// pump advances the scheduler until motion stops.
func pump(t *testing.T, s *animation.Scheduler, d *Driver) {
	t.Helper()
	now := time.Duration(0)
	for now < 30*time.Second && d.Animating() {
		now += 16 * time.Millisecond
		s.Tick(now)
	}
	if d.Animating() {
		t.Fatal("animation did not settle")
	}
}

func TestDriver_DragScrollsByCells(t *testing.T) {
	d, _ := newTestDriver(t, scroll.ClampingPhysics{})
	t0 := trackerEpoch

	d.pointerDown(t0, 5)
	d.pointerMove(t0.Add(10*time.Millisecond), 3)

	// The pointer moved up two rows, so the content follows it up and
	// the offset grows by two cells.
	if got := d.Position().Pixels(); got != 500+2*DefaultCellSize {
		t.Errorf("pixels = %v, want %v", got, 500+2*DefaultCellSize)
	}

	// A slow release stops dead.
	d.pointerUp(t0.Add(300 * time.Millisecond))
	if d.Position().IsScrolling() {
		t.Error("position still scrolling after a slow release")
	}
}

func TestDriver_TapWithinSlopLeavesOffsetAlone(t *testing.T) {
	d, _ := newTestDriver(t, scroll.ClampingPhysics{})
	t0 := trackerEpoch

	d.pointerDown(t0, 5)
	d.pointerMove(t0.Add(10*time.Millisecond), 5) // same row: inside slop
	d.pointerUp(t0.Add(20 * time.Millisecond))

	if got := d.Position().Pixels(); got != 500 {
		t.Errorf("pixels = %v, want untouched 500", got)
	}
	if d.Position().IsScrolling() {
		t.Error("position scrolling after a tap")
	}
}

func TestDriver_ReleaseFlings(t *testing.T) {
	d, s := newTestDriver(t, scroll.ClampingPhysics{})
	t0 := trackerEpoch

	// A steady downward swipe: two rows every 10ms.
	d.pointerDown(t0, 0)
	for i := 1; i <= 4; i++ {
		d.pointerMove(t0.Add(time.Duration(i)*10*time.Millisecond), 2*i)
	}
	start := d.Position().Pixels()
	d.pointerUp(t0.Add(40 * time.Millisecond))

	if !d.Position().IsScrolling() {
		t.Fatal("release did not start a fling")
	}
	pump(t, s, d)
	if got := d.Position().Pixels(); got >= start {
		t.Errorf("pixels = %v, want fling to carry below %v", got, start)
	}
}

func TestDriver_FlingVelocityBounds(t *testing.T) {
	d, _ := newTestDriver(t, scroll.ClampingPhysics{})
	t0 := trackerEpoch

	// Slower than MinFlingVelocity reads as a stop.
	d.tracker.Reset()
	d.tracker.AddSample(t0, 0)
	d.tracker.AddSample(t0.Add(100*time.Millisecond), 2)
	if got := d.flingVelocity(t0.Add(100 * time.Millisecond)); got != 0 {
		t.Errorf("flingVelocity = %v, want 0 below the fling threshold", got)
	}

	// Faster than MaxFlingVelocity is capped, sign preserved.
	d.tracker.Reset()
	d.tracker.AddSample(t0, 0)
	d.tracker.AddSample(t0.Add(10*time.Millisecond), -200)
	want := -(scroll.ClampingPhysics{}).MaxFlingVelocity()
	if got := d.flingVelocity(t0.Add(10 * time.Millisecond)); got != want {
		t.Errorf("flingVelocity = %v, want capped at %v", got, want)
	}
}

func TestDriver_PressDuringFlingHoldsThenSettles(t *testing.T) {
	d, s := newTestDriver(t, scroll.ClampingPhysics{})
	t0 := trackerEpoch

	d.Position().GoBallistic(-2000)
	s.Tick(16 * time.Millisecond)
	held := d.Position().Pixels()

	d.pointerDown(t0, 5)
	s.Tick(200 * time.Millisecond)
	if got := d.Position().Pixels(); got != held {
		t.Errorf("pixels drifted to %v while held, want pinned at %v", got, held)
	}

	d.pointerUp(t0.Add(100 * time.Millisecond))
	pump(t, s, d)
	if got := d.Position().Pixels(); got != held {
		t.Errorf("pixels = %v after tap-to-stop, want %v", got, held)
	}
}

func TestDriver_WheelGlidesAndAccumulates(t *testing.T) {
	d, s := newTestDriver(t, scroll.ClampingPhysics{})

	d.wheelBy(d.wheelCells)
	d.wheelBy(d.wheelCells) // second notch lands mid-glide

	pump(t, s, d)
	want := 500 + 2*defaultWheelCells*DefaultCellSize
	if got := d.Position().Pixels(); math.Abs(got-want) > 0.5 {
		t.Errorf("pixels = %v, want two notches to reach %v", got, want)
	}
}

func TestDriver_WheelClampsToRange(t *testing.T) {
	d, s := newTestDriver(t, scroll.ClampingPhysics{})
	d.Position().JumpTo(0)

	d.wheelBy(-d.wheelCells)
	pump(t, s, d)
	if got := d.Position().Pixels(); got != 0 {
		t.Errorf("pixels = %v, want wheel-up at the top to stay at 0", got)
	}
}

func TestDriver_WheelIgnoredWhilePressed(t *testing.T) {
	d, _ := newTestDriver(t, scroll.ClampingPhysics{})
	d.pointerDown(trackerEpoch, 5)
	d.wheelBy(d.wheelCells)
	if d.wheelActive {
		t.Error("wheel glide started while the pointer was down")
	}
	if got := d.Position().Pixels(); got != 500 {
		t.Errorf("pixels = %v, want 500", got)
	}
}

func TestDriver_HandleMouseRouting(t *testing.T) {
	d, s := newTestDriver(t, scroll.ClampingPhysics{})

	if d.HandleMouse(tcell.NewEventMouse(0, 5, tcell.ButtonNone, 0)) {
		t.Error("bare motion consumed without a press")
	}
	if !d.HandleMouse(tcell.NewEventMouse(0, 5, tcell.WheelDown, 0)) {
		t.Error("wheel event not consumed")
	}
	pump(t, s, d)
	if got := d.Position().Pixels(); got <= 500 {
		t.Errorf("pixels = %v, want wheel-down to move past 500", got)
	}

	if !d.HandleMouse(tcell.NewEventMouse(0, 5, tcell.Button1, 0)) {
		t.Error("press not consumed")
	}
	if !d.HandleMouse(tcell.NewEventMouse(0, 5, tcell.ButtonNone, 0)) {
		t.Error("release not consumed")
	}
	if d.pressed {
		t.Error("driver still pressed after release")
	}
}

func TestDriver_StepEstablishesEpoch(t *testing.T) {
	d, _ := newTestDriver(t, scroll.ClampingPhysics{})
	d.Position().GoBallistic(-2000)

	t0 := trackerEpoch
	d.Step(t0) // epoch: no time has passed yet
	before := d.Position().Pixels()
	d.Step(t0.Add(100 * time.Millisecond))
	if got := d.Position().Pixels(); got >= before {
		t.Errorf("pixels = %v, want motion after stepping 100ms from %v", got, before)
	}
}

func TestDriver_RequiresPosition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewDriver(nil, nil) did not panic")
		}
	}()
	NewDriver(nil, nil)
}
