// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termscroll

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/scroll"
)

// DefaultCellSize is the virtual pixel height of one terminal cell.
const DefaultCellSize = 16.0

// defaultWheelCells is how many cells one wheel notch scrolls.
const defaultWheelCells = 3.0

// Driver translates tcell mouse events into scroll gestures on a
// position. Press pins the offset (hold), movement becomes a drag,
// release flings at the tracked velocity, and wheel notches glide with
// a short driven animation.
//
// The driver owns the frame scheduler; the application advances it with
// [Driver.Step] while [Driver.Animating] reports pending motion.
type Driver struct {
	position  *scroll.Position
	scheduler *animation.Scheduler

	cellSize   float64
	wheelCells float64

	tracker VelocityTracker
	drag    *scroll.DragController
	hold    scroll.HoldController
	pressed bool
	lastRow int

	wheelTarget float64
	wheelActive bool

	epoch time.Time
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithCellSize sets the virtual pixel size of one terminal cell.
func WithCellSize(px float64) DriverOption {
	return func(d *Driver) { d.cellSize = px }
}

// WithWheelCells sets how many cells a wheel notch scrolls.
func WithWheelCells(cells float64) DriverOption {
	return func(d *Driver) { d.wheelCells = cells }
}

// NewDriver creates a driver for position. The scheduler must be the
// one the position uses as its Vsync, so Step advances the position's
// animations; passing nil creates a fresh scheduler for positions that
// have not been built yet.
func NewDriver(position *scroll.Position, scheduler *animation.Scheduler, opts ...DriverOption) *Driver {
	if position == nil {
		panic("termscroll: NewDriver requires a position")
	}
	if scheduler == nil {
		scheduler = animation.NewScheduler()
	}
	d := &Driver{
		position:   position,
		scheduler:  scheduler,
		cellSize:   DefaultCellSize,
		wheelCells: defaultWheelCells,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scheduler returns the frame scheduler driving the position's
// animations.
func (d *Driver) Scheduler() *animation.Scheduler { return d.scheduler }

// Position returns the driven position.
func (d *Driver) Position() *scroll.Position { return d.position }

// Animating reports whether any scroll animation is in flight; the
// application keeps pumping frames while it is.
func (d *Driver) Animating() bool { return d.scheduler.HasActiveTickers() }

// Step advances the frame clock to the given wall time. The first call
// establishes the epoch.
func (d *Driver) Step(now time.Time) {
	if d.epoch.IsZero() {
		d.epoch = now
	}
	d.scheduler.Tick(now.Sub(d.epoch))
}

// HandleMouse feeds one tcell mouse event to the driver, returning
// whether the event was consumed.
func (d *Driver) HandleMouse(ev *tcell.EventMouse) bool {
	_, row := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		d.wheelBy(-d.wheelCells)
		return true
	case buttons&tcell.WheelDown != 0:
		d.wheelBy(d.wheelCells)
		return true
	case buttons&tcell.Button1 != 0:
		if !d.pressed {
			d.pointerDown(ev.When(), row)
		} else {
			d.pointerMove(ev.When(), row)
		}
		return true
	default:
		if d.pressed {
			d.pointerUp(ev.When())
			return true
		}
	}
	return false
}

func (d *Driver) pointerDown(t time.Time, row int) {
	d.pressed = true
	d.lastRow = row
	d.tracker.Reset()
	d.tracker.AddSample(t, float64(row)*d.cellSize)
	d.hold = d.position.Hold(func() { d.hold = nil })
}

func (d *Driver) pointerMove(t time.Time, row int) {
	if row == d.lastRow && d.drag == nil {
		// Still inside the one-cell touch slop.
		return
	}
	if d.drag == nil {
		d.drag = d.position.Drag(scroll.DragStartDetails{
			Timestamp: t,
			Position:  float64(row) * d.cellSize,
		}, func() { d.drag = nil })
	}
	delta := float64(row-d.lastRow) * d.cellSize
	d.lastRow = row
	d.tracker.AddSample(t, float64(row)*d.cellSize)
	d.drag.Update(scroll.DragUpdateDetails{Timestamp: t, PrimaryDelta: delta})
}

func (d *Driver) pointerUp(t time.Time) {
	d.pressed = false
	switch {
	case d.drag != nil:
		d.drag.End(scroll.DragEndDetails{
			Timestamp:       t,
			PrimaryVelocity: d.flingVelocity(t),
		})
	case d.hold != nil:
		d.hold.Cancel()
	}
}

// flingVelocity estimates the pointer velocity as of the release time
// and applies the physics' fling bounds: too slow counts as a stop, too
// fast is capped.
func (d *Driver) flingVelocity(t time.Time) float64 {
	v := d.tracker.VelocityAt(t)
	physics := d.position.Physics()
	if math.Abs(v) < physics.MinFlingVelocity() {
		return 0
	}
	if limit := physics.MaxFlingVelocity(); math.Abs(v) > limit {
		v = math.Copysign(limit, v)
	}
	return v
}

// wheelBy glides the offset by the given number of cells. Successive
// notches accumulate on the in-flight target rather than the current
// offset, so spinning the wheel covers real distance.
func (d *Driver) wheelBy(cells float64) {
	if d.pressed {
		return
	}
	m := d.position.Metrics()
	target := d.position.Pixels()
	if d.wheelActive {
		target = d.wheelTarget
	}
	target += cells * d.cellSize
	target = math.Max(m.MinExtent, math.Min(target, m.MaxExtent))

	d.wheelTarget = target
	comp := d.position.AnimateTo(target, 120*time.Millisecond, animation.Decelerate)
	d.wheelActive = true
	comp.WhenDone(func() {
		if d.wheelTarget == target {
			d.wheelActive = false
		}
	})
}
