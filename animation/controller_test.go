package animation

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/motion/physics"
)

// pump advances the scheduler in fixed steps until the controller goes
// idle or the deadline passes, returning the final timestamp.
func pump(s *Scheduler, c *Controller, step, deadline time.Duration) time.Duration {
	now := s.Now()
	for now < deadline {
		now += step
		s.Tick(now)
		if !c.Animating() {
			break
		}
	}
	return now
}

func TestController_AnimateWithFriction(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	sim := physics.NewFrictionSimulation(0.135, 0, 1000, physics.DefaultTolerance)
	comp := c.AnimateWith(sim)

	if !c.Animating() {
		t.Fatal("controller not animating after AnimateWith")
	}
	if c.Value() != 0 {
		t.Errorf("Value() = %v at start, want 0", c.Value())
	}

	pump(s, c, 16*time.Millisecond, 20*time.Second)

	if c.Animating() {
		t.Fatal("controller still animating after simulation settled")
	}
	if !comp.Completed() || !comp.Natural() {
		t.Error("completion should have resolved naturally")
	}
	if got, want := c.Value(), sim.FinalX(); math.Abs(got-want) > 1 {
		t.Errorf("final value = %v, want about %v", got, want)
	}
}

func TestController_AnimateToReachesTarget(t *testing.T) {
	s := NewScheduler()
	c := NewController(s, WithValue(100))

	comp := c.AnimateTo(500, 250*time.Millisecond, EaseInOut)
	pump(s, c, 16*time.Millisecond, time.Second)

	if got := c.Value(); math.Abs(got-500) > 1e-9 {
		t.Errorf("final value = %v, want exactly 500", got)
	}
	if !comp.Natural() {
		t.Error("tween should complete naturally")
	}
}

func TestController_AnimateToZeroDurationPanics(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)
	defer func() {
		if recover() == nil {
			t.Error("zero duration did not panic")
		}
	}()
	c.AnimateTo(10, 0, Linear)
}

func TestController_VelocityTracksSimulation(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	if c.Velocity() != 0 {
		t.Errorf("idle Velocity() = %v, want 0", c.Velocity())
	}

	sim := physics.NewFrictionSimulation(0.135, 0, 1000, physics.DefaultTolerance)
	c.AnimateWith(sim)
	s.Tick(0)
	s.Tick(100 * time.Millisecond)

	want := sim.DX(0.1)
	if got := c.Velocity(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Velocity() = %v, want %v", got, want)
	}

	c.Stop()
	if c.Velocity() != 0 {
		t.Errorf("Velocity() after Stop = %v, want 0", c.Velocity())
	}
}

func TestController_PreemptionCancelsPrevious(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	first := c.AnimateWith(physics.NewFrictionSimulation(0.135, 0, 1000, physics.DefaultTolerance))
	s.Tick(0)
	s.Tick(50 * time.Millisecond)

	second := c.AnimateTo(0, 100*time.Millisecond, Linear)

	if !first.Completed() || first.Natural() {
		t.Error("pre-empted animation should resolve as cancelled")
	}
	if second.Completed() {
		t.Error("new animation resolved immediately")
	}
}

func TestController_ListenersFireOnChange(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)
	notifications := 0
	remove := c.AddListener(func() { notifications++ })

	c.SetValue(42) // 1
	c.AnimateTo(100, 100*time.Millisecond, Linear)
	// AnimateWith notifies once at start.
	s.Tick(0)
	s.Tick(50 * time.Millisecond)

	if notifications < 3 {
		t.Errorf("listener fired %d times, want at least 3", notifications)
	}

	remove()
	before := notifications
	s.Tick(200 * time.Millisecond)
	if notifications != before {
		t.Error("removed listener still firing")
	}
}

func TestController_DisposeSuppressesNaturalCompletion(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	comp := c.AnimateWith(physics.NewFrictionSimulation(0.135, 0, 1000, physics.DefaultTolerance))
	naturalFired := false
	comp.WhenComplete(func() { naturalFired = true })

	s.Tick(0)
	c.Dispose()

	// The ticker is disposed before resolution, so no further frame can
	// deliver a natural completion.
	s.Tick(30 * time.Second)

	if naturalFired {
		t.Error("natural completion fired after Dispose")
	}
	if !comp.Completed() || comp.Natural() {
		t.Error("completion should resolve as cancelled on Dispose")
	}
}

func TestController_ListenerDisposingOnFinalTickCancelsCompletion(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	comp := c.AnimateTo(10, 50*time.Millisecond, Linear)
	naturalFired := false
	comp.WhenComplete(func() { naturalFired = true })

	// Dispose from inside the final frame's value notification, the way
	// a scroll position does when the finished value lands in overscroll.
	c.AddListener(func() {
		if c.Value() == 10 {
			c.Dispose()
		}
	})

	s.Tick(0)
	s.Tick(100 * time.Millisecond)

	if naturalFired {
		t.Error("natural completion fired after listener disposed the controller")
	}
	if !comp.Completed() || comp.Natural() {
		t.Error("completion should resolve as cancelled when disposal pre-empts the settle")
	}
}

func TestController_ListenerPreemptingOnFinalTickCancelsCompletion(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	comp := c.AnimateTo(10, 50*time.Millisecond, Linear)
	started := false
	c.AddListener(func() {
		if c.Value() == 10 && !started {
			started = true
			c.AnimateTo(0, 50*time.Millisecond, Linear)
		}
	})

	s.Tick(0)
	s.Tick(100 * time.Millisecond)

	if !comp.Completed() || comp.Natural() {
		t.Error("completion should resolve as cancelled when a listener starts a new animation")
	}
	if !c.Animating() {
		t.Error("animation started by the listener should be running")
	}
}

func TestController_CompletionCallbackMayStartNewAnimation(t *testing.T) {
	s := NewScheduler()
	c := NewController(s)

	comp := c.AnimateTo(10, 50*time.Millisecond, Linear)
	comp.WhenComplete(func() {
		c.AnimateTo(20, 50*time.Millisecond, Linear)
	})

	now := pump(s, c, 10*time.Millisecond, 80*time.Millisecond)
	// First animation done, chained one running.
	if !c.Animating() {
		t.Fatal("chained animation did not start")
	}
	for now < time.Second && c.Animating() {
		now += 10 * time.Millisecond
		s.Tick(now)
	}
	if got := c.Value(); math.Abs(got-20) > 1e-9 {
		t.Errorf("final value = %v, want 20", got)
	}
}
