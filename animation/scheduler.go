package animation

import (
	"fmt"
	"time"

	"github.com/gogpu/motion"
)

// TickerCallback receives the time elapsed since the ticker started.
type TickerCallback func(elapsed time.Duration)

// TickerProvider creates tickers bound to some frame source. It is the
// vsync seam: scroll activities and animation controllers take a
// TickerProvider so tests can drive them with a hand-pumped [Scheduler]
// while applications use the scheduler owned by their render loop.
type TickerProvider interface {
	CreateTicker(onTick TickerCallback) *Ticker
}

// Scheduler owns the frame clock and the tickers attached to it.
//
// A driver calls Tick once per frame with a monotonically increasing
// timestamp; the scheduler synchronously invokes every active ticker.
// Scheduler is not safe for concurrent use: Tick and all ticker
// manipulation must happen on the same goroutine.
type Scheduler struct {
	tickers []*Ticker
	now     time.Duration
	ticked  bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// CreateTicker creates a stopped ticker attached to this scheduler.
// The callback runs inside Tick whenever the ticker is active.
func (s *Scheduler) CreateTicker(onTick TickerCallback) *Ticker {
	if onTick == nil {
		panic("animation: CreateTicker requires a callback")
	}
	t := &Ticker{sched: s, onTick: onTick}
	s.tickers = append(s.tickers, t)
	return t
}

// Tick advances the frame clock to now and runs every active ticker.
//
// Tickers started during a Tick (for example by an activity transition
// inside another ticker's callback) first fire on the following Tick.
// Panics if now is earlier than a previous Tick.
func (s *Scheduler) Tick(now time.Duration) {
	if s.ticked && now < s.now {
		panic(fmt.Sprintf("animation: Tick time went backwards (%v after %v)", now, s.now))
	}
	s.now = now
	s.ticked = true

	// Snapshot: tickers created during this frame wait for the next one.
	n := len(s.tickers)
	for i := 0; i < n; i++ {
		t := s.tickers[i]
		if !t.active || t.disposed {
			continue
		}
		if !t.hasStart {
			t.startTime = now
			t.hasStart = true
		}
		t.onTick(now - t.startTime)
	}
	s.compact()
}

// Now returns the timestamp of the most recent Tick.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// HasActiveTickers reports whether any ticker would run on the next
// Tick. Drivers use this to decide whether to keep pumping frames.
func (s *Scheduler) HasActiveTickers() bool {
	for _, t := range s.tickers {
		if t.active && !t.disposed {
			return true
		}
	}
	return false
}

func (s *Scheduler) compact() {
	live := s.tickers[:0]
	for _, t := range s.tickers {
		if !t.disposed {
			live = append(live, t)
		}
	}
	s.tickers = live
}

// Ticker delivers per-frame callbacks while active.
//
// A ticker measures elapsed time from its own start: the first frame
// after Start reports zero elapsed time. Stopping and restarting resets
// the clock. A stopped or disposed ticker never fires — stopping is the
// guarantee activities rely on so that a disposed animation cannot
// deliver a stale completion.
type Ticker struct {
	sched     *Scheduler
	onTick    TickerCallback
	active    bool
	hasStart  bool
	startTime time.Duration
	disposed  bool
}

// Start activates the ticker. The elapsed clock starts at the next Tick.
// Panics if the ticker is already active or disposed.
func (t *Ticker) Start() {
	if t.disposed {
		panic("animation: Start on a disposed ticker")
	}
	if t.active {
		panic("animation: Start on an already active ticker")
	}
	t.active = true
	t.hasStart = false
	motion.Logger().Debug("ticker started")
}

// Stop deactivates the ticker. Idempotent.
func (t *Ticker) Stop() {
	t.active = false
	t.hasStart = false
}

// Active reports whether the ticker will fire on the next Tick.
func (t *Ticker) Active() bool {
	return t.active && !t.disposed
}

// Dispose stops the ticker and detaches it from its scheduler. The
// ticker cannot be restarted afterwards.
func (t *Ticker) Dispose() {
	t.Stop()
	t.disposed = true
}
