package motion

// Listeners is an ordered registry of zero-argument callbacks.
//
// It backs the change-notification fan-out used across the library:
// animation controllers notify on every value change, scroll positions on
// every offset change, and scroll controllers re-broadcast whatever their
// attached positions report.
//
// Listeners is not safe for concurrent use; like the rest of the library
// it lives on the frame goroutine.
type Listeners struct {
	entries []*listenerEntry
}

type listenerEntry struct {
	fn      func()
	removed bool
}

// Add registers fn and returns a function that removes it again.
// The remove function is idempotent.
func (l *Listeners) Add(fn func()) (remove func()) {
	e := &listenerEntry{fn: fn}
	l.entries = append(l.entries, e)
	return func() { e.removed = true }
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int {
	n := 0
	for _, e := range l.entries {
		if !e.removed {
			n++
		}
	}
	return n
}

// Notify invokes every registered listener in registration order.
//
// Listeners removed during notification do not fire if they have not
// fired yet; listeners added during notification fire on the next Notify.
func (l *Listeners) Notify() {
	// Snapshot the slice: additions during notification wait a round,
	// and a listener that clears the registry (activity teardown does)
	// must not invalidate the iteration.
	entries := l.entries
	for _, e := range entries {
		if !e.removed {
			e.fn()
		}
	}
	l.compact()
}

// Clear drops all listeners, including from a notification in flight.
func (l *Listeners) Clear() {
	for _, e := range l.entries {
		e.removed = true
	}
	l.entries = nil
}

func (l *Listeners) compact() {
	live := l.entries[:0]
	for _, e := range l.entries {
		if !e.removed {
			live = append(live, e)
		}
	}
	l.entries = live
}
