package animation

// Completion is a single-resolution signal for an animation's end.
//
// A completion resolves exactly once, either naturally (the simulation
// settled on its own) or as cancelled (the animation was pre-empted,
// stopped, or its owner disposed). Callbacks run synchronously on the
// goroutine that resolves the completion; the Done channel additionally
// lets other goroutines observe resolution.
type Completion struct {
	done         chan struct{}
	resolved     bool
	natural      bool
	whenComplete []func()
	whenDone     []func()
}

// NewCompletion creates an unresolved completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// ResolvedCompletion returns a completion that has already resolved
// naturally. Used for operations that finish synchronously.
func ResolvedCompletion() *Completion {
	c := NewCompletion()
	c.Resolve(true)
	return c
}

// Resolve marks the completion finished. natural distinguishes a
// simulation that settled on its own from a cancelled one. Only the
// first call has any effect.
func (c *Completion) Resolve(natural bool) {
	if c.resolved {
		return
	}
	c.resolved = true
	c.natural = natural
	close(c.done)
	if natural {
		for _, fn := range c.whenComplete {
			fn()
		}
	}
	for _, fn := range c.whenDone {
		fn()
	}
	c.whenComplete = nil
	c.whenDone = nil
}

// Done returns a channel closed when the completion resolves.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Completed reports whether the completion has resolved.
func (c *Completion) Completed() bool {
	return c.resolved
}

// Natural reports whether the completion resolved naturally. Meaningless
// before resolution.
func (c *Completion) Natural() bool {
	return c.natural
}

// WhenComplete registers fn to run on natural resolution only. A
// cancelled completion never invokes it. If the completion already
// resolved naturally, fn runs immediately.
func (c *Completion) WhenComplete(fn func()) {
	if c.resolved {
		if c.natural {
			fn()
		}
		return
	}
	c.whenComplete = append(c.whenComplete, fn)
}

// WhenDone registers fn to run on resolution, natural or cancelled. If
// the completion already resolved, fn runs immediately.
func (c *Completion) WhenDone(fn func()) {
	if c.resolved {
		fn()
		return
	}
	c.whenDone = append(c.whenDone, fn)
}

// JoinCompletions returns a completion that resolves once every input
// has resolved. The join is natural only if all inputs resolved
// naturally. Joining nothing yields an already-resolved completion.
func JoinCompletions(completions ...*Completion) *Completion {
	if len(completions) == 0 {
		return ResolvedCompletion()
	}
	join := NewCompletion()
	remaining := len(completions)
	allNatural := true
	for _, c := range completions {
		c.WhenDone(func() {
			if !c.Natural() {
				allNatural = false
			}
			remaining--
			if remaining == 0 {
				join.Resolve(allNatural)
			}
		})
	}
	return join
}
