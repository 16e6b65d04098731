// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termscroll brings kinetic scrolling to tcell terminals.
//
// Terminals report mouse input as discrete cell-grid events with no
// velocity, and they have no frame clock. This package supplies both
// halves: a [Driver] that translates tcell mouse events (press, drag,
// release, wheel) into hold/drag/fling calls on a scroll.Position, with
// a [VelocityTracker] estimating release velocity from recent samples,
// and a [TextView] that renders line content through a position so
// flings and spring-backs work over plain text.
//
// Cell units are mapped to virtual pixels (16 per cell by default) so
// the scroll physics — tuned in pixels per second — behaves the same as
// in graphical embeddings.
//
// # Frame pump
//
// The driver owns an animation.Scheduler but not a goroutine: the
// application calls [Driver.Step] from its event loop, typically on a
// time.Ticker posted into the tcell event stream, while
// [Driver.Animating] reports pending motion. All mutation stays on the
// event loop goroutine.
package termscroll
