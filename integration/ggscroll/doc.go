// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggscroll makes gg drawing scrollable.
//
// A [Viewport] pairs a scroll.Position with a rectangular region of a
// gg.Context: Draw clips to the region, translates by the negated
// scroll offset along the scroll axis, and hands the context to a paint
// callback together with the current metrics. The position's extents
// track the content and viewport sizes the embedder reports, so the
// full activity state machine (drags, flings, overscroll resolution)
// works unchanged on top of gg.
//
// [CanvasViewport] is the GPU-backed variant: it owns a
// ggcanvas.Canvas, so the scrolled drawing follows the
// CPU-to-GPU upload pipeline
//
//	gg.Context (draw) -> Pixmap (CPU) -> GPU Texture -> Window
//
// and renders into a gogpu window via RenderTo.
//
// # Frames
//
// Neither type owns a frame loop. The embedder pumps the
// animation.Scheduler it passed in, once per rendered frame, and
// redraws while the position reports scrolling:
//
//	scheduler.Tick(now)
//	vp.Draw(dc, paintContent)
//
// # Thread Safety
//
// Like the rest of the motion module, ggscroll types are not safe for
// concurrent use; everything runs on the frame goroutine.
package ggscroll
