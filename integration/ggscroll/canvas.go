// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggscroll

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/motion/scroll"
)

// ErrCanvasClosed is returned when operations are attempted on a closed
// canvas viewport.
var ErrCanvasClosed = errors.New("ggscroll: canvas viewport is closed")

// CanvasViewport is a [Viewport] backed by a GPU-uploaded
// ggcanvas.Canvas. Each frame, Render redraws the scrolled content into
// the canvas and pushes it through the texture pipeline to a gogpu
// window.
type CanvasViewport struct {
	*Viewport
	canvas *ggcanvas.Canvas
	closed bool
}

// NewCanvas creates a GPU-backed viewport. The provider should come
// from gogpu.App.GPUContextProvider(); cfg.Width and cfg.Height double
// as the canvas dimensions.
func NewCanvas(provider gpucontext.DeviceProvider, cfg Config) (*CanvasViewport, error) {
	vp, err := New(cfg)
	if err != nil {
		return nil, err
	}
	canvas, err := ggcanvas.New(provider, int(cfg.Width), int(cfg.Height))
	if err != nil {
		vp.Dispose()
		return nil, err
	}
	return &CanvasViewport{Viewport: vp, canvas: canvas}, nil
}

// Canvas exposes the underlying ggcanvas.Canvas for direct texture
// access. Returns nil after Close.
func (cv *CanvasViewport) Canvas() *ggcanvas.Canvas {
	if cv.closed {
		return nil
	}
	return cv.canvas
}

// Render redraws the scrolled content into the canvas and renders it to
// dc. The paint callback draws in content coordinates exactly as with
// [Viewport.Draw].
func (cv *CanvasViewport) Render(dc gpucontext.TextureDrawer, paint func(dc *gg.Context, m scroll.Metrics)) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	if err := cv.canvas.Draw(func(gc *gg.Context) {
		cv.Draw(gc, paint)
	}); err != nil {
		return err
	}
	return cv.canvas.RenderTo(dc)
}

// RenderAt is [CanvasViewport.Render] with an explicit destination
// position on dc, for viewports that do not fill the window.
func (cv *CanvasViewport) RenderAt(dc gpucontext.TextureDrawer, x, y float32, paint func(dc *gg.Context, m scroll.Metrics)) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	if err := cv.canvas.Draw(func(gc *gg.Context) {
		cv.Draw(gc, paint)
	}); err != nil {
		return err
	}
	return cv.canvas.RenderToPosition(dc, x, y)
}

// Resize changes the viewport and canvas dimensions together.
func (cv *CanvasViewport) Resize(width, height float64) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	if err := cv.Viewport.Resize(width, height); err != nil {
		return err
	}
	return cv.canvas.Resize(int(width), int(height))
}

// Close releases the canvas and the position. Close is idempotent.
func (cv *CanvasViewport) Close() error {
	if cv.closed {
		return nil
	}
	cv.closed = true
	cv.Viewport.Dispose()
	return cv.canvas.Close()
}
