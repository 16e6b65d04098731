// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggscroll

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/scroll"
)

// Common errors returned by viewport operations.
var (
	// ErrInvalidDimensions is returned when width or height is not
	// strictly positive.
	ErrInvalidDimensions = errors.New("ggscroll: invalid dimensions")

	// ErrNilVsync is returned when no ticker provider is supplied.
	ErrNilVsync = errors.New("ggscroll: nil TickerProvider")
)

// Config configures a [Viewport].
type Config struct {
	// Vsync drives the viewport's scroll animations. Required; in a
	// frame-pumped application this is the application's
	// animation.Scheduler.
	Vsync animation.TickerProvider

	// Physics decides edge behavior. Defaults to scroll.ClampingPhysics.
	Physics scroll.Physics

	// Direction is the scroll direction. The zero value is
	// motion.AxisDirectionUp; vertical content usually wants
	// motion.AxisDirectionDown.
	Direction motion.AxisDirection

	// OnNotification receives the position's scroll notifications.
	// Optional.
	OnNotification scroll.NotificationHandler

	// Width and Height are the viewport bounds in pixels.
	Width, Height float64

	// ContentExtent is the content length along the scroll axis, in
	// pixels. May be updated later with SetContentExtent.
	ContentExtent float64
}

// Viewport scrolls gg drawing inside a fixed rectangle. It owns the
// scroll.Position; input drivers reach it through Position.
type Viewport struct {
	position *scroll.Position
	width    float64
	height   float64
	content  float64
}

// New creates a viewport. The position starts at offset zero with an
// idle activity.
func New(cfg Config) (*Viewport, error) {
	if cfg.Vsync == nil {
		return nil, ErrNilVsync
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%g, height=%g", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	physics := cfg.Physics
	if physics == nil {
		physics = scroll.ClampingPhysics{}
	}
	v := &Viewport{
		width:   cfg.Width,
		height:  cfg.Height,
		content: math.Max(cfg.ContentExtent, 0),
	}
	v.position = scroll.NewPosition(scroll.PositionConfig{
		Physics:        physics,
		Vsync:          cfg.Vsync,
		Direction:      cfg.Direction,
		OnNotification: cfg.OnNotification,
	})
	v.applyDimensions()
	return v, nil
}

// MustNew is like New but panics on error. Use only when the
// configuration is hardcoded.
func MustNew(cfg Config) *Viewport {
	v, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return v
}

// Position returns the viewport's scroll position, for wiring input
// drivers and controllers.
func (v *Viewport) Position() *scroll.Position { return v.position }

// Offset returns the current scroll offset in pixels.
func (v *Viewport) Offset() float64 { return v.position.Pixels() }

// Size returns the viewport bounds.
func (v *Viewport) Size() (width, height float64) { return v.width, v.height }

// axisExtent is the viewport dimension along the scroll axis.
func (v *Viewport) axisExtent() float64 {
	if v.position.AxisDirection().Axis() == motion.Horizontal {
		return v.width
	}
	return v.height
}

func (v *Viewport) applyDimensions() {
	v.position.ApplyViewportDimension(v.axisExtent())
	v.position.ApplyContentDimensions(0, math.Max(v.content-v.axisExtent(), 0))
}

// SetContentExtent reports a new content length along the scroll axis.
// The position re-resolves against the new extents, springing back if
// the offset is now out of range.
func (v *Viewport) SetContentExtent(extent float64) {
	v.content = math.Max(extent, 0)
	v.applyDimensions()
}

// Resize changes the viewport bounds.
func (v *Viewport) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%g, height=%g", ErrInvalidDimensions, width, height)
	}
	v.width = width
	v.height = height
	v.applyDimensions()
	return nil
}

// IsScrolling reports whether the offset is in motion; embedders keep
// redrawing while it is.
func (v *Viewport) IsScrolling() bool { return v.position.IsScrolling() }

// Draw clips dc to the viewport rectangle, shifts it by the negated
// scroll offset along the scroll axis, and calls paint with the shifted
// context and current metrics. The context's transform and clip are
// restored before Draw returns.
func (v *Viewport) Draw(dc *gg.Context, paint func(dc *gg.Context, m scroll.Metrics)) {
	if paint == nil {
		return
	}
	dc.Push()
	dc.DrawRectangle(0, 0, v.width, v.height)
	dc.Clip()
	if v.position.AxisDirection().Axis() == motion.Horizontal {
		dc.Translate(v.translation(), 0)
	} else {
		dc.Translate(0, v.translation())
	}
	paint(dc, v.position.Metrics())
	dc.Pop()
}

// translation maps the scroll offset to a content shift. For a normal
// axis, offset zero anchors the content's leading edge; for a reversed
// axis it anchors the trailing edge, so increasing offsets reveal
// earlier content.
func (v *Viewport) translation() float64 {
	if v.position.AxisDirection().Reversed() {
		return v.position.Pixels() - math.Max(v.content-v.axisExtent(), 0)
	}
	return -v.position.Pixels()
}

// Dispose tears down the position. The viewport must not be used
// afterwards.
func (v *Viewport) Dispose() {
	v.position.Dispose()
}
