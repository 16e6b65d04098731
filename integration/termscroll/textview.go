// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termscroll

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/scroll"
)

// TextViewConfig configures a [TextView].
type TextViewConfig struct {
	// Vsync supplies tickers for the view's scroll animations. Required;
	// share the driver's scheduler.
	Vsync animation.TickerProvider

	// Physics decides edge behavior. Defaults to scroll.ClampingPhysics.
	Physics scroll.Physics

	// CellSize is the virtual pixel height of one text row. Defaults to
	// DefaultCellSize; it must match the driver's.
	CellSize float64

	// Style is the style text is drawn with.
	Style tcell.Style

	// OnNotification receives the position's scroll notifications.
	// Optional.
	OnNotification scroll.NotificationHandler
}

// TextView renders lines of text through a scroll position, so the
// content flings, glides and springs back like any other scrollable.
// The view owns its position; wire a [Driver] to the same position and
// scheduler to make it interactive.
type TextView struct {
	position *scroll.Position
	cellSize float64
	style    tcell.Style

	lines []string
}

// NewTextView creates an empty text view resting at offset zero.
func NewTextView(cfg TextViewConfig) *TextView {
	if cfg.Vsync == nil {
		panic("termscroll: NewTextView requires a Vsync")
	}
	physics := cfg.Physics
	if physics == nil {
		physics = scroll.ClampingPhysics{}
	}
	cellSize := cfg.CellSize
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &TextView{
		position: scroll.NewPosition(scroll.PositionConfig{
			Physics:        physics,
			Vsync:          cfg.Vsync,
			Direction:      motion.AxisDirectionDown,
			OnNotification: cfg.OnNotification,
		}),
		cellSize: cellSize,
		style:    cfg.Style,
	}
}

// Position returns the view's scroll position, for wiring a driver or
// reading metrics.
func (tv *TextView) Position() *scroll.Position { return tv.position }

// CellSize returns the virtual pixel height of one text row.
func (tv *TextView) CellSize() float64 { return tv.cellSize }

// LineCount returns the number of content lines.
func (tv *TextView) LineCount() int { return len(tv.lines) }

// SetLines replaces the content. The position's extents are revalidated
// on the next Draw, which springs the offset back if the content shrank
// beneath it.
func (tv *TextView) SetLines(lines []string) {
	tv.lines = lines
}

// AppendLine adds one line to the end of the content.
func (tv *TextView) AppendLine(line string) {
	tv.lines = append(tv.lines, line)
}

// ScrollToLine jumps so the given line sits at the top of the view,
// clamped to the scrollable range.
func (tv *TextView) ScrollToLine(line int) {
	tv.position.MoveTo(float64(line) * tv.cellSize)
}

// Dispose tears down the view's position.
func (tv *TextView) Dispose() {
	tv.position.Dispose()
}

// Draw renders the visible lines into the given screen region. It
// reports the region and content dimensions to the position first, so
// resizes and content changes take effect on the frame they happen.
//
// The virtual pixel offset is rounded to the nearest row; during
// overscroll the rounding can place the content a row past its edge,
// which is the visible stretch.
func (tv *TextView) Draw(screen tcell.Screen, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	tv.position.ApplyViewportDimension(float64(height) * tv.cellSize)
	content := float64(len(tv.lines)) * tv.cellSize
	tv.position.ApplyContentDimensions(0,
		math.Max(content-float64(height)*tv.cellSize, 0))

	topRow := int(math.Floor(tv.position.Pixels()/tv.cellSize + 0.5))
	for row := 0; row < height; row++ {
		tv.drawLine(screen, x, y+row, width, topRow+row)
	}
}

// drawLine renders one content line (blank when the index is outside
// the content) clipped to width cells.
func (tv *TextView) drawLine(screen tcell.Screen, x, y, width, index int) {
	col := 0
	if index >= 0 && index < len(tv.lines) {
		str := tv.lines[index]
		state := -1
		for len(str) > 0 && col < width {
			var cluster string
			var boundaries int
			cluster, str, boundaries, state = uniseg.StepString(str, state)
			if cluster == "" {
				continue
			}
			clusterWidth := boundaries >> uniseg.ShiftWidth
			if clusterWidth == 0 {
				continue
			}
			if col+clusterWidth > width {
				// A wide cluster straddling the right edge is dropped
				// rather than half drawn.
				break
			}
			runes := []rune(cluster)
			// The screen owns the trailing cells of wide clusters.
			screen.SetContent(x+col, y, runes[0], runes[1:], tv.style)
			col += clusterWidth
		}
	}
	for ; col < width; col++ {
		screen.SetContent(x+col, y, ' ', nil, tv.style)
	}
}
