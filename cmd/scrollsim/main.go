// Command scrollsim renders an offline scroll fling as numbered PNG
// frames. It builds a scrollable viewport, launches a ballistic at the
// requested velocity, and steps the frame scheduler at a fixed rate
// until the motion settles, saving what the viewport shows each frame.
//
// The content is a strip of numbered color bands, so flipping through
// the frames shows the deceleration, and with -physics bouncing the
// overscroll stretch and spring-back at the edges.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/animation"
	"github.com/gogpu/motion/integration/ggscroll"
	"github.com/gogpu/motion/scroll"
)

func main() {
	var (
		width    = flag.Int("width", 400, "viewport width in pixels")
		height   = flag.Int("height", 600, "viewport height in pixels")
		content  = flag.Float64("content", 2400, "content extent in pixels")
		velocity = flag.Float64("velocity", 2500, "initial fling velocity in pixels per second")
		offset   = flag.Float64("offset", 0, "starting scroll offset")
		physics  = flag.String("physics", "clamping", "scroll physics: clamping or bouncing")
		fps      = flag.Int("fps", 60, "simulation frame rate")
		maxTime  = flag.Duration("max-time", 10*time.Second, "give up if motion has not settled by then")
		outdir   = flag.String("outdir", "frames", "output directory for PNG frames")
		verbose  = flag.Bool("v", false, "log activity transitions and per-frame offsets")
	)
	flag.Parse()

	if *verbose {
		motion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var ph scroll.Physics
	switch *physics {
	case "clamping":
		ph = scroll.ClampingPhysics{}
	case "bouncing":
		ph = scroll.BouncingPhysics{}
	default:
		log.Fatalf("unknown -physics %q (want clamping or bouncing)", *physics)
	}

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	scheduler := animation.NewScheduler()
	viewport, err := ggscroll.New(ggscroll.Config{
		Vsync:         scheduler,
		Physics:       ph,
		Direction:     motion.AxisDirectionDown,
		Width:         float64(*width),
		Height:        float64(*height),
		ContentExtent: *content,
		OnNotification: func(n scroll.Notification) {
			logNotification(n)
		},
	})
	if err != nil {
		log.Fatalf("create viewport: %v", err)
	}

	if *offset != 0 {
		viewport.Position().JumpTo(*offset)
	}
	viewport.Position().GoBallistic(*velocity)
	if !viewport.IsScrolling() {
		log.Fatalf("velocity %v produced no motion; try a larger -velocity", *velocity)
	}

	dt := time.Second / time.Duration(*fps)
	dc := gg.NewContext(*width, *height)

	frame := 0
	for now := time.Duration(0); viewport.IsScrolling(); now += dt {
		if now > *maxTime {
			log.Fatalf("motion did not settle within %v", *maxTime)
		}
		scheduler.Tick(now)
		renderFrame(dc, viewport, *content)
		path := filepath.Join(*outdir, fmt.Sprintf("frame-%04d.png", frame))
		if err := dc.SavePNG(path); err != nil {
			log.Fatalf("save %s: %v", path, err)
		}
		if *verbose {
			motion.Logger().Debug("frame rendered",
				"frame", frame, "offset", viewport.Offset())
		}
		frame++
	}

	log.Printf("rendered %d frames to %s, settled at offset %.1f",
		frame, *outdir, viewport.Offset())
}

func logNotification(n scroll.Notification) {
	switch n := n.(type) {
	case scroll.StartNotification:
		motion.Logger().Debug("scroll started", "offset", n.Metrics.Pixels)
	case scroll.OverscrollNotification:
		motion.Logger().Debug("overscrolled",
			"offset", n.Metrics.Pixels, "overscroll", n.Overscroll, "velocity", n.Velocity)
	case scroll.EndNotification:
		motion.Logger().Debug("scroll ended", "offset", n.Metrics.Pixels)
	}
}

// renderFrame paints the viewport: a dark backdrop, then the content
// clipped and translated by the scroll offset.
func renderFrame(dc *gg.Context, viewport *ggscroll.Viewport, content float64) {
	dc.ClearWithColor(gg.RGB(0.08, 0.09, 0.11))
	viewport.Draw(dc, func(dc *gg.Context, m scroll.Metrics) {
		drawContent(dc, m, content)
	})
}

// bandHeight is the height of one numbered content band.
const bandHeight = 120.0

// drawContent paints the scrollable strip: alternating color bands with
// a tick row of dots encoding the band index in binary, so any frame
// identifies its scroll offset at a glance.
func drawContent(dc *gg.Context, m scroll.Metrics, content float64) {
	width := float64(dc.Width())
	first := int(math.Floor((m.Pixels - m.ViewportDimension) / bandHeight))
	last := int(math.Ceil((m.Pixels + 2*m.ViewportDimension) / bandHeight))
	for i := first; i <= last; i++ {
		top := float64(i) * bandHeight
		if top >= content || top+bandHeight <= 0 {
			continue
		}
		hue := math.Mod(float64(i)*37, 360)
		dc.SetColor(gg.HSL(hue, 0.55, 0.45).Color())
		dc.DrawRectangle(0, top, width, bandHeight-4)
		_ = dc.Fill()

		dc.SetRGB(0.95, 0.95, 0.95)
		for bit := 0; bit < 8; bit++ {
			if i>>bit&1 == 0 {
				continue
			}
			dc.DrawCircle(20+float64(bit)*24, top+20, 7)
			_ = dc.Fill()
		}
	}

	// Edge rules make overscroll visible: a bright line at each end of
	// the content.
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, width, 3)
	_ = dc.Fill()
	dc.DrawRectangle(0, content-3, width, 3)
	_ = dc.Fill()
}
