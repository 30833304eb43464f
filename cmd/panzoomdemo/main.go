// Command panzoomdemo replays a scripted touch session against a photo and
// writes a snapshot after every gesture.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/render"
)

func main() {
	var (
		input   = flag.String("input", "", "image to display (a checkerboard is generated when empty)")
		width   = flag.Int("width", 480, "viewport width")
		height  = flag.Int("height", 480, "viewport height")
		outDir  = flag.String("out", "panzoom-out", "output directory")
		maxSide = flag.Int("max-side", 2048, "downscale content whose longest side exceeds this")
		padding = flag.Float64("padding", 0, "viewport padding on every side")
		cpu     = flag.Bool("cpu", false, "render snapshots with the x/image resampler instead of gg")
		verbose = flag.Bool("v", false, "log controller decisions")
	)
	flag.Parse()

	if *verbose {
		panzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	content, err := loadContent(*input, *maxSide)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	pad := panzoom.Insets{Left: *padding, Top: *padding, Right: *padding, Bottom: *padding}
	s, err := render.NewSurface(*width, *height, content, render.WithPadding(pad))
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	defer s.Close()

	c, err := panzoom.New(s, panzoom.WithScaleLevels(1, 2, 4))
	if err != nil {
		log.Fatalf("Failed to attach controller: %v", err)
	}
	c.SetOnScaleChange(func(factor, fx, fy float64) {
		log.Printf("scale x%.3f about (%.0f, %.0f)", factor, fx, fy)
	})

	sess := &session{c: c, s: s, dir: *outDir, cpu: *cpu}
	w, h := float64(*width), float64(*height)

	sess.snapshot("fit")
	sess.pinch(w/2, h/2, w/8, w/2, 12)
	sess.snapshot("pinch")
	sess.drag(w*0.7, h/2, w*0.4, h/2, 10)
	sess.snapshot("drag")
	sess.flick(w*0.3, h*0.5, w*0.8, h*0.5)
	sess.snapshot("fling")
	sess.doubleTap(w/2, h/2)
	sess.snapshot("double-tap")
	sess.pinch(w/2, h/2, w/2, w/6, 12)
	sess.snapshot("pinch-in")

	if err := s.Resize(*height, *width); err == nil {
		c.OnViewportChanged(s.Bounds())
		sess.snapshot("rotated-viewport")
	}

	if err := sess.contactSheet(); err != nil {
		log.Fatalf("Failed to save contact sheet: %v", err)
	}
	log.Printf("Session saved to %s (%d snapshots)\n", *outDir, len(sess.shots))
}

// loadContent opens path or generates a checkerboard, and bounds the result
// to maxSide pixels on its longest side.
func loadContent(path string, maxSide int) (image.Image, error) {
	if path == "" {
		return checkerboard(1200, 800, 100), nil
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if maxSide > 0 && (b.Dx() > maxSide || b.Dy() > maxSide) {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}
	return img, nil
}

func checkerboard(w, h, cell int) image.Image {
	img := imaging.New(w, h, color.NRGBA{R: 240, G: 240, B: 240, A: 255})
	tile := imaging.New(cell, cell, color.NRGBA{R: 40, G: 90, B: 160, A: 255})
	for y := 0; y < h; y += cell {
		for x := (y / cell % 2) * cell; x < w; x += 2 * cell {
			img = imaging.Paste(img, tile, image.Pt(x, y))
		}
	}
	return img
}

type session struct {
	c     *panzoom.Controller
	s     *render.Surface
	dir   string
	cpu   bool
	shots []string
}

func (ss *session) send(typ gpucontext.PointerEventType, id int, x, y float64) {
	ss.c.HandlePointer(gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   id,
		X:           x,
		Y:           y,
		PointerType: gpucontext.PointerTypeTouch,
		IsPrimary:   id == 1,
		Timestamp:   ss.s.Now(),
	})
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// pinch places two fingers around (cx, cy) and moves them from span apart to
// span2 apart over steps frames.
func (ss *session) pinch(cx, cy, span, span2 float64, steps int) {
	ss.send(gpucontext.PointerDown, 1, cx-span/2, cy)
	ss.s.Pump()
	ss.send(gpucontext.PointerDown, 2, cx+span/2, cy)
	for i := 1; i <= steps; i++ {
		ss.s.Pump()
		d := lerp(span, span2, float64(i)/float64(steps)) / 2
		ss.send(gpucontext.PointerMove, 1, cx-d, cy)
		ss.send(gpucontext.PointerMove, 2, cx+d, cy)
	}
	ss.s.Pump()
	ss.send(gpucontext.PointerUp, 2, cx+span2/2, cy)
	ss.send(gpucontext.PointerUp, 1, cx-span2/2, cy)
	ss.settle()
}

func (ss *session) drag(x0, y0, x1, y1 float64, steps int) {
	ss.send(gpucontext.PointerDown, 1, x0, y0)
	for i := 1; i <= steps; i++ {
		ss.s.Pump()
		t := float64(i) / float64(steps)
		ss.send(gpucontext.PointerMove, 1, lerp(x0, x1, t), lerp(y0, y1, t))
	}
	// Hold still so the release carries no velocity.
	ss.s.Advance(200 * render.DefaultFrameInterval)
	ss.send(gpucontext.PointerMove, 1, x1, y1)
	ss.send(gpucontext.PointerUp, 1, x1, y1)
	ss.settle()
}

// flick is a fast three-frame drag released in motion.
func (ss *session) flick(x0, y0, x1, y1 float64) {
	ss.send(gpucontext.PointerDown, 1, x0, y0)
	for i := 1; i <= 3; i++ {
		ss.s.Pump()
		t := float64(i) / 3
		ss.send(gpucontext.PointerMove, 1, lerp(x0, x1, t), lerp(y0, y1, t))
	}
	ss.send(gpucontext.PointerUp, 1, x1, y1)
	ss.settle()
}

func (ss *session) doubleTap(x, y float64) {
	for i := 0; i < 2; i++ {
		ss.send(gpucontext.PointerDown, 1, x, y)
		ss.s.Pump()
		ss.send(gpucontext.PointerUp, 1, x, y)
		ss.s.Pump()
	}
	ss.settle()
}

// settle runs frames until every animation and gesture timer is done.
func (ss *session) settle() {
	if n := ss.s.Run(1000); n == 1000 {
		log.Printf("session did not settle after %d frames", n)
	}
}

func (ss *session) snapshot(name string) {
	path := filepath.Join(ss.dir, fmt.Sprintf("%02d-%s.png", len(ss.shots)+1, name))
	img, err := ss.frame()
	if err != nil {
		log.Fatalf("Failed to render %s: %v", name, err)
	}
	if err := imaging.Save(img, path); err != nil {
		log.Fatalf("Failed to save %s: %v", path, err)
	}
	r, _ := ss.c.DisplayRect()
	log.Printf("%-16s scale=%.3f edge=%v rect=%v", name, ss.c.Scale(), ss.c.ScrollEdge(), r)
	ss.shots = append(ss.shots, path)
}

func (ss *session) frame() (image.Image, error) {
	if !ss.cpu {
		if err := ss.s.Render(); err != nil {
			return nil, err
		}
		return ss.s.Image(), nil
	}
	vp := ss.s.Viewport()
	target := render.NewPixmapTarget(int(vp.Width), int(vp.Height))
	if err := ss.s.RenderTo(target); err != nil {
		return nil, err
	}
	return target.Image(), nil
}

// contactSheet tiles thumbnails of every snapshot into sheet.png.
func (ss *session) contactSheet() error {
	const thumb = 160
	sheet := imaging.New(thumb*len(ss.shots), thumb, color.NRGBA{A: 255})
	for i, path := range ss.shots {
		img, err := imaging.Open(path)
		if err != nil {
			return err
		}
		sheet = imaging.Paste(sheet, imaging.Thumbnail(img, thumb, thumb, imaging.Linear), image.Pt(i*thumb, 0))
	}
	return imaging.Save(sheet, filepath.Join(ss.dir, "sheet.png"))
}
