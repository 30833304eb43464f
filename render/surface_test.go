// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"errors"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/render"
)

var blue = color.RGBA{B: 255, A: 255}

func newSurface(t *testing.T, opts ...render.SurfaceOption) (*render.Surface, *panzoom.Controller) {
	t.Helper()
	opts = append([]render.SurfaceOption{render.WithBackground(gg.RGBA2(0, 0, 1, 1))}, opts...)
	s, err := render.NewSurface(300, 300, solid(image.Rect(0, 0, 600, 300), red), opts...)
	if err != nil {
		t.Fatalf("NewSurface() = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	c, err := panzoom.New(s)
	if err != nil {
		t.Fatalf("panzoom.New() = %v", err)
	}
	return s, c
}

func TestNewSurfaceInvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := render.NewSurface(size[0], size[1], nil); !errors.Is(err, render.ErrInvalidDimensions) {
			t.Errorf("NewSurface(%d, %d) = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestSurfaceWithoutContent(t *testing.T) {
	s, err := render.NewSurface(10, 10, nil)
	if err != nil {
		t.Fatalf("NewSurface() = %v", err)
	}
	defer s.Close()
	if _, _, ok := s.ContentSize(); ok {
		t.Error("ContentSize() ok = true without content")
	}
	if err := s.Render(); err != nil {
		t.Errorf("Render() = %v", err)
	}
}

func TestSurfaceHostsController(t *testing.T) {
	s, _ := newSurface(t)
	if s.Published() == 0 {
		t.Fatal("attach published no matrix")
	}
	got := s.Matrix().MapRect(panzoom.NewRect(0, 0, 600, 300))
	if math.Abs(got.Min.Y-75) > 1e-9 || math.Abs(got.Max.X-300) > 1e-9 {
		t.Errorf("display rect = %v, want (0,75)-(300,225)", got)
	}

	if err := s.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	img := s.Image()
	if px := img.At(150, 150); !isColor(px, red) {
		t.Errorf("center pixel = %v, want red", px)
	}
	if px := img.At(150, 10); !isColor(px, blue) {
		t.Errorf("letterbox pixel = %v, want blue", px)
	}
}

func TestSurfaceDrivesAnimation(t *testing.T) {
	s, c := newSurface(t, render.WithFrameInterval(10*time.Millisecond))
	if err := c.SetScaleCentered(2, true); err != nil {
		t.Fatalf("SetScaleCentered() = %v", err)
	}
	if s.Pending() == 0 {
		t.Fatal("animated zoom posted no frame")
	}
	frames := s.Run(100)
	if frames < 20 {
		t.Errorf("Run() = %d frames, want at least 20 for a 200ms zoom", frames)
	}
	if s.Now() != time.Duration(frames)*10*time.Millisecond {
		t.Errorf("Now() = %v after %d frames", s.Now(), frames)
	}
	if math.Abs(c.Scale()-2) > 1e-9 {
		t.Errorf("Scale() = %v, want 2", c.Scale())
	}
	if !c.Transition().Done() {
		t.Error("transition not done after Run")
	}
}

func TestSurfaceResize(t *testing.T) {
	s, c := newSurface(t)
	if err := s.Resize(400, 200); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	c.OnViewportChanged(s.Bounds())
	r, ok := c.DisplayRect()
	if !ok {
		t.Fatal("DisplayRect() ok = false")
	}
	if math.Abs(r.Width()-400) > 1e-9 || math.Abs(r.Height()-200) > 1e-9 {
		t.Errorf("DisplayRect() = %v, want 400x200", r)
	}
	if err := s.Resize(0, 5); !errors.Is(err, render.ErrInvalidDimensions) {
		t.Errorf("Resize(0, 5) = %v, want ErrInvalidDimensions", err)
	}
}

func TestSurfaceCloseDetachesController(t *testing.T) {
	s, c := newSurface(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if !s.Released() {
		t.Error("Released() = false after Close")
	}
	if err := c.SetScaleCentered(2, false); !errors.Is(err, panzoom.ErrDetached) {
		t.Errorf("SetScaleCentered() after Close = %v, want ErrDetached", err)
	}
	if err := s.Render(); !errors.Is(err, render.ErrClosed) {
		t.Errorf("Render() after Close = %v, want ErrClosed", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, render.ErrClosed) {
		t.Errorf("SavePNG() after Close = %v, want ErrClosed", err)
	}
}

func TestSurfaceSavePNG(t *testing.T) {
	s, _ := newSurface(t)
	if err := s.Render(); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "frame.png")); err != nil {
		t.Errorf("SavePNG() = %v", err)
	}
}

func TestSurfacePadding(t *testing.T) {
	pad := panzoom.Insets{Left: 50, Top: 50, Right: 50, Bottom: 50}
	s, err := render.NewSurface(300, 300, solid(image.Rect(0, 0, 300, 300), red),
		render.WithBackground(gg.RGBA2(0, 0, 1, 1)), render.WithPadding(pad))
	if err != nil {
		t.Fatalf("NewSurface() = %v", err)
	}
	defer s.Close()
	if _, err := panzoom.New(s); err != nil {
		t.Fatalf("panzoom.New() = %v", err)
	}

	gpu := func() (image.Image, error) {
		if err := s.Render(); err != nil {
			return nil, err
		}
		return s.Image(), nil
	}
	cpu := func() (image.Image, error) {
		target := render.NewPixmapTarget(300, 300)
		if err := s.RenderTo(target); err != nil {
			return nil, err
		}
		return target.Image(), nil
	}
	for name, frame := range map[string]func() (image.Image, error){"gg": gpu, "x/image": cpu} {
		t.Run(name, func(t *testing.T) {
			img, err := frame()
			if err != nil {
				t.Fatalf("render = %v", err)
			}
			tests := []struct {
				at   image.Point
				want color.Color
			}{
				{image.Pt(10, 10), blue},
				{image.Pt(60, 60), red},
				{image.Pt(150, 150), red},
				{image.Pt(240, 240), red},
				{image.Pt(280, 280), blue},
				{image.Pt(150, 20), blue},
			}
			for _, tt := range tests {
				if px := img.At(tt.at.X, tt.at.Y); !isColor(px, tt.want) {
					t.Errorf("pixel %v = %v, want %v", tt.at, px, tt.want)
				}
			}
		})
	}
}

func TestSurfaceRenderToRejectsMismatch(t *testing.T) {
	s, _ := newSurface(t)
	if err := s.RenderTo(render.NewPixmapTarget(100, 300)); !errors.Is(err, render.ErrFormatMismatch) {
		t.Errorf("RenderTo(wrong size) = %v, want ErrFormatMismatch", err)
	}
	if err := s.RenderTo(nil); !errors.Is(err, render.ErrNilImage) {
		t.Errorf("RenderTo(nil) = %v, want ErrNilImage", err)
	}
	if s.Format() != render.NewPixmapTarget(1, 1).Format() {
		t.Error("surface and pixmap target formats differ")
	}
}
