// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/panzoom"
)

// DefaultFrameInterval is the clock step of one Pump.
const DefaultFrameInterval = 16 * time.Millisecond

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithFrameInterval sets the clock step of one Pump. Non-positive values
// keep the default.
func WithFrameInterval(d time.Duration) SurfaceOption {
	return func(s *Surface) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithBackground sets the color the surface is cleared to before content is
// drawn.
func WithBackground(c gg.RGBA) SurfaceOption {
	return func(s *Surface) {
		s.background = c
	}
}

// WithPadding sets the viewport padding reported to the Controller.
func WithPadding(p panzoom.Insets) SurfaceOption {
	return func(s *Surface) {
		s.padding = p
	}
}

// Surface is an offscreen panzoom.Host rendered with gg.
//
// The frame clock only moves when Pump or Advance is called, so a session
// replays identically for identical input.
type Surface struct {
	dc         *gg.Context
	width      int
	height     int
	padding    panzoom.Insets
	background gg.RGBA

	content image.Image
	buf     *gg.ImageBuf

	matrix    panzoom.Matrix
	published int
	disallow  bool

	clock    time.Duration
	interval time.Duration
	frames   []func()

	closed bool
}

// NewSurface creates a width x height surface showing content. content may
// be nil.
func NewSurface(width, height int, content image.Image, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	s := &Surface{
		dc:         gg.NewContext(width, height),
		width:      width,
		height:     height,
		background: gg.RGBA2(0, 0, 0, 1),
		matrix:     panzoom.Identity(),
		interval:   DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.SetContent(content)
	return s, nil
}

// SetContent replaces the displayed content. Call Controller.Update
// afterwards so the base matrix is refitted.
func (s *Surface) SetContent(img image.Image) {
	s.content = img
	s.buf = nil
	if img != nil && !img.Bounds().Empty() {
		s.buf = gg.ImageBufFromImage(img)
	}
}

// Resize changes the surface size. The rendered pixels are discarded. Call
// Controller.OnViewportChanged afterwards.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width == s.width && height == s.height {
		return nil
	}
	if err := s.dc.Close(); err != nil {
		return err
	}
	s.dc = gg.NewContext(width, height)
	s.width, s.height = width, height
	return nil
}

// Bounds returns the surface bounds for Controller.OnViewportChanged.
func (s *Surface) Bounds() panzoom.Bounds {
	return panzoom.Bounds{Right: float64(s.width), Bottom: float64(s.height)}
}

// Viewport implements panzoom.Host.
func (s *Surface) Viewport() panzoom.Viewport {
	return panzoom.Viewport{
		Width:   float64(s.width),
		Height:  float64(s.height),
		Padding: s.padding,
	}
}

// ContentSize implements panzoom.Host.
func (s *Surface) ContentSize() (float64, float64, bool) {
	if s.buf == nil {
		return 0, 0, false
	}
	b := s.content.Bounds()
	return float64(b.Dx()), float64(b.Dy()), true
}

// SetDisplayMatrix implements panzoom.Host.
func (s *Surface) SetDisplayMatrix(m panzoom.Matrix) {
	s.matrix = m
	s.published++
}

// RequestDisallowIntercept implements panzoom.Host.
func (s *Surface) RequestDisallowIntercept(disallow bool) {
	s.disallow = disallow
}

// PostFrame implements panzoom.Host.
func (s *Surface) PostFrame(fn func()) {
	if s.closed {
		return
	}
	s.frames = append(s.frames, fn)
}

// Now implements panzoom.Host.
func (s *Surface) Now() time.Duration { return s.clock }

// Released implements panzoom.Releasable.
func (s *Surface) Released() bool { return s.closed }

// Matrix returns the last published display matrix.
func (s *Surface) Matrix() panzoom.Matrix { return s.matrix }

// Published returns how many matrices were published.
func (s *Surface) Published() int { return s.published }

// InterceptDisallowed reports the last intercept request.
func (s *Surface) InterceptDisallowed() bool { return s.disallow }

// Pending returns the number of queued frame callbacks.
func (s *Surface) Pending() int { return len(s.frames) }

// Advance moves the clock forward by d without running frames.
func (s *Surface) Advance(d time.Duration) {
	s.clock += d
}

// Pump advances the clock by one frame interval and runs the callbacks
// queued before the call. It returns the number of callbacks run.
func (s *Surface) Pump() int {
	s.clock += s.interval
	queued := s.frames
	s.frames = nil
	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

// Run pumps frames until no callbacks are queued or maxFrames frames ran.
// It returns the number of frames pumped.
func (s *Surface) Run(maxFrames int) int {
	n := 0
	for n < maxFrames && len(s.frames) > 0 {
		s.Pump()
		n++
	}
	return n
}

// Format returns the pixel format of the rendered image.
func (s *Surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// DeviceMatrix maps content to surface pixels: the published display matrix
// followed by the offset of the padded content box.
func (s *Surface) DeviceMatrix() panzoom.Matrix {
	return panzoom.Compose(s.matrix, panzoom.Translate(s.padding.Left, s.padding.Top))
}

// Render clears the surface and draws the content with the last published
// matrix.
func (s *Surface) Render() error {
	if s.closed {
		return ErrClosed
	}
	s.dc.Identity()
	s.dc.ClearWithColor(s.background)
	if s.buf == nil {
		return nil
	}
	s.dc.SetTransform(GGMatrix(s.DeviceMatrix()))
	s.dc.DrawImage(s.buf, 0, 0)
	s.dc.Identity()
	return nil
}

// RenderTo draws the frame Render would draw into t with the x/image
// resampler instead of gg. t must have the surface's size and format.
func (s *Surface) RenderTo(t *PixmapTarget) error {
	if s.closed {
		return ErrClosed
	}
	if t == nil {
		return ErrNilImage
	}
	if t.Format() != s.Format() || t.Width() != s.width || t.Height() != s.height {
		return fmt.Errorf("%w: %dx%d %v, surface %dx%d %v", ErrFormatMismatch,
			t.Width(), t.Height(), t.Format(), s.width, s.height, s.Format())
	}
	t.Clear(s.background)
	if s.buf == nil {
		return nil
	}
	return t.DrawContent(s.content, s.DeviceMatrix())
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the rendered pixels to path.
func (s *Surface) SavePNG(path string) error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.SavePNG(path)
}

// Close releases the gg context. A Controller attached to the surface
// detaches on its next operation. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.frames = nil
	return s.dc.Close()
}
