// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package panzoomtest provides a scripted panzoom.Host for tests.
//
// The Host has a manual clock and a frame queue: callbacks posted with
// PostFrame run only when the test calls Frame or Run.
package panzoomtest

import (
	"time"

	"github.com/gogpu/panzoom"
)

// FrameInterval is the clock step used by Run.
const FrameInterval = 16 * time.Millisecond

// Host is an in-memory panzoom.Host that records every call.
//
// Host is NOT safe for concurrent use.
type Host struct {
	// Size is the viewport size and padding.
	Size panzoom.Viewport

	// ContentW and ContentH are the content size. HasContent reports whether
	// there is content at all.
	ContentW, ContentH float64
	HasContent         bool

	// Clock is returned by Now.
	Clock time.Duration

	// Matrices holds every matrix passed to SetDisplayMatrix.
	Matrices []panzoom.Matrix

	// Intercepts holds every value passed to RequestDisallowIntercept.
	Intercepts []bool

	// Overridden is reported by ScaleModeOverridden.
	Overridden bool

	// IsReleased is reported by Released.
	IsReleased bool

	frames []func()
}

// NewHost returns a Host with a vw x vh viewport showing cw x ch content.
func NewHost(vw, vh, cw, ch float64) *Host {
	return &Host{
		Size:       panzoom.Viewport{Width: vw, Height: vh},
		ContentW:   cw,
		ContentH:   ch,
		HasContent: true,
	}
}

// Viewport implements panzoom.Host.
func (h *Host) Viewport() panzoom.Viewport { return h.Size }

// ContentSize implements panzoom.Host.
func (h *Host) ContentSize() (float64, float64, bool) {
	if !h.HasContent {
		return 0, 0, false
	}
	return h.ContentW, h.ContentH, true
}

// SetDisplayMatrix implements panzoom.Host.
func (h *Host) SetDisplayMatrix(m panzoom.Matrix) {
	h.Matrices = append(h.Matrices, m)
}

// RequestDisallowIntercept implements panzoom.Host.
func (h *Host) RequestDisallowIntercept(disallow bool) {
	h.Intercepts = append(h.Intercepts, disallow)
}

// PostFrame implements panzoom.Host.
func (h *Host) PostFrame(fn func()) {
	h.frames = append(h.frames, fn)
}

// Now implements panzoom.Host.
func (h *Host) Now() time.Duration { return h.Clock }

// Released implements panzoom.Releasable.
func (h *Host) Released() bool { return h.IsReleased }

// ScaleModeOverridden implements panzoom.ScaleModeChecker.
func (h *Host) ScaleModeOverridden() bool { return h.Overridden }

// Pending returns the number of queued frame callbacks.
func (h *Host) Pending() int { return len(h.frames) }

// Last returns the most recently published matrix and whether any was.
func (h *Host) Last() (panzoom.Matrix, bool) {
	if len(h.Matrices) == 0 {
		return panzoom.Matrix{}, false
	}
	return h.Matrices[len(h.Matrices)-1], true
}

// LastIntercept returns the most recent intercept request and whether any
// was made.
func (h *Host) LastIntercept() (disallow, ok bool) {
	if len(h.Intercepts) == 0 {
		return false, false
	}
	return h.Intercepts[len(h.Intercepts)-1], true
}

// Frame runs the callbacks queued before the call. Callbacks they post run
// on the next Frame. It returns the number of callbacks run.
func (h *Host) Frame() int {
	queued := h.frames
	h.frames = nil
	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

// Run advances the clock by FrameInterval and runs a frame until no
// callbacks are queued or maxFrames frames ran. It returns the number of
// frames run.
func (h *Host) Run(maxFrames int) int {
	n := 0
	for n < maxFrames && len(h.frames) > 0 {
		h.Clock += FrameInterval
		h.Frame()
		n++
	}
	return n
}

// Advance moves the clock forward by d without running frames.
func (h *Host) Advance(d time.Duration) {
	h.Clock += d
}
