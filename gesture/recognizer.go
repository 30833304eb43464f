// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"math"
	"time"

	"github.com/gogpu/gpucontext"
)

// Listener receives semantic gestures from a Recognizer.
//
// Callbacks are invoked synchronously from OnPointerEvent, OnGestureEvent,
// OnScrollEvent or Tick, in the order the triggering input arrived.
type Listener interface {
	// OnDrag reports a single-pointer move by (dx, dy) pixels.
	OnDrag(dx, dy float64)
	// OnScale reports a pinch step: multiply the current scale by factor,
	// keeping (focusX, focusY) fixed.
	OnScale(factor, focusX, focusY float64)
	// OnFling reports a release at (startX, startY) moving with
	// (velocityX, velocityY) px/s in pointer direction.
	OnFling(startX, startY, velocityX, velocityY float64)
	// OnSingleTap reports a tap that was not followed by a second tap.
	OnSingleTap(x, y float64)
	// OnDoubleTap reports the second of two quick taps at the first tap's
	// position. It fires when the second pointer is released, so a second
	// press that turns into a drag, pinch or long press is not a double tap.
	OnDoubleTap(x, y float64)
	// OnLongPress reports a pointer held still past the long-press timeout.
	OnLongPress(x, y float64)
}

// Config tunes gesture classification thresholds.
type Config struct {
	// TouchSlop is the distance a pointer must travel before a drag starts.
	TouchSlop float64
	// DoubleTapTimeout is the longest gap between a tap's release and the
	// next press for the pair to count as a double tap. A single tap is
	// confirmed once this much time passes without a second press.
	DoubleTapTimeout time.Duration
	// DoubleTapSlop is the largest distance between the two taps.
	DoubleTapSlop float64
	// LongPressTimeout is how long a still pointer must be held.
	LongPressTimeout time.Duration
	// MinFlingVelocity is the release speed in px/s below which no fling fires.
	MinFlingVelocity float64
	// MaxFlingVelocity caps fling speed in px/s on each axis.
	MaxFlingVelocity float64
	// WheelZoomBase is the scale factor per wheel line with Control held.
	WheelZoomBase float64
	// WheelLineHeight converts wheel lines to pixels for pan and zoom.
	WheelLineHeight float64
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		TouchSlop:        8,
		DoubleTapTimeout: 300 * time.Millisecond,
		DoubleTapSlop:    100,
		LongPressTimeout: 500 * time.Millisecond,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		WheelZoomBase:    1.1,
		WheelLineHeight:  40,
	}
}

type pointer struct {
	id   int
	x, y float64
}

// Recognizer classifies a pointer event stream into drags, pinches, taps,
// long presses and flings.
//
// A session lasts from the first pointer down to the last pointer up. Once
// a second pointer lands the session is a pinch and no drag, tap or fling is
// reported for it.
//
// Recognizer is NOT safe for concurrent use.
type Recognizer struct {
	l   Listener
	cfg Config

	pointers []pointer

	// Session state.
	down         bool
	downAt       time.Duration
	downX, downY float64
	lastX, lastY float64
	dragging     bool
	scaling      bool
	multiTouched bool
	longPressed  bool
	secondTap    bool
	prevSpan     float64

	platformScaling bool

	// Tap state across sessions.
	tapPending   bool
	tapX, tapY   float64
	tapUpAt      time.Duration
	longPressDue time.Duration
	longPressArm bool

	vel VelocityTracker
}

// New creates a Recognizer reporting to l.
// Zero fields in cfg are replaced by DefaultConfig values.
func New(l Listener, cfg Config) *Recognizer {
	return &Recognizer{l: l, cfg: withDefaults(cfg)}
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.TouchSlop <= 0 {
		cfg.TouchSlop = def.TouchSlop
	}
	if cfg.DoubleTapTimeout <= 0 {
		cfg.DoubleTapTimeout = def.DoubleTapTimeout
	}
	if cfg.DoubleTapSlop <= 0 {
		cfg.DoubleTapSlop = def.DoubleTapSlop
	}
	if cfg.LongPressTimeout <= 0 {
		cfg.LongPressTimeout = def.LongPressTimeout
	}
	if cfg.MinFlingVelocity <= 0 {
		cfg.MinFlingVelocity = def.MinFlingVelocity
	}
	if cfg.MaxFlingVelocity <= 0 {
		cfg.MaxFlingVelocity = def.MaxFlingVelocity
	}
	if cfg.WheelZoomBase <= 1 {
		cfg.WheelZoomBase = def.WheelZoomBase
	}
	if cfg.WheelLineHeight <= 0 {
		cfg.WheelLineHeight = def.WheelLineHeight
	}
	return cfg
}

// Config returns the effective configuration.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// IsScaling reports whether a pinch is in progress.
func (r *Recognizer) IsScaling() bool {
	return r.scaling || r.platformScaling
}

// IsDragging reports whether a single-pointer drag is in progress.
func (r *Recognizer) IsDragging() bool {
	return r.dragging
}

// Active reports whether any pointer is down.
func (r *Recognizer) Active() bool {
	return r.down
}

// Reset abandons the current session and any pending tap without
// reporting anything.
func (r *Recognizer) Reset() {
	r.pointers = r.pointers[:0]
	r.endSession()
	r.tapPending = false
	r.platformScaling = false
}

func (r *Recognizer) endSession() {
	r.down = false
	r.dragging = false
	r.scaling = false
	r.multiTouched = false
	r.longPressed = false
	r.longPressArm = false
	r.secondTap = false
	r.prevSpan = 0
	r.vel.Reset()
}

// OnPointerEvent feeds one pointer event. It returns true if the event was
// part of a gesture session.
func (r *Recognizer) OnPointerEvent(ev gpucontext.PointerEvent) bool {
	r.Tick(ev.Timestamp)

	switch ev.Type {
	case gpucontext.PointerDown:
		r.pointerDown(ev)
	case gpucontext.PointerMove:
		if !r.down {
			return false
		}
		r.pointerMove(ev)
	case gpucontext.PointerUp:
		if !r.down {
			return false
		}
		r.pointerUp(ev)
	case gpucontext.PointerCancel:
		if !r.down {
			return false
		}
		r.pointers = r.pointers[:0]
		r.endSession()
	default:
		return false
	}
	return true
}

func (r *Recognizer) pointerDown(ev gpucontext.PointerEvent) {
	if r.find(ev.PointerID) >= 0 {
		return
	}
	r.pointers = append(r.pointers, pointer{id: ev.PointerID, x: ev.X, y: ev.Y})

	if len(r.pointers) == 1 {
		r.down = true
		r.downAt = ev.Timestamp
		r.downX, r.downY = ev.X, ev.Y
		r.lastX, r.lastY = ev.X, ev.Y
		r.longPressArm = true
		r.longPressDue = ev.Timestamp + r.cfg.LongPressTimeout
		r.vel.Reset()
		r.vel.Add(ev.Timestamp, ev.X, ev.Y)

		if r.tapPending {
			gap := ev.Timestamp - r.tapUpAt
			near := math.Hypot(ev.X-r.tapX, ev.Y-r.tapY) <= r.cfg.DoubleTapSlop
			r.tapPending = false
			if gap <= r.cfg.DoubleTapTimeout && near {
				r.secondTap = true
			} else {
				r.l.OnSingleTap(r.tapX, r.tapY)
			}
		}
		return
	}

	// Second pointer: the session becomes a pinch.
	r.multiTouched = true
	r.dragging = false
	r.longPressArm = false
	r.secondTap = false
	if len(r.pointers) >= 2 {
		r.scaling = true
		_, r.prevSpan = r.focusAndSpan()
	}
}

func (r *Recognizer) pointerMove(ev gpucontext.PointerEvent) {
	i := r.find(ev.PointerID)
	if i < 0 {
		return
	}
	r.pointers[i].x, r.pointers[i].y = ev.X, ev.Y

	if r.scaling {
		focus, span := r.focusAndSpan()
		if r.prevSpan > 0 && span > 0 {
			factor := span / r.prevSpan
			if !math.IsNaN(factor) && !math.IsInf(factor, 0) && factor != 1 {
				r.l.OnScale(factor, focus.x, focus.y)
			}
		}
		r.prevSpan = span
		return
	}
	if r.multiTouched {
		return
	}

	r.vel.Add(ev.Timestamp, ev.X, ev.Y)
	dx := ev.X - r.lastX
	dy := ev.Y - r.lastY
	if !r.dragging {
		if math.Hypot(ev.X-r.downX, ev.Y-r.downY) < r.cfg.TouchSlop {
			return
		}
		r.dragging = true
		r.longPressArm = false
		r.secondTap = false
	}
	r.l.OnDrag(dx, dy)
	r.lastX, r.lastY = ev.X, ev.Y
}

func (r *Recognizer) pointerUp(ev gpucontext.PointerEvent) {
	i := r.find(ev.PointerID)
	if i < 0 {
		return
	}
	r.pointers[i].x, r.pointers[i].y = ev.X, ev.Y
	r.pointers = append(r.pointers[:i], r.pointers[i+1:]...)

	if len(r.pointers) > 0 {
		if len(r.pointers) < 2 {
			r.scaling = false
			r.prevSpan = 0
		} else {
			_, r.prevSpan = r.focusAndSpan()
		}
		return
	}

	wasDragging := r.dragging
	tap := !r.dragging && !r.multiTouched && !r.longPressed
	secondTap := r.secondTap

	if wasDragging {
		r.vel.Add(ev.Timestamp, ev.X, ev.Y)
		vx, vy := r.vel.Velocity()
		if math.Max(math.Abs(vx), math.Abs(vy)) >= r.cfg.MinFlingVelocity {
			vx = clampAbs(vx, r.cfg.MaxFlingVelocity)
			vy = clampAbs(vy, r.cfg.MaxFlingVelocity)
			r.endSession()
			r.l.OnFling(ev.X, ev.Y, vx, vy)
			return
		}
	}

	downX, downY := r.downX, r.downY
	r.endSession()
	if !tap {
		return
	}
	if secondTap {
		r.l.OnDoubleTap(r.tapX, r.tapY)
		return
	}
	r.tapPending = true
	r.tapX, r.tapY = downX, downY
	r.tapUpAt = ev.Timestamp
}

// Tick fires timed gestures (long press, confirmed single tap) whose
// deadline is at or before now. Hosts call it from their frame loop while
// NextDeadline reports a pending deadline.
func (r *Recognizer) Tick(now time.Duration) {
	if r.longPressArm && r.down && now >= r.longPressDue {
		r.longPressArm = false
		r.longPressed = true
		r.secondTap = false
		r.l.OnLongPress(r.downX, r.downY)
	}
	if r.tapPending && !r.down && now-r.tapUpAt > r.cfg.DoubleTapTimeout {
		r.tapPending = false
		r.l.OnSingleTap(r.tapX, r.tapY)
	}
}

// NextDeadline returns the earliest time Tick has work to do.
func (r *Recognizer) NextDeadline() (time.Duration, bool) {
	var (
		due time.Duration
		ok  bool
	)
	if r.longPressArm && r.down {
		due, ok = r.longPressDue, true
	}
	if r.tapPending && !r.down {
		tapDue := r.tapUpAt + r.cfg.DoubleTapTimeout + 1
		if !ok || tapDue < due {
			due, ok = tapDue, true
		}
	}
	return due, ok
}

// OnGestureEvent feeds a platform-computed multi-touch gesture. Zoom deltas
// are reported through OnScale around the gesture centre. A gesture with
// fewer than two pointers ends platform scaling.
func (r *Recognizer) OnGestureEvent(ev gpucontext.GestureEvent) {
	if ev.NumPointers < 2 {
		r.platformScaling = false
		return
	}
	r.platformScaling = true
	r.multiTouched = r.down
	r.longPressArm = false
	if ev.ZoomDelta > 0 && ev.ZoomDelta != 1 {
		r.l.OnScale(ev.ZoomDelta, ev.Center.X, ev.Center.Y)
	}
}

// OnScrollEvent maps wheel input: with Control held it zooms around the
// pointer, otherwise it pans. It returns true if the event was used.
func (r *Recognizer) OnScrollEvent(ev gpucontext.ScrollEvent) bool {
	if ev.DeltaX == 0 && ev.DeltaY == 0 {
		return false
	}
	lines := func(d float64) float64 {
		switch ev.DeltaMode {
		case gpucontext.ScrollDeltaPixel:
			return d / r.cfg.WheelLineHeight
		case gpucontext.ScrollDeltaPage:
			return d * 10
		default:
			return d
		}
	}
	if ev.Modifiers.HasControl() {
		if ev.DeltaY == 0 {
			return false
		}
		factor := math.Pow(r.cfg.WheelZoomBase, -lines(ev.DeltaY))
		r.l.OnScale(factor, ev.X, ev.Y)
		return true
	}
	r.l.OnDrag(-lines(ev.DeltaX)*r.cfg.WheelLineHeight, -lines(ev.DeltaY)*r.cfg.WheelLineHeight)
	return true
}

func (r *Recognizer) find(id int) int {
	for i, p := range r.pointers {
		if p.id == id {
			return i
		}
	}
	return -1
}

// focusAndSpan returns the centroid of active pointers and their average
// distance from it.
func (r *Recognizer) focusAndSpan() (pointer, float64) {
	var c pointer
	n := float64(len(r.pointers))
	if n == 0 {
		return c, 0
	}
	for _, p := range r.pointers {
		c.x += p.x
		c.y += p.y
	}
	c.x /= n
	c.y /= n
	var span float64
	for _, p := range r.pointers {
		span += math.Hypot(p.x-c.x, p.y-c.y)
	}
	return c, span / n
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
