// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scroller integrates a decelerating two-axis fling inside fixed
// bounds.
//
// The motion of each axis is a point mass under a drag force proportional to
// its velocity:
//
//	x''(t) = k*x'(t)
//
// With x(0) = 0 and x'(0) = v0 the offset and velocity are
//
//	x(t)  = v0*e^(k*t)/k - v0/k
//	x'(t) = v0*e^(k*t)
//
// Positions are clamped to the bounds given to Fling; an axis that reaches a
// bound stops there.
package scroller

import (
	"math"
	"time"
)

const (
	// DefaultDecay is the drag coefficient k in 1/s.
	DefaultDecay = -4.2

	// StopVelocity is the speed in px/s below which an axis is at rest.
	StopVelocity = 1.0
)

type axis struct {
	start, min, max float64
	v0              float64
	curr            float64
	done            bool
}

func (a *axis) init(start, v0, min, max float64) {
	a.start = start
	a.min = min
	a.max = max
	a.v0 = v0
	a.curr = start
	a.done = v0 == 0 || min == max
}

func (a *axis) step(k, secs float64) {
	if a.done {
		return
	}
	ekt := math.Exp(k * secs)
	x := a.start + a.v0*ekt/k - a.v0/k
	switch {
	case x <= a.min:
		x = a.min
		a.done = true
	case x >= a.max:
		x = a.max
		a.done = true
	}
	if v := a.v0 * ekt; -StopVelocity < v && v < StopVelocity {
		a.done = true
	}
	a.curr = x
}

// Scroller tracks one fling. The zero value is finished.
//
// Scroller is NOT safe for concurrent use.
type Scroller struct {
	decay    float64
	t0       time.Duration
	x, y     axis
	finished bool
}

// New returns a finished Scroller using DefaultDecay.
func New() *Scroller {
	return &Scroller{decay: DefaultDecay, finished: true}
}

// SetDecay overrides the drag coefficient. Non-negative values are ignored
// because they would never decelerate.
func (s *Scroller) SetDecay(k float64) {
	if k < 0 {
		s.decay = k
	}
}

// Fling starts a fling at (startX, startY) with velocity (vx, vy) in px/s,
// confined to [minX, maxX] x [minY, maxY]. now is the start timestamp.
func (s *Scroller) Fling(now time.Duration, startX, startY, vx, vy, minX, maxX, minY, maxY float64) {
	if s.decay == 0 {
		s.decay = DefaultDecay
	}
	s.t0 = now
	s.x.init(clamp(startX, minX, maxX), vx, minX, maxX)
	s.y.init(clamp(startY, minY, maxY), vy, minY, maxY)
	s.finished = s.x.done && s.y.done
}

// ComputeOffset advances the fling to now. It returns false if the fling
// had already finished; the call that finishes the fling returns true so the
// final position can be applied.
func (s *Scroller) ComputeOffset(now time.Duration) bool {
	if s.finished {
		return false
	}
	secs := (now - s.t0).Seconds()
	if secs < 0 {
		secs = 0
	}
	s.x.step(s.decay, secs)
	s.y.step(s.decay, secs)
	s.finished = s.x.done && s.y.done
	return true
}

// ForceFinished stops the fling at its current position.
func (s *Scroller) ForceFinished() {
	s.finished = true
}

// IsFinished reports whether the fling has come to rest.
func (s *Scroller) IsFinished() bool {
	return s.finished
}

// Curr returns the current position.
func (s *Scroller) Curr() (x, y float64) {
	return s.x.curr, s.y.curr
}

// Final returns where the fling will come to rest if left alone.
func (s *Scroller) Final() (x, y float64) {
	return s.x.final(s.decay), s.y.final(s.decay)
}

func (a *axis) final(k float64) float64 {
	if a.done {
		return a.curr
	}
	return clamp(a.start-a.v0/k, a.min, a.max)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
