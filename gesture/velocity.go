// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

const (
	historySize  = 20
	maxAge       = 100 * time.Millisecond
	maxSampleGap = 40 * time.Millisecond
)

type sample struct {
	t    time.Duration
	x, y float64
}

// VelocityTracker estimates pointer velocity from timestamped positions
// using a least squares line fit over the most recent samples.
type VelocityTracker struct {
	samples [historySize]sample
	n       int // number of valid samples
	idx     int // next write position

	ts, xs, ys []float64
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.n = 0
	v.idx = 0
}

// Add records the pointer position at time t.
func (v *VelocityTracker) Add(t time.Duration, x, y float64) {
	v.samples[v.idx] = sample{t: t, x: x, y: y}
	v.idx = (v.idx + 1) % historySize
	if v.n < historySize {
		v.n++
	}
}

// get returns the i-th most recent sample (0 is the newest).
func (v *VelocityTracker) get(i int) sample {
	return v.samples[(v.idx-1-i+2*historySize)%historySize]
}

// Velocity returns the estimated velocity in px/s. It returns zero when
// fewer than two usable samples exist or they share one timestamp.
func (v *VelocityTracker) Velocity() (vx, vy float64) {
	if v.n < 2 {
		return 0, 0
	}
	v.ts, v.xs, v.ys = v.ts[:0], v.xs[:0], v.ys[:0]
	newest := v.get(0)
	prev := newest.t
	for i := 0; i < v.n; i++ {
		s := v.get(i)
		// Older or sparser samples are not part of the current motion.
		if newest.t-s.t >= maxAge || prev-s.t >= maxSampleGap {
			break
		}
		prev = s.t
		v.ts = append(v.ts, (s.t - newest.t).Seconds())
		v.xs = append(v.xs, s.x)
		v.ys = append(v.ys, s.y)
	}
	if len(v.ts) < 2 || v.ts[0] == v.ts[len(v.ts)-1] {
		return 0, 0
	}
	_, vx = stat.LinearRegression(v.ts, v.xs, nil, false)
	_, vy = stat.LinearRegression(v.ts, v.ys, nil, false)
	return vx, vy
}
