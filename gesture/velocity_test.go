// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"math"
	"testing"
	"time"
)

func TestVelocityConstantMotion(t *testing.T) {
	var v VelocityTracker
	// 1000 px/s along x, -500 px/s along y, sampled every 8ms.
	for i := 0; i < 10; i++ {
		ts := time.Duration(i) * 8 * time.Millisecond
		secs := ts.Seconds()
		v.Add(ts, 1000*secs, -500*secs)
	}
	vx, vy := v.Velocity()
	if math.Abs(vx-1000) > 1e-6 {
		t.Errorf("vx = %v, want 1000", vx)
	}
	if math.Abs(vy+500) > 1e-6 {
		t.Errorf("vy = %v, want -500", vy)
	}
}

func TestVelocityInsufficientSamples(t *testing.T) {
	tests := []struct {
		name string
		add  func(v *VelocityTracker)
	}{
		{"empty", func(v *VelocityTracker) {}},
		{"single", func(v *VelocityTracker) { v.Add(0, 10, 10) }},
		{"same timestamp", func(v *VelocityTracker) {
			v.Add(time.Millisecond, 0, 0)
			v.Add(time.Millisecond, 50, 50)
		}},
		{"gap too large", func(v *VelocityTracker) {
			v.Add(0, 0, 0)
			v.Add(50*time.Millisecond, 100, 0)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v VelocityTracker
			tt.add(&v)
			vx, vy := v.Velocity()
			if vx != 0 || vy != 0 {
				t.Errorf("Velocity() = (%v, %v), want (0, 0)", vx, vy)
			}
		})
	}
}

func TestVelocityIgnoresStaleSamples(t *testing.T) {
	var v VelocityTracker
	// Fast motion long ago, then a slow recent segment.
	for i := 0; i < 5; i++ {
		ts := time.Duration(i) * 10 * time.Millisecond
		v.Add(ts, float64(i)*100, 0)
	}
	base := 500 * time.Millisecond
	for i := 0; i < 5; i++ {
		ts := base + time.Duration(i)*10*time.Millisecond
		v.Add(ts, 1000+float64(i), 0)
	}
	vx, _ := v.Velocity()
	if math.Abs(vx-100) > 1e-6 {
		t.Errorf("vx = %v, want 100", vx)
	}
}

func TestVelocityReset(t *testing.T) {
	var v VelocityTracker
	v.Add(0, 0, 0)
	v.Add(10*time.Millisecond, 10, 0)
	v.Reset()
	if vx, vy := v.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("Velocity() after Reset = (%v, %v), want (0, 0)", vx, vy)
	}
}

func TestVelocityRingWraps(t *testing.T) {
	var v VelocityTracker
	for i := 0; i < 3*historySize; i++ {
		ts := time.Duration(i) * 2 * time.Millisecond
		v.Add(ts, 2*float64(i), 0)
	}
	// 2px per 2ms = 1000 px/s.
	vx, _ := v.Velocity()
	if math.Abs(vx-1000) > 1e-6 {
		t.Errorf("vx = %v, want 1000", vx)
	}
}
