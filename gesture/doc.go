// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gesture turns gpucontext pointer, gesture and scroll events into
// drags, pinches, taps, long presses and flings.
//
// A Recognizer is driven with events in arrival order and reports through a
// Listener. Timed gestures (single-tap confirmation and long press) fire
// from Tick, which the host calls from its frame loop while NextDeadline
// reports pending work.
//
//	r := gesture.New(listener, gesture.DefaultConfig())
//	source.OnPointer(func(ev gpucontext.PointerEvent) { r.OnPointerEvent(ev) })
//
// Release velocity is estimated by a least squares fit over recent samples,
// see VelocityTracker.
package gesture
