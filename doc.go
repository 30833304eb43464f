// Package panzoom attaches pinch zoom, panning, double-tap zoom and
// momentum fling to an image displayed inside a fixed-size viewport.
//
// # Overview
//
// A Controller owns two affine transforms. The base transform fits the
// content into the viewport according to a ScaleType. The user transform
// accumulates drags, pinches, rotations and animation steps on top of it.
// The transform the host draws with is the base transform followed by the
// user transform:
//
//	draw = Compose(base, user)
//
// After every change the Controller clamps the user transform so the content
// never leaves valid bounds and publishes the result to the Host.
//
// # Quick Start
//
//	c, err := panzoom.New(host, panzoom.WithScaleLevels(1, 2, 4))
//	if err != nil {
//		return err
//	}
//	defer c.Detach()
//
//	c.SetOnPhotoTap(func(x, y float64) {
//		fmt.Printf("tapped at %.0f%% x %.0f%%\n", x*100, y*100)
//	})
//
//	// Feed input from any gpucontext event source...
//	c.Bind(window)
//
//	// ...or forward events by hand.
//	c.HandlePointer(ev)
//
// # Host
//
// The Host reports viewport and content sizes, receives the display
// transform, and runs frame callbacks. Animations (double-tap zoom, snap-back
// below the minimum scale, fling) advance one step per Host.PostFrame
// callback. The render package provides a Host that paints through gg.
//
// # Coordinate System
//
// Viewport coordinates have the origin at the top-left of the padded content
// box, X increasing right and Y increasing down. Content coordinates are
// pixels of the unscaled content. Rotation angles given to Matrix
// constructors are in radians; Controller rotation methods take degrees.
//
// # Bounds
//
// When content is smaller than the viewport along an axis it is aligned by
// the scale type. When larger, its edges may not move inside the viewport.
// An Overlap lets content rest partly past one horizontal edge, which suits
// paged layouts. Rotated content is bounded by its axis-aligned box.
//
// # Concurrency
//
// Controller is NOT safe for concurrent use. All calls, including
// Host.PostFrame callbacks, must come from one goroutine.
//
// # Logging
//
// panzoom logs through log/slog and is silent by default. Use SetLogger or
// WithLogger to enable output.
package panzoom
