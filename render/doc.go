// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws content through a panzoom display matrix.
//
// Two paths are provided:
//
//   - [Draw] resamples an image.Image into any draw.Image with the
//     golang.org/x/image bilinear interpolator. [PixmapTarget] is a
//     CPU-backed destination for it.
//   - [Surface] is an offscreen panzoom.Host backed by a gg.Context. It owns
//     the frame clock and the frame queue a Controller posts animation steps
//     to, and renders the content with the last published matrix.
//
// # Usage
//
//	s, err := render.NewSurface(800, 600, photo)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	c, err := panzoom.New(s)
//	if err != nil {
//	    return err
//	}
//	c.HandlePointer(ev) // feed input
//	s.Run(120)          // drive animations
//	_ = s.Render()
//	_ = s.SavePNG("out.png")
//
// Surface is NOT safe for concurrent use. Feed it from one goroutine, the
// same one that feeds the Controller.
package render
