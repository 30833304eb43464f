// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/gg"
	"github.com/gogpu/panzoom"
)

var (
	// ErrNilImage is returned when a nil source or destination is given.
	ErrNilImage = errors.New("render: nil image")

	// ErrInvalidDimensions is returned for a surface with a non-positive size.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")

	// ErrClosed is returned by operations on a closed Surface.
	ErrClosed = errors.New("render: surface closed")

	// ErrFormatMismatch is returned when a target's pixel format or size
	// differs from the surface it is rendered from.
	ErrFormatMismatch = errors.New("render: target does not match surface")
)

// Aff3 converts m to the x/image affine layout.
func Aff3(m panzoom.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// GGMatrix converts m to a gg transformation matrix.
func GGMatrix(m panzoom.Matrix) gg.Matrix {
	return gg.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// Draw composites src over dst through m. Content coordinate (0, 0) is the
// top-left corner of src.Bounds().
func Draw(dst draw.Image, src image.Image, m panzoom.Matrix) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	sr := src.Bounds()
	if sr.Empty() {
		return nil
	}
	s2d := m.Multiply(panzoom.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
	draw.BiLinear.Transform(dst, Aff3(s2d), src, sr, draw.Over, nil)
	return nil
}
