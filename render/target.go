// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/panzoom"
)

// PixmapTarget is a CPU destination for the x/image render path. Its pixels
// are 8-bit RGBA.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	if err := surface.RenderTo(target); err != nil {
//	    return err
//	}
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget allocates a width x height target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int { return t.img.Rect.Dx() }

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int { return t.img.Rect.Dy() }

// Format returns the texture format matching the pixel layout.
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the pixels. The image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }

// Clear overwrites every pixel with c.
func (t *PixmapTarget) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawContent composites src over the target through m.
func (t *PixmapTarget) DrawContent(src image.Image, m panzoom.Matrix) error {
	return Draw(t.img, src, m)
}
