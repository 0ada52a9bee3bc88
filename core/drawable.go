// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Drawable is anything that can be painted into a rectangle, such as a
// background, a foreground, a divider or a text decoration.
type Drawable interface {

	// Draw paints the drawable into dst, filling r.
	Draw(dst draw.Image, r image.Rectangle)
}

// ColorDrawable paints a solid color.
type ColorDrawable struct {
	Color color.RGBA
}

func (d ColorDrawable) Draw(dst draw.Image, r image.Rectangle) {
	draw.Draw(dst, r, image.NewUniform(d.Color), image.Point{}, draw.Over)
}

func (d ColorDrawable) String() string {
	return fmt.Sprintf("color(#%02x%02x%02x%02x)", d.Color.R, d.Color.G, d.Color.B, d.Color.A)
}

// ImageDrawable paints an image scaled to fill the rectangle.
type ImageDrawable struct {

	// Image is the source image.
	Image image.Image

	// Scaler scales the image; it defaults to [draw.ApproxBiLinear].
	Scaler draw.Scaler
}

func (d ImageDrawable) Draw(dst draw.Image, r image.Rectangle) {
	if d.Image == nil {
		return
	}
	s := d.Scaler
	if s == nil {
		s = draw.ApproxBiLinear
	}
	s.Scale(dst, r, d.Image, d.Image.Bounds(), draw.Over, nil)
}

func (d ImageDrawable) String() string {
	if d.Image == nil {
		return "image(nil)"
	}
	return fmt.Sprintf("image(%v)", d.Image.Bounds().Size())
}
