// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and conversion between
// [color.RGBA] values, CSS color names, hex strings and packed
// ARGB integers as used by host toolkits.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"cogentcore.org/compose/base/errors"
)

var (
	// Transparent is fully transparent black.
	Transparent = color.RGBA{}

	// Black is opaque black.
	Black = color.RGBA{A: 0xff}

	// White is opaque white.
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// AsRGBA returns the given color as a premultiplied [color.RGBA].
// A nil color is [Transparent].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return Transparent
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromARGB converts a packed, non-premultiplied 0xAARRGGBB integer
// into a [color.RGBA].
func FromARGB(argb uint32) color.RGBA {
	return AsRGBA(color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	})
}

// ToARGB converts the given color into a packed,
// non-premultiplied 0xAARRGGBB integer.
func ToARGB(c color.Color) uint32 {
	if c == nil {
		return 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// WithAlpha returns the given color with its alpha replaced by
// the given opacity in the range [0, 1].
func WithAlpha(c color.Color, alpha float32) color.RGBA {
	n := color.NRGBAModel.Convert(AsRGBA(c)).(color.NRGBA)
	n.A = uint8(math32.Round(math32.Min(math32.Max(alpha, 0), 1) * 255))
	return AsRGBA(n)
}

// FromName returns the color with the given CSS color name.
func FromName(name string) (color.RGBA, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "transparent" {
		return Transparent, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors: unknown color name %q", name)
	}
	return c, nil
}

// FromHex parses a hex color string in the #rgb, #rrggbb or
// #aarrggbb formats. The leading # is optional.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 9 {
		argb, err := strconv.ParseUint(hex[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors: invalid hex color %q: %w", hex, err)
		}
		return FromARGB(uint32(argb)), nil
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors: invalid hex color %q: %w", hex, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// FromString parses a color from either a hex string or a CSS color name.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}
	return FromName(s)
}

// MustFromString is [FromString] but panics on error. It is
// intended for color literals known to be valid.
func MustFromString(s string) color.RGBA {
	return errors.Must1(FromString(s))
}
