// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "strings"

// Gravity is a set of bit flags describing how an element or its content
// is placed within a larger area. Horizontal and vertical flags combine
// with |, as in GravityTop | GravityStart.
type Gravity int32

const (
	// GravityNone means no gravity has been specified.
	GravityNone Gravity = 0

	GravityCenterHorizontal Gravity = 0x01
	GravityLeft             Gravity = 0x03
	GravityRight            Gravity = 0x05
	GravityFillHorizontal   Gravity = 0x07

	GravityCenterVertical Gravity = 0x10
	GravityTop            Gravity = 0x30
	GravityBottom         Gravity = 0x50
	GravityFillVertical   Gravity = 0x70

	GravityCenter Gravity = GravityCenterHorizontal | GravityCenterVertical
	GravityFill   Gravity = GravityFillHorizontal | GravityFillVertical

	// relativeFlag marks horizontal gravity that follows the layout direction.
	relativeFlag Gravity = 0x00800000

	// GravityStart is left in left-to-right layouts and right otherwise.
	GravityStart Gravity = relativeFlag | GravityLeft

	// GravityEnd is right in left-to-right layouts and left otherwise.
	GravityEnd Gravity = relativeFlag | GravityRight

	// HorizontalMask selects the horizontal part of a gravity.
	HorizontalMask Gravity = relativeFlag | GravityFillHorizontal

	// VerticalMask selects the vertical part of a gravity.
	VerticalMask Gravity = GravityFillVertical
)

// Horizontal returns the horizontal part of the gravity.
func (g Gravity) Horizontal() Gravity {
	return g & HorizontalMask
}

// Vertical returns the vertical part of the gravity.
func (g Gravity) Vertical() Gravity {
	return g & VerticalMask
}

// WithHorizontal returns the gravity with its horizontal part replaced
// by the horizontal part of h.
func (g Gravity) WithHorizontal(h Gravity) Gravity {
	return g&^HorizontalMask | h.Horizontal()
}

// WithVertical returns the gravity with its vertical part replaced
// by the vertical part of v.
func (g Gravity) WithVertical(v Gravity) Gravity {
	return g&^VerticalMask | v.Vertical()
}

// Complete returns the gravity with a missing horizontal part set to
// [GravityStart] and a missing vertical part set to [GravityTop].
func (g Gravity) Complete() Gravity {
	if g.Horizontal() == 0 {
		g |= GravityStart
	}
	if g.Vertical() == 0 {
		g |= GravityTop
	}
	return g
}

// Absolute resolves start and end into left and right
// for the given layout direction.
func (g Gravity) Absolute(rtl bool) Gravity {
	if g&relativeFlag == 0 {
		return g
	}
	h := g.Horizontal() &^ relativeFlag
	switch {
	case h == GravityLeft && rtl:
		h = GravityRight
	case h == GravityRight && rtl:
		h = GravityLeft
	}
	return g&^HorizontalMask | h
}

func (g Gravity) String() string {
	if g == GravityNone {
		return "none"
	}
	var parts []string
	switch g.Horizontal() {
	case GravityCenterHorizontal:
		parts = append(parts, "center_horizontal")
	case GravityLeft:
		parts = append(parts, "left")
	case GravityRight:
		parts = append(parts, "right")
	case GravityFillHorizontal:
		parts = append(parts, "fill_horizontal")
	case GravityStart:
		parts = append(parts, "start")
	case GravityEnd:
		parts = append(parts, "end")
	}
	switch g.Vertical() {
	case GravityCenterVertical:
		parts = append(parts, "center_vertical")
	case GravityTop:
		parts = append(parts, "top")
	case GravityBottom:
		parts = append(parts, "bottom")
	case GravityFillVertical:
		parts = append(parts, "fill_vertical")
	}
	return strings.Join(parts, "|")
}
