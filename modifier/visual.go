// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"image/color"

	"cogentcore.org/compose/colors"
	"cogentcore.org/compose/core"
)

// CornerRadius clips the element to its bounds with corners
// rounded by the given radius in pixels.
func (m Modifier) CornerRadius(radius float32) Modifier {
	return m.Outline(func(e core.Element, o *core.Outline) {
		o.SetRoundRect(o.Rect, radius)
	})
}

// Outline sets the function that computes the clipping shape of the element.
func (m Modifier) Outline(provider core.OutlineProvider) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().OutlineProvider = provider
	})
}

// Background sets the drawable painted behind the element.
func (m Modifier) Background(d core.Drawable) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().Background = d
	})
}

// BackgroundResource sets the background to the drawable resource with
// the given id, resolved through the context of the element.
func (m Modifier) BackgroundResource(id core.ResourceID) Modifier {
	return m.Then(func(e core.Element) {
		v := e.AsView()
		v.Background = v.Ctx.Drawable(id)
	})
}

// BackgroundColor sets the background to a solid color.
func (m Modifier) BackgroundColor(c color.RGBA) Modifier {
	return m.Background(core.ColorDrawable{Color: c})
}

// BackgroundString sets the background to a solid color given as a
// CSS color name or a hex string. It panics if the color is invalid.
func (m Modifier) BackgroundString(s string) Modifier {
	return m.BackgroundColor(colors.MustFromString(s))
}

// Foreground sets the drawable painted over the element.
func (m Modifier) Foreground(d core.Drawable) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().Foreground = d
	})
}

// ForegroundResource sets the foreground to the drawable resource with
// the given id, resolved through the context of the element.
func (m Modifier) ForegroundResource(id core.ResourceID) Modifier {
	return m.Then(func(e core.Element) {
		v := e.AsView()
		v.Foreground = v.Ctx.Drawable(id)
	})
}

// ForegroundColor sets the foreground to a solid color.
func (m Modifier) ForegroundColor(c color.RGBA) Modifier {
	return m.Foreground(core.ColorDrawable{Color: c})
}

// ForegroundString sets the foreground to a solid color given as a
// CSS color name or a hex string. It panics if the color is invalid.
func (m Modifier) ForegroundString(s string) Modifier {
	return m.ForegroundColor(colors.MustFromString(s))
}

// Translation sets the offset of the element from its laid out position.
func (m Modifier) Translation(x, y, z float32) Modifier {
	return m.Then(func(e core.Element) {
		v := e.AsView()
		v.TranslationX, v.TranslationY, v.TranslationZ = x, y, z
	})
}

// Rotation sets the rotation of the element around the z axis in degrees.
func (m Modifier) Rotation(degrees float32) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().Rotation = degrees
	})
}

// RotationXYZ sets the rotation of the element around each axis in degrees.
func (m Modifier) RotationXYZ(x, y, z float32) Modifier {
	return m.Then(func(e core.Element) {
		v := e.AsView()
		v.RotationX, v.RotationY, v.Rotation = x, y, z
	})
}

// Scale scales the element by the same factor on both axes.
func (m Modifier) Scale(v float32) Modifier {
	return m.ScaleXY(v, v)
}

// ScaleXY scales the element by the given factor on each axis.
func (m Modifier) ScaleXY(x, y float32) Modifier {
	return m.Then(func(e core.Element) {
		v := e.AsView()
		v.ScaleX, v.ScaleY = x, y
	})
}

// Alpha sets the opacity of the element, from 0 to 1.
func (m Modifier) Alpha(alpha float32) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().Alpha = alpha
	})
}

// OnClick sets the click listener of the element,
// replacing any previous one.
func (m Modifier) OnClick(fun func(e core.Element)) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().OnClick = fun
	})
}

// OnLongClick sets the long-click listener of the element,
// replacing any previous one.
func (m Modifier) OnLongClick(fun func(e core.Element) bool) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().OnLongClick = fun
	})
}

// OnTouch sets the touch listener of the element,
// replacing any previous one.
func (m Modifier) OnTouch(fun func(e core.Element, ev core.MotionEvent) bool) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().OnTouch = fun
	})
}
