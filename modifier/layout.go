// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"github.com/chewxy/math32"

	"cogentcore.org/compose/core"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/units"
)

// pixels converts the given value into whole pixels, rounded to the
// nearest, using the display metrics of the context of the element.
func pixels(e core.Element, v units.Value) int {
	uc := &units.Default
	if ctx := e.AsView().Ctx; ctx != nil && ctx.Units != nil {
		uc = ctx.Units
	}
	return int(math32.Round(v.ToDots(uc)))
}

// Size sets the width and height of the element to the given number of pixels.
func (m Modifier) Size(size int) Modifier {
	return m.Sized(size, size)
}

// Sized sets the width and height of the element. Each may also
// be [layout.MatchParent] or [layout.WrapContent].
func (m Modifier) Sized(width, height int) Modifier {
	return m.Then(func(e core.Element) {
		lp := params(e)
		lp.Width = width
		lp.Height = height
	})
}

// SizedUnits sets the width and height of the element from
// unit values, such as 48dp, converted when the modifier is applied.
func (m Modifier) SizedUnits(width, height units.Value) Modifier {
	return m.Then(func(e core.Element) {
		lp := params(e)
		lp.Width = pixels(e, width)
		lp.Height = pixels(e, height)
	})
}

// MatchParent makes the element as big as its parent on both axes.
func (m Modifier) MatchParent() Modifier {
	return m.Sized(layout.MatchParent, layout.MatchParent)
}

// WrapContent makes the element just big enough for its content on both axes.
func (m Modifier) WrapContent() Modifier {
	return m.Sized(layout.WrapContent, layout.WrapContent)
}

// MatchParentWidth makes the element as wide as its parent.
func (m Modifier) MatchParentWidth() Modifier {
	return m.Then(func(e core.Element) {
		params(e).Width = layout.MatchParent
	})
}

// MatchParentHeight makes the element as tall as its parent.
func (m Modifier) MatchParentHeight() Modifier {
	return m.Then(func(e core.Element) {
		params(e).Height = layout.MatchParent
	})
}

// WrapContentWidth makes the element just wide enough for its content.
func (m Modifier) WrapContentWidth() Modifier {
	return m.Then(func(e core.Element) {
		params(e).Width = layout.WrapContent
	})
}

// WrapContentHeight makes the element just tall enough for its content.
func (m Modifier) WrapContentHeight() Modifier {
	return m.Then(func(e core.Element) {
		params(e).Height = layout.WrapContent
	})
}

// MinWidth sets the minimum width of the element in pixels.
func (m Modifier) MinWidth(width int) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().MinWidth = width
	})
}

// MinHeight sets the minimum height of the element in pixels.
func (m Modifier) MinHeight(height int) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().MinHeight = height
	})
}

// FillParentWidth makes the element share the remaining width of a linear
// stack in proportion to the given weight. It requires weighted layout params.
func (m Modifier) FillParentWidth(weight float32) Modifier {
	return m.Then(func(e core.Element) {
		lp := weighted.require("FillParentWidth", e)
		lp.Width = layout.Flex
		lp.Weight = weight
	})
}

// FillParentHeight makes the element share the remaining height of a linear
// stack in proportion to the given weight. It requires weighted layout params.
func (m Modifier) FillParentHeight(weight float32) Modifier {
	return m.Then(func(e core.Element) {
		lp := weighted.require("FillParentHeight", e)
		lp.Height = layout.Flex
		lp.Weight = weight
	})
}

// ColumnSpan makes the element span the given number of grid columns,
// placed automatically. It requires grid layout params.
func (m Modifier) ColumnSpan(span int) Modifier {
	return m.Then(func(e core.Element) {
		gridded.require("ColumnSpan", e).ColumnSpec = layout.SpanSpec(span)
	})
}

// ColumnSpanIfSupported is [Modifier.ColumnSpan] for elements with
// grid layout params, and does nothing for others.
func (m Modifier) ColumnSpanIfSupported(span int) Modifier {
	return m.Then(func(e core.Element) {
		if lp, ok := gridded.supported("ColumnSpanIfSupported", e); ok {
			lp.ColumnSpec = layout.SpanSpec(span)
		}
	})
}

// RowSpan makes the element span the given number of grid rows,
// placed automatically. It requires grid layout params.
func (m Modifier) RowSpan(span int) Modifier {
	return m.Then(func(e core.Element) {
		gridded.require("RowSpan", e).RowSpec = layout.SpanSpec(span)
	})
}

// RowSpanIfSupported is [Modifier.RowSpan] for elements with
// grid layout params, and does nothing for others.
func (m Modifier) RowSpanIfSupported(span int) Modifier {
	return m.Then(func(e core.Element) {
		if lp, ok := gridded.supported("RowSpanIfSupported", e); ok {
			lp.RowSpec = layout.SpanSpec(span)
		}
	})
}

// LayoutGravity sets the alignment of the element within its parent.
// It requires gravity-aware layout params, as handed out by
// linear stacks and frames.
func (m Modifier) LayoutGravity(g layout.Gravity) Modifier {
	return m.Then(func(e core.Element) {
		gravityAware.require("LayoutGravity", e).Gravity = g
	})
}

// Padding sets the inner insets of the element.
func (m Modifier) Padding(in layout.Insets) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().Padding = in
	})
}

// PaddingAll sets all the inner insets of the element to the same value.
func (m Modifier) PaddingAll(v int) Modifier {
	return m.Padding(layout.InsetsAll(v))
}

// PaddingUnits sets all the inner insets of the element
// to the given unit value.
func (m Modifier) PaddingUnits(v units.Value) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().Padding = layout.InsetsAll(pixels(e, v))
	})
}

// PaddingSymmetric sets the horizontal and vertical inner insets of the element.
func (m Modifier) PaddingSymmetric(horizontal, vertical int) Modifier {
	return m.Padding(layout.InsetsSymmetric(horizontal, vertical))
}

// Margin sets the outer insets of the element. It requires
// margin-capable layout params; see [Modifier.MarginIfSupported].
func (m Modifier) Margin(in layout.Insets) Modifier {
	return m.Then(func(e core.Element) {
		marginCapable.require("Margin", e).Margins = in
	})
}

// MarginAll sets all the outer insets of the element to the same value.
// It requires margin-capable layout params.
func (m Modifier) MarginAll(v int) Modifier {
	return m.Margin(layout.InsetsAll(v))
}

// MarginSymmetric sets the horizontal and vertical outer insets of
// the element. It requires margin-capable layout params.
func (m Modifier) MarginSymmetric(horizontal, vertical int) Modifier {
	return m.Margin(layout.InsetsSymmetric(horizontal, vertical))
}

// MarginIfSupported is [Modifier.Margin] for elements with margin-capable
// layout params, and does nothing for others.
func (m Modifier) MarginIfSupported(in layout.Insets) Modifier {
	return m.Then(func(e core.Element) {
		if lp, ok := marginCapable.supported("MarginIfSupported", e); ok {
			lp.Margins = in
		}
	})
}

// Rule anchors the element in a relative container. The anchor is the
// id of a sibling, or [layout.True] for rules that refer to the parent.
// It requires relative layout params.
func (m Modifier) Rule(verb layout.Verb, anchor int) Modifier {
	return m.Then(func(e core.Element) {
		relative.require("Rule", e).SetRule(verb, anchor)
	})
}

// ID sets the id of the element, which siblings use as an anchor.
func (m Modifier) ID(id int) Modifier {
	return m.Then(func(e core.Element) {
		e.AsView().ID = id
	})
}

// Property sets the given property of the element.
func (m Modifier) Property(key string, value any) Modifier {
	return m.Then(func(e core.Element) {
		e.AsTree().SetProperty(key, value)
	})
}
