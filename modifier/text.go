// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modifier

import (
	"log/slog"

	"cogentcore.org/compose/core"
)

func requireText(op string, e core.Element) *core.TextView {
	te, ok := e.(core.TextElement)
	if !ok {
		panic(&ContractError{Op: op, Want: "text element", Got: e.AsTree().TypeName()})
	}
	return te.AsTextView()
}

func supportedText(op string, e core.Element) (*core.TextView, bool) {
	te, ok := e.(core.TextElement)
	if !ok {
		slog.Debug("modifier skipped", "element", e.AsTree().Path(), "op", op, "want", "text element")
		return nil, false
	}
	return te.AsTextView(), true
}

func setCompound(t *core.TextView, rel bool, d [4]core.Drawable) {
	t.CompoundDrawables = d
	t.CompoundRelative = rel
}

// CompoundDrawables sets the decorations drawn to the left, above, to the
// right of and below the text of the element; nil leaves a side empty.
// It requires a text element.
func (m Modifier) CompoundDrawables(left, top, right, bottom core.Drawable) Modifier {
	return m.Then(func(e core.Element) {
		setCompound(requireText("CompoundDrawables", e), false, [4]core.Drawable{left, top, right, bottom})
	})
}

// CompoundDrawablesIfSupported is [Modifier.CompoundDrawables] for
// text elements, and does nothing for others.
func (m Modifier) CompoundDrawablesIfSupported(left, top, right, bottom core.Drawable) Modifier {
	return m.Then(func(e core.Element) {
		if t, ok := supportedText("CompoundDrawablesIfSupported", e); ok {
			setCompound(t, false, [4]core.Drawable{left, top, right, bottom})
		}
	})
}

// CompoundDrawablesRelative is [Modifier.CompoundDrawables] with start and
// end sides that follow the direction of the text. It requires a text element.
func (m Modifier) CompoundDrawablesRelative(start, top, end, bottom core.Drawable) Modifier {
	return m.Then(func(e core.Element) {
		setCompound(requireText("CompoundDrawablesRelative", e), true, [4]core.Drawable{start, top, end, bottom})
	})
}

// CompoundDrawablesRelativeIfSupported is [Modifier.CompoundDrawablesRelative]
// for text elements, and does nothing for others.
func (m Modifier) CompoundDrawablesRelativeIfSupported(start, top, end, bottom core.Drawable) Modifier {
	return m.Then(func(e core.Element) {
		if t, ok := supportedText("CompoundDrawablesRelativeIfSupported", e); ok {
			setCompound(t, true, [4]core.Drawable{start, top, end, bottom})
		}
	})
}

// TextAlignment sets the paragraph alignment of the text.
// It requires a text element.
func (m Modifier) TextAlignment(a core.TextAlignments) Modifier {
	return m.Then(func(e core.Element) {
		requireText("TextAlignment", e).TextAlignment = a
	})
}

// TextAlignmentIfSupported is [Modifier.TextAlignment] for text
// elements, and does nothing for others.
func (m Modifier) TextAlignmentIfSupported(a core.TextAlignments) Modifier {
	return m.Then(func(e core.Element) {
		if t, ok := supportedText("TextAlignmentIfSupported", e); ok {
			t.TextAlignment = a
		}
	})
}

// TextDirection sets how the direction of the text is chosen.
// It requires a text element.
func (m Modifier) TextDirection(d core.TextDirections) Modifier {
	return m.Then(func(e core.Element) {
		requireText("TextDirection", e).TextDirection = d
	})
}

// TextDirectionIfSupported is [Modifier.TextDirection] for text
// elements, and does nothing for others.
func (m Modifier) TextDirectionIfSupported(d core.TextDirections) Modifier {
	return m.Then(func(e core.Element) {
		if t, ok := supportedText("TextDirectionIfSupported", e); ok {
			t.TextDirection = d
		}
	})
}
