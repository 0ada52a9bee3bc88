// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"image/color"

	"cogentcore.org/compose/base/option"
	"cogentcore.org/compose/core"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/modifier"
)

// TextConfig is the explicit configuration of text elements.
type TextConfig struct {

	// Text is the text to display (default "").
	Text option.Option[string]

	// Hint is displayed when the text is empty (default "").
	Hint option.Option[string]

	// Color is the text color (default opaque black).
	Color option.Option[color.RGBA]

	// Gravity aligns the text within the element (default top start).
	Gravity option.Option[layout.Gravity]

	// Typeface is the font (default [core.DefaultTypeface]).
	Typeface option.Option[core.Typeface]

	// Ems makes the element this many ems wide (default unset).
	Ems option.Option[int]

	// MaxLines is the maximum number of lines (default unbounded).
	MaxLines option.Option[int]

	// FontSize is the font size in sp (default [core.DefaultFontSize]).
	FontSize option.Option[float32]

	// Ellipsize is the ellipsis policy (default [core.TruncateNone]).
	Ellipsize option.Option[core.TruncateAt]

	// TextWatcher is added to the text watchers when set.
	TextWatcher core.TextWatcher
}

func (tc *TextConfig) apply(t *core.TextView) {
	tc.Text.Apply(&t.Text)
	tc.Hint.Apply(&t.Hint)
	tc.Ems.Apply(&t.Ems)
	tc.Color.Apply(&t.Color)
	tc.Gravity.Apply(&t.Gravity)
	tc.Typeface.Apply(&t.Typeface)
	tc.MaxLines.Apply(&t.MaxLines)
	tc.Ellipsize.Apply(&t.Ellipsize)
	tc.FontSize.Apply(&t.FontSize)
	if tc.TextWatcher != nil {
		t.AddTextWatcher(tc.TextWatcher)
	}
}

// Text builds a text element in the given parent.
func Text(parent core.Container, m modifier.Modifier, cfg TextConfig, content func(t *core.TextView)) *core.TextView {
	return build(parent, core.NewTextView(ctx(parent)), m, func(t *core.TextView) {
		cfg.apply(t)
	}, content)
}

// EditText builds an editable text element in the given parent.
func EditText(parent core.Container, m modifier.Modifier, cfg TextConfig, content func(et *core.EditText)) *core.EditText {
	return build(parent, core.NewEditText(ctx(parent)), m, func(et *core.EditText) {
		cfg.apply(&et.TextView)
	}, content)
}

// CheckBoxConfig is the explicit configuration of check boxes.
type CheckBoxConfig struct {

	// Text is the label (default "").
	Text option.Option[string]

	// Checked is the initial state (default false).
	Checked option.Option[bool]

	// ButtonDrawable replaces the check mark (default nil).
	ButtonDrawable option.Option[core.Drawable]

	// OnChecked is called when the state changes, when set.
	OnChecked func(cb *core.CheckBox, checked bool)
}

// CheckBox builds a check box in the given parent.
func CheckBox(parent core.Container, m modifier.Modifier, cfg CheckBoxConfig, content func(cb *core.CheckBox)) *core.CheckBox {
	return build(parent, core.NewCheckBox(ctx(parent)), m, func(cb *core.CheckBox) {
		cfg.Text.Apply(&cb.Text)
		cfg.Checked.Apply(&cb.Checked)
		cfg.ButtonDrawable.Apply(&cb.ButtonDrawable)
		if cfg.OnChecked != nil {
			cb.OnCheckedChange = cfg.OnChecked
		}
	}, content)
}
