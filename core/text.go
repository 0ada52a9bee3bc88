// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"

	"cogentcore.org/compose/colors"
	"cogentcore.org/compose/layout"
)

// TextElement is an element that displays text. Text modifiers only
// apply to elements that satisfy it.
type TextElement interface {
	Element

	// AsTextView returns the [TextView] of this element.
	AsTextView() *TextView
}

// TypefaceStyles are the styles of a typeface.
type TypefaceStyles int32

const (
	StyleNormal TypefaceStyles = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// Typeface is a font family with a style.
type Typeface struct {
	Family string
	Style  TypefaceStyles
}

// DefaultTypeface is the typeface of text elements when none is given.
var DefaultTypeface = Typeface{Family: "sans-serif"}

// TruncateAt is the ellipsis policy for text that does not fit.
type TruncateAt int32

const (
	TruncateNone TruncateAt = iota
	TruncateStart
	TruncateMiddle
	TruncateEnd
	TruncateMarquee
)

// TextAlignments are the alignments of text within its paragraph.
type TextAlignments int32

const (
	TextAlignInherit TextAlignments = iota
	TextAlignGravity
	TextAlignTextStart
	TextAlignTextEnd
	TextAlignCenter
	TextAlignViewStart
	TextAlignViewEnd
)

// TextDirections are the ways of choosing the direction of text.
type TextDirections int32

const (
	TextDirectionInherit TextDirections = iota
	// TextDirectionFirstStrong uses the first strong directional character.
	TextDirectionFirstStrong
	// TextDirectionAnyRTL is right-to-left if any strong character is right-to-left.
	TextDirectionAnyRTL
	TextDirectionLTR
	TextDirectionRTL
	TextDirectionLocale
)

// TextWatcher is notified whenever the text of an element changes.
type TextWatcher func(t *TextView, old, text string)

// compound drawable slots
const (
	DrawableLeft = iota
	DrawableTop
	DrawableRight
	DrawableBottom
)

// DefaultFontSize is the default font size of text elements in sp.
const DefaultFontSize = 14

// TextView is an element that displays text.
type TextView struct {
	View

	// Text is the text to display.
	Text string

	// Hint is displayed when the text is empty.
	Hint string

	// Color is the text color.
	Color color.RGBA

	// Gravity is the alignment of the text within the element.
	Gravity layout.Gravity

	// Typeface is the font of the text.
	Typeface Typeface

	// Ems makes the element exactly this many ems wide; -1 means unset.
	Ems int

	// MaxLines is the maximum number of lines displayed.
	MaxLines int

	// FontSize is the font size in sp.
	FontSize float32

	// Ellipsize is the ellipsis policy.
	Ellipsize TruncateAt

	// TextAlignment is the paragraph alignment of the text.
	TextAlignment TextAlignments

	// TextDirection chooses the direction of the text.
	TextDirection TextDirections

	// CompoundDrawables are the decorations around the text, indexed by
	// [DrawableLeft] and friends. When [TextView.CompoundRelative] is set
	// the left and right slots mean start and end.
	CompoundDrawables [4]Drawable

	// CompoundRelative is whether the horizontal compound drawables
	// follow the text direction.
	CompoundRelative bool

	// TextWatchers are notified of text changes, in order.
	TextWatchers []TextWatcher
}

// NewTextView returns a new unattached text element bound to the given context.
func NewTextView(ctx *Context) *TextView {
	t := &TextView{}
	t.InitTextView(t, ctx)
	return t
}

// InitTextView binds the text view to the given outer element and
// context, and sets every property to its default.
func (t *TextView) InitTextView(this TextElement, ctx *Context) {
	t.InitView(this, ctx)
	t.Color = colors.Black
	t.Gravity = layout.GravityTop | layout.GravityStart
	t.Typeface = DefaultTypeface
	t.Ems = -1
	t.MaxLines = math.MaxInt32
	t.FontSize = DefaultFontSize
}

// AsTextView returns the [TextView] for this element.
func (t *TextView) AsTextView() *TextView {
	return t
}

// SetText sets the text and notifies the text watchers if it changed.
func (t *TextView) SetText(text string) {
	old := t.Text
	if old == text {
		return
	}
	t.Text = text
	for _, w := range t.TextWatchers {
		w(t, old, text)
	}
}

// AddTextWatcher adds a watcher notified of subsequent text changes.
func (t *TextView) AddTextWatcher(w TextWatcher) {
	t.TextWatchers = append(t.TextWatchers, w)
}

// FontSizePx returns the font size in pixels.
func (t *TextView) FontSizePx() float32 {
	if t.Ctx == nil {
		return t.FontSize
	}
	return t.Ctx.Sp(t.FontSize)
}

// IsRTL returns whether the text is laid out right-to-left,
// according to its [TextView.TextDirection].
func (t *TextView) IsRTL() bool {
	switch t.TextDirection {
	case TextDirectionRTL:
		return true
	case TextDirectionLTR, TextDirectionLocale:
		return false
	case TextDirectionAnyRTL:
		rtl, _ := scanStrong(t.Text, true)
		return rtl
	}
	rtl, _ := scanStrong(t.Text, false)
	return rtl
}

// scanStrong looks for strong directional characters. With anyRTL unset it
// returns the direction of the first one; with anyRTL set it reports whether
// any of them is right-to-left. found is false when there are none.
func scanStrong(s string, anyRTL bool) (rtl, found bool) {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			_, size = utf8.DecodeRuneInString(s)
		}
		s = s[size:]
		switch p.Class() {
		case bidi.R, bidi.AL:
			return true, true
		case bidi.L:
			if !anyRTL {
				return false, true
			}
			found = true
		}
	}
	return false, found
}

// AbsoluteCompoundDrawables returns the compound drawables with start and
// end resolved into left and right for the direction of the text.
func (t *TextView) AbsoluteCompoundDrawables() [4]Drawable {
	d := t.CompoundDrawables
	if t.CompoundRelative && t.IsRTL() {
		d[DrawableLeft], d[DrawableRight] = d[DrawableRight], d[DrawableLeft]
	}
	return d
}

// EditText is a text element whose text the user can edit.
type EditText struct {
	TextView

	// SelectionStart is the start of the selection.
	SelectionStart int

	// SelectionEnd is the end of the selection.
	SelectionEnd int
}

// NewEditText returns a new unattached editable text element bound to the given context.
func NewEditText(ctx *Context) *EditText {
	et := &EditText{}
	et.InitTextView(et, ctx)
	return et
}

// SetSelection moves the cursor to the given rune index,
// clamped to the text.
func (et *EditText) SetSelection(index int) {
	n := utf8.RuneCountInString(et.Text)
	index = max(0, min(index, n))
	et.SelectionStart = index
	et.SelectionEnd = index
}

// CheckBox is a two-state button with a text label.
type CheckBox struct {
	TextView

	// Checked is the state of the check box.
	Checked bool

	// ButtonDrawable replaces the default check mark.
	ButtonDrawable Drawable

	// OnCheckedChange is called when the state changes.
	OnCheckedChange func(cb *CheckBox, checked bool)
}

// NewCheckBox returns a new unattached check box bound to the given context.
func NewCheckBox(ctx *Context) *CheckBox {
	cb := &CheckBox{}
	cb.InitTextView(cb, ctx)
	return cb
}

// SetChecked sets the state and notifies the listener if it changed.
func (cb *CheckBox) SetChecked(checked bool) {
	if cb.Checked == checked {
		return
	}
	cb.Checked = checked
	if cb.OnCheckedChange != nil {
		cb.OnCheckedChange(cb, checked)
	}
}

// Toggle inverts the state.
func (cb *CheckBox) Toggle() {
	cb.SetChecked(!cb.Checked)
}

// PerformClick toggles the state and then calls the click listener.
// It returns whether there was a click listener.
func (cb *CheckBox) PerformClick() bool {
	cb.Toggle()
	return cb.View.PerformClick()
}
