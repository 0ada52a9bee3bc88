// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"math"
)

// Insets are pixel offsets on each side of a box, used for
// padding and margins.
type Insets struct {
	Left, Top, Right, Bottom int
}

// InsetsAll returns insets with the same value on every side.
func InsetsAll(v int) Insets {
	return Insets{v, v, v, v}
}

// InsetsSymmetric returns insets with one value for the left and
// right sides and another for the top and bottom.
func InsetsSymmetric(horizontal, vertical int) Insets {
	return Insets{horizontal, vertical, horizontal, vertical}
}

// InsetsOnly returns insets with the given value for each side.
func InsetsOnly(left, top, right, bottom int) Insets {
	return Insets{left, top, right, bottom}
}

// IsZero returns whether every side is zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}

// Horizontal returns the sum of the left and right insets.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the sum of the top and bottom insets.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

func (in Insets) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", in.Left, in.Top, in.Right, in.Bottom)
}

// Undefined is the grid start index that lets the grid place
// the element automatically.
const Undefined = math.MinInt32

// Spec is the placement of an element along one axis of a grid:
// the first cell it occupies and the number of cells it spans.
type Spec struct {
	Start int
	Span  int
}

// UndefinedSpec places an element automatically in a single cell.
var UndefinedSpec = Spec{Start: Undefined, Span: 1}

// SpanSpec returns an automatically placed spec with the given span.
func SpanSpec(span int) Spec {
	return Spec{Start: Undefined, Span: span}
}

func (s Spec) String() string {
	if s.Start == Undefined {
		return fmt.Sprintf("[auto, span %d]", s.Span)
	}
	return fmt.Sprintf("[%d, span %d]", s.Start, s.Span)
}

// Verb is an anchoring rule of an element in a relative container.
type Verb int32

const (
	LeftOf Verb = iota
	RightOf
	Above
	Below
	AlignBaseline
	AlignLeft
	AlignTop
	AlignRight
	AlignBottom
	AlignParentLeft
	AlignParentTop
	AlignParentRight
	AlignParentBottom
	CenterInParent
	CenterHorizontal
	CenterVertical
	StartOf
	EndOf
	AlignStart
	AlignEnd
	AlignParentStart
	AlignParentEnd
)

// True is the anchor value of rules that refer to the parent
// rather than a sibling, such as [AlignParentTop].
const True = -1

var verbNames = [...]string{
	"left_of", "right_of", "above", "below", "align_baseline",
	"align_left", "align_top", "align_right", "align_bottom",
	"align_parent_left", "align_parent_top", "align_parent_right", "align_parent_bottom",
	"center_in_parent", "center_horizontal", "center_vertical",
	"start_of", "end_of", "align_start", "align_end", "align_parent_start", "align_parent_end",
}

func (v Verb) String() string {
	if v < 0 || int(v) >= len(verbNames) {
		return fmt.Sprintf("Verb(%d)", int32(v))
	}
	return verbNames[v]
}

// IsParentRule returns whether the verb anchors to the parent
// instead of to a sibling.
func (v Verb) IsParentRule() bool {
	switch v {
	case AlignParentLeft, AlignParentTop, AlignParentRight, AlignParentBottom,
		CenterInParent, CenterHorizontal, CenterVertical, AlignParentStart, AlignParentEnd:
		return true
	}
	return false
}
