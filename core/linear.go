// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/compose/layout"

// Orientations are the directions of a linear stack.
type Orientations int32

const (
	Horizontal Orientations = iota
	Vertical
)

func (o Orientations) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ShowDividers is a set of flags for where dividers are drawn in a linear stack.
type ShowDividers int32

const (
	ShowDividerNone      ShowDividers = 0
	ShowDividerBeginning ShowDividers = 1
	ShowDividerMiddle    ShowDividers = 2
	ShowDividerEnd       ShowDividers = 4
)

// Linear is a container that arranges its children in a single row
// or a single column. Children may share the remaining space by weight.
type Linear struct {
	Group

	// Orientation is whether the children form a row or a column.
	Orientation Orientations

	// Gravity places the children when there is extra space.
	Gravity layout.Gravity

	// ShowDividers is where dividers are drawn between children.
	ShowDividers ShowDividers

	// DividerDrawable is drawn as the divider.
	DividerDrawable Drawable

	// WeightSum is the maximum weight sum; 0 or less uses the sum of
	// the weights of the children.
	WeightSum float32

	// BaselineAligned is whether children are aligned on their text baselines.
	BaselineAligned bool

	// BaselineAlignedChildIndex is the child whose baseline is the baseline
	// of the stack, or -1 for none.
	BaselineAlignedChildIndex int

	// MeasureWithLargestChild is whether every weighted child is given the
	// size of the largest child.
	MeasureWithLargestChild bool
}

// NewLinear returns a new unattached horizontal linear stack
// bound to the given context.
func NewLinear(ctx *Context) *Linear {
	l := &Linear{}
	l.InitView(l, ctx)
	l.Orientation = Horizontal
	l.Gravity = layout.GravityTop | layout.GravityStart
	l.BaselineAligned = true
	l.BaselineAlignedChildIndex = -1
	return l
}

// SetGravity sets the gravity, defaulting a missing horizontal
// part to start and a missing vertical part to top.
func (l *Linear) SetGravity(g layout.Gravity) {
	l.Gravity = g.Complete()
}

// GenerateLayoutParams returns weighted parameters that wrap their content
// in a row, and fill the width of a column.
func (l *Linear) GenerateLayoutParams() *layout.Params {
	if l.Orientation == Vertical {
		return layout.New(layout.ShapeWeighted, layout.MatchParent, layout.WrapContent)
	}
	return layout.New(layout.ShapeWeighted, layout.WrapContent, layout.WrapContent)
}

// TotalWeight returns the weight sum the remaining space is divided by.
func (l *Linear) TotalWeight() float32 {
	if l.WeightSum > 0 {
		return l.WeightSum
	}
	var sum float32
	for _, k := range l.ChildElements() {
		if lp := k.AsView().LayoutParams; lp != nil && lp.Shape.HasWeight() {
			sum += lp.Weight
		}
	}
	return sum
}
