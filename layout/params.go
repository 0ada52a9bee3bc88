// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides the layout parameters that a container hands
// to each of its children. The fields that are meaningful depend on the
// [Shapes] of the parameters, which is chosen by the container.
package layout

import (
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"
)

const (
	// MatchParent is the width or height sentinel for an element
	// that should be as big as its parent, minus padding.
	MatchParent = -1

	// WrapContent is the width or height sentinel for an element
	// that should be just big enough to fit its own content.
	WrapContent = -2

	// Flex is the width or height sentinel used together with a weight:
	// the size along that axis comes from distributing the remaining space.
	Flex = 0
)

// Shapes is the finite set of layout parameter variants that
// containers can hand to their children.
type Shapes int32

const (
	// ShapeBasic has only width and height.
	ShapeBasic Shapes = iota

	// ShapeMargin adds outer margins.
	ShapeMargin

	// ShapeWeighted adds margins, a proportional weight and a gravity,
	// as used by linear stacks.
	ShapeWeighted

	// ShapeGravity adds margins and a gravity, as used by overlay frames.
	ShapeGravity

	// ShapeGrid adds margins and row and column specs.
	ShapeGrid

	// ShapeRelative adds margins and anchoring rules.
	ShapeRelative
)

var shapeNames = [...]string{
	ShapeBasic:    "basic",
	ShapeMargin:   "margin",
	ShapeWeighted: "weighted",
	ShapeGravity:  "gravity",
	ShapeGrid:     "grid",
	ShapeRelative: "relative",
}

func (s Shapes) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shapes(%d)", int32(s))
	}
	return shapeNames[s]
}

// HasMargins returns whether parameters of this shape carry margins.
func (s Shapes) HasMargins() bool {
	switch s {
	case ShapeMargin, ShapeWeighted, ShapeGravity, ShapeGrid, ShapeRelative:
		return true
	}
	return false
}

// HasWeight returns whether parameters of this shape carry a weight.
func (s Shapes) HasWeight() bool {
	return s == ShapeWeighted
}

// HasGravity returns whether parameters of this shape carry a gravity.
func (s Shapes) HasGravity() bool {
	return s == ShapeWeighted || s == ShapeGravity
}

// HasSpecs returns whether parameters of this shape carry grid specs.
func (s Shapes) HasSpecs() bool {
	return s == ShapeGrid
}

// HasRules returns whether parameters of this shape carry anchoring rules.
func (s Shapes) HasRules() bool {
	return s == ShapeRelative
}

// Params are the layout parameters of an element. Only the fields
// that the [Params.Shape] supports are meaningful; the others are
// kept at their zero values.
type Params struct {

	// Shape is the variant of these parameters.
	Shape Shapes

	// Width is the width in pixels, or [MatchParent], [WrapContent] or [Flex].
	Width int

	// Height is the height in pixels, or [MatchParent], [WrapContent] or [Flex].
	Height int

	// Margins are the outer insets of the element.
	Margins Insets

	// Weight is the share of the remaining space along the main axis.
	Weight float32

	// Gravity is the alignment of the element within its cell.
	Gravity Gravity

	// RowSpec is the row placement of the element in a grid.
	RowSpec Spec

	// ColumnSpec is the column placement of the element in a grid.
	ColumnSpec Spec

	// Rules are the anchoring rules of the element in a relative container,
	// mapping each verb to the id of its anchor (or [True] for parent rules).
	Rules map[Verb]int
}

// New returns new parameters of the given shape and size, with the
// shape-specific fields at their defaults.
func New(shape Shapes, width, height int) *Params {
	p := &Params{Shape: shape, Width: width, Height: height}
	if shape.HasSpecs() {
		p.RowSpec = UndefinedSpec
		p.ColumnSpec = UndefinedSpec
	}
	return p
}

func (p *Params) String() string {
	s := fmt.Sprintf("%s %s x %s", p.Shape, sizeString(p.Width), sizeString(p.Height))
	if p.Shape.HasMargins() && !p.Margins.IsZero() {
		s += fmt.Sprintf(" margins=%v", p.Margins)
	}
	if p.Shape.HasWeight() && p.Weight != 0 {
		s += fmt.Sprintf(" weight=%g", p.Weight)
	}
	if p.Shape.HasGravity() && p.Gravity != GravityNone {
		s += fmt.Sprintf(" gravity=%v", p.Gravity)
	}
	if p.Shape.HasSpecs() {
		if p.RowSpec != UndefinedSpec {
			s += fmt.Sprintf(" row=%v", p.RowSpec)
		}
		if p.ColumnSpec != UndefinedSpec {
			s += fmt.Sprintf(" column=%v", p.ColumnSpec)
		}
	}
	if p.Shape.HasRules() && len(p.Rules) > 0 {
		s += fmt.Sprintf(" rules=%v", p.Rules)
	}
	return s
}

func sizeString(v int) string {
	switch v {
	case MatchParent:
		return "match"
	case WrapContent:
		return "wrap"
	}
	return fmt.Sprint(v)
}

// Clone returns a deep copy of the parameters.
func (p *Params) Clone() *Params {
	c := &Params{}
	if err := copier.CopyWithOption(c, p, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("layout.Params.Clone", "err", err)
		*c = *p
	}
	if p.Rules == nil {
		c.Rules = nil
	}
	return c
}

// Convert returns parameters of the given shape that keep the size of
// these parameters, along with every field the two shapes have in common.
// It is used when a container is given parameters made for another shape.
func (p *Params) Convert(shape Shapes) *Params {
	if p.Shape == shape {
		return p.Clone()
	}
	c := New(shape, p.Width, p.Height)
	if shape.HasMargins() && p.Shape.HasMargins() {
		c.Margins = p.Margins
	}
	if shape.HasGravity() && p.Shape.HasGravity() {
		c.Gravity = p.Gravity
	}
	return c
}

// SetRule sets the anchor of the given verb. It panics if the
// parameters do not have the relative shape.
func (p *Params) SetRule(verb Verb, anchor int) {
	if !p.Shape.HasRules() {
		panic(fmt.Sprintf("layout.Params.SetRule: %s parameters have no rules", p.Shape))
	}
	if p.Rules == nil {
		p.Rules = map[Verb]int{}
	}
	p.Rules[verb] = anchor
}

// Rule returns the anchor of the given verb, and whether it is set.
func (p *Params) Rule(verb Verb) (int, bool) {
	a, ok := p.Rules[verb]
	return a, ok
}
