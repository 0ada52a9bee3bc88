// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/compose/layout"

// Relative is a container where the positions of the children are
// described in relation to each other or to the container.
type Relative struct {
	Group

	// Gravity places the children, as a single unit, after
	// they have been positioned relative to each other.
	Gravity layout.Gravity

	// IgnoreGravity is the id of a child that gravity does not apply to.
	IgnoreGravity int
}

// NewRelative returns a new unattached relative container bound to the given context.
func NewRelative(ctx *Context) *Relative {
	r := &Relative{}
	r.InitView(r, ctx)
	r.Gravity = layout.GravityStart | layout.GravityTop
	return r
}

// GenerateLayoutParams returns relative parameters that wrap their content.
func (r *Relative) GenerateLayoutParams() *layout.Params {
	return layout.New(layout.ShapeRelative, layout.WrapContent, layout.WrapContent)
}

// SetGravity sets the gravity, defaulting a missing horizontal
// part to start and a missing vertical part to top.
func (r *Relative) SetGravity(g layout.Gravity) {
	r.Gravity = g.Complete()
}

// SetHorizontalGravity replaces the horizontal part of the gravity.
func (r *Relative) SetHorizontalGravity(g layout.Gravity) {
	r.Gravity = r.Gravity.WithHorizontal(g)
}

// SetVerticalGravity replaces the vertical part of the gravity.
func (r *Relative) SetVerticalGravity(g layout.Gravity) {
	r.Gravity = r.Gravity.WithVertical(g)
}

// Anchor returns the sibling the given child is anchored to by the given
// verb, or nil if the rule is unset or anchors to the container.
func (r *Relative) Anchor(child Element, verb layout.Verb) Element {
	lp := child.AsView().LayoutParams
	if lp == nil || !lp.Shape.HasRules() || verb.IsParentRule() {
		return nil
	}
	id, ok := lp.Rule(verb)
	if !ok {
		return nil
	}
	return r.FindByID(id)
}
