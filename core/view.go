// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the elements that compose trees are made of:
// the [View] base that every element embeds, text-capable elements,
// and the containers that own and order child elements.
package core

import (
	"image"

	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/tree"
)

// NoID is the id of an element that has not been given one.
const NoID = -1

// Element is the interface that all elements satisfy. The core element
// functionality is defined on [View], and all higher-level element types
// must embed it. You can call [Element.AsView] to get the [View] of an
// Element and access the core element functionality.
type Element interface {
	tree.Node

	// AsView returns the [View] of this Element.
	AsView() *View
}

// Outline is the clipping shape of an element, in element coordinates.
type Outline struct {
	Rect   image.Rectangle
	Radius float32
}

// SetRoundRect sets the outline to the given rectangle with
// corners rounded by the given radius.
func (o *Outline) SetRoundRect(r image.Rectangle, radius float32) {
	o.Rect = r
	o.Radius = radius
}

// OutlineProvider computes the outline of an element. It is called
// by the host whenever the element bounds change.
type OutlineProvider func(e Element, o *Outline)

// MotionActions are the kinds of touch events.
type MotionActions int32

const (
	ActionDown MotionActions = iota
	ActionUp
	ActionMove
	ActionCancel
)

// MotionEvent is a raw touch event.
type MotionEvent struct {
	Action MotionActions
	X, Y   float32
}

// View is the base of every element. It holds the properties common to all
// elements; the fields are set by modifiers and builders and read by the host.
type View struct {
	tree.NodeBase

	// Ctx is the context the element was created in.
	Ctx *Context

	// ID identifies the element among its siblings, as used by
	// relative anchoring rules. It is [NoID] by default.
	ID int

	// LayoutParams are the parameters the parent uses to size and
	// place the element. Their shape is chosen by the parent.
	LayoutParams *layout.Params

	// MinWidth is the minimum width of the element in pixels.
	MinWidth int

	// MinHeight is the minimum height of the element in pixels.
	MinHeight int

	// Padding is the inner inset of the element.
	Padding layout.Insets

	// Background is painted behind the content.
	Background Drawable

	// Foreground is painted over the content.
	Foreground Drawable

	// OutlineProvider computes the clipping shape of the element.
	OutlineProvider OutlineProvider

	// transform
	TranslationX, TranslationY, TranslationZ float32
	Rotation, RotationX, RotationY           float32
	ScaleX, ScaleY                           float32

	// Alpha is the opacity of the element, from 0 to 1.
	Alpha float32

	// Bounds are the bounds of the element in its parent, set by the host after layout.
	Bounds image.Rectangle

	// OnClick is called when the element is clicked.
	OnClick func(e Element)

	// OnLongClick is called when the element is long-clicked.
	// It returns whether the event was consumed.
	OnLongClick func(e Element) bool

	// OnTouch is called for every raw touch event.
	// It returns whether the event was consumed.
	OnTouch func(e Element, ev MotionEvent) bool
}

// AsView returns the [View] for this Element.
func (v *View) AsView() *View {
	return v
}

// InitView binds the view to the given outer element and context,
// and sets every property to its default.
func (v *View) InitView(this Element, ctx *Context) {
	v.InitName(this)
	v.Ctx = ctx
	v.ID = NoID
	v.ScaleX = 1
	v.ScaleY = 1
	v.Alpha = 1
}

// This returns the outer element of the view.
func (v *View) This() Element {
	if v.NodeBase.This == nil {
		return v
	}
	return v.NodeBase.This.(Element)
}

// ParentContainer returns the container the element is attached to,
// or nil if it has not been attached.
func (v *View) ParentContainer() Container {
	if v.Parent == nil {
		return nil
	}
	return v.Parent.(Container)
}

// IsAttached returns whether the element has been added to a container.
func (v *View) IsAttached() bool {
	return v.Parent != nil
}

// Outline returns the outline of the element computed by its
// [View.OutlineProvider] for its current bounds, and whether there is one.
func (v *View) Outline() (Outline, bool) {
	if v.OutlineProvider == nil {
		return Outline{}, false
	}
	o := Outline{Rect: image.Rect(0, 0, v.Bounds.Dx(), v.Bounds.Dy())}
	v.OutlineProvider(v.This(), &o)
	return o, true
}

// PerformClick calls the click listener, and returns whether there was one.
func (v *View) PerformClick() bool {
	if v.OnClick == nil {
		return false
	}
	v.OnClick(v.This())
	return true
}

// PerformLongClick calls the long-click listener, and returns
// whether it consumed the event.
func (v *View) PerformLongClick() bool {
	if v.OnLongClick == nil {
		return false
	}
	return v.OnLongClick(v.This())
}

// DispatchTouch calls the touch listener, and returns
// whether it consumed the event.
func (v *View) DispatchTouch(ev MotionEvent) bool {
	if v.OnTouch == nil {
		return false
	}
	return v.OnTouch(v.This(), ev)
}

// ChildElements returns the children of the element.
func (v *View) ChildElements() []Element {
	es := make([]Element, len(v.Children))
	for i, k := range v.Children {
		es[i] = k.(Element)
	}
	return es
}

// ChildElement returns the child at the given index,
// or nil if the index is out of range.
func (v *View) ChildElement(i int) Element {
	k := v.Child(i)
	if k == nil {
		return nil
	}
	return k.(Element)
}
