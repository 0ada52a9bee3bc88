// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/tree"
)

// Container is an element that owns an ordered sequence of child
// elements and decides the shape of their layout parameters.
type Container interface {
	Element

	// AsGroup returns the [Group] of this container.
	AsGroup() *Group

	// GenerateLayoutParams returns new default layout parameters
	// of the shape this container expects from its children.
	GenerateLayoutParams() *layout.Params
}

// Group is the base of every container. The container-specific types
// embed it and implement [Container.GenerateLayoutParams].
type Group struct {
	View
}

// AsGroup returns the [Group] for this container.
func (g *Group) AsGroup() *Group {
	return g
}

// container returns the outer container of the group.
func (g *Group) container() Container {
	return g.This().(Container)
}

// AddView appends the given child to the end of the children of the
// container, making the container its owner. A child without layout
// parameters gets the default parameters of the container, and
// parameters of another shape are converted to the shape of the
// container. It panics if the child is already attached.
// [tree.NodeBase.OnChildAdded] observers run after the append.
func (g *Group) AddView(child Element) {
	cv := child.AsView()
	if cv.Parent != nil {
		panic("core.Group.AddView: " + cv.Path() + " already has a parent")
	}
	def := g.container().GenerateLayoutParams()
	switch {
	case cv.LayoutParams == nil:
		cv.LayoutParams = def
	case cv.LayoutParams.Shape != def.Shape:
		cv.LayoutParams = cv.LayoutParams.Convert(def.Shape)
	}
	g.AddChild(child)
}

// SetOnChildAdded sets a function called after a child has been appended.
func (g *Group) SetOnChildAdded(fun func(child Element)) {
	g.NodeBase.OnChildAdded = func(n tree.Node) {
		fun(n.(Element))
	}
}

// FindByID returns the first child with the given id, or nil.
func (g *Group) FindByID(id int) Element {
	if id == NoID {
		return nil
	}
	for _, k := range g.Children {
		e := k.(Element)
		if e.AsView().ID == id {
			return e
		}
	}
	return nil
}

// Root is the root container bound to a [Context]. It is the
// entry point for building an element tree and hands out basic
// layout parameters that fill it.
type Root struct {
	Group
}

// NewRoot returns a new root container bound to the given context.
func NewRoot(ctx *Context) *Root {
	r := &Root{}
	r.InitView(r, ctx)
	r.Name = "root"
	r.LayoutParams = layout.New(layout.ShapeBasic, layout.MatchParent, layout.MatchParent)
	return r
}

func (r *Root) GenerateLayoutParams() *layout.Params {
	return layout.New(layout.ShapeBasic, layout.MatchParent, layout.MatchParent)
}
