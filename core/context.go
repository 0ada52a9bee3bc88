// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/compose/base/errors"
	"cogentcore.org/compose/units"
)

// ResourceID identifies a resource, such as a drawable,
// that is resolved by the [Runtime].
type ResourceID int

// Runtime is the host UI toolkit that backs elements. It is an
// external collaborator: the compose packages only call it when an
// element is created and when a resource must be resolved.
type Runtime interface {

	// Realize is called once for every element that a builder creates,
	// before any configuration is applied. An error rejects the element.
	Realize(e Element) error

	// Drawable resolves the drawable resource with the given id.
	Drawable(id ResourceID) (Drawable, error)
}

// Context is the environment that elements are bound to: the host
// [Runtime] and the display metrics used to convert dimensions.
type Context struct {

	// Runtime is the host runtime; it may be nil when elements
	// are built without a host, as in tests.
	Runtime Runtime

	// Units are the display metrics of the context. They are shared
	// with [units.Default] by [NewContext], so applied device settings
	// are seen by contexts that already exist.
	Units *units.Context
}

// NewContext returns a new context for the given runtime,
// using the [units.Default] display metrics.
func NewContext(rt Runtime) *Context {
	return &Context{Runtime: rt, Units: &units.Default}
}

// Realize hands the given element to the runtime. A runtime
// error is raised as a panic carrying the runtime's error value
// unmodified.
func (c *Context) Realize(e Element) {
	if c == nil || c.Runtime == nil {
		return
	}
	errors.Must(c.Runtime.Realize(e))
}

// Drawable resolves the drawable with the given id through the runtime.
// A runtime error is raised as a panic carrying the runtime's error value
// unmodified.
func (c *Context) Drawable(id ResourceID) Drawable {
	if c == nil || c.Runtime == nil {
		panic(errors.Errorf("core: no runtime to resolve drawable %d", id))
	}
	return errors.Must1(c.Runtime.Drawable(id))
}

// Dp converts the given number of dp to pixels using the metrics of the context.
func (c *Context) Dp(v float32) float32 {
	return c.Units.ToDots(v, units.UnitDp)
}

// Sp converts the given number of sp to pixels using the metrics of the context.
func (c *Context) Sp(v float32) float32 {
	return c.Units.ToDots(v, units.UnitSp)
}
