// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modifier provides [Modifier], a composable and reusable
// transformation that is applied to an element when it is built.
//
// Modifiers are chained left to right, and when two modifiers in a
// chain write the same property the later one wins:
//
//	m := modifier.Identity.MatchParentWidth().Padding(layout.InsetsAll(8)).Alpha(0.5)
//
// Some modifiers write layout parameter fields that only exist for
// some [layout.Shapes], or element properties that only exist for
// some kinds of elements. The plain form of such a modifier panics
// with a [*ContractError] when applied to an element that does not
// support it, before writing anything. The IfSupported form does
// nothing instead.
package modifier

import (
	"fmt"
	"log/slog"

	"cogentcore.org/compose/core"
	"cogentcore.org/compose/layout"
)

// Modifier is a transformation of an element. It holds no state other than
// the values it was made with, and can be applied to any number of elements.
// The nil Modifier applies nothing.
type Modifier func(e core.Element)

// Identity is the modifier that applies nothing. It is the usual start of
// a chain, and the neutral element of [Modifier.Then].
var Identity Modifier = func(core.Element) {}

// Apply applies the modifier to the given element.
func (m Modifier) Apply(e core.Element) {
	if m != nil {
		m(e)
	}
}

// Then returns a modifier that applies m and then next to the same element.
func (m Modifier) Then(next Modifier) Modifier {
	if m == nil {
		return next
	}
	if next == nil {
		return m
	}
	return func(e core.Element) {
		m(e)
		next(e)
	}
}

// Chain returns a modifier that applies the given modifiers in order.
func Chain(ms ...Modifier) Modifier {
	var c Modifier
	for _, m := range ms {
		c = c.Then(m)
	}
	if c == nil {
		return Identity
	}
	return c
}

// ContractError is the panic value of a modifier applied to an
// element whose layout parameters or kind it does not support.
type ContractError struct {

	// Op is the name of the modifier.
	Op string

	// Want is what the modifier requires.
	Want string

	// Got is what the element has.
	Got string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("modifier.%s: requires %s, got %s", e.Op, e.Want, e.Got)
}

// shapeReq is a requirement on the shape of layout parameters.
type shapeReq struct {
	want string
	ok   func(s layout.Shapes) bool
}

var (
	weighted      = shapeReq{"weighted layout params", layout.Shapes.HasWeight}
	gridded       = shapeReq{"grid layout params", layout.Shapes.HasSpecs}
	gravityAware  = shapeReq{"gravity-aware layout params", layout.Shapes.HasGravity}
	marginCapable = shapeReq{"margin-capable layout params", layout.Shapes.HasMargins}
	relative      = shapeReq{"relative layout params", layout.Shapes.HasRules}
)

// check returns the layout parameters of the element, or a contract
// error if they do not meet the requirement.
func (r shapeReq) check(op string, e core.Element) (*layout.Params, *ContractError) {
	lp := e.AsView().LayoutParams
	if lp == nil {
		return nil, &ContractError{Op: op, Want: r.want, Got: "no layout params"}
	}
	if !r.ok(lp.Shape) {
		return nil, &ContractError{Op: op, Want: r.want, Got: lp.Shape.String() + " layout params"}
	}
	return lp, nil
}

// require returns the layout parameters of the element, and panics
// if they do not meet the requirement.
func (r shapeReq) require(op string, e core.Element) *layout.Params {
	lp, err := r.check(op, e)
	if err != nil {
		panic(err)
	}
	return lp
}

// supported returns the layout parameters of the element and true if they
// meet the requirement. Otherwise it logs the skip and returns false.
func (r shapeReq) supported(op string, e core.Element) (*layout.Params, bool) {
	lp, err := r.check(op, e)
	if err != nil {
		slog.Debug("modifier skipped", "element", e.AsTree().Path(), "err", err)
		return nil, false
	}
	return lp, true
}

// params returns the layout parameters of the element, giving it
// wrap-content basic parameters if it has none yet. Those are
// converted to the shape of the container when it is attached.
func params(e core.Element) *layout.Params {
	v := e.AsView()
	if v.LayoutParams == nil {
		v.LayoutParams = layout.New(layout.ShapeBasic, layout.WrapContent, layout.WrapContent)
	}
	return v.LayoutParams
}
