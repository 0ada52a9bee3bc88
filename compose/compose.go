// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose provides declarative builders for element trees.
//
// Every builder creates an element in the context of the parent
// container, gives it the default layout params of the parent, applies
// a [modifier.Modifier], applies the explicit configuration, runs the
// content function and finally appends the element to the parent:
//
//	root := core.NewRoot(core.NewContext(rt))
//	compose.LinearLayout(root, modifier.Identity.MatchParentWidth(), compose.LinearConfig{
//		Orientation: option.New(core.Vertical),
//	}, func(l *core.Linear) {
//		compose.Text(l, modifier.Identity.FillParentWidth(1), compose.TextConfig{
//			Text: option.New("Hello"),
//		}, nil)
//	})
//
// Configuration fields are [option.Option] values: an unset field leaves
// the property as the defaults and the modifier left it, and a set field
// always wins over the modifier.
package compose

import (
	"cogentcore.org/compose/core"
	"cogentcore.org/compose/modifier"
)

// build runs the steps shared by every builder on the new element e:
// e is handed to the runtime, given the default layout params of the
// parent, modified by m, configured, filled by content and only then
// appended to the parent.
func build[E core.Element](parent core.Container, e E, m modifier.Modifier, configure func(e E), content func(e E)) E {
	v := e.AsView()
	v.Ctx.Realize(e)
	v.LayoutParams = parent.GenerateLayoutParams()
	m.Apply(e)
	if configure != nil {
		configure(e)
	}
	if content != nil {
		content(e)
	}
	parent.AsGroup().AddView(e)
	return e
}

// ctx returns the context that children of the given parent are created in.
func ctx(parent core.Container) *core.Context {
	return parent.AsView().Ctx
}
