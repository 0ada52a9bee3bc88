// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/compose/layout"

// Frame is a container that blocks out an area to display a single
// child. Children may overlap; each is placed within the frame
// according to its layout gravity.
type Frame struct {
	Group

	// MeasureAllChildren is whether gone children are measured too.
	MeasureAllChildren bool
}

// NewFrame returns a new unattached frame bound to the given context.
func NewFrame(ctx *Context) *Frame {
	f := &Frame{}
	f.InitView(f, ctx)
	return f
}

// GenerateLayoutParams returns gravity-aware parameters that fill the frame.
func (f *Frame) GenerateLayoutParams() *layout.Params {
	return layout.New(layout.ShapeGravity, layout.MatchParent, layout.MatchParent)
}
