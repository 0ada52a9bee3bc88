// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/compose/layout"

// AlignmentModes are the ways a grid aligns its children.
type AlignmentModes int32

const (
	// AlignBounds aligns the raw edges of the children.
	AlignBounds AlignmentModes = iota
	// AlignMargins aligns the outer edges of the children margins.
	AlignMargins
)

// Grid is a container that places its children in a rectangular grid.
type Grid struct {
	Group

	// AlignmentMode is how children are aligned.
	AlignmentMode AlignmentModes

	// RowCount is used to generate default row indices, or [layout.Undefined].
	RowCount int

	// RowOrderPreserved forces row boundaries into ascending order.
	RowOrderPreserved bool

	// ColumnCount is used to generate default column indices, or [layout.Undefined].
	ColumnCount int

	// ColumnOrderPreserved forces column boundaries into ascending order.
	ColumnOrderPreserved bool

	// UseDefaultMargins is whether default margins are allocated around children.
	UseDefaultMargins bool
}

// NewGrid returns a new unattached grid bound to the given context.
func NewGrid(ctx *Context) *Grid {
	g := &Grid{}
	g.InitView(g, ctx)
	g.AlignmentMode = AlignMargins
	g.RowCount = layout.Undefined
	g.RowOrderPreserved = true
	g.ColumnCount = layout.Undefined
	g.ColumnOrderPreserved = true
	return g
}

// GenerateLayoutParams returns grid parameters that wrap their
// content and are placed automatically.
func (g *Grid) GenerateLayoutParams() *layout.Params {
	return layout.New(layout.ShapeGrid, layout.WrapContent, layout.WrapContent)
}
