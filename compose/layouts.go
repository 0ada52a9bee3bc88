// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"cogentcore.org/compose/base/option"
	"cogentcore.org/compose/core"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/modifier"
)

// FrameConfig is the explicit configuration of frames.
type FrameConfig struct {

	// MeasureAllChildren is whether gone children are measured (default false).
	MeasureAllChildren option.Option[bool]
}

// FrameLayout builds a frame in the given parent. Its children are
// stacked on top of each other and placed by their layout gravity.
func FrameLayout(parent core.Container, m modifier.Modifier, cfg FrameConfig, content func(f *core.Frame)) *core.Frame {
	return build(parent, core.NewFrame(ctx(parent)), m, func(f *core.Frame) {
		cfg.MeasureAllChildren.Apply(&f.MeasureAllChildren)
	}, content)
}

// LinearConfig is the explicit configuration of linear stacks.
type LinearConfig struct {

	// Orientation is whether the children form a row or a
	// column (default [core.Horizontal]).
	Orientation option.Option[core.Orientations]

	// Gravity places the children (default top start).
	Gravity option.Option[layout.Gravity]

	// ShowDividers is where dividers are drawn (default none).
	ShowDividers option.Option[core.ShowDividers]

	// DividerDrawable is drawn as the divider (default nil).
	DividerDrawable option.Option[core.Drawable]

	// WeightSum is the maximum weight sum (default 0, the sum of the weights).
	WeightSum option.Option[float32]

	// BaselineAligned aligns the children on their baselines (default true).
	BaselineAligned option.Option[bool]

	// BaselineAlignedChildIndex is the child whose baseline is used (default -1).
	BaselineAlignedChildIndex option.Option[int]

	// MeasureWithLargestChild gives weighted children the size
	// of the largest child (default false).
	MeasureWithLargestChild option.Option[bool]
}

// LinearLayout builds a linear stack in the given parent.
func LinearLayout(parent core.Container, m modifier.Modifier, cfg LinearConfig, content func(l *core.Linear)) *core.Linear {
	return build(parent, core.NewLinear(ctx(parent)), m, func(l *core.Linear) {
		cfg.Orientation.Apply(&l.Orientation)
		cfg.ShowDividers.Apply(&l.ShowDividers)
		cfg.DividerDrawable.Apply(&l.DividerDrawable)
		if cfg.Gravity.Valid {
			l.SetGravity(cfg.Gravity.Value)
		}
		cfg.WeightSum.Apply(&l.WeightSum)
		cfg.BaselineAligned.Apply(&l.BaselineAligned)
		cfg.MeasureWithLargestChild.Apply(&l.MeasureWithLargestChild)
		cfg.BaselineAlignedChildIndex.Apply(&l.BaselineAlignedChildIndex)
	}, content)
}

// RelativeConfig is the explicit configuration of relative containers.
type RelativeConfig struct {

	// Gravity places the children as a single unit (default start top).
	Gravity option.Option[layout.Gravity]

	// VerticalGravity replaces the vertical part of the gravity.
	VerticalGravity option.Option[layout.Gravity]

	// HorizontalGravity replaces the horizontal part of the gravity.
	HorizontalGravity option.Option[layout.Gravity]

	// IgnoreGravity is the id of a child that gravity does not apply to (default 0).
	IgnoreGravity option.Option[int]
}

// RelativeLayout builds a relative container in the given parent.
// Children are anchored with [modifier.Modifier.Rule].
func RelativeLayout(parent core.Container, m modifier.Modifier, cfg RelativeConfig, content func(r *core.Relative)) *core.Relative {
	return build(parent, core.NewRelative(ctx(parent)), m, func(r *core.Relative) {
		if cfg.Gravity.Valid {
			r.SetGravity(cfg.Gravity.Value)
		}
		if cfg.VerticalGravity.Valid {
			r.SetVerticalGravity(cfg.VerticalGravity.Value)
		}
		if cfg.HorizontalGravity.Valid {
			r.SetHorizontalGravity(cfg.HorizontalGravity.Value)
		}
		cfg.IgnoreGravity.Apply(&r.IgnoreGravity)
	}, content)
}

// GridConfig is the explicit configuration of grids.
type GridConfig struct {

	// AlignmentMode is how children are aligned (default [core.AlignMargins]).
	AlignmentMode option.Option[core.AlignmentModes]

	// RowCount generates default row indices (default [layout.Undefined]).
	RowCount option.Option[int]

	// RowOrderPreserved keeps row boundaries ascending (default true).
	RowOrderPreserved option.Option[bool]

	// ColumnCount generates default column indices (default [layout.Undefined]).
	ColumnCount option.Option[int]

	// ColumnOrderPreserved keeps column boundaries ascending (default true).
	ColumnOrderPreserved option.Option[bool]

	// UseDefaultMargins allocates default margins around children (default false).
	UseDefaultMargins option.Option[bool]
}

// GridLayout builds a grid in the given parent. Children are placed
// in cells with [modifier.Modifier.ColumnSpan] and [modifier.Modifier.RowSpan].
func GridLayout(parent core.Container, m modifier.Modifier, cfg GridConfig, content func(g *core.Grid)) *core.Grid {
	return build(parent, core.NewGrid(ctx(parent)), m, func(g *core.Grid) {
		cfg.AlignmentMode.Apply(&g.AlignmentMode)
		cfg.RowCount.Apply(&g.RowCount)
		cfg.RowOrderPreserved.Apply(&g.RowOrderPreserved)
		cfg.ColumnCount.Apply(&g.ColumnCount)
		cfg.ColumnOrderPreserved.Apply(&g.ColumnOrderPreserved)
		cfg.UseDefaultMargins.Apply(&g.UseDefaultMargins)
	}, content)
}
