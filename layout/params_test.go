// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeCapabilities(t *testing.T) {
	type caps struct{ margins, weight, gravity, specs, rules bool }
	tests := map[Shapes]caps{
		ShapeBasic:    {},
		ShapeMargin:   {margins: true},
		ShapeWeighted: {margins: true, weight: true, gravity: true},
		ShapeGravity:  {margins: true, gravity: true},
		ShapeGrid:     {margins: true, specs: true},
		ShapeRelative: {margins: true, rules: true},
	}
	for shape, want := range tests {
		have := caps{shape.HasMargins(), shape.HasWeight(), shape.HasGravity(), shape.HasSpecs(), shape.HasRules()}
		assert.Equal(t, want, have, shape.String())
	}
	assert.Equal(t, "Shapes(42)", Shapes(42).String())
}

func TestNew(t *testing.T) {
	p := New(ShapeGrid, WrapContent, WrapContent)
	assert.Equal(t, UndefinedSpec, p.RowSpec)
	assert.Equal(t, UndefinedSpec, p.ColumnSpec)
	assert.Equal(t, "grid wrap x wrap", p.String())

	w := New(ShapeWeighted, Flex, MatchParent)
	w.Weight = 2
	w.Gravity = GravityCenter
	w.Margins = InsetsAll(4)
	assert.Equal(t, "weighted 0 x match margins=(4, 4, 4, 4) weight=2 gravity=center_horizontal|center_vertical", w.String())
}

func TestCloneIsDeep(t *testing.T) {
	p := New(ShapeRelative, 10, 20)
	p.Margins = InsetsOnly(1, 2, 3, 4)
	p.SetRule(Below, 7)
	c := p.Clone()
	require.Equal(t, p, c)

	c.SetRule(Below, 8)
	c.Margins.Left = 100
	anchor, ok := p.Rule(Below)
	assert.True(t, ok)
	assert.Equal(t, 7, anchor)
	assert.Equal(t, 1, p.Margins.Left)
}

func TestConvert(t *testing.T) {
	p := New(ShapeWeighted, 30, MatchParent)
	p.Margins = InsetsAll(2)
	p.Weight = 1
	p.Gravity = GravityBottom

	g := p.Convert(ShapeGravity)
	assert.Equal(t, ShapeGravity, g.Shape)
	assert.Equal(t, 30, g.Width)
	assert.Equal(t, InsetsAll(2), g.Margins)
	assert.Equal(t, GravityBottom, g.Gravity)
	assert.Zero(t, g.Weight)

	b := p.Convert(ShapeBasic)
	assert.True(t, b.Margins.IsZero())
	assert.Equal(t, GravityNone, b.Gravity)

	grid := b.Convert(ShapeGrid)
	assert.Equal(t, UndefinedSpec, grid.RowSpec)

	same := p.Convert(ShapeWeighted)
	assert.Equal(t, p, same)
	assert.NotSame(t, p, same)
}

func TestSetRuleRequiresRelative(t *testing.T) {
	p := New(ShapeMargin, 0, 0)
	assert.Panics(t, func() { p.SetRule(AlignParentTop, True) })
	_, ok := p.Rule(AlignParentTop)
	assert.False(t, ok)
	assert.True(t, AlignParentTop.IsParentRule())
	assert.False(t, Below.IsParentRule())
	assert.Equal(t, "below", Below.String())
}

func TestGravity(t *testing.T) {
	g := GravityTop | GravityStart
	assert.Equal(t, GravityStart, g.Horizontal())
	assert.Equal(t, GravityTop, g.Vertical())
	assert.Equal(t, "start|top", g.String())
	assert.Equal(t, GravityTop|GravityLeft, g.Absolute(false))
	assert.Equal(t, GravityTop|GravityRight, g.Absolute(true))
	assert.Equal(t, GravityBottom|GravityStart, g.WithVertical(GravityBottom))
	assert.Equal(t, GravityTop|GravityCenterHorizontal, g.WithHorizontal(GravityCenter))
	assert.Equal(t, GravityCenter, GravityCenter.Absolute(true))
	assert.Equal(t, "none", GravityNone.String())
}

func TestGravityComplete(t *testing.T) {
	assert.Equal(t, GravityStart|GravityTop, GravityNone.Complete())
	assert.Equal(t, GravityStart|GravityCenterVertical, GravityCenterVertical.Complete())
	assert.Equal(t, GravityRight|GravityTop, GravityRight.Complete())
	assert.Equal(t, GravityCenter, GravityCenter.Complete())
	assert.Equal(t, GravityEnd|GravityBottom, (GravityEnd | GravityBottom).Complete())
}

func TestInsetsAndSpecs(t *testing.T) {
	in := InsetsSymmetric(3, 5)
	assert.Equal(t, Insets{3, 5, 3, 5}, in)
	assert.Equal(t, 6, in.Horizontal())
	assert.Equal(t, 10, in.Vertical())
	assert.Equal(t, "[auto, span 2]", SpanSpec(2).String())
	assert.Equal(t, "[1, span 3]", Spec{1, 3}.String())
}
