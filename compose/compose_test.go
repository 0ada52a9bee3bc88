// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/compose/base/errors"
	"cogentcore.org/compose/base/option"
	"cogentcore.org/compose/colors"
	"cogentcore.org/compose/core"
	"cogentcore.org/compose/layout"
	"cogentcore.org/compose/modifier"
)

type testRuntime struct {
	realized []string
	reject   error
}

func (rt *testRuntime) Realize(e core.Element) error {
	if rt.reject != nil {
		return rt.reject
	}
	rt.realized = append(rt.realized, e.AsTree().TypeName())
	return nil
}

func (rt *testRuntime) Drawable(id core.ResourceID) (core.Drawable, error) {
	return nil, errors.New("no drawables")
}

func newRoot() (*core.Root, *testRuntime) {
	rt := &testRuntime{}
	return core.NewRoot(core.NewContext(rt)), rt
}

func TestVerticalLinearWithText(t *testing.T) {
	root, _ := newRoot()
	l := LinearLayout(root, nil, LinearConfig{Orientation: option.New(core.Vertical)}, func(l *core.Linear) {
		Text(l, modifier.Identity.FillParentWidth(1), TextConfig{Text: option.New("Hello")}, nil)
	})
	require.Equal(t, 1, l.NumChildren())
	tv := l.ChildElement(0).(*core.TextView)
	assert.Equal(t, layout.ShapeWeighted, tv.LayoutParams.Shape)
	assert.Equal(t, layout.Flex, tv.LayoutParams.Width)
	assert.Equal(t, float32(1), tv.LayoutParams.Weight)
	assert.Equal(t, "Hello", tv.Text)
	assert.Equal(t, core.Vertical, l.Orientation)
	assert.Equal(t, root, l.ParentContainer())
}

func TestOptionalOverride(t *testing.T) {
	root, _ := newRoot()
	red := colors.MustFromString("red")
	white := func(e core.Element) {
		e.(core.TextElement).AsTextView().Color = colors.White
	}
	tv := Text(root, modifier.Identity.Then(white).Alpha(0.5), TextConfig{
		Color:    option.New(red),
		FontSize: option.New[float32](20),
	}, nil)
	assert.Equal(t, red, tv.Color)
	assert.Equal(t, float32(20), tv.FontSize)
	assert.Equal(t, float32(0.5), tv.Alpha)

	tv = Text(root, modifier.Identity.Then(white), TextConfig{}, nil)
	assert.Equal(t, colors.White, tv.Color)

	tv = Text(root, nil, TextConfig{}, func(tv *core.TextView) {
		tv.Color = red
	})
	assert.Equal(t, red, tv.Color)
}

// setGravity is a modifier that writes the gravity of a linear stack,
// which is also an explicit configuration field.
func setGravity(g layout.Gravity) modifier.Modifier {
	return func(e core.Element) {
		e.(*core.Linear).Gravity = g
	}
}

func TestConfigWinsOverModifier(t *testing.T) {
	root, _ := newRoot()
	l := LinearLayout(root, setGravity(layout.GravityBottom), LinearConfig{
		Gravity: option.New(layout.GravityCenter),
	}, nil)
	assert.Equal(t, layout.GravityCenter, l.Gravity)

	l = LinearLayout(root, setGravity(layout.GravityBottom), LinearConfig{}, nil)
	assert.Equal(t, layout.GravityBottom, l.Gravity)
}

func TestUntouchedDefaults(t *testing.T) {
	root, _ := newRoot()
	var tv *core.TextView
	l := LinearLayout(root, nil, LinearConfig{}, func(l *core.Linear) {
		tv = Text(l, nil, TextConfig{Text: option.New("a")}, nil)
	})
	assert.Equal(t, l.GenerateLayoutParams(), tv.LayoutParams)
	assert.Equal(t, "", tv.Hint)
	assert.Equal(t, colors.Black, tv.Color)
	assert.Equal(t, layout.GravityTop|layout.GravityStart, tv.Gravity)
	assert.Equal(t, core.DefaultTypeface, tv.Typeface)
	assert.Equal(t, -1, tv.Ems)
	assert.Equal(t, math.MaxInt32, tv.MaxLines)
	assert.Equal(t, float32(core.DefaultFontSize), tv.FontSize)
	assert.Equal(t, core.TruncateNone, tv.Ellipsize)
	assert.Empty(t, tv.TextWatchers)

	assert.Equal(t, core.Horizontal, l.Orientation)
	assert.Equal(t, core.ShowDividerNone, l.ShowDividers)
	assert.True(t, l.BaselineAligned)
	assert.Equal(t, -1, l.BaselineAlignedChildIndex)
	assert.Zero(t, l.WeightSum)
	assert.Equal(t, layout.New(layout.ShapeBasic, layout.MatchParent, layout.MatchParent), l.LayoutParams)
}

func TestAttachmentOrdering(t *testing.T) {
	root, rt := newRoot()
	var seen []string
	root.SetOnChildAdded(func(child core.Element) {
		l := child.(*core.Linear)
		seen = append(seen, "root")
		assert.Equal(t, 2, l.NumChildren())
		assert.Equal(t, float32(2), l.WeightSum)
	})
	l := LinearLayout(root, nil, LinearConfig{WeightSum: option.New[float32](2)}, func(l *core.Linear) {
		assert.Equal(t, 0, root.NumChildren())
		assert.False(t, l.IsAttached())
		l.SetOnChildAdded(func(child core.Element) {
			tv := child.(*core.TextView)
			seen = append(seen, tv.Text)
			assert.Equal(t, float32(0.5), tv.Alpha)
		})
		Text(l, modifier.Identity.Alpha(0.5), TextConfig{Text: option.New("first")}, func(tv *core.TextView) {
			assert.Equal(t, 0, l.NumChildren())
		})
		Text(l, modifier.Identity.Alpha(0.5), TextConfig{Text: option.New("second")}, nil)
	})
	assert.Equal(t, []string{"first", "second", "root"}, seen)
	require.Equal(t, 2, l.NumChildren())
	assert.Equal(t, "first", l.ChildElement(0).(*core.TextView).Text)
	assert.Equal(t, "second", l.ChildElement(1).(*core.TextView).Text)
	assert.Equal(t, []string{"linear", "text-view", "text-view"}, rt.realized)
}

func TestRealizeError(t *testing.T) {
	root, rt := newRoot()
	boom := errors.New("no surface")
	rt.reject = boom
	ran := false
	assert.PanicsWithValue(t, boom, func() {
		Text(root, nil, TextConfig{}, func(tv *core.TextView) { ran = true })
	})
	assert.False(t, ran)
	assert.Equal(t, 0, root.NumChildren())
}

func TestShapeMismatchAborts(t *testing.T) {
	root, _ := newRoot()
	f := FrameLayout(root, nil, FrameConfig{}, nil)
	assert.Panics(t, func() {
		Text(f, modifier.Identity.FillParentWidth(1), TextConfig{}, nil)
	})
	assert.Equal(t, 0, f.NumChildren())
}

func TestEditText(t *testing.T) {
	root, _ := newRoot()
	var changes []string
	et := EditText(root, nil, TextConfig{
		Text:        option.New("abc"),
		Hint:        option.New("type here"),
		MaxLines:    option.New(1),
		Ellipsize:   option.New(core.TruncateEnd),
		TextWatcher: func(tv *core.TextView, old, text string) { changes = append(changes, text) },
	}, func(et *core.EditText) {
		et.SetSelection(2)
	})
	assert.Equal(t, "abc", et.Text)
	assert.Equal(t, "type here", et.Hint)
	assert.Equal(t, 1, et.MaxLines)
	assert.Equal(t, core.TruncateEnd, et.Ellipsize)
	assert.Equal(t, 2, et.SelectionStart)
	assert.Empty(t, changes)
	et.SetText("abcd")
	assert.Equal(t, []string{"abcd"}, changes)
}

func TestCheckBox(t *testing.T) {
	root, _ := newRoot()
	var states []bool
	d := core.ColorDrawable{Color: colors.Black}
	cb := CheckBox(root, nil, CheckBoxConfig{
		Text:           option.New("Remember me"),
		Checked:        option.New(true),
		ButtonDrawable: option.New[core.Drawable](d),
		OnChecked:      func(cb *core.CheckBox, checked bool) { states = append(states, checked) },
	}, nil)
	assert.True(t, cb.Checked)
	assert.Equal(t, "Remember me", cb.Text)
	assert.Equal(t, core.Drawable(d), cb.ButtonDrawable)
	assert.Empty(t, states)
	cb.PerformClick()
	assert.Equal(t, []bool{false}, states)

	plain := CheckBox(root, nil, CheckBoxConfig{}, nil)
	assert.False(t, plain.Checked)
	assert.Nil(t, plain.ButtonDrawable)
	assert.Nil(t, plain.OnCheckedChange)
}

func TestFrameLayout(t *testing.T) {
	root, _ := newRoot()
	f := FrameLayout(root, nil, FrameConfig{MeasureAllChildren: option.New(true)}, func(f *core.Frame) {
		Text(f, modifier.Identity.LayoutGravity(layout.GravityCenter).MarginAll(4), TextConfig{}, nil)
	})
	assert.True(t, f.MeasureAllChildren)
	lp := f.ChildElement(0).AsView().LayoutParams
	assert.Equal(t, layout.ShapeGravity, lp.Shape)
	assert.Equal(t, layout.MatchParent, lp.Width)
	assert.Equal(t, layout.GravityCenter, lp.Gravity)
	assert.Equal(t, layout.InsetsAll(4), lp.Margins)
}

func TestRelativeLayout(t *testing.T) {
	root, _ := newRoot()
	r := RelativeLayout(root, nil, RelativeConfig{
		VerticalGravity: option.New(layout.GravityBottom),
		IgnoreGravity:   option.New(2),
	}, func(r *core.Relative) {
		Text(r, modifier.Identity.ID(1), TextConfig{Text: option.New("title")}, nil)
		Text(r, modifier.Identity.ID(2).Rule(layout.Below, 1).Rule(layout.AlignParentStart, layout.True), TextConfig{}, nil)
	})
	assert.Equal(t, layout.GravityStart|layout.GravityBottom, r.Gravity)
	assert.Equal(t, 2, r.IgnoreGravity)
	below := r.FindByID(2)
	require.NotNil(t, below)
	assert.Equal(t, r.FindByID(1), r.Anchor(below, layout.Below))

	r = RelativeLayout(root, nil, RelativeConfig{
		Gravity:           option.New(layout.GravityCenter),
		HorizontalGravity: option.New(layout.GravityEnd),
	}, nil)
	assert.Equal(t, layout.GravityEnd|layout.GravityCenterVertical, r.Gravity)

	r = RelativeLayout(root, nil, RelativeConfig{
		Gravity: option.New(layout.GravityCenterVertical),
	}, nil)
	assert.Equal(t, layout.GravityStart|layout.GravityCenterVertical, r.Gravity)
}

func TestLinearGravityFillsMissingAxis(t *testing.T) {
	root, _ := newRoot()
	l := LinearLayout(root, nil, LinearConfig{
		Gravity: option.New(layout.GravityBottom),
	}, nil)
	assert.Equal(t, layout.GravityStart|layout.GravityBottom, l.Gravity)
}

func TestGridLayout(t *testing.T) {
	root, _ := newRoot()
	g := GridLayout(root, nil, GridConfig{ColumnCount: option.New(3), AlignmentMode: option.New(core.AlignBounds)}, func(g *core.Grid) {
		Text(g, modifier.Identity.ColumnSpan(2), TextConfig{}, nil)
		CheckBox(g, modifier.Identity.RowSpanIfSupported(2), CheckBoxConfig{}, nil)
	})
	assert.Equal(t, 3, g.ColumnCount)
	assert.Equal(t, layout.Undefined, g.RowCount)
	assert.Equal(t, core.AlignBounds, g.AlignmentMode)
	assert.True(t, g.RowOrderPreserved)
	assert.False(t, g.UseDefaultMargins)
	assert.Equal(t, layout.SpanSpec(2), g.ChildElement(0).AsView().LayoutParams.ColumnSpec)
	assert.Equal(t, layout.UndefinedSpec, g.ChildElement(0).AsView().LayoutParams.RowSpec)
	assert.Equal(t, layout.SpanSpec(2), g.ChildElement(1).AsView().LayoutParams.RowSpec)
}

func TestSharedModifier(t *testing.T) {
	root, _ := newRoot()
	shared := modifier.Identity.MarginAll(2).Alpha(0.8)
	l := LinearLayout(root, nil, LinearConfig{}, func(l *core.Linear) {
		for range 3 {
			Text(l, shared, TextConfig{}, nil)
		}
	})
	for _, k := range l.ChildElements() {
		v := k.AsView()
		assert.Equal(t, layout.InsetsAll(2), v.LayoutParams.Margins)
		assert.Equal(t, float32(0.8), v.Alpha)
	}
	assert.NotSame(t, l.ChildElement(0).AsView().LayoutParams, l.ChildElement(1).AsView().LayoutParams)
}

func TestDumpBuiltTree(t *testing.T) {
	root, _ := newRoot()
	LinearLayout(root, nil, LinearConfig{Orientation: option.New(core.Vertical)}, func(l *core.Linear) {
		Text(l, modifier.Identity.FillParentWidth(1), TextConfig{Text: option.New("Hello")}, nil)
	})
	want := `root root [basic match x match]
  linear-0 linear [basic match x match]
    text-view-0 text-view [weighted 0 x wrap weight=1] "Hello"
`
	assert.Equal(t, want, core.DumpString(root))
}
