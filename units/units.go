// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports the dimension units used when configuring elements
(px, dp, sp, pt, in, mm).

A [Value] stores a number along with its unit, and is converted into raw
display pixels using a [Context], which contains the display metrics needed for
the conversion. 1dp is 1/160th of an inch, so on a display with a density of 1
a dp is exactly one pixel; sp is a dp additionally scaled by the user font scale.
*/
package units

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// standard conversion factors
const (
	DpPerInch = 160.0
	MmPerInch = 25.4
	PtPerInch = 72.0
)

// Units is an enum that represents a unit (px, dp, etc).
type Units int32

const (
	// UnitPx = raw display pixels
	UnitPx Units = iota

	// UnitDp = density-independent pixels -- 1dp = 1/160th of 1in
	UnitDp

	// UnitSp = scale-independent pixels -- dp scaled by the font scale
	UnitSp

	// UnitPt = points -- 1pt = 1/72th of 1in
	UnitPt

	// UnitIn = inches
	UnitIn

	// UnitMm = millimeters -- 1mm = 1/25.4th of 1in
	UnitMm
)

var unitNames = [...]string{
	UnitPx: "px",
	UnitDp: "dp",
	UnitSp: "sp",
	UnitPt: "pt",
	UnitIn: "in",
	UnitMm: "mm",
}

func (u Units) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Units(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// UnitsValues returns all of the [Units].
func UnitsValues() []Units {
	return []Units{UnitPx, UnitDp, UnitSp, UnitPt, UnitIn, UnitMm}
}

// Context holds the display metrics needed to convert
// unit values into raw pixels.
type Context struct {

	// Density is the logical density of the display: the number
	// of pixels per dp (1 on a 160dpi display).
	Density float32

	// ScaledDensity is Density multiplied by the user font scale,
	// used for sp values.
	ScaledDensity float32

	// Xdpi is the exact number of physical pixels per inch
	// along the x axis, used for pt, in and mm values.
	Xdpi float32
}

// Defaults sets the metrics of a baseline 160dpi display
// with no font scaling.
func (uc *Context) Defaults() {
	uc.Density = 1
	uc.ScaledDensity = 1
	uc.Xdpi = DpPerInch
}

// Set sets the metrics from a density, a font scale and an xdpi.
// A zero xdpi is derived from the density.
func (uc *Context) Set(density, fontScale, xdpi float32) {
	uc.Density = density
	uc.ScaledDensity = density * fontScale
	if xdpi == 0 {
		xdpi = density * DpPerInch
	}
	uc.Xdpi = xdpi
}

// ToDots converts the given value in the given unit to raw pixels.
func (uc *Context) ToDots(val float32, un Units) float32 {
	switch un {
	case UnitDp:
		return val * uc.Density
	case UnitSp:
		return val * uc.ScaledDensity
	case UnitPt:
		return val * uc.Xdpi / PtPerInch
	case UnitIn:
		return val * uc.Xdpi
	case UnitMm:
		return val * uc.Xdpi / MmPerInch
	}
	return val
}

func (uc Context) String() string {
	return fmt.Sprintf("density=%g scaledDensity=%g xdpi=%g", uc.Density, uc.ScaledDensity, uc.Xdpi)
}

// Default is the unit context used by the package-level conversion
// functions. It is updated when device settings are applied.
var Default = func() Context {
	var uc Context
	uc.Defaults()
	return uc
}()

// Value is a number with an associated unit.
type Value struct {

	// Value is the value in terms of the specified unit
	Value float32

	// Unit is the unit used for the value
	Unit Units
}

// New creates a new value with the given unit type.
func New(val float32, un Units) Value {
	return Value{Value: val, Unit: un}
}

// ToDots converts the value to raw pixels using the given context.
func (v Value) ToDots(uc *Context) float32 {
	return uc.ToDots(v.Value, v.Unit)
}

func (v Value) String() string {
	return strconv.FormatFloat(float64(v.Value), 'g', -1, 32) + v.Unit.String()
}

// Dp converts the given number of dp into raw pixels using [Default].
func Dp(val float32) float32 {
	return Default.ToDots(val, UnitDp)
}

// DpInt converts the given number of dp into whole raw pixels using [Default],
// truncating toward zero.
func DpInt(val int) int {
	return int(math32.Trunc(Default.ToDots(float32(val), UnitDp)))
}

// Sp converts the given number of sp into raw pixels using [Default].
func Sp(val float32) float32 {
	return Default.ToDots(val, UnitSp)
}

// SpInt converts the given number of sp into whole raw pixels using [Default],
// truncating toward zero.
func SpInt(val int) int {
	return int(math32.Trunc(Default.ToDots(float32(val), UnitSp)))
}
