// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"log/slog"

	"cogentcore.org/compose/units"
)

// Device are the currently active display metrics settings.
var Device = &DeviceSettings{
	Base: Base{
		Name: "Device",
		File: "device-settings.toml",
	},
}

// DeviceSettings is the data type for the display metrics used
// to convert dp and sp dimensions into pixels.
type DeviceSettings struct {
	Base `toml:"-" yaml:",inline"`

	// Density is the number of pixels per dp
	Density float32 `toml:"density" yaml:"density"`

	// FontScale is the user font scale applied on top of Density for sp
	FontScale float32 `toml:"font_scale" yaml:"font_scale"`

	// Xdpi is the physical pixels per inch; 0 derives it from Density
	Xdpi float32 `toml:"xdpi" yaml:"xdpi"`
}

func (ds *DeviceSettings) Defaults() {
	ds.Density = 1
	ds.FontScale = 1
	ds.Xdpi = 0
}

// Apply sets [units.Default] from the settings. Invalid
// metrics are replaced by their defaults.
func (ds *DeviceSettings) Apply() {
	if ds.Density <= 0 {
		slog.Error("settings: invalid density, using 1", "density", ds.Density)
		ds.Density = 1
	}
	if ds.FontScale <= 0 {
		slog.Error("settings: invalid font scale, using 1", "fontScale", ds.FontScale)
		ds.FontScale = 1
	}
	if ds.Xdpi < 0 {
		ds.Xdpi = 0
	}
	units.Default.Set(ds.Density, ds.FontScale, ds.Xdpi)
}
