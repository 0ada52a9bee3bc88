// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides persistent user settings that configure
// how elements are built, such as the display metrics used for unit
// conversion. Settings are stored as TOML, or as YAML when their file
// has a .yaml or .yml extension.
package settings

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/compose/base/errors"
)

// DataDir is the directory in which settings files are stored.
// A leading ~ is expanded to the home directory of the user.
var DataDir = filepath.Join("~", ".compose")

// All is a global slice containing all of the user [Settings].
// Apps can append their own settings to it.
var All = []Settings{Device}

// Settings is the interface that describes the functionality common to all settings data types.
type Settings interface {

	// Label returns the label text for the settings.
	Label() string

	// Filename returns the full filename/filepath at which the settings are stored.
	Filename() string

	// Defaults sets the default values for all of the settings.
	Defaults()

	// Apply does anything necessary to apply the settings to the app.
	Apply()
}

// Base contains base settings logic that other settings data types can extend.
type Base struct {

	// Name is the name of the settings.
	Name string `toml:"-" yaml:"-"`

	// File is the filename/filepath at which the settings are stored relative to [DataDir].
	File string `toml:"-" yaml:"-"`
}

// Label returns the label text for the settings.
func (sb *Base) Label() string {
	return sb.Name
}

// Filename returns the full filename/filepath at which the settings are stored.
func (sb *Base) Filename() string {
	dir, err := homedir.Expand(DataDir)
	if errors.Log(err) != nil {
		dir = DataDir
	}
	return filepath.Join(dir, sb.File)
}

// Defaults does nothing by default and can be extended by other settings data types.
func (sb *Base) Defaults() {}

// Apply does nothing by default and can be extended by other settings data types.
func (sb *Base) Apply() {}

func isYAML(fnm string) bool {
	ext := strings.ToLower(filepath.Ext(fnm))
	return ext == ".yaml" || ext == ".yml"
}

// Open opens the given settings from their [Settings.Filename].
func Open(se Settings) error {
	fnm := se.Filename()
	b, err := os.ReadFile(fnm)
	if err != nil {
		return err
	}
	if isYAML(fnm) {
		err = yaml.Unmarshal(b, se)
	} else {
		err = toml.Unmarshal(b, se)
	}
	if err != nil {
		return errors.Errorf("settings: decoding %s: %w", fnm, err)
	}
	return nil
}

// Save saves the given settings to their [Settings.Filename],
// creating the containing directory if needed.
func Save(se Settings) error {
	fnm := se.Filename()
	var b []byte
	var err error
	if isYAML(fnm) {
		b, err = yaml.Marshal(se)
	} else {
		b, err = toml.Marshal(se)
	}
	if err != nil {
		return errors.Errorf("settings: encoding %s: %w", se.Label(), err)
	}
	if err := os.MkdirAll(filepath.Dir(fnm), 0750); err != nil {
		return err
	}
	return os.WriteFile(fnm, b, 0666)
}

// Reset resets the given settings to their default values
// and removes their saved file.
func Reset(se Settings) error {
	err := os.Remove(se.Filename())
	se.Defaults()
	se.Apply()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load sets the defaults of, opens, and applies the given settings.
func Load(se Settings) error {
	se.Defaults()
	err := Open(se)
	// we always apply the settings even if we can't open them
	// to apply at least the default values
	se.Apply()
	if errors.Is(err, fs.ErrNotExist) {
		return nil // it is okay for settings to not be saved
	}
	return err
}

// LoadAll sets the defaults of, opens, and applies [All].
func LoadAll() error {
	errs := []error{}
	for _, se := range All {
		if err := Load(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SaveAll saves [All].
func SaveAll() error {
	errs := []error{}
	for _, se := range All {
		if err := Save(se); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
