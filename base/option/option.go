// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package option provides optional (nullable) types.
package option

import "fmt"

// Option represents an optional (nullable) type. If Valid is true, Option
// represents Value. Otherwise, it represents a null/unset/invalid value.
// The zero value of an Option is unset.
type Option[T any] struct {
	Valid bool `label:"Set"`
	Value T
}

// New returns a new [Option] set to the given value.
func New[T any](v T) Option[T] {
	return Option[T]{Valid: true, Value: v}
}

// Set sets the value to the given value.
func (o *Option[T]) Set(v T) *Option[T] {
	o.Value = v
	o.Valid = true
	return o
}

// Clear marks the value as null/unset/invalid.
func (o *Option[T]) Clear() *Option[T] {
	var zero T
	o.Value = zero
	o.Valid = false
	return o
}

// IsValid returns whether the value is valid/set.
func (o Option[T]) IsValid() bool {
	return o.Valid
}

// Or returns the value of the option if it is valid,
// and the given alternative value if it is not.
func (o Option[T]) Or(or T) T {
	if !o.Valid {
		return or
	}
	return o.Value
}

// Apply writes the value to dst if it is valid and leaves dst
// untouched otherwise. It reports whether dst was written.
func (o Option[T]) Apply(dst *T) bool {
	if !o.Valid {
		return false
	}
	*dst = o.Value
	return true
}

func (o Option[T]) String() string {
	if !o.Valid {
		return "unset"
	}
	return fmt.Sprint(o.Value)
}
