// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors in a consistent way across the compose packages.
// It re-exports the standard library error functions so that it can be
// imported in place of the standard errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	return errors.Log(MyFunc(v))
//	// or
//	if err := errors.Log(MyFunc(v)); err != nil {
//		// do some more error handling
//	}
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}

// Errorf is [fmt.Errorf], re-exported for convenience.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// New is [errors.New], re-exported for convenience.
func New(text string) error {
	return errors.New(text)
}

// Is is [errors.Is], re-exported for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As], re-exported for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is [errors.Join], re-exported for convenience.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
