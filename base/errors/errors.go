// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small wrappers around the standard library
// errors package for logging and handling errors in one line.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error that formats as the given text;
// it is the same as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Log takes the given error and logs it if it is non-nil.
// It returns the error so it can be used in-line.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs the error if it is non-nil and returns the first value,
// for functions with a (value, error) return.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// CallerInfo returns the file and line of the caller of the function
// that called CallerInfo.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return file + ":" + strconv.Itoa(line)
}
