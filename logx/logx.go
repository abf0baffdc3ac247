// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for the toolkit on top of
// [log/slog], with colored output on terminals that support it.
package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for the
// process. Anything below it is not logged. The default depends on the
// build tags: [slog.LevelDebug] with the debug tag, [slog.LevelWarn]
// with the release tag, and [slog.LevelInfo] otherwise.
var UserLevel = defaultUserLevel

var output = termenv.NewOutput(os.Stderr)

// Debug logs the given message at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		slog.Debug(msg, args...)
	}
}

// Info logs the given message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	if UserLevel <= slog.LevelInfo {
		slog.Info(msg, args...)
	}
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	if UserLevel <= slog.LevelWarn {
		slog.Warn(msg, args...)
	}
}

// Error logs the given message at [slog.LevelError].
func Error(msg string, args ...any) {
	if UserLevel <= slog.LevelError {
		slog.Error(msg, args...)
	}
}

// LevelColor colors the given level label for terminal output,
// returning the label unchanged when the terminal has no color support.
func LevelColor(level slog.Level, label string) string {
	var color string
	switch {
	case level >= slog.LevelError:
		color = "1" // red
	case level >= slog.LevelWarn:
		color = "3" // yellow
	case level >= slog.LevelInfo:
		color = "4" // blue
	default:
		color = "5" // magenta
	}
	return output.String(label).Foreground(output.Color(color)).String()
}
