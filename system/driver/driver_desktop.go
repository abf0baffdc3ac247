// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/yuioto/borealis/system/driver/desktop"
	"github.com/yuioto/borealis/system/driver/offscreen"
)

func init() {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		offscreen.Init()
		return
	}
	desktop.Init()
}
