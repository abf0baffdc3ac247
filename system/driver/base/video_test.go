// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuioto/borealis/system"
)

func TestScaleFactorInitial(t *testing.T) {
	v := NewVideo()
	assert.Equal(t, 1.0, v.ScaleFactor())
}

func TestResizeZeroSizeIgnored(t *testing.T) {
	v := NewVideo()
	calls := 0
	system.OnWindowResized = func(width, height int) { calls++ }
	defer func() { system.OnWindowResized = nil }()

	assert.False(t, v.OnFramebufferResized(0, 720, 1280, 720))
	assert.False(t, v.OnFramebufferResized(1280, 0, 1280, 720))
	assert.False(t, v.OnFramebufferResized(0, 0, 0, 0))
	assert.Equal(t, 1.0, v.ScaleFactor())
	assert.Equal(t, 0, calls)
}

func TestResizeRecomputesScale(t *testing.T) {
	v := NewVideo()
	var gotWidth, gotHeight int
	system.OnWindowResized = func(width, height int) { gotWidth, gotHeight = width, height }
	defer func() { system.OnWindowResized = nil }()

	assert.True(t, v.OnFramebufferResized(2560, 1440, 1280, 720))
	assert.Equal(t, 2.0, v.ScaleFactor())
	assert.Equal(t, 2560, gotWidth)
	assert.Equal(t, 1440, gotHeight)

	// a zero-sized event afterwards leaves the scale untouched
	assert.False(t, v.OnFramebufferResized(0, 0, 1280, 720))
	assert.Equal(t, 2.0, v.ScaleFactor())

	assert.True(t, v.OnFramebufferResized(1920, 1080, 1280, 720))
	assert.Equal(t, 1.5, v.ScaleFactor())
}

func TestResizeNoHook(t *testing.T) {
	v := NewVideo()
	system.OnWindowResized = nil
	assert.True(t, v.OnFramebufferResized(1280, 720, 1280, 720))
	assert.Equal(t, 1.0, v.ScaleFactor())
}
