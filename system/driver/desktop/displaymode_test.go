// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedModeChange(t *testing.T) {
	m := &FixedMode{}

	// first frame always resizes
	assert.True(t, m.modeChanged(1920, 1080))

	// stable mode needs no reconciliation
	assert.False(t, m.modeChanged(1920, 1080))
	assert.False(t, m.modeChanged(1920, 1080))

	// display switched to a new mode
	assert.True(t, m.modeChanged(1280, 720))
	assert.False(t, m.modeChanged(1280, 720))

	// and back
	assert.True(t, m.modeChanged(1920, 1080))
}

func TestWindowedModeNoReconcile(t *testing.T) {
	// windowed frames never touch the window, so a nil context is fine
	assert.NotPanics(t, func() { WindowedMode{}.BeginFrame(nil) })
}
