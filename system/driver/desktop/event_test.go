// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/yuioto/borealis/events"
)

func TestGlfwKeyCode(t *testing.T) {
	assert.Equal(t, events.CodeA, glfwKeyCode(glfw.KeyA))
	assert.Equal(t, events.CodeZ, glfwKeyCode(glfw.KeyZ))
	assert.Equal(t, events.Code0, glfwKeyCode(glfw.Key0))
	assert.Equal(t, events.Code9, glfwKeyCode(glfw.Key9))
	assert.Equal(t, events.CodeF1, glfwKeyCode(glfw.KeyF1))
	assert.Equal(t, events.CodeF12, glfwKeyCode(glfw.KeyF12))
	assert.Equal(t, events.CodeEscape, glfwKeyCode(glfw.KeyEscape))
	assert.Equal(t, events.CodeEnter, glfwKeyCode(glfw.KeyEnter))
	assert.Equal(t, events.CodeUpArrow, glfwKeyCode(glfw.KeyUp))
	assert.Equal(t, events.CodeLeftMeta, glfwKeyCode(glfw.KeyLeftSuper))
	assert.Equal(t, events.CodeUnknown, glfwKeyCode(glfw.KeyKPDecimal))
}

func TestGlfwMods(t *testing.T) {
	assert.Equal(t, events.Modifiers(0), glfwMods(0))
	m := glfwMods(glfw.ModShift | glfw.ModControl)
	assert.True(t, m.HasFlag(events.Shift))
	assert.True(t, m.HasFlag(events.Control))
	assert.False(t, m.HasFlag(events.Alt))
	m = glfwMods(glfw.ModAlt | glfw.ModSuper)
	assert.True(t, m.HasFlag(events.Alt))
	assert.True(t, m.HasFlag(events.Meta))
}
