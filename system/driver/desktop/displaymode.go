// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import "github.com/go-gl/glfw/v3.3/glfw"

// DisplayMode is the per-platform-class display strategy, resolved
// once when the video context is constructed.
type DisplayMode interface {

	// BeginFrame reconciles the window with the display before
	// drawing starts.
	BeginFrame(v *VideoContext)
}

// WindowedMode is the [DisplayMode] for ordinary resizable desktop
// windows; it needs no per-frame reconciliation.
type WindowedMode struct{}

func (WindowedMode) BeginFrame(v *VideoContext) {}

// FixedMode is the [DisplayMode] for platforms whose window must
// track a fixed display video mode: each frame it resizes the window
// to the monitor's current mode if the mode changed since the last
// frame.
type FixedMode struct {

	// Monitor is the display whose video mode the window follows.
	Monitor *glfw.Monitor

	oldWidth  int
	oldHeight int
}

// UseFixedDisplay makes the window follow the given monitor's video
// mode on every frame, or the primary monitor's if monitor is nil.
// It is for targets attached to a fixed display rather than a
// freely-resizable desktop window.
func (v *VideoContext) UseFixedDisplay(monitor *glfw.Monitor) {
	if monitor == nil {
		monitor = glfw.GetPrimaryMonitor()
	}
	v.Mode = &FixedMode{Monitor: monitor}
}

func (m *FixedMode) BeginFrame(v *VideoContext) {
	mode := m.Monitor.GetVideoMode()
	if !m.modeChanged(mode.Width, mode.Height) {
		return
	}
	v.Glw.SetSize(mode.Width, mode.Height)
}

// modeChanged records the current video mode dimensions and reports
// whether they differ from the previous frame's.
func (m *FixedMode) modeChanged(width, height int) bool {
	if m.oldWidth == width && m.oldHeight == height {
		return false
	}
	m.oldWidth = width
	m.oldHeight = height
	return true
}
