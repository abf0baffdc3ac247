// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
)

// Video contains the state common to all implementations of
// [system.VideoContext]: the framebuffer scale factor and the resize
// bookkeeping around it. The scale factor is a field of this struct
// rather than a process-wide global so video contexts can be tested
// in isolation.
type Video struct {

	// Scale is the ratio of framebuffer pixels to logical window
	// units. It is never zero or negative.
	Scale float64
}

// NewVideo returns a Video with the scale factor at its initial 1:1
// value.
func NewVideo() Video {
	return Video{Scale: 1}
}

func (v *Video) ScaleFactor() float64 { return v.Scale }

// OnFramebufferResized implements the shared semantics of the
// framebuffer-resize callback: a zero-sized invocation (common while
// the window is minimized on some platforms) is ignored outright;
// otherwise the scale factor is recomputed as framebuffer width over
// logical window width and the host resize hook is invoked with the
// new pixel dimensions. It returns whether the resize was applied.
func (v *Video) OnFramebufferResized(fbWidth, fbHeight, winWidth, winHeight int) bool {
	if fbWidth == 0 || fbHeight == 0 {
		return false
	}
	if winWidth > 0 {
		v.Scale = float64(fbWidth) / float64(winWidth)
	}

	logx.Debug("window resized", "width", winWidth, "height", winHeight)
	logx.Debug("framebuffer resized", "width", fbWidth, "height", fbHeight, "scale", v.Scale)

	if system.OnWindowResized != nil {
		system.OnWindowResized(fbWidth, fbHeight)
	}
	return true
}
