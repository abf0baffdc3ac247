// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"image/color"

	"github.com/shibukawa/nanovgo"
	"github.com/yuioto/borealis/events"
	"github.com/yuioto/borealis/system"
	"github.com/yuioto/borealis/system/driver/base"
)

// VideoContext implements [system.VideoContext] with no display. It
// keeps the same scale-factor and resize semantics as the desktop
// video context, driven by SetSize instead of an OS callback.
type VideoContext struct {
	base.Video

	// WinSize is the logical window size.
	WinSize image.Point

	// FbSize is the framebuffer size in pixels.
	FbSize image.Point
}

// NewVideoContext returns an offscreen video context at the given
// logical size with a 1:1 framebuffer.
func NewVideoContext(width, height int) *VideoContext {
	v := &VideoContext{Video: base.NewVideo()}
	v.SetSize(width, height, width, height)
	return v
}

// SetSize simulates a framebuffer resize event with the given
// framebuffer and logical window sizes. Zero-sized framebuffers are
// ignored, exactly as on desktop.
func (v *VideoContext) SetSize(fbWidth, fbHeight, winWidth, winHeight int) {
	if !v.OnFramebufferResized(fbWidth, fbHeight, winWidth, winHeight) {
		return
	}
	v.FbSize = image.Pt(fbWidth, fbHeight)
	v.WinSize = image.Pt(winWidth, winHeight)
}

func (v *VideoContext) BeginFrame() {}

func (v *VideoContext) EndFrame() {}

func (v *VideoContext) Clear(c color.RGBA) {}

func (v *VideoContext) ResetState() {}

func (v *VideoContext) NVGContext() *nanovgo.Context { return nil }

func (v *VideoContext) Destroy() {}

// InputManager implements [system.InputManager] with an event queue
// that tests can fill directly.
type InputManager struct {
	deque events.Deque
}

func (im *InputManager) Deque() *events.Deque { return &im.deque }

func (im *InputManager) Destroy() {}

// FontLoader implements [system.FontLoader] with no fonts to load.
type FontLoader struct{}

func (f *FontLoader) LoadFonts(ctx *nanovgo.Context) {}

func (f *FontLoader) Destroy() {}

var _ system.VideoContext = (*VideoContext)(nil)
var _ system.InputManager = (*InputManager)(nil)
var _ system.FontLoader = (*FontLoader)(nil)
