// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image/color"

	"github.com/shibukawa/nanovgo"
)

// VideoContext owns the native window, the GL context, and the
// vector-graphics context, and exposes the per-frame hooks. All
// methods must be called from the thread the GL context was created
// on.
type VideoContext interface {

	// BeginFrame starts a new frame. On fixed-display platforms it
	// reconciles the window size with the current video mode; in
	// windowed mode it is a no-op.
	BeginFrame()

	// EndFrame presents the frame by swapping the buffers.
	EndFrame()

	// Clear clears the color, depth, and stencil buffers with the
	// given color (alpha forced to opaque).
	Clear(c color.RGBA)

	// ResetState disables culling, blending, depth test, scissor test,
	// and stencil test, establishing a known baseline GL state before
	// the toolkit's own draw calls.
	ResetState()

	// ScaleFactor returns the ratio of framebuffer pixels to logical
	// window units. It is recomputed on every resize and is never zero
	// or negative.
	ScaleFactor() float64

	// NVGContext returns the vector-graphics context, or nil if
	// construction failed or the context does not apply (offscreen).
	NVGContext() *nanovgo.Context

	// Destroy deletes the vector-graphics context, then the window,
	// then terminates the windowing library, in that order.
	Destroy()
}
