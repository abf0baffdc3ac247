// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image/color"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/shibukawa/nanovgo"
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
	"github.com/yuioto/borealis/system/driver/base"
)

// VideoContext implements [system.VideoContext] on desktop platforms:
// it owns the GLFW window, the GL context, and the nanovg context.
// After construction, callers must check Glw for nil before any frame
// operation: window or nanovg creation failure leaves the context
// non-functional rather than panicking.
type VideoContext struct {
	base.Video

	// Glw is the underlying window, nil if construction failed.
	Glw *glfw.Window

	// NVG is the nanovg context, nil if construction failed.
	NVG *nanovgo.Context

	// Mode is the display-mode strategy, resolved once at
	// construction.
	Mode DisplayMode
}

// NewVideoContext creates the window with the fixed desktop GL
// choice (3.2 core, forward-compatible), loads the GL entry points,
// enables vsync, and creates the nanovg context. It requires GLFW to
// be initialized: if the library cannot come up at all, that is
// reported through [system.FatalError].
func NewVideoContext(title string, width, height int) *VideoContext {
	v := &VideoContext{Video: base.NewVideo(), Mode: WindowedMode{}}

	if err := glfw.Init(); err != nil {
		system.FatalError("glfw: failed to initialize: " + err.Error())
		return v
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	glw, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		logx.Error("glfw: failed to create window", "err", err)
		glfw.Terminate()
		return v
	}
	v.Glw = glw

	glw.SetInputMode(glfw.StickyKeysMode, glfw.True)
	glw.MakeContextCurrent()
	glw.SetFramebufferSizeCallback(v.framebufferSizeCallback)

	if err := gl.Init(); err != nil {
		logx.Error("gl: failed to load entry points", "err", err)
	}
	glfw.SwapInterval(1)

	logx.Info("glfw: GL context",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	ctx, err := nanovgo.NewContext(nanovgo.AntiAlias | nanovgo.StencilStrokes)
	if err != nil {
		logx.Error("glfw: unable to init nanovg", "err", err)
		glw.Destroy()
		v.Glw = nil
		glfw.Terminate()
		return v
	}
	v.NVG = ctx

	// Seed the scale factor from the initial framebuffer size.
	fbw, fbh := glw.GetFramebufferSize()
	v.framebufferSizeCallback(glw, fbw, fbh)

	return v
}

func (v *VideoContext) framebufferSizeCallback(w *glfw.Window, width, height int) {
	ww, wh := w.GetSize()
	if !v.OnFramebufferResized(width, height, ww, wh) {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame reconciles the window with the display according to the
// display-mode strategy; in windowed mode it is a no-op.
func (v *VideoContext) BeginFrame() {
	v.Mode.BeginFrame(v)
}

// EndFrame presents the frame.
func (v *VideoContext) EndFrame() {
	v.Glw.SwapBuffers()
}

// Clear clears the color, depth, and stencil buffers.
func (v *VideoContext) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// ResetState establishes the baseline GL state the toolkit draw calls
// expect, since nanovg or host code may leave state dirty.
func (v *VideoContext) ResetState() {
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.STENCIL_TEST)
}

func (v *VideoContext) NVGContext() *nanovgo.Context { return v.NVG }

// Destroy deletes the nanovg context, destroys the window, and
// terminates GLFW, in that order. A nanovg teardown failure is
// swallowed and logged so the window and library are still released.
func (v *VideoContext) Destroy() {
	if v.NVG != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logx.Error("cannot delete nvg context", "err", r)
				}
			}()
			v.NVG.Delete()
		}()
		v.NVG = nil
	}
	if v.Glw != nil {
		v.Glw.Destroy()
		v.Glw = nil
	}
	glfw.Terminate()
}
