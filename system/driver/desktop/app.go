// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the platform layer on desktop operating
// systems through GLFW, OpenGL, and nanovg.
package desktop

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
	"github.com/yuioto/borealis/system/driver/base"
)

func init() {
	// All GLFW and GL calls must happen on the thread the context was
	// created on.
	runtime.LockOSThread()
}

// TheApp is the single [App] for the desktop platform.
var TheApp *App

var _ system.App = (*App)(nil)

// Init initializes the desktop platform and sets [system.TheApp].
func Init() {
	TheApp = &App{App: base.NewApp()}
	TheApp.Init()
	system.TheApp = TheApp
}

// App implements [system.App] on desktop platforms through GLFW.
type App struct {
	base.App

	// Video is the video context, nil until NewWindow.
	Video *VideoContext

	// Input is the input manager, nil until NewWindow.
	Input *InputManager

	// Audio is the audio player: a [BeepPlayer] when SoundsDir is set,
	// and the null player otherwise.
	Audio system.AudioPlayer

	// Fonts is the font loader.
	Fonts *FontLoader

	// SoundsDir optionally points at a directory of wav sound effects.
	// It must be set before Init to take effect.
	SoundsDir string

	initialized bool
}

func (a *App) Name() string { return "GLFW" }

// Init sets up GLFW exactly once per process. On failure it logs the
// error and leaves the app non-functional: NewWindow then does
// nothing and VideoContext stays nil.
func (a *App) Init() {
	glfw.InitHint(glfw.JoystickHatButtons, glfw.True)

	if err := glfw.Init(); err != nil {
		logx.Error("glfw: failed to initialize", "err", err)
		return
	}

	a.ResolveTheme()
	glfw.SetTime(0)

	a.Fonts = &FontLoader{}
	if a.SoundsDir != "" {
		a.Audio = NewBeepPlayer(a.SoundsDir)
	} else {
		a.Audio = &system.NullAudioPlayer{}
	}
	a.initialized = true
}

// NewWindow creates the window, the GL and nanovg contexts, and the
// input manager, then loads the platform fonts. Window geometry saved
// by a previous run is restored.
func (a *App) NewWindow(title string, width, height int) {
	if !a.initialized {
		logx.Error("glfw: NewWindow called without successful Init")
		return
	}
	geom := a.RestoreGeometry()
	if geom != nil {
		width, height = geom.Size.X, geom.Size.Y
	}
	a.Video = NewVideoContext(title, width, height)
	if a.Video.Glw == nil {
		return
	}
	if geom != nil {
		a.Video.Glw.SetPos(geom.Pos.X, geom.Pos.Y)
	}
	a.Input = NewInputManager(a.Video.Glw)
	a.Fonts.LoadFonts(a.Video.NVGContext())
}

// MainLoopIteration pumps the OS event queue once. While the window
// is iconified it blocks on the queue instead of spinning; once the
// window is active again it polls without blocking so rendering can
// proceed. It returns false when the OS has signaled the window
// should close.
func (a *App) MainLoopIteration() bool {
	for {
		isActive := a.Video.Glw.GetAttrib(glfw.Iconified) == glfw.False
		if isActive {
			glfw.PollEvents()
			break
		}
		glfw.WaitEvents()
	}
	return !a.Video.Glw.ShouldClose()
}

func (a *App) VideoContext() system.VideoContext {
	if a.Video == nil || a.Video.Glw == nil {
		return nil
	}
	return a.Video
}

func (a *App) InputManager() system.InputManager {
	if a.Input == nil {
		return nil
	}
	return a.Input
}

func (a *App) AudioPlayer() system.AudioPlayer { return a.Audio }

func (a *App) FontLoader() system.FontLoader { return a.Fonts }

// Destroy saves the window geometry and tears down the platform
// sub-objects in the fixed order: font loader, audio player, video
// context, input manager.
func (a *App) Destroy() {
	a.SaveGeometry()
	if a.Fonts != nil {
		a.Fonts.Destroy()
	}
	if a.Audio != nil {
		a.Audio.Destroy()
	}
	if a.Video != nil {
		a.Video.Destroy()
	}
	if a.Input != nil {
		a.Input.Destroy()
	}
}
