// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements the platform layer headlessly, with no
// display, GL, or audio. It is selected automatically under go test
// and with the -nogui flag, and shares all of its capability, theme,
// and scaling logic with the desktop driver through the base package.
package offscreen

import (
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
	"github.com/yuioto/borealis/system/driver/base"
)

// TheApp is the single [App] for the offscreen platform.
var TheApp *App

var _ system.App = (*App)(nil)

// Init initializes the offscreen platform and sets [system.TheApp].
func Init() {
	TheApp = &App{App: base.NewApp()}
	TheApp.Init()
	system.TheApp = TheApp
}

// App implements [system.App] with no underlying display.
type App struct {
	base.App

	// Video is the video context, nil until NewWindow.
	Video system.VideoContext

	// Input is the input manager, nil until NewWindow.
	Input system.InputManager

	// Audio is the audio player.
	Audio system.AudioPlayer

	// Fonts is the font loader.
	Fonts system.FontLoader

	// CloseReq requests that the main loop stop: the next
	// MainLoopIteration returns false.
	CloseReq bool
}

func (a *App) Name() string { return "Offscreen" }

// Init resolves the theme and constructs the stub sub-objects.
func (a *App) Init() {
	a.ResolveTheme()
	a.Fonts = &FontLoader{}
	a.Audio = &system.NullAudioPlayer{}
}

// NewWindow creates the offscreen video context and input manager at
// the given logical size, with a 1:1 framebuffer.
func (a *App) NewWindow(title string, width, height int) {
	logx.Debug("offscreen window", "title", title, "width", width, "height", height)
	v := NewVideoContext(width, height)
	a.Video = v
	a.Input = &InputManager{}
}

// MainLoopIteration returns false exactly once CloseReq has been set,
// and true before that. There is no OS event queue to pump.
func (a *App) MainLoopIteration() bool {
	return !a.CloseReq
}

func (a *App) VideoContext() system.VideoContext { return a.Video }

func (a *App) InputManager() system.InputManager { return a.Input }

func (a *App) AudioPlayer() system.AudioPlayer { return a.Audio }

func (a *App) FontLoader() system.FontLoader { return a.Fonts }

// Destroy tears down the sub-objects in the fixed order: font loader,
// audio player, video context, input manager.
func (a *App) Destroy() {
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
