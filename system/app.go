// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform abstraction of the toolkit:
// window and GL context management, frame pacing, input, audio, fonts,
// and device-capability queries. The concrete implementation is
// selected by importing [github.com/yuioto/borealis/system/driver].
package system

import (
	"log/slog"
	"os"

	"github.com/yuioto/borealis/events"
)

var (
	// TheApp is the current [App]; only one is ever in effect.
	// It is set by the driver on Init.
	TheApp App

	// OnWindowResized, if non-nil, is called by the video context
	// whenever the window framebuffer changes size, with the new size
	// in pixels. It is the sole notification the platform layer emits
	// upward to the toolkit.
	OnWindowResized func(width, height int)

	// FatalError reports an unrecoverable platform failure and halts
	// the process. It can be overridden (e.g. in tests), but the
	// default never returns.
	FatalError = func(msg string) {
		slog.Error(msg)
		os.Exit(1)
	}
)

// App is the platform adapter: it owns the windowing library lifecycle
// and the platform sub-objects (video context, input manager, audio
// player, font loader), and answers device-capability queries.
//
// All methods must be called from the main thread, which is also the
// thread the GL context is bound to. Init must be called exactly once
// per process, NewWindow exactly once after Init, and Destroy once at
// the end.
type App interface {

	// Name returns the name of the platform, such as "GLFW".
	Name() string

	// Init sets up the windowing library. If it fails, the error is
	// logged and the app is left non-functional: VideoContext returns
	// nil and no window can be created.
	Init()

	// NewWindow creates the single application window along with its
	// GL and vector-graphics contexts, and the input manager bound to
	// it. It must be called after Init and before any frame operation.
	NewWindow(title string, width, height int)

	// MainLoopIteration is the per-frame cooperative scheduling point.
	// While the window is iconified it blocks on the OS event queue;
	// while active it polls without blocking. It returns false exactly
	// once, when the OS has signaled that the window should close.
	MainLoopIteration() bool

	// VideoContext returns the video context, or nil before NewWindow
	// or after a failed Init.
	VideoContext() VideoContext

	// InputManager returns the input manager, or nil before NewWindow.
	InputManager() InputManager

	// AudioPlayer returns the audio player.
	AudioPlayer() AudioPlayer

	// FontLoader returns the font loader.
	FontLoader() FontLoader

	// ThemeVariant returns the current theme variant, resolved at Init
	// from the BOREALIS_THEME environment variable.
	ThemeVariant() ThemeVariant

	// SetThemeVariant overrides the theme variant.
	SetThemeVariant(theme ThemeVariant)

	// Locale returns the BOREALIS_LANG environment variable if set,
	// and LocaleDefault otherwise.
	Locale() string

	// SystemLocale returns the locale configured in the operating
	// system, falling back to LocaleDefault when it cannot be
	// determined. Hosts that want OS-language defaults use this when
	// no BOREALIS_LANG override is given.
	SystemLocale() string

	// CanShowBatteryLevel returns whether battery queries are available.
	CanShowBatteryLevel() bool

	// BatteryLevel returns the battery charge in [1,100]. On desktop
	// this is a simulation: the value increments and wraps modulo 100
	// on every call. It is a stub pending real telemetry.
	BatteryLevel() int

	// IsBatteryCharging returns whether the battery is charging.
	IsBatteryCharging() bool

	// HasWirelessConnection returns whether a wireless connection exists.
	HasWirelessConnection() bool

	// WirelessLevel returns the wireless signal strength in [0,5].
	WirelessLevel() int

	// IPAddress returns the device IP address.
	IPAddress() string

	// DNSServer returns the device DNS server address.
	DNSServer() string

	// IsApplicationMode returns whether the process runs as a regular
	// foreground application.
	IsApplicationMode() bool

	// OpenURL opens the given URL in the default browser, using the
	// OS-specific open command. Failures are not reported.
	OpenURL(url string)

	// Destroy tears down the platform sub-objects in the fixed order:
	// font loader, audio player, video context, input manager.
	Destroy()
}

// InputManager translates windowing-library input callbacks into
// toolkit [events.Event] values on a queue that the host drains once
// per frame.
type InputManager interface {

	// Deque returns the event queue filled by the window callbacks.
	Deque() *events.Deque

	// Destroy releases the input manager.
	Destroy()
}
