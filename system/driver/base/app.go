// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the data and logic common to all platform
// driver implementations of [system.App], so that drivers only add
// the windowing-library specifics.
package base

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jeandeaual/go-locale"
	"github.com/mitchellh/go-homedir"
	"github.com/yuioto/borealis/base/errors"
	"github.com/yuioto/borealis/system"
)

// App contains the state and logic common to all implementations of
// [system.App]: theme and locale resolution, the simulated device
// capability counters, and URL opening. Concrete drivers embed it.
type App struct {

	// Theme is the current theme variant.
	Theme system.ThemeVariant

	// Battery is the simulated battery counter. It is a field rather
	// than a package global so platforms can be tested in isolation.
	// It is a stub pending real telemetry.
	Battery int
}

// NewApp returns an App with the simulated battery at its starting
// charge.
func NewApp() App {
	return App{Battery: 50}
}

// ResolveTheme reads the theme environment variable and sets Theme
// accordingly: any value equal to "DARK" case-insensitively selects
// the dark theme, everything else the light theme.
func (a *App) ResolveTheme() {
	a.Theme = system.ThemeLight
	if strings.EqualFold(os.Getenv(system.ThemeEnv), "DARK") {
		a.Theme = system.ThemeDark
	}
}

func (a *App) ThemeVariant() system.ThemeVariant { return a.Theme }

func (a *App) SetThemeVariant(theme system.ThemeVariant) { a.Theme = theme }

// Locale returns the locale environment variable verbatim if set, and
// the built-in default otherwise.
func (a *App) Locale() string {
	if lang := os.Getenv(system.LocaleEnv); lang != "" {
		return lang
	}
	return system.LocaleDefault
}

// SystemLocale returns the locale configured in the operating system,
// falling back to the built-in default when it cannot be determined.
func (a *App) SystemLocale() string {
	loc, err := locale.GetLocale()
	if err != nil || loc == "" {
		return system.LocaleDefault
	}
	return loc
}

func (a *App) CanShowBatteryLevel() bool { return true }

// BatteryLevel simulates charge drain for environments without real
// battery telemetry: the counter increments and wraps modulo 100 on
// every call, so the result is always in [1,100].
func (a *App) BatteryLevel() int {
	a.Battery %= 100
	a.Battery++
	return a.Battery
}

func (a *App) IsBatteryCharging() bool { return true }

func (a *App) HasWirelessConnection() bool { return true }

// WirelessLevel reports the simulated signal strength, tied to the
// battery counter the same way the capability stubs have always been.
func (a *App) WirelessLevel() int { return a.Battery / 20 }

func (a *App) IPAddress() string { return "0.0.0.0" }

func (a *App) DNSServer() string { return "0.0.0.0" }

func (a *App) IsApplicationMode() bool { return true }

// OpenURL opens the given URL in the default browser using the
// OS-specific open command. It is fire-and-forget: failures are not
// reported.
func (a *App) OpenURL(url string) {
	cmd := OpenURLCommand(runtime.GOOS, url)
	if cmd == nil {
		return
	}
	cmd.Start()
}

// DataDir returns the OS-specific data directory: Mac: ~/Library,
// Linux: ~/.config, Windows: ~/AppData/Roaming.
func (a *App) DataDir() string {
	home := errors.Log1(homedir.Dir())
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming")
	default:
		return filepath.Join(home, ".config")
	}
}
