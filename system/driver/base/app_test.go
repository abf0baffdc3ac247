// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuioto/borealis/system"
)

func TestResolveThemeDark(t *testing.T) {
	for _, v := range []string{"dark", "DARK", "Dark", "dArK"} {
		t.Setenv(system.ThemeEnv, v)
		a := NewApp()
		a.ResolveTheme()
		assert.Equal(t, system.ThemeDark, a.ThemeVariant(), v)
	}
}

func TestResolveThemeLight(t *testing.T) {
	for _, v := range []string{"light", "LIGHT", "darkish", "DARK ", "0"} {
		t.Setenv(system.ThemeEnv, v)
		a := NewApp()
		a.ResolveTheme()
		assert.Equal(t, system.ThemeLight, a.ThemeVariant(), v)
	}

	t.Setenv(system.ThemeEnv, "placeholder")
	os.Unsetenv(system.ThemeEnv)
	a := NewApp()
	a.ResolveTheme()
	assert.Equal(t, system.ThemeLight, a.ThemeVariant())
}

func TestLocale(t *testing.T) {
	a := NewApp()
	for _, v := range []string{"fr-FR", "ja", "zh-Hans", "not-a-locale"} {
		t.Setenv(system.LocaleEnv, v)
		assert.Equal(t, v, a.Locale())
	}

	t.Setenv(system.LocaleEnv, "placeholder")
	os.Unsetenv(system.LocaleEnv)
	assert.Equal(t, system.LocaleDefault, a.Locale())
}

func TestSystemLocaleFallback(t *testing.T) {
	a := NewApp()
	assert.NotEmpty(t, a.SystemLocale())
}

func TestBatteryLevel(t *testing.T) {
	a := NewApp()
	first := a.BatteryLevel()
	assert.Equal(t, 51, first)
	for i := 0; i < 99; i++ {
		lvl := a.BatteryLevel()
		assert.GreaterOrEqual(t, lvl, 1)
		assert.LessOrEqual(t, lvl, 100)
	}
	// the counter is cyclic with period 100
	assert.Equal(t, first, a.BatteryLevel())
}

func TestWirelessLevel(t *testing.T) {
	a := NewApp()
	for i := 0; i < 200; i++ {
		lvl := a.BatteryLevel()
		assert.Equal(t, lvl/20, a.WirelessLevel())
	}
}

func TestCapabilityStubs(t *testing.T) {
	a := NewApp()
	assert.True(t, a.CanShowBatteryLevel())
	assert.True(t, a.IsBatteryCharging())
	assert.True(t, a.HasWirelessConnection())
	assert.True(t, a.IsApplicationMode())
	assert.Equal(t, "0.0.0.0", a.IPAddress())
	assert.Equal(t, "0.0.0.0", a.DNSServer())
}

func TestOpenURLCommand(t *testing.T) {
	url := "https://example.com"
	cmd := OpenURLCommand("linux", url)
	assert.Equal(t, []string{"xdg-open", url}, cmd.Args)
	cmd = OpenURLCommand("darwin", url)
	assert.Equal(t, []string{"open", url}, cmd.Args)
	cmd = OpenURLCommand("windows", url)
	assert.Equal(t, []string{"explorer", url}, cmd.Args)
	assert.Nil(t, OpenURLCommand("plan9", url))
}

func TestDataDir(t *testing.T) {
	a := NewApp()
	d := a.DataDir()
	assert.NotEmpty(t, d)
	assert.True(t, filepath.IsAbs(d))
}
