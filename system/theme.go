// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// Environment variables recognized by the platform layer.
const (
	// ThemeEnv selects the theme variant: any value equal to "DARK"
	// under any letter casing selects [ThemeDark]; everything else,
	// including unset, selects [ThemeLight].
	ThemeEnv = "BOREALIS_THEME"

	// LocaleEnv overrides the UI locale; the value is passed through
	// verbatim. When unset, [LocaleDefault] is used.
	LocaleEnv = "BOREALIS_LANG"

	// LocaleDefault is the built-in default locale identifier.
	LocaleDefault = "en-US"
)

// ThemeVariant is the color theme of the toolkit.
type ThemeVariant int32

const (
	// ThemeLight is the light theme, the default.
	ThemeLight ThemeVariant = iota

	// ThemeDark is the dark theme.
	ThemeDark
)

func (t ThemeVariant) String() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}
