// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"os"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/shibukawa/nanovgo"
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
)

// FontLoader implements [system.FontLoader] for desktop: it registers
// a user font file when one is configured and present, and falls back
// to an embedded Latin Modern face otherwise.
type FontLoader struct {

	// Path optionally points at a TTF file to use as the regular UI
	// font.
	Path string
}

// LoadFonts registers the regular UI font with the given nanovg
// context.
func (f *FontLoader) LoadFonts(ctx *nanovgo.Context) {
	if ctx == nil {
		return
	}
	if f.Path != "" {
		if _, err := os.Stat(f.Path); err == nil {
			if ctx.CreateFont(system.FontRegular, f.Path) != -1 {
				logx.Debug("loaded font", "path", f.Path)
				return
			}
			logx.Error("could not load font", "path", f.Path)
		}
	}
	if ctx.CreateFontFromMemory(system.FontRegular, lmroman10regular.TTF, 0) == -1 {
		logx.Error("could not load embedded fallback font")
	}
}

func (f *FontLoader) Destroy() {}
