// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"testing"

	"github.com/shibukawa/nanovgo"
	"github.com/stretchr/testify/assert"
	"github.com/yuioto/borealis/system"
	"github.com/yuioto/borealis/system/driver/base"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, system.TheApp)
	assert.Equal(t, "Offscreen", system.TheApp.Name())
	assert.NotNil(t, system.TheApp.AudioPlayer())
	assert.NotNil(t, system.TheApp.FontLoader())
}

func TestInitThemeFromEnv(t *testing.T) {
	t.Setenv(system.ThemeEnv, "dark")
	Init()
	assert.Equal(t, system.ThemeDark, system.TheApp.ThemeVariant())
}

func TestMainLoopIteration(t *testing.T) {
	a := &App{App: base.NewApp()}
	a.Init()
	a.NewWindow("test", 800, 600)
	for i := 0; i < 3; i++ {
		assert.True(t, a.MainLoopIteration())
	}
	a.CloseReq = true
	assert.False(t, a.MainLoopIteration())
	assert.False(t, a.MainLoopIteration())
}

func TestNewWindow(t *testing.T) {
	a := &App{App: base.NewApp()}
	a.Init()
	assert.Nil(t, a.VideoContext())
	assert.Nil(t, a.InputManager())
	a.NewWindow("test", 1280, 720)
	vc := a.VideoContext()
	assert.NotNil(t, vc)
	assert.Equal(t, 1.0, vc.ScaleFactor())
	assert.Nil(t, vc.NVGContext())
	assert.NotNil(t, a.InputManager().Deque())
}

func TestVideoResize(t *testing.T) {
	v := NewVideoContext(1280, 720)
	v.SetSize(2560, 1440, 1280, 720)
	assert.Equal(t, 2.0, v.ScaleFactor())
	assert.Equal(t, 2560, v.FbSize.X)

	// zero-sized resizes are ignored
	v.SetSize(0, 1440, 1280, 720)
	assert.Equal(t, 2.0, v.ScaleFactor())
	assert.Equal(t, 2560, v.FbSize.X)
}

type fontProbe struct {
	order *[]string
}

func (f *fontProbe) LoadFonts(ctx *nanovgo.Context) {}
func (f *fontProbe) Destroy()                       { *f.order = append(*f.order, "font") }

type audioProbe struct {
	order *[]string
}

func (p *audioProbe) Play(sound system.Sounds) bool { return false }
func (p *audioProbe) Destroy()                      { *p.order = append(*p.order, "audio") }

type videoProbe struct {
	VideoContext
	order *[]string
}

func (v *videoProbe) Destroy() { *v.order = append(*v.order, "video") }

type inputProbe struct {
	InputManager
	order *[]string
}

func (im *inputProbe) Destroy() { *im.order = append(*im.order, "input") }

func TestDestroyOrder(t *testing.T) {
	var order []string
	a := &App{
		App:   base.NewApp(),
		Fonts: &fontProbe{order: &order},
		Audio: &audioProbe{order: &order},
		Video: &videoProbe{order: &order},
		Input: &inputProbe{order: &order},
	}
	a.Destroy()
	assert.Equal(t, []string{"font", "audio", "video", "input"}, order)
}
