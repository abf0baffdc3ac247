// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command basic opens a window and renders a label with nanovg,
// exercising the whole platform surface: theme and locale resolution,
// the capability stubs, input events, and the frame loop.
package main

import (
	"image/color"

	"github.com/shibukawa/nanovgo"
	"github.com/yuioto/borealis/events"
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
	_ "github.com/yuioto/borealis/system/driver"
)

func main() {
	app := system.TheApp

	fbWidth, fbHeight := 0, 0
	system.OnWindowResized = func(width, height int) {
		fbWidth, fbHeight = width, height
	}

	app.NewWindow("Borealis Basic", 1280, 720)
	vc := app.VideoContext()
	if vc == nil {
		logx.Error("no video context, exiting")
		return
	}

	logx.Info("platform", "name", app.Name(),
		"theme", app.ThemeVariant().String(),
		"locale", app.Locale(),
		"systemLocale", app.SystemLocale())
	logx.Info("capabilities",
		"battery", app.BatteryLevel(),
		"charging", app.IsBatteryCharging(),
		"wireless", app.WirelessLevel(),
		"ip", app.IPAddress(),
		"dns", app.DNSServer())

	bg := color.RGBA{R: 0x2b, G: 0x2b, B: 0x38, A: 0xff}
	for app.MainLoopIteration() {
		for {
			ev, ok := app.InputManager().Deque().Poll()
			if !ok {
				break
			}
			switch {
			case ev.Type == events.KeyDown && ev.Code == events.CodeB:
				app.OpenURL("https://github.com/yuioto/borealis")
			case ev.Type == events.KeyDown:
				app.AudioPlayer().Play(system.SoundClick)
			}
		}

		vc.BeginFrame()
		vc.Clear(bg)

		if ctx := vc.NVGContext(); ctx != nil {
			// nanovg wants the logical size plus the pixel ratio
			scale := float32(vc.ScaleFactor())
			ctx.BeginFrame(int(float32(fbWidth)/scale), int(float32(fbHeight)/scale), scale)
			ctx.SetFillColor(nanovgo.RGBA(0xee, 0xee, 0xee, 0xff))
			ctx.SetFontFace(system.FontRegular)
			ctx.SetFontSize(28)
			ctx.Text(40, 80, "Hello from the Borealis platform layer")
			ctx.EndFrame()
		}

		vc.ResetState()
		vc.EndFrame()
	}

	app.Destroy()
}
