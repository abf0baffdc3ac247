// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/yuioto/borealis/events"
)

// InputManager implements [system.InputManager] by registering GLFW
// input callbacks on the window and translating them into toolkit
// events on a queue.
type InputManager struct {
	glw   *glfw.Window
	deque events.Deque
}

// NewInputManager binds an input manager to the given window, which
// must be valid.
func NewInputManager(glw *glfw.Window) *InputManager {
	im := &InputManager{glw: glw}
	glw.SetKeyCallback(im.keyEvent)
	glw.SetCharModsCallback(im.charEvent)
	glw.SetMouseButtonCallback(im.mouseButtonEvent)
	glw.SetCursorPosCallback(im.cursorPosEvent)
	glw.SetScrollCallback(im.scrollEvent)
	return im
}

func (im *InputManager) Deque() *events.Deque { return &im.deque }

// Destroy unregisters the window callbacks.
func (im *InputManager) Destroy() {
	if im.glw == nil {
		return
	}
	im.glw.SetKeyCallback(nil)
	im.glw.SetCharModsCallback(nil)
	im.glw.SetMouseButtonCallback(nil)
	im.glw.SetCursorPosCallback(nil)
	im.glw.SetScrollCallback(nil)
	im.glw = nil
}

func (im *InputManager) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	im.deque.Send(events.Event{
		Type: typ,
		Code: glfwKeyCode(ky),
		Mods: glfwMods(mod),
	})
}

func (im *InputManager) charEvent(gw *glfw.Window, char rune, mod glfw.ModifierKey) {
	im.deque.Send(events.Event{
		Type: events.KeyChord,
		Rune: char,
		Mods: glfwMods(mod),
	})
}

func (im *InputManager) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	but := events.Left
	switch button {
	case glfw.MouseButtonMiddle:
		but = events.Middle
	case glfw.MouseButtonRight:
		but = events.Right
	}
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	im.deque.Send(events.Event{
		Type:   typ,
		Button: but,
		Mods:   glfwMods(mod),
		Pos:    im.cursorPos(gw),
	})
}

func (im *InputManager) cursorPosEvent(gw *glfw.Window, x, y float64) {
	im.deque.Send(events.Event{
		Type: events.MouseMove,
		Pos:  image.Pt(int(x), int(y)),
	})
}

func (im *InputManager) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	im.deque.Send(events.Event{
		Type:        events.Scroll,
		Pos:         im.cursorPos(gw),
		ScrollDelta: image.Pt(int(xoff), int(yoff)),
	})
}

func (im *InputManager) cursorPos(gw *glfw.Window) image.Point {
	x, y := gw.GetCursorPos()
	return image.Pt(int(x), int(y))
}

func glfwMods(mod glfw.ModifierKey) events.Modifiers {
	var m events.Modifiers
	if mod&glfw.ModShift != 0 {
		m |= events.Shift
	}
	if mod&glfw.ModControl != 0 {
		m |= events.Control
	}
	if mod&glfw.ModAlt != 0 {
		m |= events.Alt
	}
	if mod&glfw.ModSuper != 0 {
		m |= events.Meta
	}
	return m
}

func glfwKeyCode(kcode glfw.Key) events.Codes {
	if kcode >= glfw.KeyA && kcode <= glfw.KeyZ {
		return events.CodeA + events.Codes(kcode-glfw.KeyA)
	}
	if kcode >= glfw.Key0 && kcode <= glfw.Key9 {
		return events.Code0 + events.Codes(kcode-glfw.Key0)
	}
	if kcode >= glfw.KeyF1 && kcode <= glfw.KeyF12 {
		return events.CodeF1 + events.Codes(kcode-glfw.KeyF1)
	}
	switch kcode {
	case glfw.KeyEscape:
		return events.CodeEscape
	case glfw.KeyEnter:
		return events.CodeEnter
	case glfw.KeyTab:
		return events.CodeTab
	case glfw.KeyBackspace:
		return events.CodeBackspace
	case glfw.KeySpace:
		return events.CodeSpace
	case glfw.KeyDelete:
		return events.CodeDelete
	case glfw.KeyUp:
		return events.CodeUpArrow
	case glfw.KeyDown:
		return events.CodeDownArrow
	case glfw.KeyLeft:
		return events.CodeLeftArrow
	case glfw.KeyRight:
		return events.CodeRightArrow
	case glfw.KeyHome:
		return events.CodeHome
	case glfw.KeyEnd:
		return events.CodeEnd
	case glfw.KeyPageUp:
		return events.CodePageUp
	case glfw.KeyPageDown:
		return events.CodePageDown
	case glfw.KeyLeftShift:
		return events.CodeLeftShift
	case glfw.KeyLeftControl:
		return events.CodeLeftControl
	case glfw.KeyLeftAlt:
		return events.CodeLeftAlt
	case glfw.KeyLeftSuper:
		return events.CodeLeftMeta
	case glfw.KeyRightShift:
		return events.CodeRightShift
	case glfw.KeyRightControl:
		return events.CodeRightControl
	case glfw.KeyRightAlt:
		return events.CodeRightAlt
	case glfw.KeyRightSuper:
		return events.CodeRightMeta
	}
	return events.CodeUnknown
}
