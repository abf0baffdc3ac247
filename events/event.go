// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that the platform input
// manager produces, and the queue that the host drains once per frame.
package events

import "image"

// Types is the type of an input event.
type Types int32

const (
	// Unknown is an uninitialized event type.
	Unknown Types = iota

	// KeyDown is a key press, including key repeats.
	KeyDown

	// KeyUp is a key release.
	KeyUp

	// KeyChord is a completed character input, after any modifiers and
	// dead keys have been applied.
	KeyChord

	// MouseDown is a mouse button press.
	MouseDown

	// MouseUp is a mouse button release.
	MouseUp

	// MouseMove is a change in mouse cursor position.
	MouseMove

	// Scroll is mouse wheel or trackpad scrolling.
	Scroll
)

func (t Types) String() string {
	switch t {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case KeyChord:
		return "KeyChord"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	case Scroll:
		return "Scroll"
	}
	return "Unknown"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Modifiers are the active modifier keys, as a bit flag.
type Modifiers int64

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// HasFlag returns whether the given modifier bit is set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// Event is one input event. Fields beyond Type are populated
// depending on the event type.
type Event struct {

	// Type is the type of the event.
	Type Types

	// Code is the physical key for KeyDown and KeyUp events.
	Code Codes

	// Rune is the character for KeyChord events.
	Rune rune

	// Button is the mouse button for MouseDown and MouseUp events.
	Button Buttons

	// Mods are the modifier keys active when the event fired.
	Mods Modifiers

	// Pos is the mouse cursor position in framebuffer pixels.
	Pos image.Point

	// ScrollDelta is the scroll amount for Scroll events.
	ScrollDelta image.Point
}
