// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// Sounds are the UI sound effects the toolkit can play.
type Sounds int32

const (
	SoundNone Sounds = iota
	SoundFocusChange
	SoundFocusError
	SoundClick
	SoundClickError
	SoundHonk

	SoundsN
)

func (s Sounds) String() string {
	switch s {
	case SoundFocusChange:
		return "FocusChange"
	case SoundFocusError:
		return "FocusError"
	case SoundClick:
		return "Click"
	case SoundClickError:
		return "ClickError"
	case SoundHonk:
		return "Honk"
	}
	return "None"
}

// AudioPlayer plays UI sound effects.
type AudioPlayer interface {

	// Play plays the given sound, returning whether it could be
	// played.
	Play(sound Sounds) bool

	// Destroy releases the player resources.
	Destroy()
}

// NullAudioPlayer is an [AudioPlayer] that plays nothing, used on
// platforms without sound assets.
type NullAudioPlayer struct{}

func (p *NullAudioPlayer) Play(sound Sounds) bool { return false }

func (p *NullAudioPlayer) Destroy() {}
