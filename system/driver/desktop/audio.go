// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/yuioto/borealis/base/errors"
	"github.com/yuioto/borealis/logx"
	"github.com/yuioto/borealis/system"
)

// soundFiles maps each sound effect to its wav file name in the
// sounds directory.
var soundFiles = map[system.Sounds]string{
	system.SoundFocusChange: "focus-change.wav",
	system.SoundFocusError:  "focus-error.wav",
	system.SoundClick:       "click.wav",
	system.SoundClickError:  "click-error.wav",
	system.SoundHonk:        "honk.wav",
}

// BeepPlayer implements [system.AudioPlayer] by playing wav sound
// effects from a directory through the beep speaker. Sounds are
// decoded and buffered lazily on first play; missing or undecodable
// files make Play return false.
type BeepPlayer struct {
	dir     string
	started bool
	buffers map[system.Sounds]*beep.Buffer
}

// NewBeepPlayer returns a player reading its wav files from the given
// directory.
func NewBeepPlayer(dir string) *BeepPlayer {
	return &BeepPlayer{dir: dir, buffers: map[system.Sounds]*beep.Buffer{}}
}

// Play plays the given sound, returning whether it could be played.
func (p *BeepPlayer) Play(sound system.Sounds) bool {
	buf, err := p.load(sound)
	if err != nil {
		logx.Debug("cannot play sound", "sound", sound.String(), "err", err)
		return false
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
	return true
}

func (p *BeepPlayer) load(sound system.Sounds) (*beep.Buffer, error) {
	if buf, ok := p.buffers[sound]; ok {
		return buf, nil
	}
	name, ok := soundFiles[sound]
	if !ok {
		return nil, errors.New("no file for sound " + sound.String())
	}
	f, err := os.Open(filepath.Join(p.dir, name))
	if err != nil {
		return nil, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer s.Close()
	if !p.started {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			return nil, err
		}
		p.started = true
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	p.buffers[sound] = buf
	return buf, nil
}

// Destroy closes the speaker if it was started.
func (p *BeepPlayer) Destroy() {
	if p.started {
		speaker.Close()
		p.started = false
	}
}
