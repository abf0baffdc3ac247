// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequeFIFO(t *testing.T) {
	q := &Deque{}
	q.Send(Event{Type: KeyDown, Code: CodeA})
	q.Send(Event{Type: KeyChord, Rune: 'a'})
	q.Send(Event{Type: MouseMove, Pos: image.Pt(10, 20)})
	assert.Equal(t, 3, q.Len())

	ev, ok := q.Poll()
	assert.True(t, ok)
	assert.Equal(t, KeyDown, ev.Type)
	assert.Equal(t, CodeA, ev.Code)

	ev, ok = q.Poll()
	assert.True(t, ok)
	assert.Equal(t, 'a', ev.Rune)

	ev, ok = q.Poll()
	assert.True(t, ok)
	assert.Equal(t, image.Pt(10, 20), ev.Pos)

	_, ok = q.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestModifiers(t *testing.T) {
	m := Shift | Control
	assert.True(t, m.HasFlag(Shift))
	assert.True(t, m.HasFlag(Control))
	assert.False(t, m.HasFlag(Alt))
	assert.False(t, m.HasFlag(Meta))
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "KeyDown", KeyDown.String())
	assert.Equal(t, "Scroll", Scroll.String())
	assert.Equal(t, "Unknown", Unknown.String())
}
