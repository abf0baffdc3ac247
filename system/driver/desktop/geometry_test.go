// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "window-geometry.toml")
	want := Geometry{Pos: image.Pt(120, 80), Size: image.Pt(1280, 720)}
	require.NoError(t, saveGeometry(file, want))

	got, err := loadGeometry(file)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestGeometryMinimizedNotSaved(t *testing.T) {
	file := filepath.Join(t.TempDir(), "window-geometry.toml")
	geom := Geometry{
		Pos:  image.Pt(windowsMinimizedPosition, windowsMinimizedPosition),
		Size: image.Pt(1280, 720),
	}
	require.NoError(t, saveGeometry(file, geom))
	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestGeometryInvalidSizeRejected(t *testing.T) {
	file := filepath.Join(t.TempDir(), "window-geometry.toml")
	require.NoError(t, saveGeometry(file, Geometry{Pos: image.Pt(10, 10)}))
	_, err := loadGeometry(file)
	assert.Error(t, err)
}

func TestGeometryMissingFile(t *testing.T) {
	_, err := loadGeometry(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}
