// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/yuioto/borealis/base/errors"
	"github.com/yuioto/borealis/logx"
)

// windowsMinimizedPosition is the ad-hoc position Windows reports for
// minimized windows; geometry at this position is never saved.
const windowsMinimizedPosition = -32000

// Geometry is the persisted window position and size, in logical
// window units.
type Geometry struct {
	Pos  image.Point `toml:"pos"`
	Size image.Point `toml:"size"`
}

// geometryFile returns the path of the persisted geometry file under
// the per-OS data directory.
func (a *App) geometryFile() string {
	return filepath.Join(a.DataDir(), "Borealis", "window-geometry.toml")
}

// SaveGeometry persists the current window geometry so the next run
// can restore it. It does nothing when there is no window, when the
// window failed to construct, or when the window is minimized.
func (a *App) SaveGeometry() {
	if a.Video == nil || a.Video.Glw == nil {
		return
	}
	x, y := a.Video.Glw.GetPos()
	w, h := a.Video.Glw.GetSize()
	geom := Geometry{Pos: image.Pt(x, y), Size: image.Pt(w, h)}
	if err := saveGeometry(a.geometryFile(), geom); err != nil {
		logx.Error("could not save window geometry", "err", err)
	}
}

// RestoreGeometry loads the geometry saved by a previous run, or nil
// if there is none.
func (a *App) RestoreGeometry() *Geometry {
	geom, err := loadGeometry(a.geometryFile())
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Debug("could not restore window geometry", "err", err)
		}
		return nil
	}
	return geom
}

func saveGeometry(file string, geom Geometry) error {
	if geom.Pos.X == windowsMinimizedPosition && geom.Pos.Y == windowsMinimizedPosition {
		return nil
	}
	b, err := toml.Marshal(geom)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}
	return os.WriteFile(file, b, 0644)
}

func loadGeometry(file string) (*Geometry, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	geom := &Geometry{}
	if err := toml.Unmarshal(b, geom); err != nil {
		return nil, err
	}
	if geom.Size.X <= 0 || geom.Size.Y <= 0 {
		return nil, errors.New("invalid saved window geometry")
	}
	return geom, nil
}
