// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "github.com/shibukawa/nanovgo"

// Font names registered with the vector-graphics context.
const (
	// FontRegular is the name of the default UI font.
	FontRegular = "regular"
)

// FontLoader registers the fonts the toolkit uses with the
// vector-graphics context.
type FontLoader interface {

	// LoadFonts loads the platform fonts into the given context.
	// It is called once, after the video context has been created.
	LoadFonts(ctx *nanovgo.Context)

	// Destroy releases any font resources.
	Destroy()
}
