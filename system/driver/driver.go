// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver provides the default platform driver: importing it
// initializes [system.TheApp] with the implementation for the current
// platform and build configuration.
package driver
