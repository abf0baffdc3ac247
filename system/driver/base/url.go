// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import "os/exec"

// OpenURLCommand returns the command that opens the given URL in the
// default browser on the given GOOS, or nil if the OS has no known
// open command.
func OpenURLCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("explorer", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url)
	}
	return nil
}
