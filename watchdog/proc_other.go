// Copyright (c) 2025 Michael D Henderson. All rights reserved.

//go:build !unix

package watchdog

import "os/exec"

// killGroup keeps the default cancellation, which kills the direct child.
func killGroup(cmd *exec.Cmd) {}
