// Copyright (c) 2025 Michael D Henderson. All rights reserved.

//go:build unix

package watchdog

import (
	"os/exec"
	"syscall"
)

// killGroup starts the command in a new process group and makes
// cancellation kill the whole group, not just the direct child.
func killGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
