// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package watchdog runs a command and kills it when it runs too long.
package watchdog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// WaitDelay bounds how long Run waits for the output pipes to close
// after the command was killed.
const WaitDelay = time.Second

// ErrTimeout is returned when the command was killed for running too long.
var ErrTimeout = errors.New("timeout")

// Watchdog runs commands under a wall-clock limit.
type Watchdog struct {
	Timeout time.Duration
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run starts the command and waits for it. It returns the exit code of
// the command. If the command cannot be started, or is killed after
// Timeout, the exit code is 1 and the error says why. A Timeout of 0
// means no limit.
//
// The command runs in its own process group and a timeout kills the
// whole group, so processes started by the command die with it.
func (w *Watchdog) Run(ctx context.Context, name string, args ...string) (int, error) {
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = w.Stdin, w.Stdout, w.Stderr
	cmd.WaitDelay = WaitDelay
	killGroup(cmd)
	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start %s: %w", name, err)
	}

	err := cmd.Wait()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return 1, fmt.Errorf("process is taking longer than %v: %w", w.Timeout, ErrTimeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, err // killed by a signal
	} else if err != nil {
		return 1, err
	}
	return 0, nil
}
