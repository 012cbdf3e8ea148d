// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"golang.org/x/sys/unix"
)

// Reaper tracks background processes and collects them once they finish.
// Only tracked pids are waited for, so a foreground child is never taken.
type Reaper struct {
	procs []*os.Process
}

// Track adds processes to the reaper. Nil entries are ignored.
func (r *Reaper) Track(procs ...*os.Process) {
	for _, p := range procs {
		if p != nil {
			r.procs = append(r.procs, p)
		}
	}
}

// Len returns the number of processes not yet collected.
func (r *Reaper) Len() int {
	return len(r.procs)
}

// Processes returns the processes not yet collected.
func (r *Reaper) Processes() []*os.Process {
	return append([]*os.Process(nil), r.procs...)
}

// Reap collects every tracked process that has finished, without blocking,
// and returns how many were collected.
func (r *Reaper) Reap(ctx context.Context) int {
	kept := r.procs[:0]
	reaped := 0

	for _, p := range r.procs {
		var status unix.WaitStatus

		pid, err := unix.Wait4(p.Pid, &status, unix.WNOHANG, nil)

		switch {
		case errors.Is(err, unix.ECHILD):
			// collected elsewhere
			ctxlog.Debug(ctx, "background process already collected", "pid", p.Pid)
		case err != nil:
			ctxlog.Debug(ctx, "wait4 failed", "pid", p.Pid, "error", err)
			kept = append(kept, p)

			continue
		case pid == 0:
			kept = append(kept, p)

			continue
		default:
			ctxlog.Debug(ctx, "background process finished", "pid", p.Pid, "exitCode", status.ExitStatus())
		}

		_ = p.Release()
		reaped++
	}

	clear(r.procs[len(kept):])
	r.procs = kept

	return reaped
}
