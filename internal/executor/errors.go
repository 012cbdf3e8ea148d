// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

var (
	// ErrResolve is returned when a stage's program cannot be resolved.
	ErrResolve = errors.New("resolution error")
	// ErrResource is returned when a pipe, redirect target or process cannot be created.
	ErrResource = errors.New("resource error")
	// ErrExecution is returned when a resolved program could not be executed.
	// It does not stop the rest of the pipeline.
	ErrExecution = errors.New("execution error")
	// ErrNoShellExecutable is returned when a builtin needs a process but the
	// shell's own executable is unknown.
	ErrNoShellExecutable = errors.New("shell executable unknown")
)

// StageError records which stage of a pipeline failed.
type StageError struct {
	Index int
	Argv  []string
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Index, strings.Join(e.Argv, " "), e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// classifyStart sorts a failure of os.StartProcess. Running out of processes
// or memory is a resource error; anything else happened in exec.
func classifyStart(err error) error {
	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM) {
		return errors.Join(ErrResource, err)
	}

	return errors.Join(ErrExecution, err)
}
