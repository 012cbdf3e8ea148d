// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fdio

import (
	"errors"
	"os"
)

const redirectPerm = 0o600 // owner read/write, as a fresh redirect target

var (
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToOpenRedirect is returned when a redirect target cannot be opened.
	ErrFailedToOpenRedirect = errors.New("failed to open redirect target")
)

// Stdio is the descriptor triple handed to a stage as fds 0, 1 and 2.
type Stdio struct {
	In  *os.File
	Out *os.File
	Err *os.File
}

// Std returns the controller's own standard streams.
func Std() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Files returns the triple in descriptor order, ready for os.ProcAttr.Files.
func (s Stdio) Files() []*os.File {
	return []*os.File{s.In, s.Out, s.Err}
}

// NewPipe creates a pipe. Both ends are close-on-exec, so a child only sees
// the end it is handed explicitly.
func NewPipe() (r, w *os.File, err error) {
	r, w, err = os.Pipe()
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	return r, w, nil
}

// OpenOutput opens path as a stdout redirect target, creating it with mode
// 0600 if needed, appending or truncating as requested.
func OpenOutput(path string, appendOutput bool) (*os.File, error) {
	flag := os.O_CREATE | os.O_WRONLY
	if appendOutput {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flag, redirectPerm)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenRedirect, err)
	}

	return f, nil
}

// OpenInput opens path read-only as a stdin redirect source.
func OpenInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenRedirect, err)
	}

	return f, nil
}
