// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver maps a program name to a builtin or an executable file.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/jshell/internal/builtin"
	"golang.org/x/sys/unix"
)

var (
	// ErrResolve is the parent of every resolution failure.
	ErrResolve = errors.New("cannot resolve program")
	// ErrNotFound is returned when a bare name is neither a builtin nor on PATH.
	ErrNotFound = errors.New("program not found")
	// ErrNotExecutable is returned when a path-qualified name is not an executable file.
	ErrNotExecutable = errors.New("not an executable file")
)

// Program is the result of resolving a name. Exactly one of Builtin or Path is set.
type Program struct {
	Builtin *builtin.Builtin
	Path    string
}

// IsBuiltin reports whether the program is implemented by the shell.
func (p Program) IsBuiltin() bool {
	return p.Builtin != nil
}

// Resolver resolves program names against a builtin registry and PATH.
type Resolver struct {
	Builtins *builtin.Registry
	// Getenv reads PATH. Defaults to os.Getenv.
	Getenv func(string) string
}

// New returns a Resolver over reg that reads the process environment.
func New(reg *builtin.Registry) *Resolver {
	return &Resolver{Builtins: reg, Getenv: os.Getenv}
}

// Resolve finds the program for name.
//
// A name containing '/' must be an executable file at that path and is never
// looked up as a builtin or on PATH. Otherwise builtins take priority over the
// PATH directories, which are searched in order. Empty PATH entries are skipped.
func (r *Resolver) Resolve(name string) (Program, error) {
	if name == "" {
		return Program{}, fmt.Errorf("%w: %w: empty name", ErrResolve, ErrNotFound)
	}

	if strings.Contains(name, "/") {
		if !isExecutable(name) {
			return Program{}, fmt.Errorf("%w: %w: %s", ErrResolve, ErrNotExecutable, name)
		}

		return Program{Path: name}, nil
	}

	if b, ok := r.Builtins.Lookup(name); ok {
		return Program{Builtin: &b}, nil
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	for _, dir := range strings.Split(getenv("PATH"), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}

		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return Program{Path: candidate}, nil
		}
	}

	return Program{}, fmt.Errorf("%w: %w: %s", ErrResolve, ErrNotFound, name)
}

// isExecutable reports whether path names a non-directory the caller may execute.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	return unix.Access(path, unix.X_OK) == nil
}
