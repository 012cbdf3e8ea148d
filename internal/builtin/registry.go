// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
)

const diagnostic = "An error has occurred\n"

var (
	// ErrDuplicateBuiltin is returned when two builtins share a name.
	ErrDuplicateBuiltin = errors.New("duplicate builtin")
	// ErrInvalidBuiltin is returned when a builtin has no name or no function.
	ErrInvalidBuiltin = errors.New("invalid builtin")
)

// IO is the set of streams a builtin reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Func is the body of a builtin. argv[0] is the builtin's own name.
type Func func(ctx context.Context, stdio IO, argv []string) error

// Builtin is a named command implemented by the shell.
type Builtin struct {
	Name string
	Run  Func
}

// Invoke runs the builtin. A failure is reported on stdio.Err as the shell's
// diagnostic and swallowed; only ErrQuit is returned to the caller.
func (b Builtin) Invoke(ctx context.Context, stdio IO, argv []string) error {
	err := b.Run(ctx, stdio, argv)
	if err == nil || errors.Is(err, ErrQuit) {
		return err
	}

	ctxlog.Debug(ctx, "builtin failed", "builtin", b.Name, "error", err)

	_, _ = io.WriteString(stdio.Err, diagnostic)

	return nil
}

// Registry maps names to builtins. It is immutable once built.
type Registry struct {
	byName map[string]Builtin
}

// New builds a registry from the supplied builtins.
func New(builtins ...Builtin) (*Registry, error) {
	r := &Registry{byName: make(map[string]Builtin, len(builtins))}

	for _, b := range builtins {
		if b.Name == "" || b.Run == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBuiltin, b.Name)
		}

		if _, exists := r.byName[b.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBuiltin, b.Name)
		}

		r.byName[b.Name] = b
	}

	return r, nil
}

// Lookup returns the builtin registered under name.
// A nil registry has no builtins.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	if r == nil {
		return Builtin{}, false
	}

	b, ok := r.byName[name]

	return b, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
