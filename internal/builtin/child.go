// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
)

// ChildArg marks a re-executed shell binary that hosts a single builtin.
// The command line is: <shell> ChildArg NAME ARGS...
const ChildArg = "__jshell_builtin"

// Exit codes of a hosted builtin.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 127
)

// ChildArgs returns the argument list for hosting argv in a child. The
// result excludes the executable itself, ready to follow it in argv.
func ChildArgs(argv []string) []string {
	return append([]string{ChildArg}, argv...)
}

// IsChild reports whether args (usually os.Args) asks this process to host
// a builtin.
func IsChild(args []string) bool {
	return len(args) > 2 && args[1] == ChildArg
}

// RunChild hosts the builtin named in args on the process's standard streams
// and returns the exit code.
func RunChild(ctx context.Context, reg *Registry, args []string) int {
	return runChild(ctx, reg, args, IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

func runChild(ctx context.Context, reg *Registry, args []string, stdio IO) int {
	if !IsChild(args) {
		_, _ = io.WriteString(stdio.Err, diagnostic)
		return ExitFailure
	}

	argv := args[2:]

	b, ok := reg.Lookup(argv[0])
	if !ok {
		ctxlog.Debug(ctx, "no such builtin", "builtin", argv[0])

		_, _ = io.WriteString(stdio.Err, diagnostic)

		return ExitNotFound
	}

	err := b.Run(ctx, stdio, argv)
	if err == nil || errors.Is(err, ErrQuit) {
		return ExitOK
	}

	ctxlog.Debug(ctx, "hosted builtin failed", "builtin", b.Name, "error", err)

	_, _ = io.WriteString(stdio.Err, diagnostic)

	return ExitFailure
}
