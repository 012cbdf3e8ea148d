// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

const clearScreen = "\033[H\033[2J"

// ErrQuit is returned by the quit builtin. The session treats it as a
// request to end successfully.
var ErrQuit = errors.New("quit requested")

//go:embed manual.txt
var manual string

// Standard returns the shell's builtins. fs is the filesystem dir lists.
func Standard(fs afero.Fs) []Builtin {
	return []Builtin{
		{Name: "cd", Run: cd},
		{Name: "clr", Run: clr},
		{Name: "dir", Run: dirLister(fs)},
		{Name: "environ", Run: environ},
		{Name: "path", Run: setPath},
		{Name: "echo", Run: echo},
		{Name: "help", Run: help},
		{Name: "pause", Run: pause},
		{Name: "quit", Run: quit},
	}
}

func cd(_ context.Context, stdio IO, argv []string) error {
	switch {
	case len(argv) > 2:
		_, err := io.WriteString(stdio.Err, "Invalid args\n")
		return err
	case len(argv) < 2:
		return nil
	}

	if err := os.Chdir(argv[1]); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	return os.Setenv("PWD", cwd)
}

func clr(_ context.Context, stdio IO, _ []string) error {
	_, err := io.WriteString(stdio.Out, clearScreen)
	return err
}

func dirLister(fs afero.Fs) Func {
	return func(_ context.Context, stdio IO, argv []string) error {
		var target string

		switch len(argv) {
		case 1:
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			target = cwd
		case 2:
			target = argv[1]
		default:
			return invalidDirectory(stdio, argv[1])
		}

		entries, err := afero.ReadDir(fs, target)
		if err != nil {
			return invalidDirectory(stdio, target)
		}

		for _, e := range entries {
			if _, err := fmt.Fprintln(stdio.Out, e.Name()); err != nil {
				return err
			}
		}

		return nil
	}
}

func invalidDirectory(stdio IO, name string) error {
	_, err := fmt.Fprintf(stdio.Err, "%s: invalid directory\n", name)
	return err
}

func environ(_ context.Context, stdio IO, _ []string) error {
	for _, kv := range os.Environ() {
		if _, err := fmt.Fprintln(stdio.Out, kv); err != nil {
			return err
		}
	}

	return nil
}

// setPath replaces PATH with its arguments joined by ':'.
func setPath(_ context.Context, _ IO, argv []string) error {
	return os.Setenv("PATH", strings.Join(argv[1:], string(os.PathListSeparator)))
}

// echo prints each argument followed by a space. An argument of the form
// $NAME prints the variable's value, or nothing when it is unset.
func echo(_ context.Context, stdio IO, argv []string) error {
	var sb strings.Builder

	for _, arg := range argv[1:] {
		if len(arg) > 1 && arg[0] == '$' {
			value, ok := os.LookupEnv(arg[1:])
			if !ok {
				continue
			}

			arg = value
		}

		sb.WriteString(arg)
		sb.WriteByte(' ')
	}

	sb.WriteByte('\n')

	_, err := io.WriteString(stdio.Out, sb.String())

	return err
}

func help(_ context.Context, stdio IO, _ []string) error {
	_, err := io.WriteString(stdio.Out, manual)
	return err
}

// pause blocks until a newline or end of input. It reads one byte at a time
// so nothing after the newline is consumed.
func pause(_ context.Context, stdio IO, _ []string) error {
	buf := make([]byte, 1)

	for {
		n, err := stdio.In.Read(buf)
		if n == 1 && buf[0] == '\n' {
			return nil
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func quit(context.Context, IO, []string) error {
	return ErrQuit
}
