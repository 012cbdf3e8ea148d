// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell implements the read-eval loop in its interactive and batch forms.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/jshell/internal/builtin"
	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"github.com/matt-FFFFFF/jshell/internal/parser"
	"github.com/peterh/liner"
)

const (
	// Diagnostic is the only error message the user sees.
	Diagnostic = "An error has occurred"
	// DefaultPrompt follows the working directory in the interactive prompt.
	DefaultPrompt = "jshell> "

	maxLineSize = 1024 * 1024
)

// Runner executes a parsed pipeline.
type Runner interface {
	Run(ctx context.Context, stages []parser.Stage) error
}

// LineReader reads one line after showing a prompt. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Session ties the parser to a Runner and reports failures.
type Session struct {
	Runner Runner
	Prompt string
	Stdout io.Writer
	Stderr io.Writer
	// Getwd supplies the directory shown in the prompt. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// New returns a Session writing to the process's standard streams.
func New(r Runner, prompt string) *Session {
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Session{
		Runner: r,
		Prompt: prompt,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getwd:  os.Getwd,
	}
}

// RunLine parses and runs one line. A blank line does nothing.
func (s *Session) RunLine(ctx context.Context, line string) error {
	stages, err := parser.ParseLine(line)
	if err != nil {
		return err
	}

	if len(stages) == 0 {
		return nil
	}

	return s.Runner.Run(ctx, stages)
}

// Interactive prompts for lines until end of input or quit. A failing line
// is reported and the loop goes on. Aborting a prompt discards the line.
func (s *Session) Interactive(ctx context.Context, lr LineReader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := lr.Prompt(s.prompt(ctx))

		switch {
		case errors.Is(err, io.EOF):
			_, _ = fmt.Fprintln(s.Stdout)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		err = s.RunLine(ctx, line)
		if errors.Is(err, builtin.ErrQuit) {
			return nil
		}

		if err != nil {
			s.report(ctx, err)
		}
	}
}

// Batch runs every line of r. The first failing line is reported and ends
// the session with its error.
func (s *Session) Batch(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			s.report(ctx, err)
			return err
		}

		err := s.RunLine(ctx, scanner.Text())
		if errors.Is(err, builtin.ErrQuit) {
			return nil
		}

		if err != nil {
			s.report(ctx, err)
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		s.report(ctx, err)
		return err
	}

	return nil
}

func (s *Session) prompt(ctx context.Context) string {
	getwd := s.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	cwd, err := getwd()
	if err != nil {
		s.report(ctx, err)
	}

	return fmt.Sprintf("[%s]:%s", cwd, s.Prompt)
}

func (s *Session) report(ctx context.Context, err error) {
	ctxlog.Debug(ctx, "line failed", "error", err)

	_, _ = fmt.Fprintln(s.Stderr, Diagnostic)
}
