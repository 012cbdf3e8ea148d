// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/jshell/internal/builtin"
	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"github.com/matt-FFFFFF/jshell/internal/fdio"
	"github.com/matt-FFFFFF/jshell/internal/parser"
	"github.com/matt-FFFFFF/jshell/internal/resolver"
)

const (
	// ShellEnvVar holds the path of the shell's executable.
	ShellEnvVar = "shell"
	// ParentEnvVar is set in every child to the value of ShellEnvVar.
	ParentEnvVar = "parent"

	diagnostic = "An error has occurred\n"
)

// Executor runs pipelines on behalf of the controller.
type Executor struct {
	Resolver *resolver.Resolver
	// Stdio is the controller's own descriptor triple. It is never modified.
	Stdio fdio.Stdio
	// SelfPath is the shell executable re-run to host builtins in a process.
	SelfPath string
	// Environ supplies the child environment. Defaults to os.Environ.
	Environ func() []string

	reaper Reaper
}

// New returns an Executor on the controller's standard streams.
func New(r *resolver.Resolver, selfPath string) *Executor {
	return &Executor{
		Resolver: r,
		Stdio:    fdio.Std(),
		SelfPath: selfPath,
		Environ:  os.Environ,
	}
}

// Background returns the background processes not yet collected.
func (e *Executor) Background() []*os.Process {
	return e.reaper.Processes()
}

// Reap collects finished background processes without blocking.
func (e *Executor) Reap(ctx context.Context) int {
	return e.reaper.Reap(ctx)
}

// Run executes the stages in order.
//
// A resolution or resource failure stops the pipeline: the stage's handles
// and the pipe carried from the previous stage are released, and stages
// already started are waited for. An execution failure is reported on the
// controller's stderr as the shell's diagnostic and the pipeline continues;
// it is not returned. builtin.ErrQuit is returned as soon as an in-process quit runs.
func (e *Executor) Run(ctx context.Context, stages []parser.Stage) error {
	var (
		carry    fdio.Slot
		upstream []*os.Process
	)

	abort := func(err error) error {
		if cerr := carry.Close(); cerr != nil {
			ctxlog.Debug(ctx, "closing carried pipe", "error", cerr)
		}

		e.wait(ctx, upstream)

		return err
	}

	prevPiped := false

	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			return abort(err)
		}

		p, err := e.runStage(ctx, st, prevPiped, &carry)

		switch {
		case errors.Is(err, builtin.ErrQuit):
			return err
		case errors.Is(err, ErrExecution):
			ctxlog.Debug(ctx, "stage could not execute", "error", &StageError{Index: i, Argv: st.Argv, Err: err})

			if e.Stdio.Err != nil {
				_, _ = io.WriteString(e.Stdio.Err, diagnostic)
			}
		case err != nil:
			return abort(&StageError{Index: i, Argv: st.Argv, Err: err})
		}

		switch {
		case st.IsPiped:
			upstream = append(upstream, p)
		case st.IsDaemon:
			e.reaper.Track(append(upstream, p)...)
			upstream = nil
		default:
			e.wait(ctx, append([]*os.Process{p}, upstream...))
			upstream = nil
		}

		prevPiped = st.IsPiped

		e.reaper.Reap(ctx)
	}

	return nil
}

// runStage wires and starts one stage. It returns the started process, or
// nil if the stage ran in the controller or failed.
func (e *Executor) runStage(ctx context.Context, st parser.Stage, prevPiped bool, carry *fdio.Slot) (*os.Process, error) {
	prog, err := e.Resolver.Resolve(st.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	var scope fdio.Scope

	defer func() {
		if err := scope.Close(); err != nil {
			ctxlog.Debug(ctx, "releasing stage descriptors", "error", err)
		}
	}()

	stdio := e.Stdio

	if prevPiped {
		stdio.In = scope.Own(carry.Take())
	}

	if st.IsPiped {
		r, w, err := fdio.NewPipe()
		if err != nil {
			return nil, errors.Join(ErrResource, err)
		}

		stdio.Out = scope.Own(w)

		if err := carry.Set(r); err != nil {
			ctxlog.Debug(ctx, "closing stale carried pipe", "error", err)
		}
	}

	if st.OutputFile != "" {
		f, err := fdio.OpenOutput(st.OutputFile, st.AppendOutput)
		if err != nil {
			return nil, errors.Join(ErrResource, err)
		}

		stdio.Out = scope.Own(f)
	}

	if st.InputFile != "" && !prog.IsBuiltin() {
		f, err := fdio.OpenInput(st.InputFile)
		if err != nil {
			return nil, errors.Join(ErrResource, err)
		}

		stdio.In = scope.Own(f)
	}

	if prog.IsBuiltin() && !st.IsDaemon && !st.IsPiped && !prevPiped {
		ctxlog.Debug(ctx, "running builtin", "argv", st.Argv)

		return nil, prog.Builtin.Invoke(ctx, builtin.IO{In: stdio.In, Out: stdio.Out, Err: stdio.Err}, st.Argv)
	}

	path, argv := prog.Path, st.Argv

	if prog.IsBuiltin() {
		if e.SelfPath == "" {
			return nil, errors.Join(ErrResource, ErrNoShellExecutable)
		}

		path = e.SelfPath
		argv = append([]string{e.SelfPath}, builtin.ChildArgs(st.Argv)...)
	}

	p, err := os.StartProcess(path, argv, &os.ProcAttr{
		Env:   e.childEnv(),
		Files: stdio.Files(),
	})
	if err != nil {
		return nil, classifyStart(err)
	}

	ctxlog.Debug(ctx, "stage started",
		"argv", st.Argv,
		"pid", p.Pid,
		"builtin", prog.IsBuiltin(),
		"daemon", st.IsDaemon,
		"piped", st.IsPiped,
	)

	return p, nil
}

func (e *Executor) childEnv() []string {
	environ := e.Environ
	if environ == nil {
		environ = os.Environ
	}

	return append(environ(), ParentEnvVar+"="+os.Getenv(ShellEnvVar))
}

// wait blocks until every non-nil process has finished.
func (e *Executor) wait(ctx context.Context, procs []*os.Process) {
	for _, p := range procs {
		if p == nil {
			continue
		}

		state, err := p.Wait()
		if err != nil {
			ctxlog.Debug(ctx, "wait failed", "pid", p.Pid, "error", err)
			continue
		}

		ctxlog.Debug(ctx, "process finished", "pid", p.Pid, "exitCode", state.ExitCode())
	}
}
