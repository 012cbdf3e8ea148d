// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matt-FFFFFF/jshell"
	"github.com/matt-FFFFFF/jshell/internal/config"
	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"github.com/matt-FFFFFF/jshell/internal/executor"
	"github.com/matt-FFFFFF/jshell/internal/resolver"
	"github.com/matt-FFFFFF/jshell/internal/shell"
	"github.com/matt-FFFFFF/jshell/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const (
	commandFlag   = "command"
	configFlag    = "config"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
	cliExitStr    = ""
)

// ErrInvalidArguments is returned when more than one batch file is given.
var ErrInvalidArguments = errors.New("invoked with invalid arguments")

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:      "jshell",
		Usage:     "a small command shell",
		ArgsUsage: "[BATCH]",
		Description: `jshell reads command lines and runs them as pipelines of processes.
Without BATCH it prompts interactively. BATCH is a local file or any address
understood by Hashicorp's go-getter; its lines are run in order and the first
failing line ends the shell with a non-zero status.

Type help inside the shell for the manual.`,
		Version:   fmt.Sprintf("%s (commit: %s)", jshell.Version, jshell.Commit),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     commandFlag,
				Aliases:  []string{"c"},
				Usage:    "Run a single command line and exit",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      configFlag,
				Usage:     "Read configuration from `FILE` instead of ~/" + config.FileName,
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.StringFlag{
				Name:     logLevelFlag,
				Usage:    "Diagnostic log level (debug, info, warn, error), overrides $" + ctxlog.LogLevelEnvVar,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     logFormatFlag,
				Usage:    "Diagnostic log format (" + ctxlog.FormatPretty + ", " + ctxlog.FormatJSON + ")",
				Value:    ctxlog.FormatPretty,
				OnlyOnce: true,
			},
		},
		HideHelpCommand: true,
		Action:          actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cmd.Args().Len() > 1 {
		return cli.Exit(fmt.Sprintf("%s: %s\nUsage: %s [BATCH]", cmd.Name, ErrInvalidArguments, cmd.Name), 1)
	}

	logger, err := ctxlog.ForFormat(cmd.String(logFormatFlag))
	if err != nil {
		ctxlog.Error(ctx, "startup failed", "error", err)
		return cli.Exit(shell.Diagnostic, 1)
	}

	ctx = ctxlog.New(ctx, logger)

	sess, err := setup(ctx, cmd)
	if err != nil {
		ctxlog.Error(ctx, "startup failed", "error", err)
		return cli.Exit(shell.Diagnostic, 1)
	}

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	if line := cmd.String(commandFlag); line != "" || cmd.Args().Len() == 1 {
		go signalbroker.Watch(ctx, sigCh, cancel)

		return runBatch(ctx, cmd, sess, line)
	}

	go signalbroker.Absorb(ctx, sigCh)

	term := shell.NewTerminal()
	defer term.Close() //nolint:errcheck

	if err := sess.Interactive(ctx, term); err != nil {
		ctxlog.Error(ctx, "interactive session failed", "error", err)
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

func runBatch(ctx context.Context, cmd *cli.Command, sess *shell.Session, line string) error {
	script := line

	if cmd.Args().Len() == 1 {
		src := cmd.Args().First()

		data, err := getSource(ctx, src)
		if err != nil {
			ctxlog.Error(ctx, "cannot read batch file", "source", src, "error", err)
			return cli.Exit(shell.Diagnostic, 1)
		}

		script = string(data)
	}

	if err := sess.Batch(ctx, strings.NewReader(script)); err != nil {
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// setup loads configuration, prepares the environment and builds the session.
func setup(ctx context.Context, cmd *cli.Command) (*shell.Session, error) {
	if err := ctxlog.SetLevel(cmd.String(logLevelFlag)); err != nil {
		return nil, err
	}

	cfgPath, required := cmd.String(configFlag), true
	if cfgPath == "" {
		cfgPath, required = config.DefaultPath(), false
	}

	cfg, err := config.Load(ctx, cfgPath, required)
	if err != nil {
		return nil, err
	}

	if cmd.String(logLevelFlag) == "" {
		if err := ctxlog.SetLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	if err := cfg.Apply(); err != nil {
		return nil, err
	}

	self, err := os.Executable()
	if err != nil {
		return nil, err
	}

	if err := os.Setenv(executor.ShellEnvVar, self); err != nil {
		return nil, err
	}

	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "shell ready", "shell", self, "path", cfg.SearchPath(), "builtins", reg.Names())

	return shell.New(executor.New(resolver.New(reg), self), cfg.Prompt), nil
}
