// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the jshell command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/jshell/internal/builtin"
	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"github.com/spf13/afero"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	// A re-executed copy hosting one builtin for a pipeline stage.
	if builtin.IsChild(os.Args) {
		reg, err := newRegistry()
		if err != nil {
			ctxlog.Error(ctx, "builtin registry", "error", err)
			os.Exit(builtin.ExitFailure)
		}

		os.Exit(builtin.RunChild(ctx, reg, os.Args))
	}

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		ctxlog.Debug(ctx, "session ended with error", "error", err)
		os.Exit(1)
	}
}

func newRegistry() (*builtin.Registry, error) {
	return builtin.New(builtin.Standard(afero.NewOsFs())...)
}
