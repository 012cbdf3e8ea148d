// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"os"
	"testing"

	"github.com/matt-FFFFFF/jshell/internal/builtin"
	"github.com/spf13/afero"
	"go.uber.org/goleak"
)

// TestMain lets the test binary host builtins the way the shell binary does
// when a piped or background stage re-executes it.
func TestMain(m *testing.M) {
	if builtin.IsChild(os.Args) {
		reg, err := builtin.New(builtin.Standard(afero.NewOsFs())...)
		if err != nil {
			os.Exit(builtin.ExitFailure)
		}

		os.Exit(builtin.RunChild(context.Background(), reg, os.Args))
	}

	goleak.VerifyTestMain(m)
}
