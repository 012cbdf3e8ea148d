// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"github.com/matt-FFFFFF/jshell/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runCLI runs the root command in a scratch directory with no user config.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("PATH", os.Getenv("PATH"))
	t.Setenv(executor.ShellEnvVar, "")
	t.Cleanup(func() { ctxlog.LevelVar.Set(slog.LevelWarn) })

	cmd := newRootCmd()
	cmd.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	return dir, cmd.Run(context.Background(), append([]string{"jshell"}, args...))
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)

	return coder.ExitCode()
}

func TestCommandLine(t *testing.T) {
	dir, err := runCLI(t, "-c", "echo hi > out.txt")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi \n", string(got))

	assert.Equal(t, "/bin", os.Getenv("PATH"), "PATH comes from the default configuration")
	assert.NotEmpty(t, os.Getenv(executor.ShellEnvVar), "shell names the running executable")
}

func TestBatchFile(t *testing.T) {
	script, err := filepath.Abs(filepath.Join("testdata", "script.jsh"))
	require.NoError(t, err)

	dir, err := runCLI(t, script)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "from batch \nsecond\n", string(got))
}

func TestFailures(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "failing line", args: []string{"-c", "nosuchprog_jshell"}},
		{name: "syntax error", args: []string{"-c", "| cat"}},
		{name: "too many arguments", args: []string{"one.jsh", "two.jsh"}},
		{name: "missing batch file", args: []string{"missing.jsh"}},
		{name: "missing explicit config", args: []string{"--config", "missing.yaml", "-c", "echo"}},
		{name: "unknown log level", args: []string{"--log-level", "loud", "-c", "echo"}},
		{name: "unknown log format", args: []string{"--log-format", "xml", "-c", "echo"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(t, err))
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("JSHELL_GREETING", "")

	cfg := filepath.Join(t.TempDir(), "jshell.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("path: [/usr/bin, /bin]\nenv:\n  JSHELL_GREETING: howdy\n"), 0o600))

	dir, err := runCLI(t, "--config", cfg, "-c", "echo $PATH $JSHELL_GREETING > env.txt")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "env.txt"))
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin:/bin howdy \n", string(got))
}

func TestJSONLogFormat(t *testing.T) {
	dir, err := runCLI(t, "--log-format", "json", "-c", "echo json > out.txt")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "json \n", string(got))
}

func TestQuitEndsBatch(t *testing.T) {
	dir, err := runCLI(t, "-c", "quit")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))
}
