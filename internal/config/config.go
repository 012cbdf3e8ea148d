// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the shell's optional YAML configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
	"github.com/spf13/afero"
)

// FileName is the name of the configuration file in the user's home directory.
const FileName = ".jshell.yaml"

var (
	// ErrInvalidYaml is returned when the file is not valid configuration.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrReadConfig is returned when the file exists but cannot be read.
	ErrReadConfig = errors.New("cannot read configuration")
	// ErrInvalidLogLevel is returned when log_level is not a known level.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// FsFactory returns the filesystem configuration is read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Config is the shell's configuration.
type Config struct {
	Path     []string          `yaml:"path"`
	Prompt   string            `yaml:"prompt"`
	Env      map[string]string `yaml:"env"`
	LogLevel string            `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Path:   []string{"/bin"},
		Prompt: "jshell> ",
	}
}

// DefaultPath returns the configuration file in the user's home directory,
// or "" if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, FileName)
}

// Load reads the configuration at path. A missing file yields the defaults
// unless required is set.
func Load(ctx context.Context, path string, required bool) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := afero.ReadFile(FsFactory(), path)

	switch {
	case errors.Is(err, os.ErrNotExist) && !required:
		ctxlog.Debug(ctx, "no configuration file", "path", path)
		return Default(), nil
	case err != nil:
		return Config{}, errors.Join(ErrReadConfig, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	ctxlog.Debug(ctx, "configuration loaded", "path", path)

	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	if cfg.LogLevel != "" {
		if _, err := ctxlog.ParseLevel(cfg.LogLevel); err != nil {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
		}
	}

	return cfg, nil
}

// SearchPath returns the configured directories as a PATH value.
func (c Config) SearchPath() string {
	return strings.Join(c.Path, string(os.PathListSeparator))
}

// Apply exports the configured environment, then PATH.
func (c Config) Apply() error {
	for _, k := range slices.Sorted(maps.Keys(c.Env)) {
		if err := os.Setenv(k, c.Env[k]); err != nil {
			return err
		}
	}

	return os.Setenv("PATH", c.SearchPath())
}
