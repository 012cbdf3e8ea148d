// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LogLevelEnvVar selects the initial log level: DEBUG, INFO, WARN or ERROR.
const LogLevelEnvVar = "JSHELL_LOG_LEVEL"

var (
	// ErrUnknownLevel is returned by ParseLevel for an unrecognised level name.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat is returned by ForFormat for an unrecognised format name.
	ErrUnknownFormat = errors.New("unknown log format")
)

// Log formats accepted by ForFormat.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

type loggerKey struct{}

// LevelVar is shared by the package loggers so the level can change at runtime.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is a pretty logger on stderr, used if no logger is provided.
// Standard output is reserved for the commands the shell runs.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes machine readable records to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// New returns a context carrying logger, or DefaultLogger if logger is nil.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// ParseLevel converts a level name (case insensitive) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}

	return slog.LevelWarn, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// ForFormat returns the package logger for the named format. An empty name
// selects DefaultLogger.
func ForFormat(name string) (*slog.Logger, error) {
	switch strings.ToLower(name) {
	case "", FormatPretty:
		return DefaultLogger, nil
	case FormatJSON:
		return JSONLogger, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// SetLevel parses name and applies it to LevelVar. An empty name is a no-op.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}

	level, err := ParseLevel(name)
	if err != nil {
		return err
	}

	LevelVar.Set(level)

	return nil
}

// logLevelFromEnv defaults to WARN so that an interactive session stays quiet.
func logLevelFromEnv() slog.Level {
	level, err := ParseLevel(os.Getenv(LogLevelEnvVar))
	if err != nil {
		return slog.LevelWarn
	}

	return level
}
