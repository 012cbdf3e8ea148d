// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker keeps the shell alive when the terminal sends it
// SIGINT or SIGQUIT. Foreground children share the terminal's process group
// and still receive the signal with its default action.
//
// Watch cancels a context on the second signal of a given type, which batch
// mode uses to stop a script. Absorb only logs, which suits the prompt.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
)

var shellSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGQUIT,
}

// New creates a signal channel subscribed to sigs, or to SIGINT and SIGQUIT
// if none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = shellSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unsubscribes ch. Signals are no longer delivered to it.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
