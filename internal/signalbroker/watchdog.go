// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/jshell/internal/ctxlog"
)

// Watch monitors the signal channel until it is closed or ctx is done.
// It cancels the context on the second signal of a given type.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	sigMap := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, seen := sigMap[sig]; seen {
				ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, cancelling", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, no-op", "signal", sig.String())

			sigMap[sig] = struct{}{}
		}
	}
}

// Absorb discards signals until the channel is closed or ctx is done.
func Absorb(ctx context.Context, sigCh <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			ctxlog.Debug(ctx, "watchdog", "detail", "signal absorbed", "signal", sig.String())
		}
	}
}
