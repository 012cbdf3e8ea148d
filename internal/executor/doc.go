// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package executor realises a parsed pipeline as processes.
//
// Stages are handled in order. Each one is resolved, given its descriptors
// (pipe ends, redirect targets), then either run in the controller as a
// builtin or started as a process. Piped stages run concurrently and are
// collected once the stage that ends their chain has been handled. A
// foreground chain is waited for; a background chain is handed to a Reaper
// which collects it without blocking at later stage boundaries.
package executor
