// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The default handler pretty prints records to stderr. The level comes from
// the JSHELL_LOG_LEVEL environment variable (DEBUG, INFO, WARN, ERROR) and
// defaults to WARN; it can be changed later through SetLevel.
package ctxlog
