// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether a stream may carry ANSI colour and wraps
// strings in colour codes. NO_COLOR and FORCE_COLOR are honoured, then
// terminal detection through golang.org/x/term. The shell only colours
// stderr; pipeline output on stdout is left untouched.
package color
