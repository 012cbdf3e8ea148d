// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtin provides the commands jshell implements itself and the
// registry the executor looks them up in.
//
// A builtin runs either inside the controller or, when its stage needs a
// process of its own, inside a re-executed copy of the shell binary. See
// IsChild and RunChild for the latter.
package builtin
