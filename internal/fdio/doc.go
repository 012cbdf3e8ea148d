// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fdio owns the descriptors a pipeline stage needs while it is set up.
//
// The controller never remaps its own fd 0 and 1. Each stage works on a copy
// of the controller's Stdio and replaces entries with pipe ends or redirect
// targets. Everything the stage opens is registered with a Scope, and the
// read end of a pipe that outlives its stage travels in a Slot. Closing the
// Scope and the Slot releases every descriptor on every exit path.
package fdio
