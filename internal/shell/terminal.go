// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import "github.com/peterh/liner"

var _ LineReader = (*liner.State)(nil)

// NewTerminal returns a line editor for interactive use. Ctrl-C aborts the
// line being edited. The caller must Close it to restore the terminal.
func NewTerminal() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return line
}
