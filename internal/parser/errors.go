// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every parse failure matches with errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports a misplaced operator.
type SyntaxError struct {
	Op     string // the offending operator
	Index  int    // token index of the operator
	Reason string
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %q at token %d: %s", ErrSyntax, e.Op, e.Index, e.Reason)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

const (
	reasonNoArgument = "no command before operator"
	reasonNoOperand  = "missing operand after operator"
)
