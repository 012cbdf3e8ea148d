// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import "strings"

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

// Tokenize splits line into whitespace separated tokens.
// A blank line yields an empty slice.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}
