// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"strings"
)

// Stage is one program invocation within a pipeline.
type Stage struct {
	// Argv holds the program name followed by its arguments. It aliases the
	// token slice given to Parse.
	Argv []string
	// InputFile replaces stdin when set. Builtins ignore it.
	InputFile string
	// OutputFile replaces stdout when set.
	OutputFile string
	// AppendOutput opens OutputFile for appending instead of truncating it.
	AppendOutput bool
	// IsPiped sends stdout into the stdin of the next stage.
	IsPiped bool
	// IsDaemon runs the stage without the controller waiting for it.
	IsDaemon bool
}

// Name returns the program name.
func (s *Stage) Name() string {
	if len(s.Argv) == 0 {
		return ""
	}

	return s.Argv[0]
}

// String renders the stage back into shell syntax, mostly for logs.
func (s *Stage) String() string {
	sb := strings.Builder{}
	sb.WriteString(strings.Join(s.Argv, " "))

	if s.InputFile != "" {
		sb.WriteString(" " + OpInput + " " + s.InputFile)
	}

	if s.OutputFile != "" {
		op := OpOutput
		if s.AppendOutput {
			op = OpAppend
		}

		sb.WriteString(" " + op + " " + s.OutputFile)
	}

	switch {
	case s.IsPiped:
		sb.WriteString(" " + OpPipe)
	case s.IsDaemon:
		sb.WriteString(" " + OpBackground)
	}

	return sb.String()
}
