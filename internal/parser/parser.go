// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

// Operators recognised by Parse.
const (
	OpInput      = "<"
	OpOutput     = ">"
	OpAppend     = ">>"
	OpPipe       = "|"
	OpBackground = "&"
)

// IsOperator reports whether tok is one of the five operators.
func IsOperator(tok string) bool {
	switch tok {
	case OpInput, OpOutput, OpAppend, OpPipe, OpBackground:
		return true
	}

	return false
}

// ParseLine tokenizes and parses line.
func ParseLine(line string) ([]Stage, error) {
	return Parse(Tokenize(line))
}

// Parse builds the pipeline described by tokens.
// No tokens means no stages and no error.
func Parse(tokens []string) ([]Stage, error) {
	n := len(tokens)
	if n == 0 {
		return nil, nil
	}

	var (
		stages    []Stage
		argStart  int  // index where the current stage's arguments begin
		foundArgs bool // whether the current stage's argv end is fixed
	)

	cur := Stage{}

	for i := 0; i < n; i++ {
		op := tokens[i]
		if !IsOperator(op) {
			continue
		}

		if i-1 < argStart {
			return nil, &SyntaxError{Op: op, Index: i, Reason: reasonNoArgument}
		}

		if op != OpBackground && i+1 >= n {
			return nil, &SyntaxError{Op: op, Index: i, Reason: reasonNoOperand}
		}

		if !foundArgs {
			cur.Argv = tokens[argStart:i:i]
			foundArgs = true
		}

		switch op {
		case OpInput:
			i++
			cur.InputFile = tokens[i]

		case OpOutput, OpAppend:
			i++
			cur.OutputFile = tokens[i]
			cur.AppendOutput = op == OpAppend

		case OpPipe, OpBackground:
			if op == OpPipe {
				cur.IsPiped = true
			} else {
				cur.IsDaemon = true
			}

			// A trailing & ends the line without opening a new stage.
			if op == OpPipe || i+1 < n {
				stages = append(stages, cur)
				cur = Stage{}
				argStart = i + 1
				foundArgs = false
			}
		}
	}

	if !foundArgs {
		cur.Argv = tokens[argStart:n:n]
	}

	return append(stages, cur), nil
}
