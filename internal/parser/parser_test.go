// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Stage
	}{
		{
			name: "single command",
			line: "ls -l /tmp",
			want: []Stage{{Argv: []string{"ls", "-l", "/tmp"}}},
		},
		{
			name: "pipe into truncating redirect",
			line: "ls | grep foo > out.txt",
			want: []Stage{
				{Argv: []string{"ls"}, IsPiped: true},
				{Argv: []string{"grep", "foo"}, OutputFile: "out.txt"},
			},
		},
		{
			name: "trailing background",
			line: "sleep 5 &",
			want: []Stage{{Argv: []string{"sleep", "5"}, IsDaemon: true}},
		},
		{
			name: "background tail of a pipe",
			line: "cmd1 | cmd2 &",
			want: []Stage{
				{Argv: []string{"cmd1"}, IsPiped: true},
				{Argv: []string{"cmd2"}, IsDaemon: true},
			},
		},
		{
			name: "background in the middle starts a new stage",
			line: "sleep 1 & echo hi",
			want: []Stage{
				{Argv: []string{"sleep", "1"}, IsDaemon: true},
				{Argv: []string{"echo", "hi"}},
			},
		},
		{
			name: "input and output on one stage",
			line: "sort < in.txt >> out.txt",
			want: []Stage{{Argv: []string{"sort"}, InputFile: "in.txt", OutputFile: "out.txt", AppendOutput: true}},
		},
		{
			name: "piped stage with input file",
			line: "cat < in.txt | wc -l",
			want: []Stage{
				{Argv: []string{"cat"}, InputFile: "in.txt", IsPiped: true},
				{Argv: []string{"wc", "-l"}},
			},
		},
		{
			name: "last output redirection wins",
			line: "echo hi > a.txt > b.txt",
			want: []Stage{{Argv: []string{"echo", "hi"}, OutputFile: "b.txt"}},
		},
		{
			name: "append then truncate ends truncating",
			line: "echo hi >> a.txt > b.txt",
			want: []Stage{{Argv: []string{"echo", "hi"}, OutputFile: "b.txt"}},
		},
		{
			name: "last input redirection wins",
			line: "cat < a < b",
			want: []Stage{{Argv: []string{"cat"}, InputFile: "b"}},
		},
		{
			name: "words after a redirect target are not arguments",
			line: "echo a > out b",
			want: []Stage{{Argv: []string{"echo", "a"}, OutputFile: "out"}},
		},
		{
			name: "three stage pipeline",
			line: "a | b | c",
			want: []Stage{
				{Argv: []string{"a"}, IsPiped: true},
				{Argv: []string{"b"}, IsPiped: true},
				{Argv: []string{"c"}},
			},
		},
		{
			name: "redirect target may look like an operator",
			line: "cat < |",
			want: []Stage{{Argv: []string{"cat"}, InputFile: "|"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\n", " \r\n "} {
		got, err := ParseLine(line)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		op     string
		index  int
		reason string
	}{
		{name: "trailing pipe", line: "cmd |", op: "|", index: 1, reason: reasonNoOperand},
		{name: "leading pipe", line: "| cmd", op: "|", index: 0, reason: reasonNoArgument},
		{name: "leading background", line: "&", op: "&", index: 0, reason: reasonNoArgument},
		{name: "redirect without target", line: "ls >", op: ">", index: 1, reason: reasonNoOperand},
		{name: "append without target", line: "ls >>", op: ">>", index: 1, reason: reasonNoOperand},
		{name: "input without source", line: "cat <", op: "<", index: 1, reason: reasonNoOperand},
		{name: "double pipe", line: "a | | b", op: "|", index: 2, reason: reasonNoArgument},
		{name: "double background", line: "a & &", op: "&", index: 2, reason: reasonNoArgument},
		{name: "pipe after background", line: "a & | b", op: "|", index: 2, reason: reasonNoArgument},
		{name: "redirect opens stage", line: "a | > out", op: ">", index: 2, reason: reasonNoArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.ErrorIs(t, err, ErrSyntax)
			assert.Nil(t, got)

			var se *SyntaxError

			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.op, se.Op)
			assert.Equal(t, tt.index, se.Index)
			assert.Equal(t, tt.reason, se.Reason)
		})
	}
}

func TestParse_ArgvAliasesTokens(t *testing.T) {
	tokens := []string{"grep", "foo", "|", "wc"}

	stages, err := Parse(tokens)
	require.NoError(t, err)
	require.Len(t, stages, 2)

	tokens[1] = "bar"
	assert.Equal(t, []string{"grep", "bar"}, stages[0].Argv, "argv is a view of the tokens")

	grown := append(stages[0].Argv, "-v")
	assert.Equal(t, "|", tokens[2], "appending to argv never clobbers the operator")
	assert.Equal(t, []string{"grep", "bar", "-v"}, grown)
}

func TestParse_StageShape(t *testing.T) {
	lines := []string{
		"a",
		"a | b | c",
		"a & b & c &",
		"a < x > y | b >> z &",
		"a | b & c | d",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			stages, err := ParseLine(line)
			require.NoError(t, err)
			require.NotEmpty(t, stages)
			assert.False(t, stages[len(stages)-1].IsPiped, "last stage is never piped")

			for _, s := range stages {
				assert.NotEmpty(t, s.Argv)
				assert.False(t, s.IsPiped && s.IsDaemon)

				for _, arg := range s.Argv {
					assert.False(t, IsOperator(arg), "operators never leak into argv")
				}
			}
		})
	}
}

func TestStage_String(t *testing.T) {
	stages, err := ParseLine("cat < in | sort >> out &")
	require.NoError(t, err)
	require.Len(t, stages, 2)

	assert.Equal(t, "cat < in |", stages[0].String())
	assert.Equal(t, "sort >> out &", stages[1].String())
	assert.Equal(t, "cat", stages[0].Name())
	assert.Empty(t, (&Stage{}).Name())
}
