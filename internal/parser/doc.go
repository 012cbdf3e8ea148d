// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parser turns one line of shell input into a pipeline of stages.
//
// Tokenize splits on whitespace only; there is no quoting. Parse recognises
// five operators by exact token match:
//
//	<    redirect stdin from a file
//	>    redirect stdout to a file, truncating it
//	>>   redirect stdout to a file, appending
//	|    pipe stdout into the next stage
//	&    run the stage in the background
//
// The argument list of a stage ends at its first operator. A trailing & is
// allowed; every other operator needs a token after it, and no operator may
// open a stage.
package parser
