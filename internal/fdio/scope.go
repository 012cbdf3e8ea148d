// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fdio

import (
	"os"

	"github.com/hashicorp/go-multierror"
)

// Scope collects the files acquired while one stage is set up and releases
// them together. The zero value is ready to use.
type Scope struct {
	owned []*os.File
}

// Own registers f for release and returns it. A nil f is ignored.
func (s *Scope) Own(f *os.File) *os.File {
	if f != nil {
		s.owned = append(s.owned, f)
	}

	return f
}

// Len returns how many files are still owned by the scope.
func (s *Scope) Len() int {
	return len(s.owned)
}

// Close releases every owned file in reverse order of acquisition.
// All files are closed even if some fail; the failures are aggregated.
func (s *Scope) Close() error {
	var result *multierror.Error

	for i := len(s.owned) - 1; i >= 0; i-- {
		if err := s.owned[i].Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	s.owned = nil

	return result.ErrorOrNil()
}
