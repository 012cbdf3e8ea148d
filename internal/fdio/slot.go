// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fdio

import "os"

// Slot holds at most one owned file. The zero value is an empty slot.
type Slot struct {
	f *os.File
}

// Set stores f in the slot, closing any file it held before.
func (s *Slot) Set(f *os.File) error {
	err := s.Close()
	s.f = f

	return err
}

// Take moves the file out of the slot. The caller becomes its owner.
func (s *Slot) Take() *os.File {
	f := s.f
	s.f = nil

	return f
}

// Valid reports whether the slot holds a file.
func (s *Slot) Valid() bool {
	return s.f != nil
}

// Close closes the held file, if any, and empties the slot.
// Closing an empty slot is a no-op.
func (s *Slot) Close() error {
	if s.f == nil {
		return nil
	}

	f := s.f
	s.f = nil

	return f.Close()
}
