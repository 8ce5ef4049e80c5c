// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jleaf

import (
	"errors"
	"fmt"
)

// Sentinel errors used to classify parse failures. A *SyntaxError wraps
// one of these values; match them with errors.Is.
var (
	// ErrUnexpectedChar: a byte of input does not fit the grammar at the
	// position where it occurs.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrUnexpectedEOF: the input ended while a production was incomplete.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMissingName: a value or separator occurred where an object member
	// name is required. Only the stream parser can observe this state; see
	// the comments on Stream.
	ErrMissingName = errors.New("missing member name")
)

// SyntaxError is the concrete type of errors reported by the scanner and
// parsers. Offset is the 0-based byte position of the offending input; at
// the end of input it equals the input length.
type SyntaxError struct {
	Offset  int
	Message string

	// Err is the sentinel classifying the failure, reported by Unwrap.
	Err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }
