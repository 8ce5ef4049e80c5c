// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package quote handles wrapping and unwrapping of string values in a
// dialect without escape sequences.
package quote

import (
	"fmt"

	"go4.org/mem"
)

// Check reports an error if src contains a byte that cannot occur inside
// a quoted string. With no escape sequences, a double quotation mark is
// the only unrepresentable byte.
func Check(src mem.RO) error {
	if i := mem.IndexByte(src, '"'); i >= 0 {
		return fmt.Errorf("unencodable %q at offset %d", '"', i)
	}
	return nil
}

// Quote encodes src by adding enclosing double quotation marks. It reports
// an error if src cannot occur inside a quoted string (see Check).
func Quote(src mem.RO) ([]byte, error) {
	if err := Check(src); err != nil {
		return nil, err
	}
	enc := make([]byte, 0, src.Len()+2)
	enc = append(enc, '"')
	enc = mem.Append(enc, src)
	enc = append(enc, '"')
	return enc, nil
}

// Unquote decodes a byte string containing the encoding of a string value.
// The input must have the enclosing double quotation marks already
// removed; the contents are returned verbatim after validation (see
// Check).
func Unquote(src mem.RO) ([]byte, error) {
	if err := Check(src); err != nil {
		return nil, err
	}
	dec := make([]byte, 0, src.Len())
	return mem.Append(dec, src), nil
}
