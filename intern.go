// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jleaf

import "strings"

// An Interner caches canonical copies of strings, so that repeated object
// member names share storage instead of each pinning a substring of the
// input. The zero value is not ready for use; construct with make.
type Interner map[string]string

// Intern returns a canonical copy of text, reusing an existing copy if one
// was interned before.
func (n Interner) Intern(text string) string {
	s, ok := n[text]
	if !ok {
		s = strings.Clone(text)
		n[s] = s
	}
	return s
}
