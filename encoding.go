// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jleaf

import (
	"errors"
	"strings"

	"github.com/creachadair/jleaf/internal/quote"

	"go4.org/mem"
)

// Quote encodes src as a string value by adding double quotation marks.
// The dialect has no escape sequences, so text containing a double
// quotation mark has no encoding; Quote reports an error for such input.
func Quote(src string) (string, error) {
	enc, err := quote.Quote(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(enc), nil
}

// Unquote decodes a string value. The double quotation marks are removed
// and the contents are returned verbatim, the dialect having no escape
// sequences to replace. Unquote reports an error if src is not quoted or
// its interior contains a quotation mark.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := quote.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
