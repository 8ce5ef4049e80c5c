// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jleaf

import (
	"fmt"
	"strings"
)

// Kind is the lexical classification of a single byte of input.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid kind
	LBrace                  // left brace "{"
	RBrace                  // right brace "}"
	LSquare                 // left square bracket "["
	RSquare                 // right square bracket "]"
	DoubleQuote             // double quotation mark `"`
	Comma                   // comma ","
	Colon                   // colon ":"
	Space                   // whitespace: space, tab, newline, carriage return
	Other                   // any other byte
	End                     // end of input
)

var kindStr = [...]string{
	Invalid:     "invalid token",
	LBrace:      `"{"`,
	RBrace:      `"}"`,
	LSquare:     `"["`,
	RSquare:     `"]"`,
	DoubleQuote: `'"'`,
	Comma:       `","`,
	Colon:       `":"`,
	Space:       "whitespace",
	Other:       "text",
	End:         "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single byte of input together with its classification.
// Every byte of the input maps to exactly one token. A token of kind End
// marks the position past the last byte; its Ch is zero.
type Token struct {
	Kind Kind
	Ch   byte
}

func (t Token) String() string {
	switch t.Kind {
	case Space, Other:
		return fmt.Sprintf("%q", t.Ch)
	default:
		return t.Kind.String()
	}
}

var structural = [...]Kind{LBrace, RBrace, LSquare, RSquare, DoubleQuote, Comma, Colon}

// kindOf classifies a single input byte.
func kindOf(ch byte) Kind {
	if i := strings.IndexByte(`{}[]",:`, ch); i >= 0 {
		return structural[i]
	} else if isSpace(ch) {
		return Space
	}
	return Other
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
