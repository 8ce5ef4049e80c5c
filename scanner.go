// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jleaf

import "fmt"

// A Scanner classifies the bytes of an input string into lexical tokens.
// The whole input is tokenized when the scanner is constructed; each call
// to Advance steps the scanner one token forward through the sequence.
type Scanner struct {
	src  string
	toks []Token
	pos  int
}

// NewScanner constructs a scanner for the complete input text.
func NewScanner(text string) *Scanner {
	toks := make([]Token, len(text))
	for i := 0; i < len(text); i++ {
		toks[i] = Token{Kind: kindOf(text[i]), Ch: text[i]}
	}
	return &Scanner{src: text, toks: toks}
}

// endToken is reported by Peek and Advance once the input is exhausted.
// It never matches any structural expectation.
var endToken = Token{Kind: End}

// Peek returns the token at the current position without consuming it.
// Past the last byte of input, Peek returns a token of kind End.
func (s *Scanner) Peek() Token {
	if s.pos >= len(s.toks) {
		return endToken
	}
	return s.toks[s.pos]
}

// Advance returns the token at the current position and consumes it.
// Past the last byte of input, Advance returns a token of kind End and
// does not move the position.
func (s *Scanner) Advance() Token {
	tok := s.Peek()
	if tok.Kind != End {
		s.pos++
	}
	return tok
}

// Offset reports the current position as a 0-based byte offset into the
// input. At the end of input, Offset equals the input length.
func (s *Scanner) Offset() int { return s.pos }

// SkipSpace consumes any whitespace tokens at the current position.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.toks) && s.toks[s.pos].Kind == Space {
		s.pos++
	}
}

// Expect consumes one token and verifies that its byte is ch. If it is
// not, Expect reports a *SyntaxError carrying the offset of the offending
// token and wrapping ErrUnexpectedChar, or ErrUnexpectedEOF at the end of
// input.
func (s *Scanner) Expect(ch byte) error {
	pos := s.pos
	tok := s.Advance()
	if tok.Kind == End {
		return &SyntaxError{
			Offset:  pos,
			Message: fmt.Sprintf("expected %q, got end of input", ch),
			Err:     ErrUnexpectedEOF,
		}
	} else if tok.Ch != ch {
		return &SyntaxError{
			Offset:  pos,
			Message: fmt.Sprintf("expected %q, got %q", ch, tok.Ch),
			Err:     ErrUnexpectedChar,
		}
	}
	return nil
}

// Text returns the input text within the given span.
func (s *Scanner) Text(sp Span) string { return s.src[sp.Pos:sp.End] }

// Len reports the length of the input in bytes.
func (s *Scanner) Len() int { return len(s.src) }
