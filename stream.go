// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jleaf

import (
	"fmt"
	"strings"
)

// An Anchor describes a location in the input text. The methods of an
// Anchor report the token kind, content, and span of the anchor.
type Anchor interface {
	Kind() Kind   // Returns the token kind of the anchor
	Text() string // Returns the raw (undecoded) input text of the anchor
	Span() Span   // Returns the span of the anchor in the input
}

// A Handler handles events from parsing an input stream. If a method
// reports an error, parsing stops and that error is returned to the
// caller. The parser ensures objects and arrays are correctly balanced.
//
// The Anchor argument to a Handler method is only valid for the duration
// of that method call. The text it reports may be retained; input strings
// are immutable.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Begin a new object member, whose name is at loc. The text of the
	// name is still quoted; the handler is responsible for removing the
	// quotes if the plain string is required (see Unquote).
	BeginMember(loc Anchor) error

	// End the current object member, giving the location and kind of the
	// token that terminated the member (either Comma or RBrace).
	EndMember(loc Anchor) error

	// Report a string value at the given location. The text of the value
	// is still quoted (see Unquote).
	Value(loc Anchor) error

	// EndOfInput reports that the root object is complete. Input after the
	// root object's closing brace is not examined.
	EndOfInput(loc Anchor)
}

// A Stream is a parser that consumes input and delivers events to a
// Handler corresponding with the structure of the input.
//
// Stream parses in a single pass over the token sequence, keeping an
// explicit stack of unfinished containers in place of recursion. This
// admits one error state the grammar otherwise rules out: a value or
// separator arriving inside an object where a member name is required,
// reported as a *SyntaxError wrapping ErrMissingName.
type Stream struct {
	sc  *Scanner
	arc anchor
}

// NewStream constructs a new Stream that consumes the given input text.
func NewStream(text string) *Stream { return &Stream{sc: NewScanner(text)} }

// NewStreamWithScanner constructs a new Stream that consumes input from s.
func NewStreamWithScanner(s *Scanner) *Stream { return &Stream{sc: s} }

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// Parse parses the input and delivers events to h until the root object is
// complete or an error occurs. In case of a syntax error, the returned
// error has type [*SyntaxError]. Whitespace before the root object and
// input after its closing brace are ignored.
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	s.sc.SkipSpace()
	switch tok := s.sc.Peek(); tok.Kind {
	case LBrace:
		s.checkError(h.BeginObject(s.tokenAnchor()))
	case End:
		s.syntaxError(ErrUnexpectedEOF, "%s", kindLabel([]Kind{LBrace}, tok))
	default:
		s.syntaxError(ErrUnexpectedChar, "%s", kindLabel([]Kind{LBrace}, tok))
	}

	stk := []frame{{object: true, phase: atOpen}}
	for len(stk) != 0 {
		top := &stk[len(stk)-1]
		s.sc.SkipSpace()

		if top.object {
			switch top.phase {
			case atOpen, atName:
				s.parseMemberName(h, &stk)
			case atColon:
				s.check(s.sc.Expect(':'))
				top.phase = atValue
			case atValue:
				// Move to the separator phase before parsing, so that when a
				// pushed container is later popped this frame resumes there.
				top.phase = atNext
				s.parseValue(h, &stk)
			case atNext:
				s.parseMemberEnd(h, &stk)
			}
		} else {
			switch top.phase {
			case atOpen:
				if s.sc.Peek().Kind == RSquare {
					s.checkError(h.EndArray(s.tokenAnchor()))
					stk = stk[:len(stk)-1]
					continue
				}
				top.phase = atNext
				s.parseValue(h, &stk)
			case atValue:
				top.phase = atNext
				s.parseValue(h, &stk)
			case atNext:
				s.parseElementEnd(h, &stk)
			}
		}
	}

	h.EndOfInput(s.anchorAt(End, Span{Pos: s.sc.Offset(), End: s.sc.Offset()}))
	return nil
}

// A frame records one unfinished container on the parse stack.
type frame struct {
	object bool
	phase  phase
}

// phase tracks progress through a container's grammar production.
type phase byte

const (
	atOpen  phase = iota // after the opening bracket
	atName               // object: a member name is required (after ",")
	atColon              // object: ":" is required after a member name
	atValue              // a value is required
	atNext               // "," or the closing bracket is required
)

// parseMemberName consumes the next member name of the topmost object, or
// closes the object if it is empty.
func (s *Stream) parseMemberName(h Handler, stk *[]frame) {
	top := &(*stk)[len(*stk)-1]
	switch tok := s.sc.Peek(); tok.Kind {
	case DoubleQuote:
		s.checkError(h.BeginMember(s.anchorAt(DoubleQuote, s.scanString())))
		top.phase = atColon
	case RBrace:
		if top.phase == atName {
			// A "," was consumed, so a member name is mandatory.
			s.syntaxError(ErrUnexpectedChar, "expected %q, got %v", byte('"'), tok)
		}
		s.checkError(h.EndObject(s.tokenAnchor()))
		*stk = (*stk)[:len(*stk)-1]
	case LBrace, LSquare, Colon, Comma:
		s.syntaxError(ErrMissingName, "expected member name, got %v", tok)
	case End:
		s.syntaxError(ErrUnexpectedEOF, "expected %q, got end of input", byte('"'))
	default:
		s.syntaxError(ErrUnexpectedChar, "expected %q, got %v", byte('"'), tok)
	}
}

// parseValue consumes a single value of any type, pushing a new frame for
// a container or emitting a complete string leaf.
func (s *Stream) parseValue(h Handler, stk *[]frame) {
	switch tok := s.sc.Peek(); tok.Kind {
	case LBrace:
		s.checkError(h.BeginObject(s.tokenAnchor()))
		*stk = append(*stk, frame{object: true, phase: atOpen})
	case LSquare:
		s.checkError(h.BeginArray(s.tokenAnchor()))
		*stk = append(*stk, frame{object: false, phase: atOpen})
	case DoubleQuote:
		s.checkError(h.Value(s.anchorAt(DoubleQuote, s.scanString())))
	case End:
		s.syntaxError(ErrUnexpectedEOF, "expected a value, got end of input")
	default:
		s.syntaxError(ErrUnexpectedChar, "expected a value, got %v", tok)
	}
}

// parseMemberEnd consumes the terminator of a complete object member,
// either a "," before a subsequent member or the closing "}".
func (s *Stream) parseMemberEnd(h Handler, stk *[]frame) {
	switch tok := s.sc.Peek(); tok.Kind {
	case Comma:
		s.checkError(h.EndMember(s.tokenAnchor()))
		(*stk)[len(*stk)-1].phase = atName
	case RBrace:
		loc := s.tokenAnchor()
		s.checkError(h.EndMember(loc))
		s.checkError(h.EndObject(loc))
		*stk = (*stk)[:len(*stk)-1]
	case End:
		s.syntaxError(ErrUnexpectedEOF, "%s", kindLabel([]Kind{Comma, RBrace}, tok))
	default:
		s.syntaxError(ErrUnexpectedChar, "%s", kindLabel([]Kind{Comma, RBrace}, tok))
	}
}

// parseElementEnd consumes the terminator of a complete array element,
// either a "," before a subsequent element or the closing "]".
func (s *Stream) parseElementEnd(h Handler, stk *[]frame) {
	switch tok := s.sc.Peek(); tok.Kind {
	case Comma:
		s.sc.Advance()
		(*stk)[len(*stk)-1].phase = atValue
	case RSquare:
		s.checkError(h.EndArray(s.tokenAnchor()))
		*stk = (*stk)[:len(*stk)-1]
	case End:
		s.syntaxError(ErrUnexpectedEOF, "%s", kindLabel([]Kind{Comma, RSquare}, tok))
	default:
		s.syntaxError(ErrUnexpectedChar, "%s", kindLabel([]Kind{Comma, RSquare}, tok))
	}
}

// scanString consumes a complete quoted string at the current position and
// returns its span, including both quotation marks.
// Precondition: the current token has kind DoubleQuote.
func (s *Stream) scanString() Span {
	start := s.sc.Offset()
	s.sc.Advance()
	for {
		switch s.sc.Advance().Kind {
		case DoubleQuote:
			return Span{Pos: start, End: s.sc.Offset()}
		case End:
			s.syntaxError(ErrUnexpectedEOF, "unterminated string")
		}
	}
}

// tokenAnchor consumes the token at the current position and returns an
// anchor for it.
func (s *Stream) tokenAnchor() *anchor {
	pos := s.sc.Offset()
	tok := s.sc.Advance()
	return s.anchorAt(tok.Kind, Span{Pos: pos, End: s.sc.Offset()})
}

func (s *Stream) anchorAt(kind Kind, sp Span) *anchor {
	s.arc = anchor{kind: kind, text: s.sc.Text(sp), span: sp}
	return &s.arc
}

// anchor is the concrete Anchor passed to handler methods. A Stream owns
// a single anchor that is overwritten for each event.
type anchor struct {
	kind Kind
	text string
	span Span
}

func (a *anchor) Kind() Kind   { return a.kind }
func (a *anchor) Text() string { return a.text }
func (a *anchor) Span() Span   { return a.span }

func (s *Stream) syntaxError(base error, msg string, args ...any) {
	panic(&SyntaxError{
		Offset:  s.sc.Offset(),
		Message: fmt.Sprintf(msg, args...),
		Err:     base,
	})
}

// check propagates an error already carrying position information, such as
// from Scanner.Expect.
func (s *Stream) check(err error) {
	if err != nil {
		panic(err)
	}
}

func (s *Stream) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// kindLabel makes a human-readable summary string for the given token
// kinds.
func kindLabel(kinds []Kind, got any) string {
	if len(kinds) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(kinds) == 1 {
		exp = kinds[0].String()
	} else {
		last := len(kinds) - 1
		ss := make([]string, len(kinds)-1)
		for i, kind := range kinds[:last] {
			ss[i] = kind.String()
		}
		exp = strings.Join(ss, ", ") + " or " + kinds[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
