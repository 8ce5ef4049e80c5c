// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jleaf"
)

// Parse parses text as a value of the dialect and returns the resulting
// tree. The root of a valid input is always an object. In case of error,
// Parse returns a *jleaf.SyntaxError locating the first offending byte;
// no partial tree is returned.
//
// Whitespace before the root object is ignored. Parse does not examine
// the input beyond the closing brace of the root.
func Parse(text string) (*Object, error) {
	p := &parser{sc: jleaf.NewScanner(text), ic: make(jleaf.Interner)}
	p.sc.SkipSpace()
	return p.parseObject()
}

// A parser is a recursive-descent reader of the token stream produced by
// a jleaf.Scanner. One value method per grammar production; each method
// consumes the tokens of its production and leaves the scanner at the
// first token after it.
type parser struct {
	sc *jleaf.Scanner
	ic jleaf.Interner // dedupe member names, a big win for arrays of objects
}

// parseObject parses an object, including its enclosing braces.
// Duplicate member names keep the position of the first occurrence with
// the value of the last.
func (p *parser) parseObject() (*Object, error) {
	start := p.sc.Offset()
	if err := p.sc.Expect('{'); err != nil {
		return nil, err
	}
	obj := new(Object)
	p.sc.SkipSpace()
	if p.sc.Peek().Kind == jleaf.RBrace {
		p.sc.Advance()
		obj.span = jleaf.Span{Pos: start, End: p.sc.Offset()}
		return obj, nil
	}
	for {
		key, _, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.sc.SkipSpace()
		if err := p.sc.Expect(':'); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.set(Member{Key: p.ic.Intern(key), Value: val})

		p.sc.SkipSpace()
		if p.sc.Peek().Kind == jleaf.RBrace {
			p.sc.Advance()
			obj.span = jleaf.Span{Pos: start, End: p.sc.Offset()}
			return obj, nil
		}
		if err := p.sc.Expect(','); err != nil {
			return nil, err
		}
		p.sc.SkipSpace()
	}
}

// parseArray parses an array, including its enclosing brackets.
func (p *parser) parseArray() (*Array, error) {
	start := p.sc.Offset()
	if err := p.sc.Expect('['); err != nil {
		return nil, err
	}
	arr := new(Array)
	p.sc.SkipSpace()
	if p.sc.Peek().Kind == jleaf.RSquare {
		p.sc.Advance()
		arr.span = jleaf.Span{Pos: start, End: p.sc.Offset()}
		return arr, nil
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.vals = append(arr.vals, val)

		p.sc.SkipSpace()
		if p.sc.Peek().Kind == jleaf.RSquare {
			p.sc.Advance()
			arr.span = jleaf.Span{Pos: start, End: p.sc.Offset()}
			return arr, nil
		}
		if err := p.sc.Expect(','); err != nil {
			return nil, err
		}
		p.sc.SkipSpace()
	}
}

// parseValue parses a value of any shape, dispatching on the next token.
func (p *parser) parseValue() (Element, error) {
	p.sc.SkipSpace()
	switch tok := p.sc.Peek(); tok.Kind {
	case jleaf.LBrace:
		return p.parseObject()
	case jleaf.LSquare:
		return p.parseArray()
	case jleaf.DoubleQuote:
		text, sp, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return &Leaf{span: sp, text: text}, nil
	case jleaf.End:
		return nil, &jleaf.SyntaxError{
			Offset:  p.sc.Offset(),
			Message: "expected a value, got end of input",
			Err:     jleaf.ErrUnexpectedEOF,
		}
	default:
		return nil, &jleaf.SyntaxError{
			Offset:  p.sc.Offset(),
			Message: fmt.Sprintf("expected a value, got %v", tok),
			Err:     jleaf.ErrUnexpectedChar,
		}
	}
}

// parseString parses a quoted string and returns its text without the
// quotation marks. The returned span includes the quotation marks.
func (p *parser) parseString() (string, jleaf.Span, error) {
	p.sc.SkipSpace()
	start := p.sc.Offset()
	if err := p.sc.Expect('"'); err != nil {
		return "", jleaf.Span{}, err
	}
	for {
		switch tok := p.sc.Peek(); tok.Kind {
		case jleaf.DoubleQuote:
			p.sc.Advance()
			sp := jleaf.Span{Pos: start, End: p.sc.Offset()}
			return p.sc.Text(jleaf.Span{Pos: start + 1, End: sp.End - 1}), sp, nil
		case jleaf.End:
			return "", jleaf.Span{}, &jleaf.SyntaxError{
				Offset:  p.sc.Offset(),
				Message: "unterminated string",
				Err:     jleaf.ErrUnexpectedEOF,
			}
		default:
			p.sc.Advance()
		}
	}
}
