// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jleaf implements a scanner and parsers for a restricted dialect
// of JSON whose values are objects, arrays, and double-quoted string
// leaves only.
//
// # Dialect
//
// The dialect is the subset of JSON matching the grammar
//
//	json   := '{' ws ( member (',' ws member)* )? ws '}'
//	member := ws string ws ':' ws value
//	array  := '[' ws ( value (',' ws value)* )? ws ']'
//	value  := json | array | string
//	string := '"' char* '"'
//	ws     := whitespace*
//
// There are no numbers, Booleans, or nulls, and strings have no escape
// sequences: every byte between the quotation marks is literal, so a
// string value cannot itself contain a quotation mark. Inputs are assumed
// trusted and resident in memory.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for the dialect. Every
// byte of input is classified as exactly one token. Construct a scanner
// from an input string and call Advance to step through the tokens:
//
//	s := jleaf.NewScanner(input)
//	for {
//	   tok := s.Advance()
//	   if tok.Kind == jleaf.End {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Past the last byte of input, Peek and Advance return a token of kind
// End, which matches no structural expectation.
//
// # Streaming
//
// The Stream type implements an event-driven parser for the dialect. The
// parser works by calling methods on a Handler value to report the
// structure of the input. In case of error, parsing is terminated and an
// error of concrete type *jleaf.SyntaxError is returned.
//
// Construct a Stream from an input string and call its Parse method.
// Parse returns nil if the root object was processed without error. If a
// Handler method reports an error, parsing stops and that error is
// returned.
//
//	s := jleaf.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream. The methods
// of a handler correspond to the syntax of the dialect:
//
//	Value type | Methods                   | Description
//	---------- | ------------------------- | --------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "name": value
//	value      | Value                     | string leaf
//	--         | EndOfInput                | end of the root object
//
// Each method is passed an Anchor value that can be used to retrieve
// location and kind information. See the comments on the Handler type for
// the meaning of each method's anchor value.
//
// The parser ensures that corresponding Begin and End methods are
// correctly paired, or that a SyntaxError is reported.
//
// To build a syntax tree from the input, use the ast subpackage, whose
// Parse function wraps the grammar in a recursive-descent parser and
// whose Builder type assembles trees from Stream events.
package jleaf
