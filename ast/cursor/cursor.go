// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the tree of a parsed value.
package cursor

import (
	"fmt"

	"github.com/creachadair/jleaf/ast"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T ast.Element](v ast.Element, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong element type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Element.
type Cursor struct {
	org ast.Element
	stk []ast.Element
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Element) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin element of c.
func (c *Cursor) Origin() ast.Element { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current element under the cursor.
func (c *Cursor) Value() ast.Element {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of elements from the origin to the
// current location in c.
func (c *Cursor) Path() []ast.Element {
	return append([]ast.Element{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current element, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays), or functions (see below).
// If the path is valid, the element reached is returned. If the path cannot
// be completely consumed, traversal stops and an error is recorded. Use Err
// to recover the error.
//
// If a path element is a string, the corresponding element must be an object,
// and the string resolves to the value of the object member with that name.
// An error is reported if no such member exists.
//
// If a path element is an integer, the corresponding element must be an
// array, and the integer resolves to an offset in the array. Negative
// offsets count backward from the end (-1 is last, -2 second last). An error
// is reported if the offset is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next element in the sequence. The function must have a
// signature
//
//	func(ast.Element) (ast.Element, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			switch e := cur.(type) {
			case *ast.Object:
				v := e.Get(t)
				if v == nil {
					return c.setErrorf("key %q not found", t)
				}
				cur = c.push(v)
			default:
				return c.setErrorf("cannot traverse %T with %q", cur, elt)
			}

		case int:
			switch e := cur.(type) {
			case *ast.Array:
				i, ok := fixArrayBound(e.Len(), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", i, e.Len())
				}
				cur = c.push(e.At(i))
			default:
				return c.setErrorf("cannot traverse %T with %v", cur, elt)
			}

		case func(ast.Element) (ast.Element, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Element) ast.Element { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
