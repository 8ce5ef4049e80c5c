// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"

	"github.com/creachadair/jleaf"
)

// A Builder is a jleaf.Handler that assembles a syntax tree from the
// events of a single call to Stream.Parse. After a successful parse,
// call Root to recover the finished tree.
//
// The trees a Builder assembles are equivalent to those returned by
// Parse for the same input. Use a Builder when the events come from a
// stream you are already consuming for other reasons; otherwise Parse
// is simpler and does not pay for event dispatch.
//
// Use NewBuilder to construct a Builder. A Builder is good for one
// parse; make a new one for each input.
type Builder struct {
	stk  []frame // open containers, innermost last
	root Element // the finished tree, set when the root is popped
	ic   jleaf.Interner
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder { return &Builder{ic: make(jleaf.Interner)} }

// A frame is an open container whose closing bracket has not been seen.
// Exactly one of obj and arr is non-nil.
type frame struct {
	pos int // offset of the opening bracket
	obj *Object
	arr *Array

	key     string // pending member name (objects only)
	haveKey bool
}

// attach adds a completed value to the innermost open container, or
// records it as the root if no container is open. For an object the
// value is paired with the pending member name.
func (b *Builder) attach(v Element) {
	if len(b.stk) == 0 {
		b.root = v
		return
	}
	top := &b.stk[len(b.stk)-1]
	if top.obj != nil {
		if !top.haveKey {
			panic("builder: value without a member name")
		}
		top.obj.set(Member{Key: top.key, Value: v})
		top.haveKey = false
		return
	}
	top.arr.vals = append(top.arr.vals, v)
}

// BeginObject implements part of the jleaf.Handler interface.
func (b *Builder) BeginObject(loc jleaf.Anchor) error {
	b.stk = append(b.stk, frame{pos: loc.Span().Pos, obj: new(Object)})
	return nil
}

// EndObject implements part of the jleaf.Handler interface.
func (b *Builder) EndObject(loc jleaf.Anchor) error {
	top := b.stk[len(b.stk)-1]
	b.stk = b.stk[:len(b.stk)-1]
	top.obj.span = jleaf.Span{Pos: top.pos, End: loc.Span().End}
	b.attach(top.obj)
	return nil
}

// BeginArray implements part of the jleaf.Handler interface.
func (b *Builder) BeginArray(loc jleaf.Anchor) error {
	b.stk = append(b.stk, frame{pos: loc.Span().Pos, arr: new(Array)})
	return nil
}

// EndArray implements part of the jleaf.Handler interface.
func (b *Builder) EndArray(loc jleaf.Anchor) error {
	top := b.stk[len(b.stk)-1]
	b.stk = b.stk[:len(b.stk)-1]
	top.arr.span = jleaf.Span{Pos: top.pos, End: loc.Span().End}
	b.attach(top.arr)
	return nil
}

// BeginMember implements part of the jleaf.Handler interface.
func (b *Builder) BeginMember(loc jleaf.Anchor) error {
	key, err := jleaf.Unquote(loc.Text())
	if err != nil {
		return err
	}
	top := &b.stk[len(b.stk)-1]
	top.key = b.ic.Intern(key)
	top.haveKey = true
	return nil
}

// EndMember implements part of the jleaf.Handler interface.
// The member value was already attached when it completed.
func (b *Builder) EndMember(jleaf.Anchor) error { return nil }

// Value implements part of the jleaf.Handler interface.
func (b *Builder) Value(loc jleaf.Anchor) error {
	text, err := jleaf.Unquote(loc.Text())
	if err != nil {
		return err
	}
	b.attach(&Leaf{span: loc.Span(), text: text})
	return nil
}

// EndOfInput implements part of the jleaf.Handler interface.
func (b *Builder) EndOfInput(jleaf.Anchor) {}

// Root returns the tree assembled by the builder. It reports an error
// if no complete value has been built.
func (b *Builder) Root() (Element, error) {
	if b.root == nil || len(b.stk) != 0 {
		return nil, errors.New("incomplete value")
	}
	return b.root, nil
}
