// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines syntax trees for values of a restricted JSON
// dialect, and parsers that construct syntax trees from source text.
//
// A tree is immutable once constructed. Its nodes implement the Element
// interface, a closed set of three shapes: *Object, *Array, and *Leaf.
package ast

import (
	"fmt"
	"strings"

	"github.com/creachadair/jleaf"
)

// An Element is a node of a parsed tree. Element is a closed interface:
// the only concrete types are *Object, *Array, and *Leaf. Code consuming
// elements can therefore switch exhaustively over those three types.
//
// The navigation methods are total over all three shapes. A lookup that
// does not apply to the receiver's shape reports absence, never an error:
// Get on an array or leaf and At on an object or leaf return nil, and
// Value on an object or array returns ("", false).
type Element interface {
	// Span reports the original source location of the element. Elements
	// constructed directly rather than by parsing have a zero span.
	Span() jleaf.Span

	// Get returns the value of the object member named key, or nil if the
	// receiver is not an object or has no such member.
	Get(key string) Element

	// At returns the array element at offset i, or nil if the receiver is
	// not an array or i is out of range.
	At(i int) Element

	// Value returns the text of a string leaf. For objects and arrays it
	// returns "" with ok false; use JSON for a textual rendering.
	Value() (text string, ok bool)

	// JSON renders the element in the canonical text form of the dialect.
	JSON() string

	// String returns a short descriptive form of the element for use in
	// diagnostics.
	String() string

	element()
}

// A Member is a single name-value pair belonging to an object.
type Member struct {
	Key   string
	Value Element
}

// JSON renders the member as a quoted key and value separated by a colon.
func (m Member) JSON() string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(m.Key)
	sb.WriteString(`":`)
	sb.WriteString(m.Value.JSON())
	return sb.String()
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string or an Element; Field panics otherwise.
func Field(key string, value any) Member {
	return Member{Key: key, Value: ToValue(value)}
}

// An Object is a collection of name-value members. Member names are
// unique within one object and keep their insertion order.
type Object struct {
	span    jleaf.Span
	members []Member
}

// NewObject constructs an object from the given members. If two members
// share a key, the later value replaces the earlier one in place, keeping
// the position of the first occurrence.
func NewObject(members ...Member) *Object {
	o := new(Object)
	for _, m := range members {
		o.set(m)
	}
	return o
}

// set inserts m, replacing the value of an existing member with the same
// key rather than adding a second member for it.
func (o *Object) set(m Member) {
	for i, old := range o.members {
		if old.Key == m.Key {
			o.members[i].Value = m.Value
			return
		}
	}
	o.members = append(o.members, m)
}

// find returns the member of o with the given key, or nil.
func (o *Object) find(key string) *Member {
	for i, m := range o.members {
		if m.Key == key {
			return &o.members[i]
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.members) }

// Keys returns the member names of o in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members of o in insertion order.
func (o *Object) Members() []Member {
	return append([]Member(nil), o.members...)
}

// Span satisfies the Element interface.
func (o *Object) Span() jleaf.Span { return o.span }

// Get returns the value of the member named key, or nil if o has no such
// member.
func (o *Object) Get(key string) Element {
	if m := o.find(key); m != nil {
		return m.Value
	}
	return nil
}

// At reports absence; an object has no positional elements.
func (o *Object) At(int) Element { return nil }

// Value reports absence; an object is not a string leaf.
func (o *Object) Value() (string, bool) { return "", false }

// JSON renders o in the canonical form {"k1":v1, "k2":v2} with members in
// insertion order, or {} if o is empty.
func (o *Object) JSON() string {
	if len(o.members) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o.members[0].JSON())
	for _, m := range o.members[1:] {
		sb.WriteString(", ")
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.members)) }

func (*Object) element() {}

// An Array is an ordered sequence of values.
type Array struct {
	span jleaf.Span
	vals []Element
}

// NewArray constructs an array of the given elements.
func NewArray(elems ...Element) *Array {
	return &Array{vals: elems}
}

// ArrayOf constructs an array of string leaves with the given texts.
func ArrayOf(ss ...string) *Array {
	vals := make([]Element, len(ss))
	for i, s := range ss {
		vals[i] = NewLeaf(s)
	}
	return &Array{vals: vals}
}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.vals) }

// Values returns a copy of the elements of a in order.
func (a *Array) Values() []Element {
	return append([]Element(nil), a.vals...)
}

// Span satisfies the Element interface.
func (a *Array) Span() jleaf.Span { return a.span }

// Get reports absence; array elements are addressed by position, not name.
func (a *Array) Get(string) Element { return nil }

// At returns the element at offset i, or nil if i is out of range.
func (a *Array) At(i int) Element {
	if i < 0 || i >= len(a.vals) {
		return nil
	}
	return a.vals[i]
}

// Value reports absence; an array is not a string leaf.
func (a *Array) Value() (string, bool) { return "", false }

// JSON renders a in the canonical form [v1, v2], or [] if a is empty.
func (a *Array) JSON() string {
	if len(a.vals) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a.vals[0].JSON())
	for _, v := range a.vals[1:] {
		sb.WriteString(", ")
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.vals)) }

func (*Array) element() {}

// A Leaf is a single string value with no children.
type Leaf struct {
	span jleaf.Span
	text string
}

// NewLeaf constructs a leaf with the given text. The text is kept
// verbatim: a text containing a double quotation mark renders as written
// by JSON, producing output the dialect cannot parse back. Use
// jleaf.Quote to check a string for encodability first. Leaves produced
// by parsing cannot contain a quotation mark.
func NewLeaf(text string) *Leaf { return &Leaf{text: text} }

// Text returns the text of the leaf.
func (v *Leaf) Text() string { return v.text }

// Len reports the length in bytes of the text of the leaf.
func (v *Leaf) Len() int { return len(v.text) }

// Span satisfies the Element interface.
func (v *Leaf) Span() jleaf.Span { return v.span }

// Get reports absence; navigating into a leaf finds nothing.
func (v *Leaf) Get(string) Element { return nil }

// At reports absence; navigating into a leaf finds nothing.
func (v *Leaf) At(int) Element { return nil }

// Value returns the text of the leaf.
func (v *Leaf) Value() (string, bool) { return v.text, true }

// JSON renders the leaf as its text enclosed in double quotation marks.
func (v *Leaf) JSON() string { return `"` + v.text + `"` }

func (v *Leaf) String() string { return fmt.Sprintf("Leaf(%q)", v.text) }

func (*Leaf) element() {}

// ToValue converts a string or Element into an Element. Strings become
// string leaves. It panics if v does not have one of those types.
func ToValue(v any) Element {
	switch t := v.(type) {
	case Element:
		return t
	case string:
		return NewLeaf(t)
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// Equal reports whether a and b are structurally equal: the same shape
// with the same member names and values, ignoring source spans. Members
// of objects are matched by name without regard to order; array elements
// compare in order.
func Equal(a, b Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch t := a.(type) {
	case *Object:
		o, ok := b.(*Object)
		if !ok || len(o.members) != len(t.members) {
			return false
		}
		for _, m := range t.members {
			bm := o.find(m.Key)
			if bm == nil || !Equal(m.Value, bm.Value) {
				return false
			}
		}
		return true
	case *Array:
		arr, ok := b.(*Array)
		if !ok || len(arr.vals) != len(t.vals) {
			return false
		}
		for i, v := range t.vals {
			if !Equal(v, arr.vals[i]) {
				return false
			}
		}
		return true
	case *Leaf:
		v, ok := b.(*Leaf)
		return ok && v.text == t.text
	default:
		panic(fmt.Sprintf("unknown element type %T", a))
	}
}
