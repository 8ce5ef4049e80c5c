// Package tq implements structural traversal queries over parsed values.
//
// A query describes a syntactic substructure of a syntax tree, such as an
// object member, array element, or a path through the tree. Evaluating a
// query against a concrete value traverses the structure described by the
// query and returns the resulting element.
//
// The simplest query is for a "path", a sequence of object keys and/or array
// offsets that describes a path from the root of a value. For example, given
// the value:
//
//	{"list": [{"a": "1", "b": "2"}, {"c": {"d": "yes"}, "e": "no"}]}
//
// the query
//
//	tq.Path("list", 1, "c", "d")
//
// yields the leaf "yes".
package tq

import (
	"errors"
	"fmt"

	"github.com/creachadair/jleaf/ast"
)

// Eval evaluates the given query beginning from root, returning the
// resulting element or an error. It reports an error if the result does not
// have concrete type T.
func Eval[T ast.Element](root ast.Element, q Query) (T, error) {
	var zero T
	v, err := q.eval(root)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("got %T, want %T", v, zero)
	}
	return out, nil
}

// A Query describes a traversal of a value. The behavior of a query is
// defined in terms of how it maps its input to an output. Both the input and
// the output are syntax trees.
type Query interface {
	eval(ast.Element) (ast.Element, error)
}

// Path traverses a sequence of nested object keys or array offsets from the
// input value.  If no keys are specified, the input is returned. Each key
// must be a string (an object key), an int (an array offset), or a nested
// Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

// Selection constructs an array of the elements of its input array for which
// the specified function returns true.
type Selection func(ast.Element) bool

func (q Selection) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(a *ast.Array) (ast.Element, error) {
		var out []ast.Element
		for _, elt := range a.Values() {
			if q(elt) {
				out = append(out, elt)
			}
		}
		return ast.NewArray(out...), nil
	})
}

// Mapping constructs an array in which each element is replaced by the result
// of calling the specified function on the corresponding input element.
type Mapping func(ast.Element) ast.Element

func (q Mapping) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(a *ast.Array) (ast.Element, error) {
		out := make([]ast.Element, a.Len())
		for i, elt := range a.Values() {
			out[i] = q(elt)
		}
		return ast.NewArray(out...), nil
	})
}

// Slice selects a slice of an array from offsets lo to hi.  The range
// includes lo but excludes hi. Negative offsets select from the end of the
// array.  If hi == 0, the length of the array is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

// Pick constructs an array by picking the designated offsets from an array.
// Negative offsets select from the end of the input array.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

// Len returns a string leaf holding the decimal length of the root.
//
// For an object, the length is the number of members.
// For an array, the length is the number of elements.
// For a string leaf, the length is the length of its text in bytes.
func Len() Query { return lenQuery{} }

// Keys returns an array of string leaves holding the member names of an
// object, in insertion order.
func Keys() Query { return keysQuery{} }

// Seq is a sequential composition of queries. An empty sequence selects the
// input value; otherwise, each query is applied to the result produced by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v ast.Element) (ast.Element, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives.  It returns
// the value of the first alternative that does not report an error. If there
// are no such alternatives, the query fails. An empty Alt fails on all
// inputs.
type Alt []Query

func (q Alt) eval(v ast.Element) (ast.Element, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Recur applies a query to each recursive descendant of its input and returns
// an array of the resulting values. The arguments have the same constraints
// as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

// Each applies a query to each element of an array and returns an array of
// the resulting values. It fails if the input is not an array.  The arguments
// have the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

// Object constructs an object with the given keys mapped to the results of
// matching the query values against its input.
type Object map[string]Query

func (o Object) eval(v ast.Element) (ast.Element, error) {
	var members []ast.Member
	for key, q := range o {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", key, err)
		}
		members = append(members, ast.Field(key, val))
	}
	return ast.NewObject(members...), nil
}

// Array constructs an array containing the values produced by matching the
// given queries against its input.
type Array []Query

func (a Array) eval(v ast.Element) (ast.Element, error) {
	out := make([]ast.Element, len(a))
	for i, q := range a {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return ast.NewArray(out...), nil
}

// A Value query ignores its input and returns the given value.  The value
// must be a string or an ast.Element.
func Value(v any) Query {
	switch t := v.(type) {
	case string:
		return constQuery{ast.NewLeaf(t)}
	case ast.Element:
		return constQuery{t}
	default:
		panic(fmt.Sprintf("invalid constant %T", v))
	}
}

// A Glob query returns an array of its inputs. If the input is an array, the
// array is returned unchanged. If the input is an object, the result is an
// array of all the object values.
func Glob() Query { return globQuery{} }
