// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tq

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/jleaf/ast"
)

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	case ast.Element:
		return Value(t)
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

type objKey string

func (o objKey) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(obj *ast.Object) (ast.Element, error) {
		val := obj.Get(string(o))
		if val == nil {
			return nil, fmt.Errorf("key %q not found", o)
		}
		return val, nil
	})
}

type nthQuery int

func (nq nthQuery) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(a *ast.Array) (ast.Element, error) {
		idx := int(nq)
		if idx < 0 {
			idx += a.Len()
		}
		if idx < 0 || idx >= a.Len() {
			return nil, fmt.Errorf("index %d out of range (0..%d)", nq, a.Len())
		}
		return a.At(idx), nil
	})
}

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(arr *ast.Array) (ast.Element, error) {
		n := arr.Len()
		lox := q.lo
		if lox < 0 {
			lox += n
		}
		hix := q.hi
		if hix <= 0 {
			hix += n
		}
		if lox < 0 || lox >= n {
			return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, n)
		} else if hix < 0 || hix > n {
			return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, n)
		} else if lox > hix {
			return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
		}
		return ast.NewArray(arr.Values()[lox:hix]...), nil
	})
}

type pickQuery []int

func (q pickQuery) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(arr *ast.Array) (ast.Element, error) {
		var out []ast.Element
		for _, off := range q {
			if off < 0 {
				off += arr.Len()
			}
			if off < 0 || off >= arr.Len() {
				return nil, fmt.Errorf("index %d out of range (0..%d)", off, arr.Len())
			}
			out = append(out, arr.At(off))
		}
		return ast.NewArray(out...), nil
	})
}

type eachQuery struct{ Query }

func (q eachQuery) eval(v ast.Element) (ast.Element, error) {
	return with(v, func(a *ast.Array) (ast.Element, error) {
		var out []ast.Element
		for i, elt := range a.Values() {
			w, err := q.Query.eval(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out = append(out, w)
		}
		return ast.NewArray(out...), nil
	})
}

type lenQuery struct{}

func (lenQuery) eval(v ast.Element) (ast.Element, error) {
	if t, ok := v.(interface {
		Len() int
	}); ok {
		return ast.NewLeaf(strconv.Itoa(t.Len())), nil
	}
	return nil, fmt.Errorf("cannot take length of %T", v)
}

type recQuery struct{ Query }

func (q recQuery) eval(v ast.Element) (ast.Element, error) {
	var out []ast.Element

	stk := []ast.Element{v}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		r, err := q.Query.eval(next)
		if err == nil {
			if a, ok := r.(*ast.Array); ok {
				out = append(out, a.Values()...)
			} else {
				out = append(out, r)
			}
		}

		// N.B. Push in reverse order, so we visit in lexical order.
		switch t := next.(type) {
		case *ast.Object:
			ms := t.Members()
			for i := len(ms) - 1; i >= 0; i-- {
				stk = append(stk, ms[i].Value)
			}
		case *ast.Array:
			vs := t.Values()
			for i := len(vs) - 1; i >= 0; i-- {
				stk = append(stk, vs[i])
			}
		}
	}

	if len(out) == 0 {
		return nil, errors.New("no matches")
	}
	return ast.NewArray(out...), nil
}

type constQuery struct{ ast.Element }

func (c constQuery) eval(ast.Element) (ast.Element, error) {
	return c.Element, nil
}

type globQuery struct{}

func (globQuery) eval(v ast.Element) (ast.Element, error) {
	switch t := v.(type) {
	case *ast.Object:
		out := make([]ast.Element, 0, t.Len())
		for _, m := range t.Members() {
			out = append(out, m.Value)
		}
		return ast.NewArray(out...), nil
	case *ast.Array:
		return t, nil
	default:
		return nil, errors.New("no matching values")
	}
}

type keysQuery struct{}

func (keysQuery) eval(v ast.Element) (ast.Element, error) {
	if o, ok := v.(*ast.Object); ok {
		out := make([]ast.Element, 0, o.Len())
		for _, key := range o.Keys() {
			out = append(out, ast.NewLeaf(key))
		}
		return ast.NewArray(out...), nil
	}
	return nil, fmt.Errorf("cannot list keys of %T", v)
}

func with[T ast.Element](v ast.Element, f func(T) (ast.Element, error)) (ast.Element, error) {
	if v, ok := v.(T); ok {
		return f(v)
	}
	var zero T
	return nil, fmt.Errorf("got %T, want %T", v, zero)
}
