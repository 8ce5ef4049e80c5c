// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jleaf/ast"
	"github.com/creachadair/mds/mtest"
)

func TestConstructors(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		v := ast.NewLeaf("hello")
		if got := v.Text(); got != "hello" {
			t.Errorf("Text: got %q, want %q", got, "hello")
		}
		if got := v.Len(); got != 5 {
			t.Errorf("Len: got %d, want 5", got)
		}
		if got, want := v.JSON(), `"hello"`; got != want {
			t.Errorf("JSON: got %#q, want %#q", got, want)
		}
	})

	t.Run("Object", func(t *testing.T) {
		o := ast.NewObject(
			ast.Field("a", "1"),
			ast.Field("b", ast.NewLeaf("2")),
		)
		if got := o.Len(); got != 2 {
			t.Errorf("Len: got %d, want 2", got)
		}
		if got, want := o.JSON(), `{"a":"1", "b":"2"}`; got != want {
			t.Errorf("JSON: got %#q, want %#q", got, want)
		}
	})

	t.Run("ObjectDup", func(t *testing.T) {
		// A later duplicate key replaces the value in place.
		o := ast.NewObject(
			ast.Field("a", "1"),
			ast.Field("b", "2"),
			ast.Field("a", "3"),
		)
		if got := o.Len(); got != 2 {
			t.Errorf("Len: got %d, want 2", got)
		}
		if got, want := o.JSON(), `{"a":"3", "b":"2"}`; got != want {
			t.Errorf("JSON: got %#q, want %#q", got, want)
		}
	})

	t.Run("Array", func(t *testing.T) {
		a := ast.NewArray(ast.NewLeaf("p"), ast.ArrayOf(), ast.NewObject())
		if got := a.Len(); got != 3 {
			t.Errorf("Len: got %d, want 3", got)
		}
		if got, want := a.JSON(), `["p", [], {}]`; got != want {
			t.Errorf("JSON: got %#q, want %#q", got, want)
		}
	})

	t.Run("ArrayOf", func(t *testing.T) {
		a := ast.ArrayOf("x", "y", "z")
		if got, want := a.JSON(), `["x", "y", "z"]`; got != want {
			t.Errorf("JSON: got %#q, want %#q", got, want)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		o := ast.NewObject(ast.Field("p", "1"), ast.Field("q", "2"))
		keys := o.Keys()
		if len(keys) != 2 || keys[0] != "p" || keys[1] != "q" {
			t.Errorf("Keys: got %q, want [p q]", keys)
		}
	})

	t.Run("Members", func(t *testing.T) {
		o := ast.NewObject(ast.Field("p", "1"))
		ms := o.Members()
		if len(ms) != 1 || ms[0].Key != "p" {
			t.Fatalf("Members: got %+v, want one member p", ms)
		}
		// The returned slice is a copy; mutating it does not affect o.
		ms[0].Value = ast.NewLeaf("99")
		if got, want := o.JSON(), `{"p":"1"}`; got != want {
			t.Errorf("JSON after mutation: got %#q, want %#q", got, want)
		}
	})

	t.Run("Values", func(t *testing.T) {
		a := ast.ArrayOf("x")
		vs := a.Values()
		if len(vs) != 1 {
			t.Fatalf("Values: got %d elements, want 1", len(vs))
		}
		vs[0] = ast.NewLeaf("other")
		if got, want := a.JSON(), `["x"]`; got != want {
			t.Errorf("JSON after mutation: got %#q, want %#q", got, want)
		}
	})
}

func TestToValue(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		got := ast.ToValue("fuzzy")
		if v, ok := got.(*ast.Leaf); !ok || v.Text() != "fuzzy" {
			t.Errorf("got %[1]T %[1]v, want leaf fuzzy", got)
		}
	})
	t.Run("Element", func(t *testing.T) {
		in := ast.ArrayOf("1", "2")
		if got := ast.ToValue(in); got != ast.Element(in) {
			t.Errorf("got %[1]T %[1]v, want %[2]v", got, in)
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue(nil) })
		mtest.MustPanic(t, func() { ast.ToValue(25) })
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ast.Element
		want bool
	}{
		{"NilNil", nil, nil, true},
		{"NilLeaf", nil, ast.NewLeaf("x"), false},
		{"LeafNil", ast.NewLeaf("x"), nil, false},

		{"LeafSame", ast.NewLeaf("x"), ast.NewLeaf("x"), true},
		{"LeafDiff", ast.NewLeaf("x"), ast.NewLeaf("y"), false},
		{"LeafVsArray", ast.NewLeaf("x"), ast.ArrayOf("x"), false},
		{"LeafVsObject", ast.NewLeaf("x"), ast.NewObject(), false},

		{"ArraySame", ast.ArrayOf("1", "2"), ast.ArrayOf("1", "2"), true},
		{"ArrayOrder", ast.ArrayOf("1", "2"), ast.ArrayOf("2", "1"), false},
		{"ArrayLen", ast.ArrayOf("1"), ast.ArrayOf("1", "2"), false},

		{"ObjectSame",
			ast.NewObject(ast.Field("a", "1"), ast.Field("b", "2")),
			ast.NewObject(ast.Field("a", "1"), ast.Field("b", "2")),
			true},
		{"ObjectOrder",
			ast.NewObject(ast.Field("a", "1"), ast.Field("b", "2")),
			ast.NewObject(ast.Field("b", "2"), ast.Field("a", "1")),
			true}, // member order does not affect equality
		{"ObjectKeys",
			ast.NewObject(ast.Field("a", "1")),
			ast.NewObject(ast.Field("z", "1")),
			false},
		{"ObjectValues",
			ast.NewObject(ast.Field("a", "1")),
			ast.NewObject(ast.Field("a", "2")),
			false},
		{"ObjectLen",
			ast.NewObject(ast.Field("a", "1")),
			ast.NewObject(ast.Field("a", "1"), ast.Field("b", "2")),
			false},

		{"Nested",
			ast.NewObject(ast.Field("a", ast.ArrayOf("1", "2"))),
			ast.NewObject(ast.Field("a", ast.ArrayOf("1", "2"))),
			true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ast.Equal(test.a, test.b); got != test.want {
				t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input interface{ String() string }
		want  string
	}{
		{ast.NewLeaf("x"), `Leaf("x")`},
		{ast.ArrayOf(), `Array(len=0)`},
		{ast.ArrayOf("a", "b"), `Array(len=2)`},
		{ast.NewObject(ast.Field("a", "1")), `Object(len=1)`},
		{ast.Field("k", "v"), `Member(key="k")`},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("String: got %q, want %q", got, test.want)
		}
	}
}

func TestMemberJSON(t *testing.T) {
	m := ast.Field("k", ast.ArrayOf("v"))
	if got, want := m.JSON(), `"k":["v"]`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}

func TestUnparseableLeaf(t *testing.T) {
	// A constructed leaf may contain a quotation mark, which renders as
	// written and therefore does not survive a round trip.
	v := ast.NewLeaf(`a"b`)
	const want = `"a"b"`
	if got := v.JSON(); got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	if _, err := ast.Parse(`{"x":` + v.JSON() + `}`); err == nil {
		t.Error("Parse: no error on embedded quotation mark")
	}
}
