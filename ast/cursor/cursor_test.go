// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/creachadair/jleaf/ast"
	"github.com/creachadair/jleaf/ast/cursor"
	"github.com/creachadair/jleaf/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

const testText = `{
  "list": [
    {"x": "1"},
    {"x": "2"}
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": "true",
    "d": "true",
    "q": "false"
  }
}`

func TestCursor(t *testing.T) {
	v, err := ast.Parse(testText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want ast.Element
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},

		{"ArrayPos", []any{"list", 1},
			v.Get("list").At(1),
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			v.Get("list").At(1),
			false,
		},
		{"ArrayRange", []any{"o", 25},
			v.Get("o"),
			true,
		},
		{"ObjPath", []any{"xyz", "d"},
			v.Get("xyz").Get("d"),
			false,
		},

		{"FuncArray", []any{"o", testPathFunc}, ast.ToValue("2"), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.ToValue("3"), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc},
			v.Get("xyz").Get("d"),
			true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want, testutil.TreeShape); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestCursorNav(t *testing.T) {
	v, err := ast.Parse(testText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at its origin")
	}
	if got := c.Origin(); got != ast.Element(v) {
		t.Errorf("Origin: got %v, want %v", got, v)
	}

	c.Down("list", 1)
	if c.AtOrigin() {
		t.Error("Cursor did not move from its origin")
	}
	if got := len(c.Path()); got != 3 {
		t.Errorf("Path: got %d elements, want 3", got)
	}

	c.Up()
	if got, want := c.Value(), v.Get("list"); got != want {
		t.Errorf("Value after Up: got %v, want %v", got, want)
	}

	c.Reset()
	if !c.AtOrigin() {
		t.Error("Cursor did not return to its origin")
	}
}

func TestPath(t *testing.T) {
	v, err := ast.Parse(testText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	t.Run("OK", func(t *testing.T) {
		got, err := cursor.Path[*ast.Leaf](v, "list", 0, "x")
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if got.Text() != "1" {
			t.Errorf("Path: got %q, want %q", got.Text(), "1")
		}
	})

	t.Run("WrongType", func(t *testing.T) {
		got, err := cursor.Path[*ast.Array](v, "y")
		if err == nil {
			t.Fatalf("Path: got %v, want error", got)
		}
		t.Logf("Got expected error: %v", err)
	})

	t.Run("BadPath", func(t *testing.T) {
		got, err := cursor.Path[ast.Element](v, "y", "nonesuch")
		if err == nil {
			t.Fatalf("Path: got %v, want error", got)
		}
		t.Logf("Got expected error: %v", err)
	})
}

func testPathFunc(v ast.Element) (ast.Element, error) {
	switch t := v.(type) {
	case *ast.Array:
		return ast.ToValue(strconv.Itoa(t.Len())), nil
	case *ast.Object:
		return ast.ToValue(strconv.Itoa(t.Len())), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
