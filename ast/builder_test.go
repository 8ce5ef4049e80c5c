// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jleaf"
	"github.com/creachadair/jleaf/ast"
	"github.com/creachadair/jleaf/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

// buildTree parses text by streaming events into a Builder.
func buildTree(t *testing.T, text string) (ast.Element, error) {
	t.Helper()
	b := ast.NewBuilder()
	if err := jleaf.NewStream(text).Parse(b); err != nil {
		return nil, err
	}
	root, err := b.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	return root, nil
}

func TestBuilder(t *testing.T) {
	tests := []string{
		`{}`,
		`{ }`,
		`{"a":"b"}`,
		`{"a":"b", "c":"d"}`,
		`{"a":{}}`,
		`{"a":[]}`,
		`{"a":["b", {"c":"d"}, []]}`,
		`{"a":{"b":{"c":"d"}}}`,
		`{"a":"x", "b":"y", "a":"z"}`,
		`{"empty":"", "":"empty"}`,
		testText,
	}
	for _, input := range tests {
		got, err := buildTree(t, input)
		if err != nil {
			t.Errorf("Build(%#q): unexpected error: %v", input, err)
			continue
		}
		want, err := ast.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%#q): %v", input, err)
		}
		if diff := cmp.Diff(want, got, testutil.TreeShape); diff != "" {
			t.Errorf("Build(%#q): (-parsed, +built)\n%s", input, diff)
		}
	}
}

// Both parsers must reject the same inputs at the same offsets, even where
// the classification or message text differs.
func TestBuilderErrorOffsets(t *testing.T) {
	tests := []string{
		``,
		`   `,
		`[]`,
		`"a"`,
		`}`,
		`{`,
		`{"a"`,
		`{"a" "b"}`,
		`{"a":}`,
		`{"a":"b",}`,
		`{"a":"b",`,
		`{"a":"b"`,
		`{"a":"b"]`,
		`{a:"b"}`,
		`{:"b"}`,
		`{"a":[`,
		`{"a":["b"`,
		`{"a":["b"}`,
		`{"a":["b",]}`,
		`{"a":[:]}`,
		`{"a`,
		`{"a":"b`,
	}
	for _, input := range tests {
		_, perr := ast.Parse(input)
		_, berr := buildTree(t, input)
		if perr == nil || berr == nil {
			t.Errorf("Input %#q: Parse err %v, Build err %v; want both non-nil", input, perr, berr)
			continue
		}
		var ps, bs *jleaf.SyntaxError
		if !errors.As(perr, &ps) || !errors.As(berr, &bs) {
			t.Errorf("Input %#q: Parse err %T, Build err %T; want *SyntaxError", input, perr, berr)
			continue
		}
		if ps.Offset != bs.Offset {
			t.Errorf("Input %#q: Parse offset %d, Build offset %d", input, ps.Offset, bs.Offset)
		}
	}
}

func TestBuilderRoot(t *testing.T) {
	b := ast.NewBuilder()
	if v, err := b.Root(); err == nil {
		t.Errorf("Root of empty builder: got %v, want error", v)
	}

	if err := jleaf.NewStream(`{"a":["x"`).Parse(b); err == nil {
		t.Error("Parse did not report an error")
	}
	if v, err := b.Root(); err == nil {
		t.Errorf("Root after failed parse: got %v, want error", v)
	}
}

func TestBuilderMemberNames(t *testing.T) {
	v, err := buildTree(t, `{"outer":{"k":"1"}, "other":{"k":"2"}}`)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	o, ok := v.(*ast.Object)
	if !ok {
		t.Fatalf("Root: got %T, want object", v)
	}
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "outer" || keys[1] != "other" {
		t.Errorf("Keys: got %q, want [outer other]", keys)
	}
	if got := v.Get("outer").Get("k"); got == nil {
		t.Error(`Get "outer" "k": no result`)
	} else if text, ok := got.Value(); !ok || text != "1" {
		t.Errorf(`Get "outer" "k": got %q, %v; want "1", true`, text, ok)
	}
}
