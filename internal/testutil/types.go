// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/creachadair/jleaf/ast"
	"github.com/google/go-cmp/cmp"
)

// TreeShape is a cmp option that compares syntax trees structurally,
// ignoring source spans.
var TreeShape = cmp.Comparer(ast.Equal)
