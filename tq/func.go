package tq

import "github.com/creachadair/jleaf/ast"

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(v ast.Element) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// Is returns a selection that reports true if its argument is of type T.
func Is[T ast.Element]() Selection {
	return func(v ast.Element) bool { _, ok := v.(T); return ok }
}

// IsNot returns a selection that reports true if its argument is not of type T.
func IsNot[T ast.Element]() Selection {
	return func(v ast.Element) bool { _, ok := v.(T); return !ok }
}

// Filter constructs a selection from the given function. The resulting
// selection will discard any element whose type does not match T.
func Filter[T ast.Element](f func(T) bool) Selection {
	return func(v ast.Element) bool { w, ok := v.(T); return ok && f(w) }
}
