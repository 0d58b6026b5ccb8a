// Released under an MIT license. See LICENSE.

// Package commands implements the primitive operations. Operands arrive
// already evaluated; the evaluator decides how many to evaluate using
// special.Form.Arity.
package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

// True is the value returned by predicates that hold.
var True = sym.New("t") //nolint:gochecknoglobals

// Apply applies the primitive f to the operands v.
func Apply(f special.Form, v ...cell.I) (cell.I, error) {
	if n := f.Arity(); !f.Primitive() || n != len(v) {
		return nil, fault.New(fault.ArityMismatch, "%s: expected %d operands, passed %d", f, n, len(v))
	}

	switch f {
	case special.Add, special.Div, special.Mul, special.Sub:
		return arithmetic(f, v[0], v[1])
	case special.Greater, special.Less:
		return relational(f, v[0], v[1])
	case special.Equal:
		return Bool(v[0].Equal(v[1])), nil
	case special.Str:
		return concatenate(v[0], v[1]), nil
	case special.Car, special.Cdr:
		return access(f, v[0])
	case special.Cons:
		return pair.Cons(v[0], v[1]), nil
	}

	return Bool(predicate(f, v[0])), nil
}

// Bool returns True if b is true and Null otherwise.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return pair.Null
}

func mismatch(f special.Form, expected string, v ...cell.I) error {
	if len(v) == 1 {
		return fault.New(fault.TypeMismatch, "%s: expected %s, got %s", f, expected, v[0].Name())
	}

	return fault.New(fault.TypeMismatch, "%s: expected %s, got %s and %s", f, expected, v[0].Name(), v[1].Name())
}
