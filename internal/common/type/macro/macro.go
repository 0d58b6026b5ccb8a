// Released under an MIT license. See LICENSE.

// Package macro provides the user-defined macro type.
package macro

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const name = "macro"

// T (macro) is like a closure but its arguments are bound unevaluated and
// the result of its body is evaluated again where it was called.
type T struct {
	params cell.I
	body   cell.I
}

type macro = T

// New creates a macro.
func New(params, body cell.I) cell.I {
	return &macro{params: params, body: body}
}

// Equal returns true if c is the same macro as m.
func (m *macro) Equal(c cell.I) bool {
	o, ok := c.(*macro)

	return ok && o == m
}

// Literal returns the opaque representation of a macro.
func (m *macro) Literal() string {
	return "#Macro"
}

// Name returns the type name for macros.
func (m *macro) Name() string {
	return name
}

// Body returns the macro's body.
func (m *macro) Body() cell.I {
	return m.body
}

// Params returns the macro's parameter list.
func (m *macro) Params() cell.I {
	return m.params
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

func implements() { //nolint:deadcode,unused
	var t macro

	// The macro type is a cell.
	_ = cell.I(&t)

	// The macro type has a literal representation.
	_ = literal.I(&t)
}
