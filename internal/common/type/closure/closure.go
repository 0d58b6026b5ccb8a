// Released under an MIT license. See LICENSE.

// Package closure provides the first-class function type.
package closure

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
)

const name = "lambda"

// T (closure) pairs a parameter list and body with a snapshot of the free
// variables the body refers to. The snapshot is nil when there are none.
type T struct {
	name     string
	params   cell.I
	body     cell.I
	captured *hash.T
}

type closure = T

// New creates a closure. An empty label creates an anonymous closure.
func New(label string, params, body cell.I, captured *hash.T) cell.I {
	return &closure{
		name:     label,
		params:   params,
		body:     body,
		captured: captured,
	}
}

// Equal returns true if c is the same closure as l.
func (l *closure) Equal(c cell.I) bool {
	o, ok := c.(*closure)

	return ok && o == l
}

// Literal returns the opaque representation of a closure.
func (l *closure) Literal() string {
	return "#Lambda"
}

// Name returns the type name for closures.
func (l *closure) Name() string {
	return name
}

// Methods specific to closure.

// Body returns the closure's body.
func (l *closure) Body() cell.I {
	return l.body
}

// Captured returns the closure's snapshot of free variables, or nil.
func (l *closure) Captured() *hash.T {
	return l.captured
}

// Label returns the name a named closure uses to refer to itself.
// It is empty for anonymous closures.
func (l *closure) Label() string {
	return l.name
}

// Params returns the closure's parameter list.
func (l *closure) Params() cell.I {
	return l.params
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

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
