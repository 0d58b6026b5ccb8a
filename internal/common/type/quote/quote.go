// Released under an MIT license. See LICENSE.

// Package quote provides the quote, unquote and quasiquote wrappers.
package quote

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

// Kind distinguishes the three quoting wrappers.
type Kind int

// Quoting wrappers.
const (
	Quote Kind = iota
	Unquote
	Quasiquote
)

// T (quote) wraps an expression that is not evaluated in the usual way.
type T struct {
	kind Kind
	expr cell.I
}

type quote = T

// New creates a wrapper of kind k around e.
func New(k Kind, e cell.I) cell.I {
	return &quote{kind: k, expr: e}
}

// Equal returns true if c is the same kind of wrapper around an equal expression.
func (q *quote) Equal(c cell.I) bool {
	o, ok := c.(*quote)

	return ok && q.kind == o.kind && q.expr.Equal(o.expr)
}

// Literal returns the reader shorthand for the wrapper followed by its expression.
func (q *quote) Literal() string {
	return q.kind.prefix() + literal.String(q.expr)
}

// Name returns the name for the wrapper's kind.
func (q *quote) Name() string {
	return q.kind.String()
}

// Methods specific to quote.

// Expr returns the wrapped expression.
func (q *quote) Expr() cell.I {
	return q.expr
}

// Kind returns the kind of wrapper.
func (q *quote) Kind() Kind {
	return q.kind
}

func (k Kind) prefix() string {
	switch k {
	case Quote:
		return "'"
	case Unquote:
		return ","
	case Quasiquote:
		return "`"
	}

	return ""
}

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Quote:
		return "quote"
	case Unquote:
		return "unquote"
	case Quasiquote:
		return "quasiquote"
	}

	return "unknown"
}

// Is returns true if c is a wrapper of kind k.
func Is(c cell.I, k Kind) bool {
	q, ok := c.(*quote)

	return ok && q.kind == k
}

// To returns a *T if c is a wrapper; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a quoted expression")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t quote

	// The quote type is a cell.
	_ = cell.I(&t)

	// The quote type has a literal representation.
	_ = literal.I(&t)
}
