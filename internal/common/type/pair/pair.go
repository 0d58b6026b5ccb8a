// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list
	// and is the only false value.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return p == c
	}

	for {
		o, ok := c.(*pair)
		if !ok || o == Null {
			return false
		}

		if !p.car.Equal(o.car) {
			return false
		}

		next, ok := p.cdr.(*pair)
		if !ok || next == Null {
			return p.cdr.Equal(o.cdr)
		}

		p, c = next, o.cdr
	}
}

// Literal returns the display representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(literal.String(p.car))

	tail := p.cdr
	for Is(tail) {
		b.WriteByte(' ')
		b.WriteString(literal.String(Car(tail)))

		tail = Cdr(tail)
	}

	if tail != Null {
		b.WriteString(" . ")
		b.WriteString(literal.String(tail))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "nil"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair other than Null.
func Is(c cell.I) bool {
	p, ok := c.(*T)

	return ok && p != Null
}

// To returns a *T if c is a pair; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok && t != Null {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
