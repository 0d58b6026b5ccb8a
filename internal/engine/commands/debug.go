// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/closure"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// Dump returns the structure of c, as written by print-debug.
func Dump(c cell.I) string {
	var b strings.Builder

	dump(&b, c)

	return b.String()
}

func dump(b *strings.Builder, c cell.I) {
	switch {
	case c == pair.Null:
		b.WriteString("Nil")
	case num.IsInt(c):
		wrap(b, "Integer", literal.String(c))
	case num.IsFloat(c):
		wrap(b, "Float", literal.String(c))
	case str.Is(c):
		wrap(b, "String", str.Quote(str.To(c).String()))
	case sym.Is(c):
		wrap(b, "Ident", str.Quote(sym.To(c).String()))
	case pair.Is(c):
		b.WriteString("Cons(")
		dump(b, pair.Car(c))
		b.WriteString(", ")
		dump(b, pair.Cdr(c))
		b.WriteByte(')')
	case quote.Is(c, quote.Quote):
		nest(b, "Quote", quote.To(c).Expr())
	case quote.Is(c, quote.Quasiquote):
		nest(b, "Quasiquote", quote.To(c).Expr())
	case quote.Is(c, quote.Unquote):
		nest(b, "Unquote", quote.To(c).Expr())
	case closure.Is(c):
		l := closure.To(c)

		b.WriteString("Lambda(")
		b.WriteString(str.Quote(l.Label()))
		b.WriteString(", ")
		dump(b, l.Params())
		b.WriteString(", ")
		dump(b, l.Body())
		b.WriteByte(')')
	case macro.Is(c):
		m := macro.To(c)

		b.WriteString("Macro(")
		dump(b, m.Params())
		b.WriteString(", ")
		dump(b, m.Body())
		b.WriteByte(')')
	default:
		wrap(b, "Unknown", c.Name())
	}
}

func nest(b *strings.Builder, label string, c cell.I) {
	b.WriteString(label)
	b.WriteByte('(')
	dump(b, c)
	b.WriteByte(')')
}

func wrap(b *strings.Builder, label, s string) {
	b.WriteString(label)
	b.WriteByte('(')
	b.WriteString(s)
	b.WriteByte(')')
}
