// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/closure"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

func predicate(f special.Form, c cell.I) bool {
	switch f {
	case special.IsFloat:
		return num.IsFloat(c)
	case special.IsIdent:
		return sym.Is(c)
	case special.IsInteger:
		return num.IsInt(c)
	case special.IsLambda:
		return closure.Is(c)
	case special.IsList:
		return pair.Is(c)
	case special.IsMacro:
		return macro.Is(c)
	case special.IsNil:
		return c == pair.Null
	case special.IsQuasiquote:
		return quote.Is(c, quote.Quasiquote)
	case special.IsQuote:
		return quote.Is(c, quote.Quote)
	case special.IsString:
		return str.Is(c)
	case special.IsUnquote:
		return quote.Is(c, quote.Unquote)
	}

	return false
}
