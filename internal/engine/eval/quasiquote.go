// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
)

// quasiquote rebuilds c, replacing each unquote at depth one with the
// value of its expression. Unless nested quasiquotes are enabled, the
// walk only descends through pairs so depth never changes.
func (e *evaluator) quasiquote(s state.T, c cell.I, depth int) (cell.I, error) {
	switch {
	case quote.Is(c, quote.Unquote):
		if depth == 1 {
			return e.value(s, quote.To(c).Expr())
		}

		return e.requote(s, quote.Unquote, c, depth-1)
	case e.nested && quote.Is(c, quote.Quasiquote):
		return e.requote(s, quote.Quasiquote, c, depth+1)
	case e.nested && quote.Is(c, quote.Quote):
		return e.requote(s, quote.Quote, c, depth)
	case pair.Is(c):
		car, err := e.quasiquote(s, pair.Car(c), depth)
		if err != nil {
			return nil, err
		}

		cdr, err := e.quasiquote(s, pair.Cdr(c), depth)
		if err != nil {
			return nil, err
		}

		return pair.Cons(car, cdr), nil
	}

	return c, nil
}

func (e *evaluator) requote(s state.T, k quote.Kind, c cell.I, depth int) (cell.I, error) {
	v, err := e.quasiquote(s, quote.To(c).Expr(), depth)
	if err != nil {
		return nil, err
	}

	return quote.New(k, v), nil
}
