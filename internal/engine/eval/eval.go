// Released under an MIT license. See LICENSE.

// Package eval provides the evaluator: a recursive function from one
// state.T to the next.
package eval

import (
	"io"
	"log/slog"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/closure"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/engine/capture"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
)

// Options select between the shallow and full treatments of nested
// lambdas and nested quasiquotes.
type Options struct {
	DeepCapture      bool
	NestedQuasiquote bool
}

// T (eval) holds what the evaluator needs beyond the state it is passed:
// where print writes and where diagnostics go.
type T struct {
	capture capture.Options
	log     *slog.Logger
	nested  bool
	out     io.Writer
}

type evaluator = T

// New creates an evaluator that prints to out and logs to log.
func New(out io.Writer, log *slog.Logger, o Options) *T {
	if out == nil {
		out = io.Discard
	}

	if log == nil {
		log = slog.Default()
	}

	return &T{
		capture: capture.Options{
			Deep:   o.DeepCapture,
			Nested: o.NestedQuasiquote,
		},
		log:    log,
		nested: o.NestedQuasiquote,
		out:    out,
	}
}

// Eval evaluates the current expression of s. The result's expression is
// the value. A state that has already failed is returned unchanged.
func (e *evaluator) Eval(s state.T) state.T {
	if s.Failed() {
		return s
	}

	c := s.Expr()

	switch {
	case sym.Is(c):
		return e.identifier(s, c)
	case quote.Is(c, quote.Quote):
		return s.WithExpr(quote.To(c).Expr())
	case quote.Is(c, quote.Quasiquote):
		v, err := e.quasiquote(s, quote.To(c).Expr(), 1)
		if err != nil {
			return s.Fail(err)
		}

		return s.WithExpr(v)
	case quote.Is(c, quote.Unquote):
		return s.Failf(fault.MalformedSpecialForm, "unquote outside of quasiquote: %s", literal.String(c))
	case pair.Is(c):
		return e.apply(s, pair.Car(c), pair.Cdr(c))
	}

	// Nil, numbers, strings, closures and macros evaluate to themselves.
	return s
}

func (e *evaluator) apply(s state.T, head, args cell.I) state.T {
	if k, ok := sym.Text(head); ok {
		if f := special.Lookup(k); f != special.None {
			return e.dispatch(s, f, args)
		}
	}

	op, err := e.value(s, head)
	if err != nil {
		return s.Fail(err)
	}

	switch {
	case closure.Is(op):
		return e.call(s, closure.To(op), args)
	case macro.Is(op):
		return e.expand(s, macro.To(op), args)
	}

	// An identifier that names a reserved form may be passed around as data.
	if k, ok := sym.Text(op); ok {
		if f := special.Lookup(k); f != special.None {
			return e.dispatch(s, f, args)
		}
	}

	return s.Failf(fault.NotCallable, "%s", literal.String(op))
}

func (e *evaluator) identifier(s state.T, c cell.I) state.T {
	k, _ := sym.Text(c)

	v, err := s.Lookup(k)
	if err != nil {
		if l := sym.Source(c); l != nil {
			err = fault.New(fault.UnboundIdentifier, "%s (%s)", k, l)
		}

		return s.Fail(err)
	}

	return s.WithExpr(v)
}

// value evaluates c in s and returns its value.
func (e *evaluator) value(s state.T, c cell.I) (cell.I, error) {
	return e.Eval(s.WithExpr(c)).Result()
}

type rendered struct {
	c cell.I
}

// LogValue defers rendering until a handler wants the value.
func (r rendered) LogValue() slog.Value {
	return slog.StringValue(literal.String(r.c))
}
