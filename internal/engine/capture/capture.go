// Released under an MIT license. See LICENSE.

// Package capture finds the free variables of a lambda body and takes a
// snapshot of their current values.
package capture

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
)

// Options control how far the walk descends.
type Options struct {
	// Deep walks the bodies of nested lambdas.
	Deep bool

	// Nested tracks quasiquote depth the way the evaluator does when
	// nested quasiquotes are enabled.
	Nested bool
}

type walker struct {
	Options

	found   []string
	lenient map[string]bool
	seen    map[string]bool
	s       state.T
}

// Free returns the bindings from s that a lambda named self with params
// and body refers to. Parameters, the lambda's own name, reserved
// identifiers and globals are never captured. Identifiers are ignored
// inside quoted data unless they are unquoted within a quasiquote.
//
// Free fails with an unbound identifier error if a captured identifier
// has no value in s. Identifiers in the operands of a call to a global
// macro are captured only if they are bound since the macro may bind them
// itself. If nothing is captured Free returns nil.
func Free(s state.T, o Options, self string, params, body cell.I) (*hash.T, error) {
	w := &walker{
		Options: o,
		lenient: map[string]bool{},
		seen:    map[string]bool{},
		s:       s,
	}

	w.walk(body, bound(nil, self, params), false)

	if len(w.found) == 0 {
		return nil, nil
	}

	captured := hash.New()

	for _, k := range w.found {
		v, err := s.Lookup(k)
		if err != nil {
			if w.lenient[k] {
				continue
			}

			return nil, err
		}

		captured.Set(k, v)
	}

	if captured.Size() == 0 {
		return nil, nil
	}

	return captured, nil
}

// Params returns the identifiers bound by the parameter list params.
func Params(params cell.I) []string {
	var names []string

	for ; pair.Is(params); params = pair.Cdr(params) {
		if k, ok := sym.Text(pair.Car(params)); ok && k != special.Rest.String() {
			names = append(names, k)
		}
	}

	return names
}

func bound(outer map[string]bool, self string, params cell.I) map[string]bool {
	b := make(map[string]bool, len(outer)+1)
	for k := range outer {
		b[k] = true
	}

	if self != "" {
		b[self] = true
	}

	for _, k := range Params(params) {
		b[k] = true
	}

	return b
}

func (w *walker) add(k string, b map[string]bool, lenient bool) {
	if b[k] || special.Reserved(k) {
		return
	}

	// Globals are looked up when the closure is called unless a local
	// binding shadows them.
	if !w.s.Local().Has(k) && w.s.Global().Has(k) {
		return
	}

	if !w.seen[k] {
		w.seen[k] = true
		w.lenient[k] = lenient
		w.found = append(w.found, k)
	} else if !lenient {
		w.lenient[k] = false
	}
}

func (w *walker) walk(c cell.I, b map[string]bool, lenient bool) {
	if k, ok := sym.Text(c); ok {
		w.add(k, b, lenient)

		return
	}

	switch {
	case quote.Is(c, quote.Quote):
		return
	case quote.Is(c, quote.Quasiquote):
		w.quasiquote(quote.To(c).Expr(), b, lenient, 1)

		return
	case quote.Is(c, quote.Unquote):
		w.walk(quote.To(c).Expr(), b, lenient)

		return
	case !pair.Is(c):
		return
	}

	head, args := pair.Car(c), pair.Cdr(c)

	if k, ok := sym.Text(head); ok {
		switch special.Lookup(k) {
		case special.Def:
			// The name position is a binding site.
			if pair.Is(args) {
				w.each(pair.Cdr(args), b, lenient)
			}

			return
		case special.Defmacro:
			return
		case special.Lambda:
			if w.Deep {
				w.lambda(args, b, lenient)
			}

			return
		case special.None:
			if v := w.s.Global().Get(k); v != nil && macro.Is(v) {
				w.each(args, b, true)

				return
			}
		}
	}

	w.walk(head, b, lenient)
	w.each(args, b, lenient)
}

func (w *walker) each(c cell.I, b map[string]bool, lenient bool) {
	for ; pair.Is(c); c = pair.Cdr(c) {
		w.walk(pair.Car(c), b, lenient)
	}

	if c != pair.Null {
		w.walk(c, b, lenient)
	}
}

func (w *walker) lambda(args cell.I, b map[string]bool, lenient bool) {
	v, ok := list.Slice(args)
	if !ok {
		return
	}

	switch len(v) {
	case 2: //nolint:gomnd
		w.walk(v[1], bound(b, "", v[0]), lenient)
	case 3: //nolint:gomnd
		self, _ := sym.Text(v[0])
		w.walk(v[2], bound(b, self, v[1]), lenient)
	}
}

func (w *walker) quasiquote(c cell.I, b map[string]bool, lenient bool, depth int) {
	switch {
	case quote.Is(c, quote.Unquote):
		if depth == 1 {
			w.walk(quote.To(c).Expr(), b, lenient)
		} else if w.Nested {
			w.quasiquote(quote.To(c).Expr(), b, lenient, depth-1)
		}
	case quote.Is(c, quote.Quasiquote):
		if w.Nested {
			w.quasiquote(quote.To(c).Expr(), b, lenient, depth+1)
		}
	case quote.Is(c, quote.Quote):
		if w.Nested {
			w.quasiquote(quote.To(c).Expr(), b, lenient, depth)
		}
	case pair.Is(c):
		w.quasiquote(pair.Car(c), b, lenient, depth)
		w.quasiquote(pair.Cdr(c), b, lenient, depth)
	}
}
