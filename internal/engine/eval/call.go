// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/closure"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
)

// bind binds the parameter list params to args in frame. Arguments are
// evaluated in caller unless quoted is true, in which case they are bound
// as is. A trailing "& name" binds name to the list of remaining arguments.
func (e *evaluator) bind(label string, caller, frame state.T, params, args cell.I, quoted bool) (state.T, error) {
	n, rest := arity(params)

	if !list.Proper(args) {
		return frame, fault.New(fault.ArityMismatch, "%s: improper argument list", label)
	}

	passed := int(list.Length(args))
	if passed < n || (!rest && passed > n) {
		expected := validate.Count(n, "argument", "s")
		if rest {
			expected = "at least " + expected
		}

		return frame, fault.New(fault.ArityMismatch, "%s: expected %s, passed %d", label, expected, passed)
	}

	for params != pair.Null {
		k, _ := sym.Text(pair.Car(params))

		var v cell.I

		if k == special.Rest.String() {
			k, _ = sym.Text(pair.Cadr(params))

			v = args
			if !quoted {
				var err error

				v, err = e.each(caller, args)
				if err != nil {
					return frame, err
				}
			}

			params, args = pair.Null, pair.Null
		} else {
			v = pair.Car(args)
			if !quoted {
				var err error

				v, err = e.value(caller, v)
				if err != nil {
					return frame, err
				}
			}

			params, args = pair.Cdr(params), pair.Cdr(args)
		}

		e.log.Debug("bind", "name", k, "value", rendered{v})

		var err error

		frame, err = frame.Extend(k, v)
		if err != nil {
			return frame, err
		}
	}

	return frame, nil
}

// call applies the closure l to args. The callee's frame starts from the
// captured snapshot, then its own name, then its parameters. The caller's
// local bindings are untouched.
func (e *evaluator) call(s state.T, l *closure.T, args cell.I) state.T {
	label := l.Label()
	if label == "" {
		label = special.Lambda.String()
	}

	frame := s.WithLocal(nil).Merge(l.Captured())

	if l.Label() != "" {
		var err error

		frame, err = frame.Extend(l.Label(), l)
		if err != nil {
			return s.Fail(err)
		}
	}

	frame, err := e.bind(label, s, frame, l.Params(), args, false)
	if err != nil {
		return s.Fail(err)
	}

	c, err := e.value(frame, l.Body())
	if err != nil {
		return s.Fail(err)
	}

	return s.WithExpr(c)
}

// each evaluates every element of the proper list args in s.
func (e *evaluator) each(s state.T, args cell.I) (cell.I, error) {
	v, _ := list.Slice(args)

	for i, c := range v {
		var err error

		v[i], err = e.value(s, c)
		if err != nil {
			return nil, err
		}
	}

	return list.New(v...), nil
}

// expand binds args unevaluated, evaluates the body of m to produce an
// expansion and then evaluates the expansion in the caller's state.
func (e *evaluator) expand(s state.T, m *macro.T, args cell.I) state.T {
	frame, err := e.bind("macro", s, s.WithLocal(nil), m.Params(), args, true)
	if err != nil {
		return s.Fail(err)
	}

	c, err := e.value(frame, m.Body())
	if err != nil {
		return s.Fail(err)
	}

	e.log.Debug("macroexpand", "expansion", rendered{c})

	return e.Eval(s.WithExpr(c))
}

// arity returns the number of required parameters in params and whether
// params ends with a catch-all.
func arity(params cell.I) (int, bool) {
	n := 0

	for ; params != pair.Null; params = pair.Cdr(params) {
		if k, _ := sym.Text(pair.Car(params)); k == special.Rest.String() {
			return n, true
		}

		n++
	}

	return n, false
}

// params checks that c is a proper list of identifiers, none reserved,
// optionally ending with "& name".
func params(c cell.I) error {
	for p := c; p != pair.Null; p = pair.Cdr(p) {
		if !pair.Is(p) {
			return fault.New(fault.MalformedParameterList, "improper parameter list %s", literal.String(c))
		}

		k, ok := sym.Text(pair.Car(p))
		if !ok {
			return fault.New(fault.MalformedParameterList, "expected an identifier, got %s", literal.String(pair.Car(p)))
		}

		if k != special.Rest.String() {
			if special.Reserved(k) {
				return fault.New(fault.ReservedIdentifier, "%s", k)
			}

			continue
		}

		tail := pair.Cdr(p)
		if !pair.Is(tail) || pair.Cdr(tail) != pair.Null {
			return fault.New(fault.MalformedParameterList, "%s must be followed by exactly one parameter in %s", k, literal.String(c))
		}

		r, ok := sym.Text(pair.Car(tail))
		if !ok {
			return fault.New(fault.MalformedParameterList, "expected an identifier, got %s", literal.String(pair.Car(tail)))
		}

		if special.Reserved(r) {
			return fault.New(fault.ReservedIdentifier, "%s", r)
		}

		return nil
	}

	return nil
}
