// Released under an MIT license. See LICENSE.

package eval

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/closure"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
	"github.com/michaelmacinnis/lisp/internal/engine/capture"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

func (e *evaluator) dispatch(s state.T, f special.Form, args cell.I) state.T {
	if f.Primitive() {
		return e.primitive(s, f, args)
	}

	switch f {
	case special.Def:
		return e.def(s, args)
	case special.Defmacro:
		return e.defmacro(s, args)
	case special.Eval:
		return e.eval(s, args)
	case special.If:
		return e.ifForm(s, args)
	case special.Lambda:
		return e.lambda(s, args)
	case special.Load:
		return e.load(s, args)
	case special.Print, special.PrintDebug:
		return e.print(s, f, args)
	case special.Rest:
		return s.Failf(fault.MalformedSpecialForm, "%s: only valid in a parameter list", f)
	}

	return s.Failf(fault.NotCallable, "%s is not callable", f)
}

func (e *evaluator) def(s state.T, args cell.I) state.T {
	v, err := validate.Form("def", args, 2, 2) //nolint:gomnd
	if err != nil {
		return s.Fail(err)
	}

	k, ok := sym.Text(v[0])
	if !ok {
		return s.Failf(fault.MalformedSpecialForm, "def: expected an identifier, got %s", literal.String(v[0]))
	}

	if special.Reserved(k) {
		return s.Failf(fault.ReservedIdentifier, "%s", k)
	}

	c, err := e.value(s, v[1])
	if err != nil {
		return s.Fail(err)
	}

	err = s.DefineGlobal(k, c)
	if err != nil {
		return s.Fail(err)
	}

	return s.WithExpr(c)
}

func (e *evaluator) defmacro(s state.T, args cell.I) state.T {
	v, err := validate.Form("defmacro", args, 3, 3) //nolint:gomnd
	if err != nil {
		return s.Fail(err)
	}

	k, ok := sym.Text(v[0])
	if !ok {
		return s.Failf(fault.MalformedSpecialForm, "defmacro: expected an identifier, got %s", literal.String(v[0]))
	}

	if special.Reserved(k) {
		return s.Failf(fault.ReservedIdentifier, "%s", k)
	}

	err = params(v[1])
	if err != nil {
		return s.Fail(err)
	}

	m := macro.New(v[1], v[2])

	err = s.DefineGlobal(k, m)
	if err != nil {
		return s.Fail(err)
	}

	return s.WithExpr(m)
}

func (e *evaluator) eval(s state.T, args cell.I) state.T {
	v, err := validate.Form("eval", args, 1, 1)
	if err != nil {
		return s.Fail(err)
	}

	c, err := e.value(s, v[0])
	if err != nil {
		return s.Fail(err)
	}

	return e.Eval(s.WithExpr(c))
}

func (e *evaluator) ifForm(s state.T, args cell.I) state.T {
	v, err := validate.Form("if", args, 3, 3) //nolint:gomnd
	if err != nil {
		return s.Fail(err)
	}

	c, err := e.value(s, v[0])
	if err != nil {
		return s.Fail(err)
	}

	if c != pair.Null {
		return e.Eval(s.WithExpr(v[1]))
	}

	return e.Eval(s.WithExpr(v[2]))
}

func (e *evaluator) lambda(s state.T, args cell.I) state.T {
	v, err := validate.Form("lambda", args, 2, 3) //nolint:gomnd
	if err != nil {
		return s.Fail(err)
	}

	label := ""

	if len(v) == 3 { //nolint:gomnd
		k, ok := sym.Text(v[0])
		if !ok {
			return s.Failf(fault.MalformedSpecialForm, "lambda: expected a name, got %s", literal.String(v[0]))
		}

		if special.Reserved(k) {
			return s.Failf(fault.ReservedIdentifier, "%s", k)
		}

		label, v = k, v[1:]
	}

	err = params(v[0])
	if err != nil {
		return s.Fail(err)
	}

	captured, err := capture.Free(s, e.capture, label, v[0], v[1])
	if err != nil {
		return s.Fail(err)
	}

	if captured != nil {
		e.log.Debug("capture", "lambda", label, "names", captured.Names())
	}

	return s.WithExpr(closure.New(label, v[0], v[1], captured))
}

func (e *evaluator) load(s state.T, args cell.I) state.T {
	v, err := validate.Form("load", args, 1, 1)
	if err != nil {
		return s.Fail(err)
	}

	c, err := e.value(s, v[0])
	if err != nil {
		return s.Fail(err)
	}

	if !str.Is(c) {
		return s.Failf(fault.TypeMismatch, "load: expected string, got %s", c.Name())
	}

	paths, err := reader.Expand(str.To(c).String())
	if err != nil {
		return s.Fail(err)
	}

	var r cell.I = pair.Null

	for _, path := range paths {
		e.log.Debug("load", "path", path)

		cs, err := reader.Load(path)
		if fault.KindOf(err) == fault.IOFailure {
			// A file that cannot be read has no forms.
			e.log.Error("load", "error", err)

			continue
		} else if err != nil {
			return s.Fail(err)
		}

		// Loaded files are evaluated at top level.
		top := state.New(s.Global())

		for _, form := range cs {
			r, err = e.value(top, form)
			if err != nil {
				return s.Fail(err)
			}
		}
	}

	return s.WithExpr(r)
}

func (e *evaluator) primitive(s state.T, f special.Form, args cell.I) state.T {
	n := f.Arity()

	v, err := validate.Call(f.String(), args, n, n)
	if err != nil {
		return s.Fail(err)
	}

	for i, c := range v {
		v[i], err = e.value(s, c)
		if err != nil {
			return s.Fail(err)
		}
	}

	c, err := commands.Apply(f, v...)
	if err != nil {
		return s.Fail(err)
	}

	return s.WithExpr(c)
}

func (e *evaluator) print(s state.T, f special.Form, args cell.I) state.T {
	v, err := validate.Form(f.String(), args, 1, 1)
	if err != nil {
		return s.Fail(err)
	}

	c, err := e.value(s, v[0])
	if err != nil {
		return s.Fail(err)
	}

	if f == special.PrintDebug {
		_, err = fmt.Fprintln(e.out, commands.Dump(c))
	} else {
		_, err = fmt.Fprint(e.out, commands.Display(c))
	}

	if err != nil {
		return s.Fail(fault.Wrap(fault.IOFailure, err))
	}

	return s.WithExpr(pair.Null)
}
