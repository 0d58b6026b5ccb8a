// Released under an MIT license. See LICENSE.

// Package special enumerates the reserved identifiers: the special forms,
// the primitive operations and the catch-all parameter marker. A head
// identifier is resolved to a Form once and dispatched with a switch.
package special

import (
	"sort"
)

// Form identifies a reserved identifier.
type Form int

// Reserved forms.
const (
	None Form = iota

	// Special forms.
	Def
	Defmacro
	Eval
	If
	Lambda
	Load
	Print
	PrintDebug

	// Binary primitives.
	Add
	Cons
	Div
	Equal
	Greater
	Less
	Mul
	Str
	Sub

	// Unary primitives.
	Car
	Cdr
	IsFloat
	IsIdent
	IsInteger
	IsLambda
	IsList
	IsMacro
	IsNil
	IsQuasiquote
	IsQuote
	IsString
	IsUnquote

	// Catch-all parameter marker.
	Rest
)

//nolint:gochecknoglobals
var (
	forms = map[string]Form{
		"&":           Rest,
		"*":           Mul,
		"+":           Add,
		"-":           Sub,
		"/":           Div,
		"<":           Less,
		"=":           Equal,
		">":           Greater,
		"car":         Car,
		"cdr":         Cdr,
		"cons":        Cons,
		"def":         Def,
		"defmacro":    Defmacro,
		"eval":        Eval,
		"float?":      IsFloat,
		"ident?":      IsIdent,
		"if":          If,
		"integer?":    IsInteger,
		"lambda":      Lambda,
		"lambda?":     IsLambda,
		"list?":       IsList,
		"load":        Load,
		"macro?":      IsMacro,
		"nil?":        IsNil,
		"print":       Print,
		"print-debug": PrintDebug,
		"quasiquote?": IsQuasiquote,
		"quote?":      IsQuote,
		"str":         Str,
		"string?":     IsString,
		"unquote?":    IsUnquote,
	}

	names = func() map[Form]string {
		m := make(map[Form]string, len(forms))
		for k, v := range forms {
			m[v] = k
		}

		return m
	}()
)

// Lookup returns the form named name or None.
func Lookup(name string) Form {
	return forms[name]
}

// Names returns the sorted names of all reserved identifiers.
func Names() []string {
	s := make([]string, 0, len(forms))
	for k := range forms {
		s = append(s, k)
	}

	sort.Strings(s)

	return s
}

// Reserved returns true if name may not be bound.
func Reserved(name string) bool {
	return forms[name] != None
}

// Arity returns the number of evaluated operands a primitive takes or
// zero for anything that is not a primitive.
func (f Form) Arity() int {
	switch {
	case f >= Add && f <= Sub:
		return 2 //nolint:gomnd
	case f >= Car && f <= IsUnquote:
		return 1
	}

	return 0
}

// Primitive returns true if f evaluates all of its operands.
func (f Form) Primitive() bool {
	return f.Arity() > 0
}

// String returns the identifier for f.
func (f Form) String() string {
	if s, ok := names[f]; ok {
		return s
	}

	return "none"
}
