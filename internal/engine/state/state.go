// Released under an MIT license. See LICENSE.

// Package state provides the evaluation context: the current expression,
// the local and global bindings and the error, if any.
//
// A T is a value. Every operation returns a new T and leaves its receiver
// unchanged. The local tier is extended by copying so a frame never sees
// bindings made by its callees. The global tier is shared by every T
// created from the same root and is written in place.
package state

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

// T (state) is the unit of evaluation state.
type T struct {
	err    error
	expr   cell.I
	global *hash.T
	local  *hash.T
}

type state = T

// New creates a root state with an empty local tier over global.
func New(global *hash.T) T {
	if global == nil {
		global = hash.New()
	}

	return state{
		expr:   pair.Null,
		global: global,
		local:  hash.New(),
	}
}

// DefineGlobal binds name to v in the global tier. The binding is visible
// immediately to every state sharing that tier.
func (s state) DefineGlobal(name string, v cell.I) error {
	if special.Reserved(name) {
		return reserved(name)
	}

	s.global.Set(name, v)

	return nil
}

// Err returns the state's error or nil.
func (s state) Err() error {
	return s.err
}

// Expr returns the current expression.
func (s state) Expr() cell.I {
	return s.expr
}

// Extend returns a state whose local tier is a copy of s's with name bound
// to v. The local tier of s is not changed.
func (s state) Extend(name string, v cell.I) (T, error) {
	if special.Reserved(name) {
		return s, reserved(name)
	}

	s.local = s.local.With(name, v)

	return s, nil
}

// Fail returns a copy of s carrying err.
func (s state) Fail(err error) T {
	s.err = err

	return s
}

// Failf returns a copy of s carrying a fault of kind k.
func (s state) Failf(k fault.Kind, format string, args ...interface{}) T {
	return s.Fail(fault.New(k, format, args...))
}

// Failed returns true if s carries an error.
func (s state) Failed() bool {
	return s.err != nil
}

// Global returns the global tier.
func (s state) Global() *hash.T {
	return s.global
}

// Local returns the local tier.
func (s state) Local() *hash.T {
	return s.local
}

// Lookup resolves name in the local tier and then the global tier.
func (s state) Lookup(name string) (cell.I, error) {
	if v := s.local.Get(name); v != nil {
		return v, nil
	}

	if v := s.global.Get(name); v != nil {
		return v, nil
	}

	return nil, fault.New(fault.UnboundIdentifier, "%s", name)
}

// Merge returns a state whose local tier is a copy of s's overlaid with
// every binding in o. Bindings in o win.
func (s state) Merge(o *hash.T) T {
	if o.Size() == 0 {
		return s
	}

	local := s.local.Copy()
	local.Merge(o)

	s.local = local

	return s
}

// Result returns the current expression and error.
func (s state) Result() (cell.I, error) {
	return s.expr, s.err
}

// WithExpr returns a copy of s with the expression e.
func (s state) WithExpr(e cell.I) T {
	s.expr = e

	return s
}

// WithLocal returns a copy of s with the local tier l.
func (s state) WithLocal(l *hash.T) T {
	if l == nil {
		l = hash.New()
	}

	s.local = l

	return s
}

func reserved(name string) error {
	return fault.New(fault.ReservedIdentifier, "%s", name)
}
