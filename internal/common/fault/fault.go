// Released under an MIT license. See LICENSE.

// Package fault provides the error type reported by the reader and the
// evaluator.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

// Error kinds.
const (
	Unknown Kind = iota
	UnboundIdentifier
	ReservedIdentifier
	MalformedSpecialForm
	MalformedParameterList
	ArityMismatch
	TypeMismatch
	NotCallable
	DivisionByZero
	ParseFailure
	IOFailure
)

// T (fault) is an error of a particular kind.
type T struct {
	Kind    Kind
	Message string
}

type fault = T

// New creates an error of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) error {
	return &fault{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of kind k from err. It returns nil if err is nil.
func Wrap(k Kind, err error) error {
	if err == nil {
		return nil
	}

	return &fault{Kind: k, Message: err.Error()}
}

// Error returns the kind of error followed by its message.
func (f *fault) Error() string {
	return f.Kind.String() + ": " + f.Message
}

// Is returns true if target is a fault of the same kind with no message.
// This lets callers write errors.Is(err, fault.Of(fault.TypeMismatch)).
func (f *fault) Is(target error) bool {
	t, ok := target.(*fault)

	return ok && t.Message == "" && t.Kind == f.Kind
}

// KindOf returns the kind of the first fault in err's chain or Unknown.
func KindOf(err error) Kind {
	var f *fault
	if errors.As(err, &f) {
		return f.Kind
	}

	return Unknown
}

// Of returns a fault of kind k with no message, for use with errors.Is.
func Of(k Kind) error {
	return &fault{Kind: k}
}

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case UnboundIdentifier:
		return "unbound identifier"
	case ReservedIdentifier:
		return "reserved identifier"
	case MalformedSpecialForm:
		return "malformed special form"
	case MalformedParameterList:
		return "malformed parameter list"
	case ArityMismatch:
		return "arity mismatch"
	case TypeMismatch:
		return "type mismatch"
	case NotCallable:
		return "not callable"
	case DivisionByZero:
		return "division by zero"
	case ParseFailure:
		return "parse failure"
	case IOFailure:
		return "i/o failure"
	case Unknown:
	}

	return "error"
}
