// Released under an MIT license. See LICENSE.

// Package validate checks the shape of argument lists.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

// Form returns between min and max elements of the proper list actual.
// Any other count is a malformed special form named label.
func Form(label string, actual cell.I, min, max int) ([]cell.I, error) {
	v, err := fixed(fault.MalformedSpecialForm, actual, min, max)
	if err != nil {
		return nil, fault.New(fault.MalformedSpecialForm, "%s: %s", label, message(err))
	}

	return v, nil
}

// Call is like Form but reports an arity mismatch.
func Call(label string, actual cell.I, min, max int) ([]cell.I, error) {
	v, err := fixed(fault.ArityMismatch, actual, min, max)
	if err != nil {
		return nil, fault.New(fault.ArityMismatch, "%s: %s", label, message(err))
	}

	return v, nil
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func fixed(k fault.Kind, actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := variadic(k, actual, min, max)
	if err != nil {
		return nil, err
	}

	if rest != pair.Null {
		if !list.Proper(rest) {
			return nil, fault.New(k, "improper argument list")
		}

		s := Count(max, "argument", "s")
		if min != max {
			s = fmt.Sprintf("%d to %s", min, s)
		}

		n := int(list.Length(actual))

		return nil, fault.New(k, "expected %s, passed %d", s, n)
	}

	return expected, nil
}

func message(err error) string {
	if f, ok := err.(*fault.T); ok { //nolint:errorlint
		return f.Message
	}

	return err.Error()
}

func variadic(k fault.Kind, actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if !pair.Is(actual) {
			if actual != pair.Null {
				return nil, nil, fault.New(k, "improper argument list")
			}

			if i < min {
				s := Count(min, "argument", "s")
				if min != max {
					s = "at least " + s
				}

				return nil, nil, fault.New(k, "expected %s, passed %d", s, i)
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}
