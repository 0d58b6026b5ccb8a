// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells
// and end with Null.
package list

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

// Length returns the number of elements in list. For an improper list
// this is the number of pairs in its spine.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for pair.Is(list) {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Improper(pair.Null, elements...)
}

// Improper creates a new list composed of all of the elements in elements
// and ending with tail instead of Null.
func Improper(tail cell.I, elements ...cell.I) cell.I {
	l := tail

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Proper returns true if list is Null or a chain of pairs ending in Null.
// The list must be non-circular.
func Proper(list cell.I) bool {
	for pair.Is(list) {
		list = pair.Cdr(list)
	}

	return list == pair.Null
}

// Slice returns the elements of list as a Go slice. The second result is
// false if list is not a proper list.
// The list must be non-circular.
func Slice(list cell.I) ([]cell.I, bool) {
	s := make([]cell.I, 0, Length(list))

	for pair.Is(list) {
		s = append(s, pair.Car(list))

		list = pair.Cdr(list)
	}

	return s, list == pair.Null
}
