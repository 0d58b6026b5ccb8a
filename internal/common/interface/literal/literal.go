// Released under an MIT license. See LICENSE.

// Package literal defines the interface for types that can be displayed.
package literal

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (literal) is any type that has a textual representation.
type I interface {
	Literal() string
}

// String returns the display representation for a cell.
func String(c cell.I) string {
	if c == nil {
		return "()"
	}

	l, ok := c.(I)
	if !ok {
		// Not every cell has a readable representation.
		return "#" + c.Name()
	}

	return l.Literal()
}
