// Released under an MIT license. See LICENSE.

package num

import "github.com/michaelmacinnis/lisp/internal/common/interface/cell"

// IsInt returns true if c is an *Int.
func IsInt(c cell.I) bool {
	_, ok := c.(*Int)

	return ok
}

// IsFloat returns true if c is a *Float.
func IsFloat(c cell.I) bool {
	_, ok := c.(*Float)

	return ok
}

// Is returns true if c is either kind of number.
func Is(c cell.I) bool {
	return IsInt(c) || IsFloat(c)
}

// ToInt returns the value of c if c is an *Int; Otherwise it panics.
func ToInt(c cell.I) int64 {
	if t, ok := c.(*Int); ok {
		return int64(*t)
	}

	panic("not an " + intName)
}

// ToFloat returns the value of c promoted to float64 if c is a number;
// Otherwise it panics.
func ToFloat(c cell.I) float64 {
	switch t := c.(type) {
	case *Int:
		return float64(*t)
	case *Float:
		return float64(*t)
	}

	panic("not a number")
}
