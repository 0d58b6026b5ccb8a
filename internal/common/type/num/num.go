// Released under an MIT license. See LICENSE.

// Package num provides the integer and float cell types.
//
// Integers are 64-bit signed values and floats are IEEE doubles. There is
// no larger numeric tower; arithmetic that mixes the two promotes to float.
package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const (
	intName   = "integer"
	floatName = "float"
)

// Int wraps Go's int64 type.
type Int int64

// Float wraps Go's float64 type.
type Float float64

// NewInt creates an integer cell.
func NewInt(i int64) cell.I {
	v := Int(i)

	return &v
}

// NewFloat creates a float cell.
func NewFloat(f float64) cell.I {
	v := Float(f)

	return &v
}

// Equal returns true if c is a number with the same value as i.
func (i *Int) Equal(c cell.I) bool {
	switch o := c.(type) {
	case *Int:
		return *i == *o
	case *Float:
		return float64(*i) == float64(*o)
	}

	return false
}

// Literal returns the decimal representation of i.
func (i *Int) Literal() string {
	return strconv.FormatInt(int64(*i), 10) //nolint:gomnd
}

// Name returns the type name for integers.
func (i *Int) Name() string {
	return intName
}

// String returns the decimal representation of i.
func (i *Int) String() string {
	return i.Literal()
}

// Equal returns true if c is a number with the same value as f.
func (f *Float) Equal(c cell.I) bool {
	switch o := c.(type) {
	case *Int:
		return float64(*f) == float64(*o)
	case *Float:
		return *f == *o
	}

	return false
}

// Literal returns the shortest representation of f that reads back as the
// same value. It always contains a decimal point. Infinities and NaN have
// no literal syntax; they render as +Inf, -Inf and NaN, which read back as
// identifiers.
func (f *Float) Literal() string {
	v := float64(*f)

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}

// Name returns the type name for floats.
func (f *Float) Name() string {
	return floatName
}

// String returns the text of f.
func (f *Float) String() string {
	return f.Literal()
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var i Int

	var f Float

	// Both number types are cells.
	_ = cell.I(&i)
	_ = cell.I(&f)

	// Both number types have literal representations.
	_ = literal.I(&i)
	_ = literal.I(&f)
}
