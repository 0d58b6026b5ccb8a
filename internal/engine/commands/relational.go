// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

func relational(f special.Form, a, b cell.I) (cell.I, error) {
	var cmp int

	switch {
	case num.IsInt(a) && num.IsInt(b):
		cmp = compare(num.ToInt(a), num.ToInt(b))
	case num.Is(a) && num.Is(b):
		cmp = compare(num.ToFloat(a), num.ToFloat(b))
	case str.Is(a) && str.Is(b):
		cmp = compare(str.To(a).String(), str.To(b).String())
	default:
		return nil, mismatch(f, "numbers or strings", a, b)
	}

	if f == special.Less {
		return Bool(cmp < 0), nil
	}

	return Bool(cmp > 0), nil
}

type ordered interface {
	~int64 | ~float64 | ~string
}

// compare returns 0 when either operand is NaN so that every comparison
// with NaN is false.
func compare[T ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
