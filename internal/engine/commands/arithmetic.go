// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

func arithmetic(f special.Form, a, b cell.I) (cell.I, error) {
	if num.IsInt(a) && num.IsInt(b) {
		x, y := num.ToInt(a), num.ToInt(b)

		switch f {
		case special.Add:
			return num.NewInt(x + y), nil
		case special.Sub:
			return num.NewInt(x - y), nil
		case special.Mul:
			return num.NewInt(x * y), nil
		}

		if y == 0 {
			return nil, fault.New(fault.DivisionByZero, "%d / 0", x)
		}

		// Truncates toward zero. The most negative value divided by -1
		// wraps back to itself.
		return num.NewInt(x / y), nil
	}

	if !num.Is(a) || !num.Is(b) {
		return nil, mismatch(f, "numbers", a, b)
	}

	x, y := num.ToFloat(a), num.ToFloat(b)

	switch f {
	case special.Add:
		return num.NewFloat(x + y), nil
	case special.Sub:
		return num.NewFloat(x - y), nil
	case special.Mul:
		return num.NewFloat(x * y), nil
	}

	return num.NewFloat(x / y), nil
}
