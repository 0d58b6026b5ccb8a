// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

func access(f special.Form, c cell.I) (cell.I, error) {
	if !pair.Is(c) {
		return nil, mismatch(f, "a pair", c)
	}

	if f == special.Car {
		return pair.Car(c), nil
	}

	return pair.Cdr(c), nil
}
