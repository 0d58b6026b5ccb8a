// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
)

// Display returns the text of c as print writes it: strings raw and
// everything else in its literal form.
func Display(c cell.I) string {
	if str.Is(c) {
		return str.To(c).String()
	}

	return literal.String(c)
}

func concatenate(a, b cell.I) cell.I {
	return str.New(Display(a) + Display(b))
}
