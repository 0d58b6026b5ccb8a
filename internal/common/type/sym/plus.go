// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
)

// Plus is a symbol plus its lexical location.
type Plus struct {
	*sym
	source *loc.T
}

// Token creates a Plus from a token.T.
func Token(t *token.T) cell.I {
	p := symnew(t.Value())

	return &Plus{p, t.Source()}
}

// Source returns the lexical location for a sym that has it.
func (p *Plus) Source() *loc.T {
	return p.source
}

// Source returns the lexical location of c, if it has one.
func Source(c cell.I) *loc.T {
	if p, ok := c.(*Plus); ok {
		return p.source
	}

	return nil
}
