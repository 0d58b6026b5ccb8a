// Released under an MIT license. See LICENSE.

// Package sym provides the identifier cell type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const (
	name  = "identifier"
	short = 3
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
// Identifiers are case-sensitive.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Cache enables (or disables) caching of all symbols.
func Cache(a bool) {
	cachel.Lock()
	defer cachel.Unlock()

	all = a
}

//nolint:gochecknoglobals
var (
	all    = false
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symnew(v string) *sym {
	p, ok, cacheable := symtry(v)
	if !ok {
		if cacheable {
			cachel.Lock()
			defer cachel.Unlock()

			if p, ok = cache[v]; ok {
				return p
			}
		}

		s := sym(v)
		p = &s

		if cacheable {
			cache[v] = p
		}
	}

	return p
}

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = all || len(v) <= short

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)
}
