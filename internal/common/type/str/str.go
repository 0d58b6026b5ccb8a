// Released under an MIT license. See LICENSE.

// Package str provides the string type.
package str

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the double-quoted representation of the str s.
func (s *str) Literal() string {
	return Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Quote returns s in double quotes with backslashes, double quotes and
// control characters escaped.
func Quote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2) //nolint:gomnd
	b.WriteByte('"')

	for width := 0; len(s) > 0; s = s[width:] {
		r, w := utf8.DecodeRuneInString(s)
		width = w

		switch {
		case r == utf8.RuneError && w == 1:
			b.WriteString(`\x`)
			b.WriteByte(hex(s[0] >> 4))
			b.WriteByte(hex(s[0]))
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < ' ' || r == 0x7f:
			b.WriteString(`\x`)
			b.WriteByte(hex(byte(r) >> 4))
			b.WriteByte(hex(byte(r)))
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

func hex(n byte) byte {
	return "0123456789abcdef"[n&0xF]
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)
}
