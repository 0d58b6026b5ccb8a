// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where tokens and identifiers
// came from so that errors can point at them.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

type loc = T

func (l *loc) String() string {
	if l == nil {
		return "-"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
