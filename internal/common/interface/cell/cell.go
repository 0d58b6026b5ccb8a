// Released under an MIT license. See LICENSE.

// Package cell defines the interface for every expression.
package cell

// I (cell) is the basic unit of code and data. Cells are immutable once
// built so they may be shared freely between lists.
type I interface {
	Equal(c I) bool
	Name() string
}
