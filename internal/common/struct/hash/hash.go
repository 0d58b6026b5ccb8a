// Released under an MIT license. See LICENSE.

// Package hash provides the name to value mapping type.
//
// A hash backs both tiers of the environment and the snapshot a closure
// takes of its free variables. Local frames are never changed once they
// are shared; they are extended by copying (see With). The global tier is
// the only hash that is written in place, so every access is guarded.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Copy creates a new hash with every association in h.
func (h *hash) Copy() *hash {
	if h == nil {
		return New()
	}

	h.RLock()
	defer h.RUnlock()

	fresh := &hash{m: make(map[string]cell.I, len(h.m)+1)}
	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
}

// Get retrieves the value associated with the name k in the hash h.
// It returns nil if there is no such value.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Has returns true if the name k is associated with a value in h.
func (h *hash) Has(k string) bool {
	return h.Get(k) != nil
}

// Merge associates every name in o with its value in h.
// Names already in h are overwritten.
func (h *hash) Merge(o *hash) {
	if o == nil || o == h {
		return
	}

	o.RLock()
	defer o.RUnlock()

	h.Lock()
	defer h.Unlock()

	for k, v := range o.m {
		h.m[k] = v
	}
}

// Names returns the sorted names in the hash h.
func (h *hash) Names() []string {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	if h == nil {
		return 0
	}

	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}

// With returns a copy of h that also associates k with v. The hash h is
// not changed.
func (h *hash) With(k string, v cell.I) *hash {
	fresh := h.Copy()
	fresh.m[k] = v

	return fresh
}
