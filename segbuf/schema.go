// File: segbuf/schema.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Schema declares the ordered, distinct name set of one buffer
// configuration. Uniqueness is validated here, before any buffer of the
// configuration can exist.

package segbuf

import (
	"fmt"

	"github.com/momentics/hioload-segbuf/api"
)

// Schema is the ordered set of distinct segment names shared by every
// buffer of one configuration. Immutable after construction. Names carry
// no runtime data; any comparable key type works (small integer constants
// keep lookups cheapest).
type Schema[K comparable] struct {
	names []K
	index map[K]int
}

// NewSchema builds a schema from names in declaration order. Declaration
// order is the memory layout order of the segments. A duplicate name is a
// configuration defect and is rejected before any allocation can happen.
// Zero names is a legal, empty configuration.
func NewSchema[K comparable](names ...K) (*Schema[K], error) {
	index := make(map[K]int, len(names))
	for i, n := range names {
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("%w: %v", api.ErrDuplicateName, n)
		}
		index[n] = i
	}
	return &Schema[K]{
		names: append([]K(nil), names...),
		index: index,
	}, nil
}

// MustSchema is NewSchema for package-level declarations; it panics on a
// duplicate name so a malformed configuration fails at program start.
func MustSchema[K comparable](names ...K) *Schema[K] {
	s, err := NewSchema(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len reports the number of declared names.
func (s *Schema[K]) Len() int { return len(s.names) }

// Names returns a copy of the declared names in declaration order.
func (s *Schema[K]) Names() []K { return append([]K(nil), s.names...) }

// Index resolves a name to its declaration position in O(1).
func (s *Schema[K]) Index(name K) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
