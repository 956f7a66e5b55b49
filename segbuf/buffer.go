// File: segbuf/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer owns one contiguous backing array and the immutable boundary
// table (prefix sums of segment lengths) that carves it into the named
// segments declared by its schema.

package segbuf

import (
	"fmt"

	"github.com/momentics/hioload-segbuf/api"
)

// Buffer carves a single backing array of T into the segments declared by
// its schema. The boundary table is fixed at construction; Get hands out
// zero-copy sub-slices and no operation after construction allocates.
//
// Buffer values are shared by pointer. Duplicating the backing storage is
// deliberately explicit via Clone, never implicit.
type Buffer[T any, K comparable] struct {
	schema *Schema[K]
	ends   []int // boundary table: cumulative end offsets, one per name
	data   []T
	free   func() // returns the backing block to its allocator, nil for heap
	done   bool   // set by Release; terminal
}

// Compile-time interface compliance.
var _ api.SegmentedBuffer[byte, string] = (*Buffer[byte, string])(nil)

// New constructs a heap-backed buffer from one spec per declared name,
// supplied in declaration order. Validation completes before the single
// make call; a zero total keeps the backing slice nil and allocates
// nothing. Heap storage is zeroed.
func New[T any, K comparable](schema *Schema[K], specs ...Spec[K]) (*Buffer[T, K], error) {
	ends, err := boundaries(schema, specs)
	if err != nil {
		return nil, err
	}
	b := &Buffer[T, K]{schema: schema, ends: ends}
	if total := totalOf(ends); total > 0 {
		b.data = make([]T, total)
	}
	return b, nil
}

// boundaries validates specs against the schema and builds the boundary
// table. Wrong arity, wrong name, wrong order and negative counts all fail
// here, before any allocation is attempted.
func boundaries[K comparable](schema *Schema[K], specs []Spec[K]) ([]int, error) {
	if len(specs) != schema.Len() {
		return nil, fmt.Errorf("%w: schema declares %d names, got %d specs",
			api.ErrSpecMismatch, schema.Len(), len(specs))
	}
	ends := make([]int, len(specs))
	cur := 0
	for i, sp := range specs {
		if sp.Name != schema.names[i] {
			return nil, fmt.Errorf("%w: spec %d is %v, schema declares %v",
				api.ErrSpecMismatch, i, sp.Name, schema.names[i])
		}
		if sp.Count < 0 {
			return nil, fmt.Errorf("%w: segment %v requested %d elements",
				api.ErrNegativeCount, sp.Name, sp.Count)
		}
		cur += sp.Count
		if cur < 0 {
			return nil, fmt.Errorf("%w: total element count overflows at segment %v",
				api.ErrInvalidArgument, sp.Name)
		}
		ends[i] = cur
	}
	return ends, nil
}

func totalOf(ends []int) int {
	if len(ends) == 0 {
		return 0
	}
	return ends[len(ends)-1]
}

// Get returns the zero-copy view over the segment reserved for name.
// Writes through the view mutate the buffer; views for distinct names
// never alias. The view's capacity is clamped to the segment, so append
// cannot spill into the neighbour segment.
//
// An undeclared name, or a call after Release, is a usage defect and
// panics with a structured *api.Error.
func (b *Buffer[T, K]) Get(name K) []T {
	i, ok := b.schema.Index(name)
	if !ok {
		panic(api.NewError(api.ErrCodeUnknownName,
			fmt.Sprintf("segment %v not declared in schema", name)))
	}
	if b.done {
		panic(api.NewError(api.ErrCodeReleased, "Get on released buffer"))
	}
	start := 0
	if i > 0 {
		start = b.ends[i-1]
	}
	end := b.ends[i]
	return b.data[start:end:end]
}

// Range reports the half-open element range [start, end) reserved for
// name within the backing array.
func (b *Buffer[T, K]) Range(name K) (start, end int, ok bool) {
	i, ok := b.schema.Index(name)
	if !ok {
		return 0, 0, false
	}
	if i > 0 {
		start = b.ends[i-1]
	}
	return start, b.ends[i], true
}

// TotalSize reports the summed length of all segments.
func (b *Buffer[T, K]) TotalSize() int { return totalOf(b.ends) }

// Schema returns the buffer's configuration.
func (b *Buffer[T, K]) Schema() *Schema[K] { return b.schema }

// Clone returns a heap-backed deep copy sharing no storage with b.
// Duplication is explicit so the allocation cost stays visible at the
// call site.
func (b *Buffer[T, K]) Clone() *Buffer[T, K] {
	if b.done {
		panic(api.NewError(api.ErrCodeReleased, "Clone on released buffer"))
	}
	c := &Buffer[T, K]{schema: b.schema, ends: append([]int(nil), b.ends...)}
	if len(b.data) > 0 {
		c.data = make([]T, len(b.data))
		copy(c.data, b.data)
	}
	return c
}

// Release returns allocator-backed storage to its allocator and leaves
// the buffer terminal: previously obtained views must be dropped, and any
// further Get or Clone panics. Heap-backed buffers may skip Release; the
// collector reclaims them. Idempotent.
func (b *Buffer[T, K]) Release() {
	if b.done {
		return
	}
	b.done = true
	b.data = nil
	if b.free != nil {
		b.free()
		b.free = nil
	}
}
