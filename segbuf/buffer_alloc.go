// File: segbuf/buffer_alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocator-backed construction: the backing array is carved out of one
// raw block obtained from an api.Allocator (mmap, hugepages, recycled
// slabs) and viewed as []T without per-element initialization.

package segbuf

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-segbuf/api"
)

// NewIn constructs a buffer whose storage comes from a single a.Alloc
// call of total*sizeof(T) bytes. The block lives outside the collector's
// pointer map, so T must be trivially copyable: no pointers, maps,
// slices, channels, funcs or interfaces anywhere in it. The block must be
// aligned for T; page-backed allocators always are.
//
// Allocation failure propagates with nothing retained: on error no buffer
// exists and the allocator holds no outstanding block. A zero total never
// calls the allocator. Unlike New, the initial contents are whatever the
// allocator handed out; recycled blocks are not zeroed.
func NewIn[T any, K comparable](a api.Allocator, schema *Schema[K], specs ...Spec[K]) (*Buffer[T, K], error) {
	ends, err := boundaries(schema, specs)
	if err != nil {
		return nil, err
	}
	b := &Buffer[T, K]{schema: schema, ends: ends}
	total := totalOf(ends)
	if total == 0 {
		return b, nil
	}

	// Via a pointer so interface element types resolve to their interface
	// type instead of a nil reflect.Type.
	elem := reflect.TypeOf((*T)(nil)).Elem()
	if hasPointers(elem) {
		return nil, fmt.Errorf("%w: %s", api.ErrElementType, elem)
	}
	size := int(elem.Size())
	if size == 0 {
		// Zero-size elements need no storage; make allocates nothing.
		b.data = make([]T, total)
		return b, nil
	}

	block, err := a.Alloc(total * size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrAllocFailed, err)
	}
	if len(block) < total*size {
		a.Free(block)
		return nil, fmt.Errorf("%w: allocator returned %d bytes, need %d",
			api.ErrAllocFailed, len(block), total*size)
	}
	p := unsafe.Pointer(unsafe.SliceData(block))
	if uintptr(p)%uintptr(elem.Align()) != 0 {
		a.Free(block)
		return nil, fmt.Errorf("%w: block at %#x, element alignment %d",
			api.ErrBadAlignment, uintptr(p), elem.Align())
	}
	b.data = unsafe.Slice((*T)(p), total)
	b.free = func() { a.Free(block) }
	return b, nil
}

// hasPointers reports whether values of t embed pointers the collector
// would need to scan.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
