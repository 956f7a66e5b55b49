// Package api
// Author: momentics
//
// Core contracts for single-allocation segmented buffers.
//
// A segmented buffer carves one contiguous backing array into named,
// fixed-length, non-overlapping segments. Layout is fixed at construction;
// all views are zero-copy sub-slices of the single allocation.

package api

// SegmentedBuffer is the access surface of one constructed buffer.
type SegmentedBuffer[T any, K comparable] interface {
	// Get returns the zero-copy view over the segment reserved for name.
	// Views for distinct names never alias.
	Get(name K) []T

	// Range reports the half-open element range [start, end) of name's
	// segment within the backing array.
	Range(name K) (start, end int, ok bool)

	// TotalSize reports the summed length of all segments.
	TotalSize() int

	// Release returns allocator-backed storage to its allocator.
	// After Release the buffer is terminal and must not be accessed.
	Release()
}
