// Package segbuf
// Author: momentics <momentics@gmail.com>
//
// Single-allocation segmented buffers for high-performance numeric and IO
// pipelines. One contiguous backing array is carved into independently
// named, fixed-length, non-overlapping segments, so logically distinct
// arrays share an allocation for locality while staying individually
// addressable by name. Layout is computed once at construction from an
// ordered schema of distinct names and never changes; segment views are
// O(1) zero-copy sub-slices.
// See schema.go, buffer.go, buffer_alloc.go for implementation details.
package segbuf
