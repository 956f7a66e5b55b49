// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Backing-storage allocators for segmented buffers.
// Implements heap, page/hugepage-backed (Linux) and recycling allocators
// behind the api.Allocator contract, with atomic resource accounting.
// Platform specifics live behind build tags.
// See heap.go, mmap_linux.go, recycler.go for implementation details.
package alloc
