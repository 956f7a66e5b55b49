// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Abstract backing-storage allocation for segmented buffers: raw block
// allocators with resource accounting.

package api

// Allocator abstracts raw backing-storage management.
//
// Alloc may round the block up (to a page or hugepage boundary); callers
// use the leading n bytes and must hand the identical slice back to Free.
// Blocks are not guaranteed to be zeroed unless the implementation says so.
type Allocator interface {
	// Alloc returns a block of at least n bytes. A zero n returns a nil
	// block with no accounting; Free accepts nil as a no-op.
	Alloc(n int) ([]byte, error)

	// Free returns a block obtained from Alloc; it must not be used afterwards.
	Free(block []byte)

	// Stats exposes resource/accounting metrics for observability.
	Stats() AllocStats
}

// AllocStats aggregates block allocation/reuse stats.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
	Reused     int64
}
