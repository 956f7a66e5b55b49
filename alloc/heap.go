// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap allocator: plain Go-heap blocks with atomic accounting. Blocks are
// zeroed by make; Free only adjusts accounting and lets the collector
// reclaim the block once callers drop it.

package alloc

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-segbuf/api"
)

// Heap allocates blocks from the Go heap.
type Heap struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

var _ api.Allocator = (*Heap)(nil)

// NewHeap creates a heap allocator.
func NewHeap() *Heap { return &Heap{} }

// Alloc returns a zeroed block of exactly n bytes.
func (h *Heap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: block size %d", api.ErrInvalidArgument, n)
	}
	if n == 0 {
		return nil, nil
	}
	h.totalAlloc.Add(1)
	h.bytesInUse.Add(int64(n))
	return make([]byte, n), nil
}

// Free releases a block back; the collector does the actual reclaim.
func (h *Heap) Free(block []byte) {
	if block == nil {
		return
	}
	h.totalFree.Add(1)
	h.bytesInUse.Add(-int64(len(block)))
}

// Stats reports allocation accounting.
func (h *Heap) Stats() api.AllocStats {
	ta := h.totalAlloc.Load()
	tf := h.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: ta,
		TotalFree:  tf,
		InUse:      ta - tf,
		BytesInUse: h.bytesInUse.Load(),
	}
}
