//go:build !linux
// +build !linux

// File: alloc/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-Linux stub for the mmap allocator: page semantics are unavailable,
// so blocks come from the Go heap with the same accounting surface.

package alloc

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-segbuf/api"
)

// Mmap falls back to heap blocks on platforms without mmap support.
type Mmap struct {
	hugepages  bool
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

var _ api.Allocator = (*Mmap)(nil)

// NewMmap creates the stub allocator; the hugepages flag is recorded but
// has no effect here.
func NewMmap(hugepages bool) *Mmap {
	return &Mmap{hugepages: hugepages}
}

// Alloc returns a zeroed heap block of exactly n bytes.
func (m *Mmap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: block size %d", api.ErrInvalidArgument, n)
	}
	if n == 0 {
		return nil, nil
	}
	m.totalAlloc.Add(1)
	m.bytesInUse.Add(int64(n))
	return make([]byte, n), nil
}

// Free releases a block; the collector does the actual reclaim.
func (m *Mmap) Free(block []byte) {
	if block == nil {
		return
	}
	m.totalFree.Add(1)
	m.bytesInUse.Add(-int64(len(block)))
}

// Stats reports allocation accounting.
func (m *Mmap) Stats() api.AllocStats {
	ta := m.totalAlloc.Load()
	tf := m.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: ta,
		TotalFree:  tf,
		InUse:      ta - tf,
		BytesInUse: m.bytesInUse.Load(),
	}
}
