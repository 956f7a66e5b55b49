//go:build linux
// +build linux

// File: alloc/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux mmap allocator: anonymous private mappings outside the Go heap,
// with optional 2 MiB hugepages. Hugepage reservation exhaustion falls
// back to regular page mappings; the fallback is logged, never silent.

package alloc

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-segbuf/api"
)

const hugePageSize = 2 << 20

// Mmap allocates page-backed blocks via anonymous mmap.
type Mmap struct {
	hugepages  bool
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

var _ api.Allocator = (*Mmap)(nil)

// NewMmap creates an mmap allocator. With hugepages set, each Alloc first
// attempts a MAP_HUGETLB mapping rounded to the 2 MiB boundary.
func NewMmap(hugepages bool) *Mmap {
	return &Mmap{hugepages: hugepages}
}

// Alloc maps a block of at least n bytes, rounded up to the page (or
// hugepage) boundary. The full mapped slice is returned; Free must
// receive it unshortened. Fresh mappings are zero-filled by the kernel.
func (m *Mmap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: block size %d", api.ErrInvalidArgument, n)
	}
	if n == 0 {
		return nil, nil
	}
	prot := unix.PROT_READ | unix.PROT_WRITE
	if m.hugepages {
		length := roundUp(n, hugePageSize)
		block, err := unix.Mmap(-1, 0, length, prot,
			unix.MAP_ANON|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
		if err == nil {
			m.account(length)
			return block, nil
		}
		logAlloc("hugepage mmap of %d bytes failed (%v), falling back to page mmap", length, err)
	}
	length := roundUp(n, os.Getpagesize())
	block, err := unix.Mmap(-1, 0, length, prot, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", length, err)
	}
	m.account(length)
	return block, nil
}

// Free unmaps a block returned by Alloc.
func (m *Mmap) Free(block []byte) {
	if block == nil {
		return
	}
	length := len(block)
	if err := unix.Munmap(block); err != nil {
		logAlloc("munmap of %d bytes failed: %v", length, err)
		return
	}
	m.totalFree.Add(1)
	m.bytesInUse.Add(-int64(length))
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

func (m *Mmap) account(length int) {
	m.totalAlloc.Add(1)
	m.bytesInUse.Add(int64(length))
}

func roundUp(n, to int) int {
	return ((n + to - 1) / to) * to
}
