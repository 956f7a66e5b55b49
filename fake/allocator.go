// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocator implementations for testing.

package fake

import (
	"sync"

	"github.com/momentics/hioload-segbuf/api"
)

// Allocator is a counting api.Allocator test double. It can be primed to
// fail, and records outstanding blocks so tests can assert that failed
// construction retains nothing.
type Allocator struct {
	mu       sync.Mutex
	failNext error
	allocs   int
	frees    int
	live     map[*byte]int // identity of first byte -> block length
}

var _ api.Allocator = (*Allocator)(nil)

// NewAllocator creates an empty fake allocator.
func NewAllocator() *Allocator {
	return &Allocator{live: make(map[*byte]int)}
}

// FailNext primes the next Alloc call to return err.
func (f *Allocator) FailNext(err error) {
	f.mu.Lock()
	f.failNext = err
	f.mu.Unlock()
}

// Alloc returns a zeroed heap block of exactly n bytes, or the primed error.
func (f *Allocator) Alloc(n int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	block := make([]byte, n)
	f.allocs++
	if n > 0 {
		f.live[&block[0]] = n
	}
	return block, nil
}

// Free forgets a block previously handed out by Alloc. A nil block is a
// no-op, uncounted.
func (f *Allocator) Free(block []byte) {
	if block == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frees++
	if len(block) > 0 {
		delete(f.live, &block[0])
	}
}

// Allocs reports how many Alloc calls succeeded.
func (f *Allocator) Allocs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allocs
}

// Frees reports how many Free calls were made.
func (f *Allocator) Frees() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frees
}

// Outstanding reports the number of live non-empty blocks.
func (f *Allocator) Outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// Stats reports allocation accounting.
func (f *Allocator) Stats() api.AllocStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bytes int64
	for _, n := range f.live {
		bytes += int64(n)
	}
	return api.AllocStats{
		TotalAlloc: int64(f.allocs),
		TotalFree:  int64(f.frees),
		InUse:      int64(len(f.live)),
		BytesInUse: bytes,
	}
}
