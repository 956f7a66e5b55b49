// File: alloc/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recycler decorates an Allocator with bounded FIFO free-lists per block
// size, so buffers of one configuration built and released repeatedly
// reuse the same slabs instead of round-tripping to the backing
// allocator. Each individual buffer still performs exactly one
// allocation for its lifetime; recycling happens between lifetimes.

package alloc

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-segbuf/api"
)

const defaultRecyclerDepth = 64

// Recycler reuses freed blocks of adequate size.
type Recycler struct {
	backing api.Allocator
	depth   int // max retained blocks per size

	mu     sync.Mutex
	idle   map[int]*queue.Queue // block length -> FIFO of []byte
	reused atomic.Int64
}

var _ api.Allocator = (*Recycler)(nil)

// NewRecycler wraps backing with per-size free-lists holding up to depth
// blocks each. depth <= 0 selects the default.
func NewRecycler(backing api.Allocator, depth int) *Recycler {
	if depth <= 0 {
		depth = defaultRecyclerDepth
	}
	return &Recycler{
		backing: backing,
		depth:   depth,
		idle:    map[int]*queue.Queue{},
	}
}

// Alloc returns the smallest retained block of at least n bytes, or falls
// through to the backing allocator. Recycled blocks keep their previous
// contents; they are not zeroed.
func (r *Recycler) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return r.backing.Alloc(n)
	}
	r.mu.Lock()
	// Best fit over retained sizes. The size set is tiny in practice
	// (one per buffer configuration), so a scan beats bookkeeping.
	best := -1
	for size, q := range r.idle {
		if size >= n && q.Length() > 0 && (best < 0 || size < best) {
			best = size
		}
	}
	if best >= 0 {
		block := r.idle[best].Remove().([]byte)
		r.mu.Unlock()
		r.reused.Add(1)
		return block, nil
	}
	r.mu.Unlock()
	return r.backing.Alloc(n)
}

// Free retains the block for reuse, or hands it to the backing allocator
// once the free-list for its size is full.
func (r *Recycler) Free(block []byte) {
	if block == nil {
		return
	}
	r.mu.Lock()
	q, ok := r.idle[len(block)]
	if !ok {
		q = queue.New()
		r.idle[len(block)] = q
	}
	if q.Length() < r.depth {
		q.Add(block)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.backing.Free(block)
}

// Drain releases every retained block to the backing allocator.
func (r *Recycler) Drain() {
	r.mu.Lock()
	var blocks [][]byte
	for _, q := range r.idle {
		for q.Length() > 0 {
			blocks = append(blocks, q.Remove().([]byte))
		}
	}
	r.idle = map[int]*queue.Queue{}
	r.mu.Unlock()
	for _, b := range blocks {
		r.backing.Free(b)
	}
}

// Stats reports the backing allocator's accounting plus the reuse count.
func (r *Recycler) Stats() api.AllocStats {
	st := r.backing.Stats()
	st.Reused = r.reused.Load()
	return st
}
