package segbuf_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momentics/hioload-segbuf/alloc"
	"github.com/momentics/hioload-segbuf/api"
	"github.com/momentics/hioload-segbuf/fake"
	"github.com/momentics/hioload-segbuf/segbuf"
)

func TestNewInAllocatesExactlyOnce(t *testing.T) {
	fa := fake.NewAllocator()
	b, err := segbuf.NewIn[uint64](fa, pipeline,
		segbuf.Segment(levels, 10),
		segbuf.Segment(results, 20),
	)
	if err != nil {
		t.Fatal(err)
	}
	if fa.Allocs() != 1 {
		t.Fatalf("Allocs = %d, want 1", fa.Allocs())
	}
	st := fa.Stats()
	if st.BytesInUse != 30*8 {
		t.Errorf("BytesInUse = %d, want %d", st.BytesInUse, 30*8)
	}
	b.Release()
	if fa.Outstanding() != 0 {
		t.Errorf("Outstanding = %d after Release, want 0", fa.Outstanding())
	}
}

func TestNewInRoundTrip(t *testing.T) {
	b, err := segbuf.NewIn[uint64](alloc.NewHeap(), pipeline,
		segbuf.Segment(levels, 4),
		segbuf.Segment(results, 5),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()
	lv := b.Get(levels)
	rs := b.Get(results)
	for i := range lv {
		lv[i] = 0xAA00 + uint64(i)
	}
	for i := range rs {
		rs[i] = 0xBB00 + uint64(i)
	}
	for i := range lv {
		if lv[i] != 0xAA00+uint64(i) {
			t.Fatalf("levels[%d] = %#x", i, lv[i])
		}
	}
	for i := range rs {
		if rs[i] != 0xBB00+uint64(i) {
			t.Fatalf("results[%d] = %#x", i, rs[i])
		}
	}
}

func TestNewInZeroTotalSkipsAllocator(t *testing.T) {
	fa := fake.NewAllocator()
	b, err := segbuf.NewIn[float64](fa, pipeline,
		segbuf.Segment(levels, 0),
		segbuf.Segment(results, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	if fa.Allocs() != 0 {
		t.Errorf("Allocs = %d, want 0 for zero total", fa.Allocs())
	}
	if b.TotalSize() != 0 {
		t.Errorf("TotalSize = %d, want 0", b.TotalSize())
	}
}

func TestNewInValidatesBeforeAllocating(t *testing.T) {
	fa := fake.NewAllocator()
	_, err := segbuf.NewIn[float64](fa, pipeline,
		segbuf.Segment(results, 5), // wrong order
		segbuf.Segment(levels, 5),
	)
	if !errors.Is(err, api.ErrSpecMismatch) {
		t.Fatalf("err = %v, want ErrSpecMismatch", err)
	}
	if fa.Allocs() != 0 {
		t.Errorf("allocator was called before validation completed")
	}
}

func TestNewInAllocFailureRetainsNothing(t *testing.T) {
	fa := fake.NewAllocator()
	fa.FailNext(fmt.Errorf("mmap: cannot allocate memory"))
	b, err := segbuf.NewIn[float64](fa, pipeline,
		segbuf.Segment(levels, 1<<20),
		segbuf.Segment(results, 1<<20),
	)
	if !errors.Is(err, api.ErrAllocFailed) {
		t.Fatalf("err = %v, want ErrAllocFailed", err)
	}
	if b != nil {
		t.Error("got a buffer despite allocation failure")
	}
	if fa.Outstanding() != 0 {
		t.Errorf("Outstanding = %d after failed construction, want 0", fa.Outstanding())
	}
}

func TestNewInRejectsPointerElements(t *testing.T) {
	type node struct {
		next *node
		val  float64
	}
	fa := fake.NewAllocator()
	s := segbuf.MustSchema("nodes")
	_, err := segbuf.NewIn[node](fa, s, segbuf.Segment("nodes", 8))
	if !errors.Is(err, api.ErrElementType) {
		t.Fatalf("err = %v, want ErrElementType", err)
	}
	if fa.Allocs() != 0 {
		t.Error("allocator was called for a rejected element type")
	}
}

func TestNewInRejectsInterfaceElements(t *testing.T) {
	fa := fake.NewAllocator()
	s := segbuf.MustSchema("vals")
	_, err := segbuf.NewIn[any](fa, s, segbuf.Segment("vals", 4))
	if !errors.Is(err, api.ErrElementType) {
		t.Fatalf("err = %v, want ErrElementType", err)
	}
	if fa.Allocs() != 0 {
		t.Error("allocator was called for a rejected element type")
	}
}

func TestNewInAcceptsPointerFreeStructs(t *testing.T) {
	type level struct {
		price float64
		qty   uint32
		flags [4]byte
	}
	s := segbuf.MustSchema("bid", "ask")
	b, err := segbuf.NewIn[level](alloc.NewHeap(), s,
		segbuf.Segment("bid", 3),
		segbuf.Segment("ask", 3),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()
	bid := b.Get("bid")
	bid[2] = level{price: 99.5, qty: 7, flags: [4]byte{1, 2, 3, 4}}
	if got := b.Get("bid")[2]; got.price != 99.5 || got.qty != 7 {
		t.Errorf("struct element round-trip failed: %+v", got)
	}
}
