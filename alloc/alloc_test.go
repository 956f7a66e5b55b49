package alloc_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-segbuf/alloc"
	"github.com/momentics/hioload-segbuf/api"
	"github.com/momentics/hioload-segbuf/fake"
)

func TestHeapAccounting(t *testing.T) {
	h := alloc.NewHeap()
	b1, err := h.Alloc(128)
	if err != nil {
		t.Fatal(err)
	}
	if len(b1) != 128 {
		t.Fatalf("len = %d, want 128", len(b1))
	}
	b2, err := h.Alloc(64)
	if err != nil {
		t.Fatal(err)
	}
	st := h.Stats()
	if st.TotalAlloc != 2 || st.InUse != 2 || st.BytesInUse != 192 {
		t.Errorf("stats after alloc = %+v", st)
	}
	h.Free(b1)
	h.Free(b2)
	st = h.Stats()
	if st.TotalFree != 2 || st.InUse != 0 || st.BytesInUse != 0 {
		t.Errorf("stats after free = %+v", st)
	}
}

func TestHeapRejectsNegativeSize(t *testing.T) {
	h := alloc.NewHeap()
	if _, err := h.Alloc(-1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestZeroSizeAllocContract(t *testing.T) {
	allocators := []api.Allocator{
		alloc.NewHeap(),
		alloc.NewMmap(false),
		alloc.NewRecycler(alloc.NewHeap(), 4),
		fake.NewAllocator(),
	}
	for _, a := range allocators {
		block, err := a.Alloc(0)
		if err != nil {
			t.Fatalf("%T: Alloc(0) = %v", a, err)
		}
		if block != nil {
			t.Errorf("%T: Alloc(0) returned a non-nil block", a)
		}
		if st := a.Stats(); st.TotalAlloc != 0 || st.BytesInUse != 0 {
			t.Errorf("%T: Alloc(0) was accounted: %+v", a, st)
		}
		a.Free(nil)
		if st := a.Stats(); st.TotalFree != 0 {
			t.Errorf("%T: Free(nil) was accounted: %+v", a, st)
		}
	}
}

func TestHeapBlocksAreZeroed(t *testing.T) {
	h := alloc.NewHeap()
	b, err := h.Alloc(256)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("block[%d] = %d, want 0", i, v)
		}
	}
}
