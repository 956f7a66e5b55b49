package control_test

import (
	"testing"

	"github.com/momentics/hioload-segbuf/alloc"
	"github.com/momentics/hioload-segbuf/api"
	"github.com/momentics/hioload-segbuf/control"
)

func TestRegistrySetAndSnapshot(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Set("buffers.built", 3)
	snap := mr.GetSnapshot()
	if snap["buffers.built"] != 3 {
		t.Errorf("snapshot = %+v", snap)
	}
	snap["buffers.built"] = 99
	if mr.GetSnapshot()["buffers.built"] != 3 {
		t.Error("snapshot is not a copy")
	}
}

func TestAllocatorProbe(t *testing.T) {
	mr := control.NewMetricsRegistry()
	h := alloc.NewHeap()
	mr.RegisterAllocator("heap", h)

	block, err := h.Alloc(64)
	if err != nil {
		t.Fatal(err)
	}
	state := mr.DumpState()
	st, ok := state["alloc.heap"].(api.AllocStats)
	if !ok {
		t.Fatalf("probe output %T, want api.AllocStats", state["alloc.heap"])
	}
	if st.InUse != 1 || st.BytesInUse != 64 {
		t.Errorf("probe stats = %+v", st)
	}
	h.Free(block)
	st = mr.DumpState()["alloc.heap"].(api.AllocStats)
	if st.InUse != 0 {
		t.Errorf("probe not live: %+v", st)
	}
}

func TestDumpStateMergesMetricsAndProbes(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Set("static", "value")
	mr.RegisterProbe("dynamic", func() any { return 42 })
	state := mr.DumpState()
	if state["static"] != "value" || state["dynamic"] != 42 {
		t.Errorf("DumpState = %+v", state)
	}
}
