// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for system-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration, plus
// live probes evaluated at snapshot time.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-segbuf/api"
)

// MetricsRegistry holds mutable metrics and live probes.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	probes  map[string]func() any
	updated time.Time
}

var _ api.Debug = (*MetricsRegistry)(nil)

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
		probes:  make(map[string]func() any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RegisterProbe dynamically registers a debug probe evaluated on every
// DumpState call.
func (mr *MetricsRegistry) RegisterProbe(name string, fn func() any) {
	mr.mu.Lock()
	mr.probes[name] = fn
	mr.mu.Unlock()
}

// RegisterAllocator wires an allocator's live stats as a probe.
func (mr *MetricsRegistry) RegisterAllocator(name string, a api.Allocator) {
	mr.RegisterProbe("alloc."+name, func() any { return a.Stats() })
}

// GetSnapshot returns the latest stored metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// DumpState emits stored metrics merged with the output of every probe.
func (mr *MetricsRegistry) DumpState() map[string]any {
	mr.mu.RLock()
	out := make(map[string]any, len(mr.metrics)+len(mr.probes))
	for k, v := range mr.metrics {
		out[k] = v
	}
	probes := make(map[string]func() any, len(mr.probes))
	for k, fn := range mr.probes {
		probes[k] = fn
	}
	mr.mu.RUnlock()
	// Probes run outside the lock; they may call back into the registry.
	for k, fn := range probes {
		out[k] = fn()
	}
	return out
}
