// Package api
// Author: momentics
//
// Live introspection of allocators and buffer configurations.

package api

// Debug exposes runtime introspection for embedders: a snapshot of
// allocator accounting and any registered probes.
type Debug interface {
	// DumpState emits a snapshot of registered state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a named probe evaluated at
	// snapshot time.
	RegisterProbe(name string, fn func() any)
}
