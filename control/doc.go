// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection for allocators and buffer configurations:
// a thread-safe metrics registry with dynamic probe registration.
// See metrics.go for implementation details.
package control
