// File: alloc/log.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocation event logging. Fallback paths (hugepage reservation
// exhausted, page mapping refused) report through a replaceable hook so
// embedders can route events into their structured logger.

package alloc

import "fmt"

// logAlloc reports allocation events (can be replaced with structured logger).
var logAlloc = func(msg string, args ...any) {
	fmt.Printf("[alloc] "+msg+"\n", args...)
}

// SetLogHook replaces the allocation event logger. A nil fn restores the
// default stdout hook.
func SetLogHook(fn func(msg string, args ...any)) {
	if fn == nil {
		fn = func(msg string, args ...any) {
			fmt.Printf("[alloc] "+msg+"\n", args...)
		}
	}
	logAlloc = fn
}
