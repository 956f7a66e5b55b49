// File: segbuf/spec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Segment specifications: the (name, count) pairs supplied at buffer
// construction, one per declared name, in declaration order.

package segbuf

// Spec records a reservation of Count elements for the segment Name.
// A spec is a pure value; it owns no storage.
type Spec[K comparable] struct {
	Name  K
	Count int
}

// Segment builds the specification reserving count elements for name.
// count may be zero, yielding an empty segment. Negative counts are
// rejected at construction.
func Segment[K comparable](name K, count int) Spec[K] {
	return Spec[K]{Name: name, Count: count}
}
