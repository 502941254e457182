// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Equal reports whether a and b are structurally equal: the same
// length with pairwise-equal elements in the same order. Node identity
// plays no part; two independently built lists with the same elements
// are equal, and all empty lists of one element type are equal.
//
// Cached lengths give an O(1) mismatch short-circuit; a shared suffix
// (common after Tail or Concat) ends the walk early.
func Equal[T comparable](a, b List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	// Equal lengths mean x and y reach nil together, so x == y covers
	// both the shared-suffix case and normal termination.
	x, y := a.root, b.root
	for x != y {
		if x.head != y.head {
			return false
		}
		x, y = x.tail, y.tail
	}
	return true
}

// EqualFunc is like [Equal] but compares elements with eq, which
// permits element types that are not comparable and comparisons across
// two element types.
func EqualFunc[T1, T2 any](a List[T1], b List[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	x, y := a.root, b.root
	for x != nil {
		if !eq(x.head, y.head) {
			return false
		}
		x, y = x.tail, y.tail
	}
	return true
}
