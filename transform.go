// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Transformations producing derived lists.
//
// Each traversal visits every element exactly once, front to back, and
// accumulates by O(1) prepends into a reversed intermediate chain that
// is reversed once at the end. Total cost is O(n); appending to the end
// of a cons list per element would be O(n²) and is never done.

// Map applies f to every element of l, preserving order, and returns
// the list of results. f is invoked exactly once per element, in list
// order, and never for an empty list.
//
// Map is a package-level function because it introduces the result
// element type U, which a method cannot.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	var acc List[U]
	for n := l.root; n != nil; n = n.tail {
		acc = acc.Cons(f(n.head))
	}
	return acc.Reverse()
}

// Filter returns the elements of l for which f returns true, in their
// original relative order. f is invoked exactly once per element, in
// list order. An empty result is the empty list, not an error.
func Filter[T any](l List[T], f func(T) bool) List[T] {
	var acc List[T]
	for n := l.root; n != nil; n = n.tail {
		if f(n.head) {
			acc = acc.Cons(n.head)
		}
	}
	return acc.Reverse()
}

// Concat concatenates lists in order. The result shares structure with
// the last non-empty operand; the operands are unchanged. Cost is
// linear in the total length of all operands but the last.
func Concat[T any](lists ...List[T]) List[T] {
	out := List[T]{}
	for i := len(lists) - 1; i >= 0; i-- {
		if out.IsEmpty() {
			out = lists[i]
			continue
		}
		out = Fold(lists[i].Reverse(), out, List[T].Cons)
	}
	return out
}
