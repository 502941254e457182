// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

// Fold reduces l from the first element to the last, threading the
// accumulator forward: Fold(l, base, f) computes
// f(...f(f(base, e1), e2)..., en).
//
// f is invoked exactly once per element, strictly in list order. For
// an empty list, base is returned and f is never invoked. The loop is
// explicit, so stack depth does not grow with list length.
func Fold[T, U any](l List[T], base U, f func(U, T) U) U {
	acc := base
	for n := l.root; n != nil; n = n.tail {
		acc = f(acc, n.head)
	}
	return acc
}

// Reverse returns a new list with the elements of l in reverse order.
// It is a left fold that prepends each element onto a growing result,
// so every node of the result is freshly allocated: Reverse never
// shares structure with its input. Reversing the empty list yields the
// empty list.
func (l List[T]) Reverse() List[T] {
	return Fold(l, List[T]{}, List[T].Cons)
}
