// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import "iter"

// Iterator is a single-pass forward cursor over the elements of a
// list, head to tail. The cursor position is the only mutable state;
// the underlying list is never modified, so exhausting or abandoning
// an iterator cannot affect the list or any other iterator over it.
//
// An Iterator is not restartable: obtain a fresh one from the list for
// each traversal. A single Iterator must not be shared between
// goroutines without external synchronization.
type Iterator[T any] struct {
	next *node[T]
}

// Iterator returns a fresh cursor positioned before the first element
// of l. A list hands out any number of independent iterators.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.root}
}

// HasNext reports whether the iterator has elements remaining. It is
// side-effect-free and may be called any number of times.
func (it *Iterator[T]) HasNext() bool {
	return it.next != nil
}

// Next produces the next element and advances the cursor.
// Panics if the iterator is exhausted; use [Iterator.HasNext] or
// [Iterator.TryNext] when exhaustion is an expected outcome.
func (it *Iterator[T]) Next() T {
	if it.next == nil {
		panic("flist: iterator exhausted")
	}
	v := it.next.head
	it.next = it.next.tail
	return v
}

// TryNext attempts to produce the next element.
// Returns (element, true) on success, or (zero, false) if the iterator
// is exhausted.
func (it *Iterator[T]) TryNext() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	v := it.next.head
	it.next = it.next.tail
	return v, true
}

// All returns an iterator over the elements of l for use with
// for range, visiting elements head to tail.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root; n != nil; n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Slice materializes the elements of l into a fresh slice in list
// order. The slice is newly allocated on every call and is nil for the
// empty list.
func (l List[T]) Slice() []T {
	if l.root == nil {
		return nil
	}
	out := make([]T, 0, l.root.count)
	for n := l.root; n != nil; n = n.tail {
		out = append(out, n.head)
	}
	return out
}
