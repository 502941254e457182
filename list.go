// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flist

import (
	"fmt"
	"strings"
)

// List is an immutable persistent singly-linked list of T.
//
// A List is either empty or a head value prepended to a tail list.
// The zero value is the empty list and is ready to use. List values
// are cheap to copy and safe to share across goroutines; all
// "modifying" operations return new lists and leave the receiver
// untouched.
type List[T any] struct {
	root *node[T]
}

// node is a cons cell. Nodes are never mutated after the operation
// that allocates them returns, so chains may be shared freely between
// derived lists. count caches the length of the chain rooted here.
type node[T any] struct {
	head  T
	tail  *node[T]
	count int
}

// New builds a list containing values in the given order.
// New() with no arguments returns the empty list.
func New[T any](values ...T) List[T] {
	var root *node[T]
	for i := len(values) - 1; i >= 0; i-- {
		root = &node[T]{head: values[i], tail: root, count: len(values) - i}
	}
	return List[T]{root: root}
}

// Empty returns the empty list of T. It is identical to the zero value
// List[T]{}; it exists so call sites can name the element type.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with v prepended to l. This is the O(1)
// primitive constructor; l is unchanged and becomes the tail of the
// result.
func (l List[T]) Cons(v T) List[T] {
	return List[T]{root: &node[T]{head: v, tail: l.root, count: l.Len() + 1}}
}

// Len returns the number of elements in l. O(1).
func (l List[T]) Len() int {
	if l.root == nil {
		return 0
	}
	return l.root.count
}

// IsEmpty reports whether l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.root == nil
}

// Head returns the first element of l. The second return value is
// false when l is empty.
func (l List[T]) Head() (T, bool) {
	if l.root == nil {
		var zero T
		return zero, false
	}
	return l.root.head, true
}

// Tail returns the list after the first element. The tail of the empty
// list is the empty list. The result shares structure with l.
func (l List[T]) Tail() List[T] {
	if l.root == nil {
		return List[T]{}
	}
	return List[T]{root: l.root.tail}
}

// String renders l as (e1 e2 ... en), with () for the empty list.
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for n := l.root; n != nil; n = n.tail {
		if n != l.root {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.head)
	}
	b.WriteByte(')')
	return b.String()
}
