// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package flist provides a generic immutable persistent singly-linked
// list.
//
// The core type [List] has two variants: empty and non-empty (a head
// value plus a tail list). Every operation is a pure function returning
// a new list; no operation ever mutates an existing node. Because list
// values are immutable after construction, any number of goroutines may
// hold and traverse the same list concurrently without synchronization.
//
// # Design Philosophy
//
// flist provides:
//   - A minimal but complete persistent list: construct, query,
//     transform, fold, reverse, iterate
//   - Value semantics: the zero value of List is the empty list
//   - Structure sharing where it is free (Tail, Concat) and fresh
//     chains where the contract demands them (Reverse)
//
// All derived lists are built in O(n) with each caller-supplied
// function invoked exactly once per element, in list order. Internal
// accumulation uses constant-time prepends followed by a single
// reversal; no operation degrades to O(n²).
//
// # Construction
//
//   - [New]: Build a list from values, preserving order
//   - [Empty]: The empty list (equal to the zero value)
//   - [List.Cons]: Prepend a value, the O(1) primitive constructor
//
// # Queries
//
//   - [List.Len]: Number of elements, O(1)
//   - [List.IsEmpty]: Reports whether the list has no elements
//   - [List.Head]: First element, with an ok flag for the empty case
//   - [List.Tail]: The list after the first element (shares structure)
//   - [List.String]: Renders as (e1 e2 ... en)
//
// # Equality
//
// Equality is structural and value-based: two lists are equal iff they
// have the same length and pairwise-equal elements in the same order.
// Node identity and structure sharing are never observable.
//
//   - [Equal]: Element-wise == for comparable element types
//   - [EqualFunc]: Element-wise comparison with a caller-supplied
//     predicate, usable across element types
//
// # Transformations
//
// Map and Fold introduce a second type parameter, so they are
// package-level functions; Go methods cannot declare type parameters.
// Filter and Concat follow the same shape for uniformity.
//
//   - [Map]: Apply a function to every element, preserving order
//   - [Filter]: Keep the elements satisfying a predicate, in order
//   - [Fold]: Left fold, threading an accumulator front to back
//   - [List.Reverse]: A fold that prepends, yielding a fresh reversed
//     chain with no sharing
//   - [Concat]: Concatenate lists, sharing the last operand's chain
//
// # Iteration
//
// [List.Iterator] returns a single-pass forward cursor. The cursor is
// iterator-local mutable state; the list it walks is never modified. A
// fresh traversal requires a fresh iterator, which the list hands out
// any number of times.
//
//   - [Iterator.HasNext]: Side-effect-free remaining-elements check
//   - [Iterator.Next]: Produce the next element (panics when exhausted)
//   - [Iterator.TryNext]: Non-panicking variant
//   - [List.All]: iter.Seq form for use with for range
//   - [List.Slice]: Materialize the elements into a fresh slice
//
// # Errors
//
// The only failure condition in the package is requesting an element
// from an exhausted iterator, which panics. [Iterator.HasNext] and
// [Iterator.TryNext] are the checked paths. Panics raised by
// caller-supplied functions propagate uninterpreted; the package never
// recovers, wraps, or substitutes values.
//
// # Example
//
//	squares := flist.Map(flist.New(1, 2, 3), func(x int) int {
//		return x * x
//	})
//	sum := flist.Fold(squares, 0, func(acc, x int) int {
//		return acc + x
//	})
//	// sum == 14
package flist
