// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package typelist

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Comparator is a strict "less than" relation between two tokens.
type Comparator[T any] func(T, T) bool

// Map applies a function to every token of a list, producing a new list of the
// same length whose order matches the original.
func Map[S any, T any](list List[S], fn func(S) T) List[T] {
	items := make([]T, len(list.items))
	//
	for i, item := range list.items {
		items[i] = fn(item)
	}
	//
	return List[T]{items}
}

// Filter returns the subsequence of tokens for which the predicate holds,
// preserving their relative order.
func Filter[T any](list List[T], pred Predicate[T]) List[T] {
	var items []T
	//
	for _, item := range list.items {
		if pred(item) {
			items = append(items, item)
		}
	}
	//
	return List[T]{items}
}

// Fold performs a left fold over a list.  That is, it returns
// op(...op(op(init, x0), x1)..., xn-1).
func Fold[T any, A any](list List[T], init A, op func(A, T) A) A {
	acc := init
	//
	for _, item := range list.items {
		acc = op(acc, item)
	}
	//
	return acc
}

// Concat joins zero or more lists together from left to right.
func Concat[T any](lists ...List[T]) List[T] {
	var n int
	//
	for _, l := range lists {
		n += len(l.items)
	}
	//
	items := make([]T, 0, n)
	//
	for _, l := range lists {
		items = append(items, l.items...)
	}
	//
	return List[T]{items}
}

// Elem checks whether a list contains a token structurally equal to the given
// one.
func Elem[T comparable](list List[T], token T) bool {
	for _, item := range list.items {
		if item == token {
			return true
		}
	}
	//
	return false
}

// Unique removes duplicate tokens from a list, keeping only the first
// occurrence of each.  The order of first occurrences is preserved.
func Unique[T comparable](list List[T]) List[T] {
	return Fold(list, List[T]{}, func(acc List[T], item T) List[T] {
		if Elem(acc, item) {
			return acc
		}
		//
		return acc.Append(item)
	})
}

// Partitioned holds the two halves of a partitioned list.
type Partitioned[T any] struct {
	// Tokens which satisfied the predicate, in their original order.
	Satisfied List[T]
	// Tokens which did not satisfy the predicate, in their original order.
	Rest List[T]
}

// Partition splits a list into those tokens satisfying a predicate and those
// which do not.  Every token of the original list ends up in exactly one half.
func Partition[T any](list List[T], pred Predicate[T]) Partitioned[T] {
	return Partitioned[T]{
		Satisfied: Filter(list, pred),
		Rest:      Filter(list, func(item T) bool { return !pred(item) }),
	}
}

// Sort orders a list using quicksort with the first token as pivot.  Tokens
// strictly less than the pivot go left, and everything else (including tokens
// equal to the pivot) goes right.  Observe that this is not a stable sort.
func Sort[T any](list List[T], less Comparator[T]) List[T] {
	pivot, ok := list.Head()
	// Empty or singleton lists are already sorted.
	if !ok || list.Size() == 1 {
		return list
	}
	//
	parts := Partition(list.Tail(), func(item T) bool { return less(item, pivot) })
	smaller := Sort(parts.Satisfied, less)
	bigger := Sort(parts.Rest, less)
	//
	return Concat(smaller.Append(pivot), bigger)
}

// Pair associates two tokens.
type Pair[S any, T any] struct {
	Left  S
	Right T
}

// CrossProduct constructs every pair (a, b) with a drawn from the first list
// and b drawn from the second.  Pairs are ordered by the first list, then by
// the second.
func CrossProduct[S any, T any](lhs List[S], rhs List[T]) List[Pair[S, T]] {
	return Fold(lhs, List[Pair[S, T]]{}, func(outer List[Pair[S, T]], a S) List[Pair[S, T]] {
		return Fold(rhs, outer, func(inner List[Pair[S, T]], b T) List[Pair[S, T]] {
			return inner.Append(Pair[S, T]{a, b})
		})
	})
}
