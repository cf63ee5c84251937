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

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// List is an ordered, immutable sequence of tokens.  No operation on a list
// modifies it in place; every transformation produces a fresh list.  Lists are
// evaluated entirely by the generator, hence they never survive into generated
// code except through ExportTo.
type List[T any] struct {
	items []T
}

// NewList constructs a list from zero or more tokens.  The given tokens are
// copied, hence subsequent changes to the argument slice are not observed.
func NewList[T any](items ...T) List[T] {
	return List[T]{slices.Clone(items)}
}

// Size returns the number of tokens in this list.
func (p List[T]) Size() uint {
	return uint(len(p.items))
}

// IsEmpty checks whether this list contains no tokens.
func (p List[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Get returns the iᵗʰ token of this list.
func (p List[T]) Get(i uint) T {
	return p.items[i]
}

// Head returns the first token of this list, or false if there is none.
func (p List[T]) Head() (T, bool) {
	var empty T
	//
	if len(p.items) == 0 {
		return empty, false
	}
	//
	return p.items[0], true
}

// Tail returns everything except the first token.  The tail of an empty list
// is empty.
func (p List[T]) Tail() List[T] {
	if len(p.items) <= 1 {
		return List[T]{}
	}
	//
	return List[T]{p.items[1:]}
}

// Append returns a new list with zero or more tokens added to the end.
func (p List[T]) Append(items ...T) List[T] {
	n := make([]T, 0, len(p.items)+len(items))
	n = append(n, p.items...)
	//
	return List[T]{append(n, items...)}
}

// Prepend returns a new list with zero or more tokens added to the front.
func (p List[T]) Prepend(items ...T) List[T] {
	n := make([]T, 0, len(p.items)+len(items))
	n = append(n, items...)
	//
	return List[T]{append(n, p.items...)}
}

// Items returns a copy of the tokens in this list.
func (p List[T]) Items() []T {
	return slices.Clone(p.items)
}

// All iterates the tokens of this list in order, along with their index.
func (p List[T]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		for i, item := range p.items {
			if !yield(uint(i), item) {
				return
			}
		}
	}
}

// String returns a readable representation of this list, such as "[A, B, C]".
func (p List[T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, item := range p.items {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%v", any(item)))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// ExportTo feeds the tokens of a list, in order, as the parameters of some
// concrete container constructor.  For example, ExportTo(l, NewPathRef)
// materialises a list of nodes as a path.
func ExportTo[T any, R any](list List[T], container func(...T) R) R {
	return container(slices.Clone(list.items)...)
}

// Equals performs a structural comparison of two lists.  That is, two lists
// are equal if they contain the same tokens in the same order.
func Equals[T comparable](lhs List[T], rhs List[T]) bool {
	return slices.Equal(lhs.items, rhs.items)
}
