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
package graph

import (
	"slices"
	"strings"

	"github.com/consensys/go-static/pkg/util/collection/typelist"
)

// PathRef is a read-only view of a precomputed path, which is a sequence of
// nodes starting at the source and ending at the target.  An empty PathRef
// (with size 0) indicates there is no path.
type PathRef[N comparable] struct {
	nodes []N
}

// NewPathRef constructs a path over the given nodes.  Observe that the nodes
// are not copied, hence a PathRef may refer directly to static storage.
func NewPathRef[N comparable](nodes ...N) PathRef[N] {
	return PathRef[N]{nodes}
}

// Size returns the number of nodes on this path (including both ends).
func (p PathRef[N]) Size() uint {
	return uint(len(p.nodes))
}

// IsEmpty determines whether or not this represents a missing path.
func (p PathRef[N]) IsEmpty() bool {
	return len(p.nodes) == 0
}

// At returns the iᵗʰ node on this path.
func (p PathRef[N]) At(i uint) N {
	return p.nodes[i]
}

// Nodes returns a copy of the nodes on this path.
func (p PathRef[N]) Nodes() []N {
	return slices.Clone(p.nodes)
}

// Equals checks whether this path visits exactly the given nodes.
func (p PathRef[N]) Equals(nodes ...N) bool {
	return slices.Equal(p.nodes, nodes)
}

func (p PathRef[N]) String() string {
	return strings.ReplaceAll(typelist.NewList(p.nodes...).String(), ", ", "->")
}

// PathEntry associates a pair of nodes with the shortest path between them.
type PathEntry[N comparable] struct {
	From N
	To   N
	Path PathRef[N]
}

// PathTable holds the precomputed shortest paths of a graph.  It is immutable,
// and therefore safe to share between any number of goroutines.
type PathTable[N comparable] struct {
	entries []PathEntry[N]
}

// NewPathTable constructs a table from a given set of entries.  Entries are
// searched in the order given.
func NewPathTable[N comparable](entries ...PathEntry[N]) *PathTable[N] {
	return &PathTable[N]{entries}
}

// Size returns the number of reachable pairs in this table.
func (p *PathTable[N]) Size() uint {
	return uint(len(p.entries))
}

// Entry returns the iᵗʰ entry of this table.
func (p *PathTable[N]) Entry(i uint) PathEntry[N] {
	return p.entries[i]
}

// GetShortestPath returns the shortest path between two nodes, or an empty
// path if the target is unreachable (or either node is unknown).
func (p *PathTable[N]) GetShortestPath(from N, to N) PathRef[N] {
	for _, e := range p.entries {
		if e.From == from && e.To == to {
			return e.Path
		}
	}
	//
	return PathRef[N]{}
}
