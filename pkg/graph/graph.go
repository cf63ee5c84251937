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
	"github.com/consensys/go-static/pkg/util/collection/typelist"
)

// Graph is a static directed graph, fixed at construction.  Its edge set is
// the concatenation of the given chains with duplicate edges removed.
type Graph[N comparable] struct {
	edges typelist.List[Edge[N]]
}

// NewGraph constructs a graph from zero or more chains of edges.
func NewGraph[N comparable](chains ...typelist.List[Edge[N]]) *Graph[N] {
	return &Graph[N]{typelist.Unique(typelist.Concat(chains...))}
}

// Edges returns the deduplicated edges of this graph, in declaration order.
func (g *Graph[N]) Edges() typelist.List[Edge[N]] {
	return g.edges
}

// Sources returns every distinct node with at least one outgoing edge, in
// order of first occurrence.
func (g *Graph[N]) Sources() typelist.List[N] {
	return typelist.Unique(typelist.Map(g.edges, getFrom[N]))
}

// Targets returns every distinct node with at least one incoming edge, in
// order of first occurrence.
func (g *Graph[N]) Targets() typelist.List[N] {
	return typelist.Unique(typelist.Map(g.edges, getTo[N]))
}

// Nodes returns every distinct node mentioned by an edge of this graph.
func (g *Graph[N]) Nodes() typelist.List[N] {
	return typelist.Unique(typelist.Concat(g.Sources(), g.Targets()))
}

// NextNodes returns the targets of all edges leaving a given node, in edge
// declaration order.
func (g *Graph[N]) NextNodes(node N) typelist.List[N] {
	leaving := typelist.Filter(g.edges, func(e Edge[N]) bool { return e.IsFrom(node) })
	//
	return typelist.Map(leaving, getTo[N])
}

// FindPath returns the shortest path from one node to another (inclusive of
// both), or an empty list if there is none.  See findPath for details.
func (g *Graph[N]) FindPath(from N, to N) typelist.List[N] {
	return g.findPath(from, to, typelist.List[N]{})
}

// AllPairs returns the cross product of all sources and all targets.
func (g *Graph[N]) AllPairs() typelist.List[typelist.Pair[N, N]] {
	return typelist.CrossProduct(g.Sources(), g.Targets())
}

// ReachablePairs returns those pairs of AllPairs for which a path exists.
func (g *Graph[N]) ReachablePairs() typelist.List[typelist.Pair[N, N]] {
	return typelist.Filter(g.AllPairs(), func(p typelist.Pair[N, N]) bool {
		return !g.FindPath(p.Left, p.Right).IsEmpty()
	})
}

// Compile determines the shortest path for every reachable pair, and
// materialises them into a table which supports lookup at runtime.
func (g *Graph[N]) Compile() *PathTable[N] {
	var entries []PathEntry[N]
	//
	for _, pair := range g.AllPairs().Items() {
		path := g.FindPath(pair.Left, pair.Right)
		//
		if !path.IsEmpty() {
			entries = append(entries, PathEntry[N]{pair.Left, pair.Right, typelist.ExportTo(path, NewPathRef[N])})
		}
	}
	//
	return NewPathTable(entries...)
}

// Search for a path from the current node to the target, where visited holds
// the nodes already on the path so far.  Reaching the target completes the
// path.  Revisiting a node yields no path, which rules out cycles.  Otherwise,
// every neighbour is searched and the shortest non-empty candidate wins, with
// ties going to the first candidate found.
func (g *Graph[N]) findPath(current N, target N, visited typelist.List[N]) typelist.List[N] {
	if current == target {
		return visited.Append(current)
	} else if typelist.Elem(visited, current) {
		return typelist.List[N]{}
	}
	//
	visited = visited.Append(current)
	candidates := typelist.Map(g.NextNodes(current), func(next N) typelist.List[N] {
		return g.findPath(next, target, visited)
	})
	//
	return typelist.Fold(candidates, typelist.List[N]{}, shorter[N])
}

// Select the shorter of two paths, where empty paths never win and ties go to
// the incumbent.
func shorter[N any](shortest typelist.List[N], path typelist.List[N]) typelist.List[N] {
	if shortest.IsEmpty() || (shortest.Size() > path.Size() && !path.IsEmpty()) {
		return path
	}
	//
	return shortest
}
