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

// Package graph provides the static shortest-path engine.  A graph is declared
// as a set of chains (e.g. "A -> B -> C"), each of which expands into the edges
// between consecutive nodes.  From these declarations the engine determines,
// ahead of time, the shortest path between every reachable pair of nodes and
// bakes these paths into an immutable table.  At runtime, only a lookup
// remains:
//
//	table := graph.NewGraph(chains...).Compile()
//	path := table.GetShortestPath("A", "D") // [A, C, D]
//
// Overview:
//
//   - Edges are the concatenation of all chains, with duplicates removed (first
//     occurrence wins, so declaration order is preserved).
//   - Paths are found by exhaustive search.  A node already on the current path
//     is never revisited, which guarantees termination on cyclic graphs.
//   - Amongst equally short candidates the first one found wins, where
//     neighbours are visited in edge declaration order.  Hence, reordering
//     declarations can change which of several shortest paths is chosen.
//   - Every node reaches itself via the single-node path.
//   - An unreachable pair yields an empty PathRef (Size() == 0), never an error.
//
// Concurrency:
//
//   - A compiled PathTable is read-only and safe for any number of concurrent
//     readers.  Graph values are likewise never mutated after construction.
//
// Complexity:
//
//   - The search is exponential in the worst case, since every simple path may
//     be explored.  This cost is paid once by the generator, not at runtime.
//   - GetShortestPath is a linear scan over the reachable pairs and never
//     allocates.
package graph
