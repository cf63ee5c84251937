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
	"fmt"

	"github.com/consensys/go-static/pkg/util/collection/typelist"
)

// Edge is a directed link between two nodes.
type Edge[N comparable] struct {
	From N
	To   N
}

// NewEdge constructs an edge from one node to another.
func NewEdge[N comparable](from N, to N) Edge[N] {
	return Edge[N]{from, to}
}

// IsFrom checks whether this edge leaves a given node.
func (e Edge[N]) IsFrom(node N) bool {
	return e.From == node
}

// IsTo checks whether this edge enters a given node.
func (e Edge[N]) IsTo(node N) bool {
	return e.To == node
}

func (e Edge[N]) String() string {
	return fmt.Sprintf("%v->%v", e.From, e.To)
}

// Chain expands a run of nodes N0, N1, ..., Nk into the edges (N0,N1),
// (N1,N2), ..., (Nk-1,Nk).  A chain of fewer than two nodes has no edges.
func Chain[N comparable](nodes ...N) typelist.List[Edge[N]] {
	var edges []Edge[N]
	//
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, Edge[N]{nodes[i-1], nodes[i]})
	}
	//
	return typelist.NewList(edges...)
}

func getFrom[N comparable](e Edge[N]) N {
	return e.From
}

func getTo[N comparable](e Edge[N]) N {
	return e.To
}
