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
	"sync"
	"testing"

	"github.com/consensys/go-static/pkg/util/collection/typelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The running example: A->B->C->D, A->C (shortcut to D), B->A (cycle) and A->E
// (leaving D unable to reach E).
func exampleGraph() *Graph[byte] {
	return NewGraph(
		Chain[byte]('A', 'B', 'C', 'D'),
		Chain[byte]('A', 'C'),
		Chain[byte]('B', 'A'),
		Chain[byte]('A', 'E'),
	)
}

func TestGraph_Edges(t *testing.T) {
	g := NewGraph(
		Chain[byte]('A', 'B', 'C', 'D'),
		Chain[byte]('A', 'C'),
		Chain[byte]('B', 'C'), // duplicate
		Chain[byte]('B', 'A'),
		Chain[byte]('A', 'E'),
	)
	expected := typelist.NewList(
		NewEdge[byte]('A', 'B'), NewEdge[byte]('B', 'C'), NewEdge[byte]('C', 'D'),
		NewEdge[byte]('A', 'C'), NewEdge[byte]('B', 'A'), NewEdge[byte]('A', 'E'),
	)
	//
	assert.True(t, typelist.Equals(expected, g.Edges()), "got %s", g.Edges())
}

func TestGraph_Chain(t *testing.T) {
	assert.True(t, Chain[byte]('A').IsEmpty())
	assert.True(t, Chain[byte]().IsEmpty())
	assert.True(t, typelist.Equals(Chain("x", "y"), typelist.NewList(NewEdge("x", "y"))))
}

func TestGraph_Nodes(t *testing.T) {
	g := exampleGraph()
	//
	assert.Equal(t, []byte("ABC"), g.Sources().Items())
	assert.Equal(t, []byte("BCDAE"), g.Targets().Items())
	assert.Equal(t, []byte("ABCDE"), g.Nodes().Items())
	assert.Equal(t, []byte("BCE"), g.NextNodes('A').Items())
	assert.True(t, g.NextNodes('D').IsEmpty())
}

func TestGraph_FindPath_00(t *testing.T) {
	g := exampleGraph()
	// Two hop route beats three hop route
	assert.Equal(t, []byte("ACD"), g.FindPath('A', 'D').Items())
	// Direct edge
	assert.Equal(t, []byte("BA"), g.FindPath('B', 'A').Items())
	// Unreachable
	assert.True(t, g.FindPath('D', 'E').IsEmpty())
	// Every node reaches itself
	assert.Equal(t, []byte("A"), g.FindPath('A', 'A').Items())
	// Through the cycle
	assert.Equal(t, []byte("BAE"), g.FindPath('B', 'E').Items())
}

func TestGraph_FindPath_01(t *testing.T) {
	// Two equally short routes from A to D.  The first declared neighbour of A
	// wins, so swapping the declarations swaps the result.
	g1 := NewGraph(Chain("A", "B", "D"), Chain("A", "C", "D"))
	g2 := NewGraph(Chain("A", "C", "D"), Chain("A", "B", "D"))
	//
	assert.Equal(t, []string{"A", "B", "D"}, g1.FindPath("A", "D").Items())
	assert.Equal(t, []string{"A", "C", "D"}, g2.FindPath("A", "D").Items())
}

func TestGraph_FindPath_02(t *testing.T) {
	// Fully connected graph with self loops: every pair is one hop apart.
	var chains []typelist.List[Edge[int]]
	//
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			chains = append(chains, Chain(i, j))
		}
	}
	//
	g := NewGraph(chains...)
	//
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			path := g.FindPath(i, j)
			//
			if i == j {
				assert.Equal(t, []int{i}, path.Items())
			} else {
				assert.Equal(t, []int{i, j}, path.Items())
			}
		}
	}
}

func TestGraph_ReachablePairs(t *testing.T) {
	g := exampleGraph()
	pairs := typelist.Map(g.ReachablePairs(), func(p typelist.Pair[byte, byte]) string {
		return fmt.Sprintf("%c%c", p.Left, p.Right)
	})
	//
	assert.Equal(t, uint(15), g.AllPairs().Size())
	assert.Equal(t, []string{"AB", "AC", "AD", "AA", "AE", "BB", "BC", "BD", "BA", "BE", "CC", "CD"}, pairs.Items())
}

func TestPathTable_00(t *testing.T) {
	table := exampleGraph().Compile()
	//
	require.Equal(t, uint(12), table.Size())
	assert.True(t, table.GetShortestPath('A', 'D').Equals('A', 'C', 'D'))
	assert.Equal(t, uint(3), table.GetShortestPath('A', 'D').Size())
	assert.Equal(t, uint(0), table.GetShortestPath('D', 'E').Size())
	assert.True(t, table.GetShortestPath('B', 'A').Equals('B', 'A'))
	assert.True(t, table.GetShortestPath('X', 'Y').IsEmpty())
	assert.Equal(t, "[A->C->D]", NewPathRef("A", "C", "D").String())
}

func TestPathTable_01(t *testing.T) {
	table := exampleGraph().Compile()
	// Every entry agrees with a fresh search
	for i := range table.Size() {
		entry := table.Entry(i)
		//
		assert.Equal(t, entry.From, entry.Path.At(0))
		assert.Equal(t, entry.To, entry.Path.At(entry.Path.Size()-1))
		assert.Equal(t, exampleGraph().FindPath(entry.From, entry.To).Items(), entry.Path.Nodes())
	}
}

func TestPathTable_Concurrent(t *testing.T) {
	var (
		table = exampleGraph().Compile()
		wg    sync.WaitGroup
	)
	//
	for i := 0; i < 8; i++ {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			//
			for j := 0; j < 1000; j++ {
				assert.True(t, table.GetShortestPath('A', 'D').Equals('A', 'C', 'D'))
			}
		}()
	}
	//
	wg.Wait()
}

func TestPathTable_Empty(t *testing.T) {
	table := NewGraph[string]().Compile()
	//
	assert.Equal(t, uint(0), table.Size())
	assert.True(t, table.GetShortestPath("A", "A").IsEmpty())
}
