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
package gen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-static/pkg/graph"
	"github.com/consensys/go-static/pkg/schema"
	"github.com/consensys/go-static/pkg/table"
	"github.com/consensys/go-static/pkg/util"
	"github.com/consensys/go-static/pkg/util/collection/typelist"
	log "github.com/sirupsen/logrus"
)

// Plan is the model from which a package is rendered.  Everything which
// appears in generated code has already been evaluated here, such that the
// templates need only substitute literals.
type Plan struct {
	Package string
	Digest  string
	Graphs  []GraphPlan
	Tables  []TablePlan
}

// GraphPlan describes the generated code for one graph.
type GraphPlan struct {
	// Exported name of the graph.
	Name string
	// Prefix for unexported variables.
	Var string
	// Go type of nodes.
	NodeType string
	// Edges in declaration order, as comments.
	Edges []string
	// Shortest path of every reachable pair.
	Paths []PathPlan
	// Every pair of nodes, along with its expected shortest path (if any).
	// This is used only by generated tests.
	Pairs []PathPlan
}

// PathPlan describes one shortest path, where all nodes are given as Go
// literals.
type PathPlan struct {
	From  string
	To    string
	Nodes string
}

// TablePlan describes the generated code for one table.
type TablePlan struct {
	// Exported name of the table type.
	Name string
	// Prefix for unexported variables.
	Var string
	// Number of keys.
	Size uint
	// Regions in index order.
	Regions []RegionPlan
	// Keys in key order.
	Keys []KeyPlan
}

// RegionPlan describes the storage of one region.
type RegionPlan struct {
	Index   uint
	Count   uint
	Stride  uint
	Entries string
}

// KeyPlan describes one key of a table.
type KeyPlan struct {
	Const  string
	Key    uint
	Id     string
	Region uint
	Slot   uint
	Stride uint
}

// Ids returns the composite index of every key as a list of Go literals.
func (p TablePlan) Ids() string {
	ids := make([]string, len(p.Keys))
	//
	for i, k := range p.Keys {
		ids[i] = k.Id
	}
	//
	return strings.Join(ids, ", ")
}

// Strides returns the slot stride of every key as a list of Go literals.
func (p TablePlan) Strides() string {
	strides := make([]string, len(p.Keys))
	//
	for i, k := range p.Keys {
		strides[i] = strconv.FormatUint(uint64(k.Stride), 10)
	}
	//
	return strings.Join(strides, ", ")
}

// NewPlan evaluates a resolved program into a plan for code generation.
func NewPlan(program *schema.Program) (*Plan, error) {
	plan := Plan{Package: program.Package, Digest: program.Digest}
	//
	for _, g := range program.Graphs {
		gp, err := planGraph(g)
		if err != nil {
			return nil, fmt.Errorf("graph %s: %w", g.Name, err)
		}
		//
		plan.Graphs = append(plan.Graphs, gp)
	}
	//
	for _, t := range program.Tables {
		plan.Tables = append(plan.Tables, planTable(t))
	}
	//
	if err := plan.checkIdentifiers(); err != nil {
		return nil, err
	}
	//
	return &plan, nil
}

// ErrNameClash indicates two declarations which map onto the same identifier
// in generated code.
var ErrNameClash = errors.New("name clash in generated code")

// Check that no two package-level identifiers emitted for this plan coincide.
func (p *Plan) checkIdentifiers() error {
	var (
		owners = map[string]string{"SchemaDigest": "schema digest"}
		clash  error
	)
	//
	declare := func(owner string, idents ...string) {
		for _, id := range idents {
			if other, ok := owners[id]; ok && clash == nil {
				clash = fmt.Errorf("%w: %s (from %s and %s)", ErrNameClash, id, other, owner)
			}
			//
			owners[id] = owner
		}
	}
	//
	for _, g := range p.Graphs {
		owner := "graph " + g.Name
		declare(owner, g.Var+"Paths", g.Name+"PathTable", "Get"+g.Name+"ShortestPath")
		//
		for i := range g.Paths {
			declare(owner, fmt.Sprintf("%sPath%d", g.Var, i))
		}
	}
	//
	for _, t := range p.Tables {
		owner := "table " + t.Name
		declare(owner, t.Name, t.Var+"Ids", "New"+t.Name)
		//
		for _, k := range t.Keys {
			declare(owner, k.Const)
		}
	}
	//
	return clash
}

func planGraph(g schema.Graph) (GraphPlan, error) {
	var (
		name  = util.ToPascalCase(g.Name)
		paths = g.Graph.Compile()
		nodes = g.Graph.Nodes()
		plan  = GraphPlan{Name: name, Var: util.ToCamelCase(g.Name), NodeType: string(g.Kind)}
	)
	//
	if g.Graph.Edges().IsEmpty() {
		log.Warnf("graph %s has no edges", g.Name)
	}
	//
	for _, e := range g.Graph.Edges().Items() {
		plan.Edges = append(plan.Edges, e.String())
	}
	//
	for i := range paths.Size() {
		e := paths.Entry(i)
		//
		pp, err := planPath(g.Kind, e.From, e.To, e.Path)
		if err != nil {
			return plan, err
		}
		//
		plan.Paths = append(plan.Paths, pp)
	}
	//
	for _, pair := range typelist.CrossProduct(nodes, nodes).Items() {
		pp, err := planPath(g.Kind, pair.Left, pair.Right, paths.GetShortestPath(pair.Left, pair.Right))
		if err != nil {
			return plan, err
		}
		//
		plan.Pairs = append(plan.Pairs, pp)
	}
	//
	log.Debugf("graph %s: %d nodes, %d edges, %d reachable pairs", g.Name, nodes.Size(),
		g.Graph.Edges().Size(), paths.Size())
	//
	return plan, nil
}

func planPath(kind schema.NodeKind, from string, to string, path graph.PathRef[string]) (PathPlan, error) {
	var (
		err   error
		nodes = make([]string, path.Size())
		pp    PathPlan
	)
	//
	if pp.From, err = literal(kind, from); err != nil {
		return pp, err
	} else if pp.To, err = literal(kind, to); err != nil {
		return pp, err
	}
	//
	for i := range path.Size() {
		if nodes[i], err = literal(kind, path.At(i)); err != nil {
			return pp, err
		}
	}
	//
	pp.Nodes = strings.Join(nodes, ", ")
	//
	return pp, nil
}

// Convert a node identifier into a Go literal of the given kind.
func literal(kind schema.NodeKind, node string) (string, error) {
	switch kind {
	case schema.ByteNode, schema.RuneNode:
		r := []rune(node)
		if len(r) != 1 {
			return "", fmt.Errorf("node \"%s\" is not a single character", node)
		}
		//
		return strconv.QuoteRune(r[0]), nil
	case schema.IntNode:
		n, err := strconv.Atoi(node)
		if err != nil {
			return "", fmt.Errorf("node \"%s\" is not an int", node)
		}
		// Never emit leading zeros, which Go reads as octal.
		return strconv.Itoa(n), nil
	case schema.StringNode:
		return strconv.Quote(node), nil
	default:
		return "", fmt.Errorf("unknown node kind \"%s\"", kind)
	}
}

func planTable(t schema.Table) TablePlan {
	var (
		name   = util.ToPascalCase(t.Name)
		layout = t.Layout
		plan   = TablePlan{Name: name, Var: util.ToCamelCase(t.Name), Size: layout.Size()}
		byKey  = make([]table.Entry, layout.Size())
	)
	//
	for i, shape := range layout.Shapes() {
		group := layout.Groups().Get(uint(i))
		names := typelist.Map(group, func(e table.Entry) string { return e.Name })
		//
		plan.Regions = append(plan.Regions, RegionPlan{uint(i), shape.Count, shape.Stride, strings.Join(names.Items(), ", ")})
		log.Debugf("table %s: region %d holds %s as [%d][%d]byte", t.Name, i, names, shape.Count, shape.Stride)
	}
	//
	for _, e := range layout.Entries().Items() {
		byKey[e.Key] = e
	}
	//
	for key, e := range byKey {
		id := layout.Id(uint(key))
		region, slot := table.SplitIndex(id)
		//
		plan.Keys = append(plan.Keys, KeyPlan{
			Const:  name + util.ToPascalCase(e.Name),
			Key:    uint(key),
			Id:     fmt.Sprintf("0x%08x", id),
			Region: region,
			Slot:   slot,
			Stride: e.Stride(),
		})
	}
	//
	return plan
}
