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
package schema

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"unicode/utf8"

	"github.com/consensys/go-static/pkg/graph"
	"github.com/consensys/go-static/pkg/table"
	"github.com/consensys/go-static/pkg/util"
	"github.com/consensys/go-static/pkg/util/source"
)

// ErrInvalidName indicates a declaration whose name is not a Go identifier.
var ErrInvalidName = errors.New("invalid name")

// Program is the result of resolving a schema.  Every graph has been parsed
// and every table has a fully determined layout.
type Program struct {
	// Package is the name of the generated package.
	Package string
	// Digest of the schema this program was resolved from.
	Digest string
	// Graphs in declaration order.
	Graphs []Graph
	// Tables in declaration order.
	Tables []Table
}

// Graph is a resolved graph declaration.
type Graph struct {
	Name  string
	Kind  NodeKind
	Graph *graph.Graph[string]
}

// Table is a resolved table declaration.
type Table struct {
	Name   string
	Layout *table.Layout
}

// Resolve a schema into a program.  Syntax errors in chains are reported
// separately from other errors, such that they can be highlighted against the
// chain they arise from.
func (p *Schema) Resolve() (*Program, []source.SyntaxError, error) {
	var (
		program = Program{Package: p.Package, Digest: p.digest}
		errs    []source.SyntaxError
		names   = make(map[string]string)
	)
	//
	if !token.IsIdentifier(p.Package) {
		return nil, nil, fmt.Errorf("%w: package \"%s\"", ErrInvalidName, p.Package)
	}
	//
	for i, decl := range p.Graphs {
		if err := checkName(names, "graph", decl.Name); err != nil {
			return nil, nil, err
		}
		//
		g, serrs, err := p.resolveGraph(i, decl)
		if err != nil {
			return nil, nil, fmt.Errorf("graph %s: %w", decl.Name, err)
		}
		//
		errs = append(errs, serrs...)
		program.Graphs = append(program.Graphs, g)
	}
	//
	for _, decl := range p.Tables {
		if err := checkName(names, "table", decl.Name); err != nil {
			return nil, nil, err
		}
		//
		t, err := resolveTable(decl)
		if err != nil {
			return nil, nil, fmt.Errorf("table %s: %w", decl.Name, err)
		}
		//
		program.Tables = append(program.Tables, t)
	}
	//
	if len(errs) > 0 {
		return nil, errs, nil
	}
	//
	return &program, nil, nil
}

func (p *Schema) resolveGraph(index int, decl GraphDecl) (Graph, []source.SyntaxError, error) {
	kind := decl.Nodes
	//
	if kind == "" {
		kind = StringNode
	} else if kind != ByteNode && kind != RuneNode && kind != IntNode && kind != StringNode {
		return Graph{}, nil, fmt.Errorf("unknown node kind \"%s\"", kind)
	}
	//
	files := make([]*source.File, len(decl.Chains))
	//
	for i, chain := range decl.Chains {
		name := fmt.Sprintf("%s:graphs[%d].chains[%d]", p.filename, index, i)
		files[i] = source.NewSourceFile(name, chain)
	}
	//
	chains, errs := graph.ParseChains(files...)
	if len(errs) > 0 {
		return Graph{}, errs, nil
	}
	//
	g := graph.NewGraph(chains...)
	//
	for _, node := range g.Nodes().Items() {
		if err := checkNode(kind, node); err != nil {
			return Graph{}, nil, err
		}
	}
	//
	return Graph{decl.Name, kind, g}, nil, nil
}

// Check that a node can be represented by the given kind.
func checkNode(kind NodeKind, node string) error {
	switch kind {
	case ByteNode:
		if len(node) != 1 || node[0] >= utf8.RuneSelf {
			return fmt.Errorf("node \"%s\" is not a byte", node)
		}
	case RuneNode:
		if utf8.RuneCountInString(node) != 1 {
			return fmt.Errorf("node \"%s\" is not a rune", node)
		}
	case IntNode:
		if n, err := strconv.Atoi(node); err != nil {
			return fmt.Errorf("node \"%s\" is not an int", node)
		} else if strconv.Itoa(n) != node {
			// Each value has exactly one spelling, e.g. "10" but not "010".
			return fmt.Errorf("node \"%s\" is not in canonical form (%d)", node, n)
		}
	}
	//
	return nil
}

func resolveTable(decl TableDecl) (Table, error) {
	var (
		entries = make([]table.Entry, len(decl.Entries))
		names   = make(map[string]string)
	)
	//
	for i, e := range decl.Entries {
		if err := checkName(names, "entry", e.Name); err != nil {
			return Table{}, err
		}
		//
		entry, err := resolveEntry(e)
		if err != nil {
			return Table{}, fmt.Errorf("entry %s: %w", e.Name, err)
		}
		//
		entries[i] = entry
	}
	//
	layout, err := table.NewLayout(entries...)
	if err != nil {
		return Table{}, err
	}
	//
	return Table{decl.Name, layout}, nil
}

func resolveEntry(decl EntryDecl) (table.Entry, error) {
	var (
		vtype table.ValueType
		dim   uint = 1
	)
	//
	if decl.Dim != nil {
		dim = *decl.Dim
	}
	//
	if decl.Size != 0 || decl.Align != 0 {
		// Opaque type
		if decl.Size == 0 || decl.Align == 0 {
			return table.Entry{}, fmt.Errorf("opaque type %s requires both size and align", decl.Type)
		}
		//
		vtype = table.NewValueType(decl.Type, decl.Size, decl.Align)
	} else if t, ok := table.LookupType(decl.Type); ok {
		vtype = t
	} else {
		return table.Entry{}, fmt.Errorf("%w: unknown type \"%s\"", table.ErrNotTrivial, decl.Type)
	}
	//
	return table.NewEntry(decl.Key, decl.Name, vtype, dim), nil
}

// Check a declaration name is a valid identifier, and that its exported form
// has not been used already.  Generated identifiers are derived from the
// exported form, so "my_route" and "myRoute" clash.
func checkName(names map[string]string, kind string, name string) error {
	exported := util.ToPascalCase(name)
	//
	if !token.IsIdentifier(name) || !token.IsIdentifier(exported) {
		return fmt.Errorf("%w: %s \"%s\"", ErrInvalidName, kind, name)
	} else if other, ok := names[exported]; ok && other == name {
		return fmt.Errorf("%w: %s \"%s\" already declared", ErrInvalidName, kind, name)
	} else if ok {
		return fmt.Errorf("%w: %s \"%s\" clashes with \"%s\" as %s", ErrInvalidName, kind, name, other, exported)
	}
	//
	names[exported] = name
	//
	return nil
}
