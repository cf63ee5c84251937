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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-static/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transitSchema = `
package: transit
graphs:
  - name: Route
    nodes: byte
    chains:
      - A->B->C->D
      - A->C
      - B->A
      - A->E
tables:
  - name: Sensor
    entries:
      - {key: 0, name: Temperature, type: float64}
      - {key: 1, name: Humidity, type: float32}
      - {key: 2, name: Serial, type: uint64}
      - {key: 3, name: Label, type: byte, dim: 16}
      - {key: 4, name: Opaque, type: Blob, size: 12, align: 4}
`

func TestSchema_00(t *testing.T) {
	program := checkResolve(t, transitSchema)
	//
	assert.Equal(t, "transit", program.Package)
	require.Len(t, program.Graphs, 1)
	require.Len(t, program.Tables, 1)
	//
	route := program.Graphs[0]
	assert.Equal(t, ByteNode, route.Kind)
	assert.Equal(t, uint(5), route.Graph.Edges().Size())
	assert.True(t, route.Graph.Compile().GetShortestPath("A", "D").Equals("A", "C", "D"))
	//
	sensor := program.Tables[0].Layout
	assert.Equal(t, uint(5), sensor.Size())
	assert.Equal(t, []table.RegionShape{{2, 8}, {1, 4}, {1, 16}, {1, 12}}, sensor.Shapes())
}

func TestSchema_01(t *testing.T) {
	s1, err := Parse("a.yaml", []byte(transitSchema))
	require.NoError(t, err)
	s2, err := Parse("b.yaml", []byte(transitSchema))
	require.NoError(t, err)
	s3, err := Parse("c.yaml", []byte(transitSchema+"\n# changed\n"))
	require.NoError(t, err)
	// Digest depends only on content
	assert.Equal(t, s1.Digest(), s2.Digest())
	assert.NotEqual(t, s1.Digest(), s3.Digest())
	assert.Len(t, s1.Digest(), 64)
}

func TestSchema_02(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "transit.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(transitSchema), 0o600))
	//
	schema, err := Read(filename)
	require.NoError(t, err)
	assert.Equal(t, filename, schema.Filename())
	assert.Equal(t, Digest([]byte(transitSchema)), schema.Digest())
	//
	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSchema_Default(t *testing.T) {
	program := checkResolve(t, `
package: p
graphs:
  - name: Net
    chains: [start->finish]
tables:
  - name: T
    entries: []
`)
	//
	assert.Equal(t, StringNode, program.Graphs[0].Kind)
	assert.Equal(t, uint(0), program.Tables[0].Layout.Size())
}

func TestSchema_SyntaxError(t *testing.T) {
	schema, err := Parse("bad.yaml", []byte(`
package: p
graphs:
  - name: Net
    chains: [A->B, "A->->C", "D*"]
`))
	require.NoError(t, err)
	//
	program, errs, err := schema.Resolve()
	require.NoError(t, err)
	assert.Nil(t, program)
	require.Len(t, errs, 2)
	assert.Equal(t, "bad.yaml:graphs[0].chains[1]", errs[0].SourceFile().Filename())
	assert.Equal(t, "bad.yaml:graphs[0].chains[2]", errs[1].SourceFile().Filename())
}

func TestSchema_Invalid_00(t *testing.T) {
	checkInvalid(t, "package: 1p", ErrInvalidName)
	checkInvalid(t, "package: p\ngraphs: [{name: x-y, chains: []}]", ErrInvalidName)
	checkInvalid(t, "package: p\ngraphs: [{name: X, chains: []}]\ntables: [{name: X, entries: []}]", ErrInvalidName)
}

func TestSchema_Invalid_01(t *testing.T) {
	checkInvalid(t, `
package: p
tables:
  - name: T
    entries:
      - {key: 0, name: A, type: int}
      - {key: 0, name: B, type: int}
`, table.ErrDuplicateKey)
	checkInvalid(t, `
package: p
tables:
  - name: T
    entries:
      - {key: 1, name: A, type: int}
`, table.ErrKeyOutOfRange)
	checkInvalid(t, `
package: p
tables:
  - name: T
    entries:
      - {key: 0, name: A, type: int, dim: 0}
`, table.ErrInvalidDim)
	checkInvalid(t, `
package: p
tables:
  - name: T
    entries:
      - {key: 0, name: A, type: string}
`, table.ErrNotTrivial)
	checkInvalid(t, `
package: p
tables:
  - name: T
    entries:
      - {key: 0, name: A, type: byte, dim: 1099511627776}
`, table.ErrTooLarge)
}

func TestSchema_Invalid_02(t *testing.T) {
	checkInvalidMsg(t, "package: p\ngraphs: [{name: G, nodes: byte, chains: [AB->C]}]", "graph G: node \"AB\" is not a byte")
	checkInvalidMsg(t, "package: p\ngraphs: [{name: G, nodes: int, chains: [1->x]}]", "graph G: node \"x\" is not an int")
	checkInvalidMsg(t, "package: p\ngraphs: [{name: G, nodes: float, chains: [1->2]}]", "graph G: unknown node kind \"float\"")
	checkInvalidMsg(t, "package: p\ntables: [{name: T, entries: [{key: 0, name: A, type: B, size: 4}]}]",
		"table T: entry A: opaque type B requires both size and align")
}

func TestSchema_Invalid_03(t *testing.T) {
	// Leading zeros would be read as octal in generated code
	checkInvalidMsg(t, "package: p\ngraphs: [{name: G, nodes: int, chains: [010->011, 8->9]}]",
		"graph G: node \"010\" is not in canonical form (10)")
	checkInvalidMsg(t, "package: p\ngraphs: [{name: G, nodes: int, chains: [08->09]}]",
		"graph G: node \"08\" is not in canonical form (8)")
	// Zero and multi-digit nodes are fine
	program := checkResolve(t, "package: p\ngraphs: [{name: G, nodes: int, chains: [0->10->100]}]")
	assert.Equal(t, []string{"0", "10", "100"}, program.Graphs[0].Graph.Nodes().Items())
}

func TestSchema_Invalid_04(t *testing.T) {
	// Distinct names which generate the same identifiers
	checkInvalidMsg(t, "package: p\ngraphs: [{name: my_route, chains: []}, {name: myRoute, chains: []}]",
		"invalid name: graph \"myRoute\" clashes with \"my_route\" as MyRoute")
	checkInvalidMsg(t, "package: p\ngraphs: [{name: sensor, chains: []}]\ntables: [{name: Sensor, entries: []}]",
		"invalid name: table \"Sensor\" clashes with \"sensor\" as Sensor")
	checkInvalid(t, `
package: p
tables:
  - name: T
    entries:
      - {key: 0, name: max_speed, type: int}
      - {key: 1, name: MaxSpeed, type: int}
`, ErrInvalidName)
	// Names with no exported form
	checkInvalid(t, "package: p\ngraphs: [{name: _, chains: []}]", ErrInvalidName)
	checkInvalid(t, "package: p\ngraphs: [{name: _1, chains: []}]", ErrInvalidName)
}

func TestSchema_Malformed(t *testing.T) {
	_, err := Parse("bad.yaml", []byte("package: [unterminated"))
	assert.ErrorContains(t, err, "bad.yaml")
}

// ==================================================================
// Test Helpers
// ==================================================================

func checkResolve(t *testing.T, text string) *Program {
	schema, err := Parse("test.yaml", []byte(text))
	require.NoError(t, err)
	//
	program, errs, err := schema.Resolve()
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, schema.Digest(), program.Digest)
	//
	return program
}

func checkInvalid(t *testing.T, text string, expected error) {
	schema, err := Parse("test.yaml", []byte(text))
	require.NoError(t, err)
	//
	_, _, err = schema.Resolve()
	assert.True(t, errors.Is(err, expected), "expected %v, got %v", expected, err)
}

func checkInvalidMsg(t *testing.T, text string, expected string) {
	schema, err := Parse("test.yaml", []byte(text))
	require.NoError(t, err)
	//
	_, _, err = schema.Resolve()
	assert.EqualError(t, err, expected)
}
