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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-static/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeSchema = `
package: route
graphs:
  - name: route
    nodes: byte
    chains: [A->B->C->D, A->C, B->A, A->E]
  - name: ids
    nodes: int
    chains: [1->2, 2->3]
tables:
  - name: sensor_data
    entries:
      - {key: 0, name: temperature, type: float64}
      - {key: 1, name: humidity, type: float32}
      - {key: 2, name: serial, type: uint64}
      - {key: 3, name: label, type: byte, dim: 16}
`

func TestPlan_00(t *testing.T) {
	plan := checkPlan(t, routeSchema)
	//
	require.Len(t, plan.Graphs, 2)
	route := plan.Graphs[0]
	assert.Equal(t, "Route", route.Name)
	assert.Equal(t, "route", route.Var)
	assert.Equal(t, "byte", route.NodeType)
	assert.Equal(t, []string{"A->B", "B->C", "C->D", "A->C", "B->A", "A->E"}, route.Edges)
	// Sources (A,B,C) by targets (B,C,D,A,E), all reachable except C->A, C->B and C->E.
	assert.Len(t, route.Paths, 12)
	assert.Contains(t, route.Paths, PathPlan{"'A'", "'D'", "'A', 'C', 'D'"})
	assert.Contains(t, route.Paths, PathPlan{"'B'", "'E'", "'B', 'A', 'E'"})
	// Every pair of nodes
	assert.Len(t, route.Pairs, 25)
	assert.Contains(t, route.Pairs, PathPlan{"'D'", "'E'", ""})
	//
	ids := plan.Graphs[1]
	assert.Equal(t, "int", ids.NodeType)
	assert.Contains(t, ids.Paths, PathPlan{"1", "3", "1, 2, 3"})
}

func TestPlan_01(t *testing.T) {
	plan := checkPlan(t, routeSchema)
	//
	require.Len(t, plan.Tables, 1)
	sensor := plan.Tables[0]
	assert.Equal(t, "SensorData", sensor.Name)
	assert.Equal(t, "sensorData", sensor.Var)
	assert.Equal(t, []RegionPlan{
		{0, 2, 8, "temperature, serial"},
		{1, 1, 4, "humidity"},
		{2, 1, 16, "label"},
	}, sensor.Regions)
	//
	require.Len(t, sensor.Keys, 4)
	assert.Equal(t, KeyPlan{"SensorDataSerial", 2, "0x00000001", 0, 1, 8}, sensor.Keys[2])
	assert.Equal(t, "0x00000000, 0x00010000, 0x00000001, 0x00020000", sensor.Ids())
	assert.Equal(t, "8, 4, 8, 16", sensor.Strides())
}

func TestLiteral_00(t *testing.T) {
	checkLiteral(t, schema.ByteNode, "A", "'A'")
	checkLiteral(t, schema.RuneNode, "λ", "'λ'")
	checkLiteral(t, schema.IntNode, "42", "42")
	checkLiteral(t, schema.StringNode, "start", "\"start\"")
	//
	// Leading zeros are dropped, as Go would read them as octal
	checkLiteral(t, schema.IntNode, "010", "10")
	checkLiteral(t, schema.IntNode, "0", "0")
	//
	_, err := literal(schema.IntNode, "x")
	assert.Error(t, err)
	_, err = literal(schema.ByteNode, "AB")
	assert.Error(t, err)
}

func TestPlan_Clash(t *testing.T) {
	// The key constant SensorTemp of table Sensor clashes with table SensorTemp.
	program := checkProgram(t, `
package: clash
tables:
  - name: Sensor
    entries:
      - {key: 0, name: temp, type: float64}
  - name: SensorTemp
    entries:
      - {key: 0, name: value, type: float64}
`)
	_, err := NewPlan(program)
	assert.True(t, errors.Is(err, ErrNameClash), "got %v", err)
	assert.ErrorContains(t, err, "SensorTemp (from table Sensor and table SensorTemp)")
	// Generation fails before anything is written
	dir := t.TempDir()
	_, err = Generate(program, dir, Options{})
	assert.True(t, errors.Is(err, ErrNameClash), "got %v", err)
	assert.NoFileExists(t, filepath.Join(dir, "tables.go"))
}

func TestPlan_Clash_01(t *testing.T) {
	// A table named after the digest constant
	program := checkProgram(t, `
package: clash
tables:
  - name: SchemaDigest
    entries: []
`)
	_, err := NewPlan(program)
	assert.True(t, errors.Is(err, ErrNameClash), "got %v", err)
}

func TestGenerate_00(t *testing.T) {
	var (
		dir     = t.TempDir()
		program = checkProgram(t, routeSchema)
	)
	//
	files, err := Generate(program, dir, Options{Tests: true, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "digest.go"),
		filepath.Join(dir, "graphs.go"),
		filepath.Join(dir, "graphs_test.go"),
		filepath.Join(dir, "tables.go"),
		filepath.Join(dir, "tables_test.go"),
	}, files)
	//
	digest := readFile(t, files[0])
	assert.Contains(t, digest, "package route")
	assert.Contains(t, digest, "SchemaDigest = \""+program.Digest+"\"")
	//
	graphs := readFile(t, files[1])
	assert.Contains(t, graphs, "func GetRouteShortestPath(from, to byte) graph.PathRef[byte]")
	assert.Contains(t, graphs, "func GetIdsShortestPath(from, to int) graph.PathRef[int]")
	//
	tables := readFile(t, files[3])
	assert.Contains(t, tables, "type SensorData struct")
	assert.Contains(t, tables, "SensorDataLabel")
}

func TestGenerate_01(t *testing.T) {
	dir := t.TempDir()
	program := checkProgram(t, "package: empty\n")
	//
	files, err := Generate(program, dir, Options{Tests: true})
	require.NoError(t, err)
	// Only the digest is generated
	assert.Equal(t, []string{filepath.Join(dir, "digest.go")}, files)
}

func TestGenerate_02(t *testing.T) {
	dir := t.TempDir()
	program := checkProgram(t, "package: empty\ntables: [{name: nothing, entries: []}]\n")
	//
	files, err := Generate(program, dir, Options{})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, readFile(t, files[1]), "func (p *Nothing) slot(uint32) ([]byte, bool)")
}

// ==================================================================
// Test Helpers
// ==================================================================

func checkProgram(t *testing.T, text string) *schema.Program {
	s, err := schema.Parse("test.yaml", []byte(text))
	require.NoError(t, err)
	//
	program, errs, err := s.Resolve()
	require.NoError(t, err)
	require.Empty(t, errs)
	//
	return program
}

func checkPlan(t *testing.T, text string) *Plan {
	plan, err := NewPlan(checkProgram(t, text))
	require.NoError(t, err)
	//
	return plan
}

func checkLiteral(t *testing.T, kind schema.NodeKind, node string, expected string) {
	lit, err := literal(kind, node)
	//
	require.NoError(t, err)
	assert.Equal(t, expected, lit)
}

func readFile(t *testing.T, filename string) string {
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	//
	return strings.ReplaceAll(string(bytes), "\r\n", "\n")
}

func TestReadDigest_00(t *testing.T) {
	dir := t.TempDir()
	program := checkProgram(t, routeSchema)
	//
	_, err := Generate(program, dir, Options{})
	require.NoError(t, err)
	//
	digest, err := ReadDigest(dir)
	require.NoError(t, err)
	assert.Equal(t, program.Digest, digest)
	// Missing package
	_, err = ReadDigest(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
