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
package demo

import (
	"sync"
	"testing"

	"github.com/consensys/go-static/pkg/gen"
	"github.com/consensys/go-static/pkg/schema"
	"github.com/consensys/go-static/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaFile = "../../testdata/transit.yaml"

func TestDemo_UpToDate(t *testing.T) {
	s, err := schema.Read(schemaFile)
	require.NoError(t, err)
	//
	digest, err := gen.ReadDigest(".")
	require.NoError(t, err)
	assert.Equal(t, s.Digest(), SchemaDigest, "run go generate ./internal/generator")
	assert.Equal(t, SchemaDigest, digest)
}

func TestDemo_Paths(t *testing.T) {
	assert.True(t, GetRouteShortestPath('A', 'D').Equals('A', 'C', 'D'))
	assert.True(t, GetRouteShortestPath('B', 'A').Equals('B', 'A'))
	assert.True(t, GetRouteShortestPath('D', 'E').IsEmpty())
	assert.True(t, GetRouteShortestPath('A', 'A').Equals('A'))
	assert.True(t, GetRouteShortestPath('B', 'E').Equals('B', 'A', 'E'))
	assert.True(t, GetRouteShortestPath('Z', 'A').IsEmpty())
	assert.Equal(t, uint(12), RoutePathTable().Size())
}

// Generated paths agree with those determined by the generator itself.
func TestDemo_Compiled(t *testing.T) {
	s, err := schema.Read(schemaFile)
	require.NoError(t, err)
	//
	program, errs, err := s.Resolve()
	require.NoError(t, err)
	require.Empty(t, errs)
	//
	compiled := program.Graphs[0].Graph.Compile()
	require.Equal(t, compiled.Size(), RoutePathTable().Size())
	//
	for i := range compiled.Size() {
		expected := compiled.Entry(i)
		actual := RoutePathTable().Entry(i)
		//
		assert.Equal(t, expected.From, string(actual.From))
		assert.Equal(t, expected.To, string(actual.To))
		//
		nodes := make([]string, actual.Path.Size())
		for j := range actual.Path.Size() {
			nodes[j] = string(actual.Path.At(j))
		}
		//
		assert.Equal(t, expected.Path.Nodes(), nodes)
	}
}

func TestDemo_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	//
	for range 8 {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			//
			for range 100 {
				assert.True(t, GetRouteShortestPath('A', 'D').Equals('A', 'C', 'D'))
			}
		}()
	}
	//
	wg.Wait()
}

func TestDemo_Table(t *testing.T) {
	sensor := NewSensor()
	//
	require.True(t, table.Set(sensor, SensorTemperature, 21.5))
	require.True(t, table.Set(sensor, SensorSamples, [4]float32{1, 2, 3, 4}))
	require.True(t, table.Set(sensor, SensorOnline, true))
	//
	temp, ok := table.Get[float64](sensor, SensorTemperature)
	assert.True(t, ok)
	assert.Equal(t, 21.5, temp)
	//
	samples, ok := table.Get[[4]float32](sensor, SensorSamples)
	assert.True(t, ok)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, samples)
	//
	online, ok := table.Get[bool](sensor, SensorOnline)
	assert.True(t, ok)
	assert.True(t, online)
	// Unwritten
	_, ok = table.Get[uint64](sensor, SensorSerial)
	assert.False(t, ok)
}

func TestDemo_Truncation(t *testing.T) {
	sensor := NewSensor()
	// Humidity has a stride of four bytes
	require.True(t, sensor.SetData(SensorHumidity, []byte{1, 2, 3, 4, 5, 6}))
	require.True(t, sensor.SetData(SensorPressure, []byte{9, 9, 9, 9}))
	//
	out := make([]byte, 6)
	require.True(t, sensor.GetData(SensorHumidity, out))
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0}, out)
	// Zero length writes still mark a key as written
	require.True(t, sensor.SetData(SensorLabel, nil))
	assert.True(t, sensor.Has(SensorLabel))
	// Unwritten reads leave the buffer untouched
	out = []byte{7, 7}
	assert.False(t, sensor.GetData(SensorTag, out))
	assert.Equal(t, []byte{7, 7}, out)
}

// Generated tables behave exactly as tables built at runtime from the same
// layout.
func TestDemo_Equivalence(t *testing.T) {
	s, err := schema.Read(schemaFile)
	require.NoError(t, err)
	//
	program, _, err := s.Resolve()
	require.NoError(t, err)
	//
	var (
		generated = NewSensor()
		dynamic   = table.New(program.Tables[0].Layout)
	)
	//
	for key := range uint(10) {
		in := []byte{byte(key), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
		assert.Equal(t, dynamic.SetData(key, in), generated.SetData(key, in), "key %d", key)
	}
	//
	for key := range uint(10) {
		lhs, rhs := make([]byte, 20), make([]byte, 20)
		assert.Equal(t, dynamic.GetData(key, lhs), generated.GetData(key, rhs), "key %d", key)
		assert.Equal(t, lhs, rhs, "key %d", key)
	}
}
