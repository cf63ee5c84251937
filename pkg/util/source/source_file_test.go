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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceFile_00(t *testing.T) {
	file := NewSourceFile("routes.yaml", "A -> B\nB -> C -> D")
	err := file.SyntaxError(NewSpan(12, 13), "unknown node")
	line := err.FirstEnclosingLine()
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "B -> C -> D", line.String())
	assert.Equal(t, 7, line.Start())
	assert.Equal(t, "C", file.Text(err.Span()))
	assert.Equal(t, "routes.yaml:12:13:unknown node", err.Error())
}

func TestSourceFile_01(t *testing.T) {
	file := NewSourceFile("chain", "A ->")
	// Errors reported at end-of-file fall on the last line.
	line := file.FindFirstEnclosingLine(NewSpan(4, 4))
	//
	assert.Equal(t, 1, line.Number())
	assert.Equal(t, "A ->", line.String())
}

func TestSpan_00(t *testing.T) {
	span := NewSpan(3, 7)
	//
	assert.Equal(t, 4, span.Length())
	assert.Panics(t, func() { NewSpan(2, 1) })
}
