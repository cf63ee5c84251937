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
package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaming_00(t *testing.T) {
	assert.Equal(t, "SensorData", ToPascalCase("sensor_data"))
	assert.Equal(t, "SensorData", ToPascalCase("sensorData"))
	assert.Equal(t, "sensorData", ToCamelCase("Sensor_data"))
	assert.Equal(t, "Route", ToPascalCase("route"))
	assert.Equal(t, "type_", ToCamelCase("Type"))
}

func TestNaming_01(t *testing.T) {
	// Different spellings of the same words agree
	assert.Equal(t, ToPascalCase("my_route"), ToPascalCase("myRoute"))
	assert.Equal(t, ToCamelCase("my_route"), ToCamelCase("MyRoute"))
	assert.Equal(t, ToPascalCase("max__speed"), ToPascalCase("MaxSpeed"))
	// Nothing left once underscores are dropped
	assert.Equal(t, "", ToPascalCase("_"))
	assert.Equal(t, "", ToPascalCase("__"))
}
