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
package table

import (
	"fmt"
)

// Entry declares a single field of a table.
type Entry struct {
	// Key uniquely identifies this entry within its table.
	Key uint
	// Name of this entry (e.g. as used in generated code).
	Name string
	// Type of the values held in this entry.
	Type ValueType
	// Dim is the array dimension, where 1 indicates a scalar.
	Dim uint
}

// NewEntry constructs a new entry.
func NewEntry(key uint, name string, vtype ValueType, dim uint) Entry {
	return Entry{key, name, vtype, dim}
}

// IsArray determines whether this entry holds more than one value.
func (p Entry) IsArray() bool {
	return p.Dim > 1
}

// Stride returns the number of bytes occupied by this entry's slot.
func (p Entry) Stride() uint {
	return p.Type.Stride(p.Dim)
}

// Compatible checks whether two entries have identical layout, and hence can
// be placed in the same region.  Observe that type names are irrelevant here.
func (p Entry) Compatible(other Entry) bool {
	return p.Dim == other.Dim && p.Type.Size == other.Type.Size && p.Type.Align == other.Type.Align
}

func (p Entry) String() string {
	if p.IsArray() {
		return fmt.Sprintf("%d:%s[%d]%s", p.Key, p.Name, p.Dim, p.Type.Name)
	}
	//
	return fmt.Sprintf("%d:%s %s", p.Key, p.Name, p.Type.Name)
}
