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

// Region is the packed storage for one group of entries: a fixed number of
// slots, each of a fixed stride.
type Region struct {
	count  uint
	stride uint
	data   []byte
}

// NewRegion constructs a zeroed region of count slots, each of the given
// stride.
func NewRegion(count uint, stride uint) Region {
	return Region{count, stride, make([]byte, count*stride)}
}

// Count returns the number of slots in this region.
func (p *Region) Count() uint {
	return p.count
}

// Stride returns the number of bytes in each slot of this region.
func (p *Region) Stride() uint {
	return p.stride
}

// GetData copies the contents of the nᵗʰ slot into out, truncated to whichever
// is shorter.  This fails only if there is no such slot.
func (p *Region) GetData(nth uint, out []byte) bool {
	if nth >= p.count {
		return false
	}
	//
	copy(out, p.slot(nth))
	//
	return true
}

// SetData copies in into the nᵗʰ slot, truncated to whichever is shorter.
// This fails only if there is no such slot.
func (p *Region) SetData(nth uint, in []byte) bool {
	if nth >= p.count {
		return false
	}
	//
	copy(p.slot(nth), in)
	//
	return true
}

// Clear zeroes every slot of this region.
func (p *Region) Clear() {
	clear(p.data)
}

func (p *Region) slot(nth uint) []byte {
	start := nth * p.stride
	// Cap the slot so that it can never spill into its neighbour.
	return p.data[start : start+p.stride : start+p.stride]
}

func (p *Region) String() string {
	return fmt.Sprintf("[%d][%d]byte", p.count, p.stride)
}
