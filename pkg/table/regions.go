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

// MaxSlots is the number of slots (or regions) addressable by a composite
// index.
const MaxSlots = 1 << 16

// CompositeIndex combines a region index and a slot index into the single
// address used by an indexer.
func CompositeIndex(region uint, slot uint) uint32 {
	return uint32(region<<16 | slot)
}

// SplitIndex decomposes a composite index into its region and slot indices.
func SplitIndex(index uint32) (region uint, slot uint) {
	return uint(index >> 16), uint(index & 0xFFFF)
}

// Regions is the ordered collection of regions making up a table's storage,
// addressed by composite index.
type Regions struct {
	regions []Region
}

// NewRegions constructs a collection from zero or more regions.
func NewRegions(regions ...Region) Regions {
	return Regions{regions}
}

// Count returns the number of regions.
func (p *Regions) Count() uint {
	return uint(len(p.regions))
}

// Region returns the iᵗʰ region.
func (p *Regions) Region(i uint) *Region {
	return &p.regions[i]
}

// GetData reads the slot at a given composite index.  This fails if the index
// does not identify a slot of some region.
func (p *Regions) GetData(index uint32, out []byte) bool {
	return p.dispatch(index, func(r *Region, slot uint) bool {
		return r.GetData(slot, out)
	})
}

// SetData writes the slot at a given composite index.  This fails if the index
// does not identify a slot of some region.
func (p *Regions) SetData(index uint32, in []byte) bool {
	return p.dispatch(index, func(r *Region, slot uint) bool {
		return r.SetData(slot, in)
	})
}

func (p *Regions) dispatch(index uint32, op func(*Region, uint) bool) bool {
	region, slot := SplitIndex(index)
	//
	for i := range p.regions {
		if uint(i) == region {
			return op(&p.regions[i], slot)
		}
	}
	// Dispatch miss
	return false
}
