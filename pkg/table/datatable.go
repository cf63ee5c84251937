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

// Accessor is the runtime surface of a table, as implemented both by DataTable
// and by generated tables.
type Accessor interface {
	// GetData copies the value of a given key into out, returning false if the
	// key is unknown or has never been written.  At most min(len(out), stride)
	// bytes are copied.
	GetData(key uint, out []byte) bool
	// SetData copies in into the value of a given key, returning false if the
	// key is unknown.  At most min(len(in), stride) bytes are copied.
	SetData(key uint, in []byte) bool
}

// DataTable is a table instance for a given layout.  Its storage and written
// mask are private to it.
type DataTable struct {
	layout  *Layout
	regions Regions
	indexer Indexer
}

// New constructs an empty table for a given layout.
func New(layout *Layout) *DataTable {
	regions := make([]Region, len(layout.shapes))
	//
	for i, shape := range layout.shapes {
		regions[i] = NewRegion(shape.Count, shape.Stride)
	}
	//
	return &DataTable{layout, NewRegions(regions...), layout.indexer.Clone()}
}

// Layout returns the layout of this table.
func (p *DataTable) Layout() *Layout {
	return p.layout
}

// Size returns the number of keys in this table.
func (p *DataTable) Size() uint {
	return p.indexer.Size()
}

// Has checks whether a given key has been successfully written.
func (p *DataTable) Has(key uint) bool {
	return key < p.indexer.Size() && p.indexer.Written(key)
}

// GetData implementation for the Accessor interface.
func (p *DataTable) GetData(key uint, out []byte) bool {
	if !p.Has(key) {
		return false
	}
	//
	return p.regions.GetData(p.indexer.Id(key), out)
}

// SetData implementation for the Accessor interface.  Observe that a key is
// marked as written whenever the write is dispatched, even if no bytes are
// copied (e.g. because in is empty).
func (p *DataTable) SetData(key uint, in []byte) bool {
	if key >= p.indexer.Size() {
		return false
	}
	//
	written := p.regions.SetData(p.indexer.Id(key), in)
	p.indexer.Mark(key, written)
	//
	return written
}

// Reset returns this table to its initial state, where no key is written.
func (p *DataTable) Reset() {
	for i := range p.regions.Count() {
		p.regions.Region(i).Clear()
	}
	//
	p.indexer.Reset()
}
