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
	"errors"
	"fmt"

	"github.com/consensys/go-static/pkg/util/collection/typelist"
)

var (
	// ErrKeyOutOfRange indicates an entry key not less than the number of
	// entries.
	ErrKeyOutOfRange = errors.New("key is out of range")
	// ErrDuplicateKey indicates two entries with the same key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidDim indicates an entry with a dimension of zero.
	ErrInvalidDim = errors.New("dimension must be positive")
	// ErrTooManySlots indicates more groups, or entries in a group, than a
	// composite index can address.
	ErrTooManySlots = errors.New("too many slots")
	// ErrTooLarge indicates an entry whose slot exceeds MaxStride bytes, or a
	// table whose regions together exceed MaxBytes.
	ErrTooLarge = errors.New("too large")
)

const (
	// MaxStride is the largest slot, in bytes, of any entry.
	MaxStride = 1 << 16
	// MaxBytes is the largest total size, in bytes, of all regions in a table.
	MaxBytes = 1 << 26
)

// RegionShape describes the dimensions of one region.
type RegionShape struct {
	Count  uint
	Stride uint
}

// Layout is the fully resolved arrangement of a table: its groups, the shape
// of the region for each group, and the indexer mapping keys into regions.  A
// layout is immutable, and can be shared by any number of tables.
type Layout struct {
	entries typelist.List[Entry]
	groups  typelist.List[Group]
	shapes  []RegionShape
	indexer Indexer
}

// NewLayout resolves the layout for a given set of entries, or fails if the
// entries are not a valid table declaration.
func NewLayout(entries ...Entry) (*Layout, error) {
	list := typelist.NewList(entries...)
	//
	for _, e := range entries {
		// Compare before multiplying, as Size*Dim can overflow.
		unit := max(e.Type.Stride(1), 1)
		//
		if e.Dim == 0 {
			return nil, fmt.Errorf("%w: entry %s", ErrInvalidDim, e.Name)
		} else if unit > MaxStride || e.Dim > MaxStride/unit {
			return nil, fmt.Errorf("%w: entry %s exceeds %d bytes", ErrTooLarge, e.Name, MaxStride)
		}
	}
	//
	groups := GroupEntries(list)
	shapes := make([]RegionShape, groups.Size())
	//
	if groups.Size() > MaxSlots {
		return nil, fmt.Errorf("%w: %d regions", ErrTooManySlots, groups.Size())
	}
	//
	var total uint
	//
	for i, g := range groups.All() {
		if g.Size() > MaxSlots {
			return nil, fmt.Errorf("%w: %d entries in region %d", ErrTooManySlots, g.Size(), i)
		}
		// Grouping ensures the head's stride is exact for all members.
		head, _ := g.Head()
		shapes[i] = RegionShape{g.Size(), head.Stride()}
		total += g.Size() * head.Stride()
	}
	//
	if total > MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, total, MaxBytes)
	}
	//
	indexer, err := NewIndexer(IndexGroups(groups))
	if err != nil {
		return nil, err
	}
	//
	return &Layout{list, groups, shapes, indexer}, nil
}

// Size returns the number of entries (and, hence, keys) in this layout.
func (p *Layout) Size() uint {
	return p.entries.Size()
}

// Entries returns the entries of this layout in declaration order.
func (p *Layout) Entries() typelist.List[Entry] {
	return p.entries
}

// Groups returns the groups of this layout, one per region.
func (p *Layout) Groups() typelist.List[Group] {
	return p.groups
}

// Shapes returns the shape of each region.
func (p *Layout) Shapes() []RegionShape {
	return p.shapes
}

// Id returns the composite index of a given key.
func (p *Layout) Id(key uint) uint32 {
	return p.indexer.Id(key)
}

// Ids returns the composite index of every key, ordered by key.
func (p *Layout) Ids() []uint32 {
	ids := make([]uint32, p.Size())
	//
	for i := range ids {
		ids[i] = p.indexer.Id(uint(i))
	}
	//
	return ids
}
