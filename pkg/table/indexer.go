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

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-static/pkg/util/collection/typelist"
)

// KeyIndex associates the key of an entry with its composite index.
type KeyIndex struct {
	Key uint
	Id  uint32
}

// IndexGroups assigns a composite index to every entry of the given groups.
// The region index counts groups, whilst the slot index counts entries within
// a group and resets for each new group.
func IndexGroups(groups typelist.List[Group]) typelist.List[KeyIndex] {
	type state struct {
		region uint
		result typelist.List[KeyIndex]
	}
	//
	final := typelist.Fold(groups, state{}, func(acc state, group Group) state {
		result := acc.result
		//
		for slot, entry := range group.All() {
			result = result.Append(KeyIndex{entry.Key, CompositeIndex(acc.region, slot)})
		}
		//
		return state{acc.region + 1, result}
	})
	//
	return final.result
}

// Indexer maps keys to composite indices, and records which keys have been
// written.  The mapping is fixed at construction, whilst the written mask is
// mutable.
type Indexer struct {
	keyToId []uint32
	mask    *bitset.BitSet
}

// NewIndexer constructs an indexer from a set of key indices.  Every key must
// be less than the number of keys, and no key may be repeated.  Hence, keys
// are always dense.
func NewIndexer(indices typelist.List[KeyIndex]) (Indexer, error) {
	n := indices.Size()
	keyToId := make([]uint32, n)
	seen := bitset.New(n)
	//
	for _, ki := range indices.All() {
		if ki.Key >= n {
			return Indexer{}, fmt.Errorf("%w: key %d (size %d)", ErrKeyOutOfRange, ki.Key, n)
		} else if seen.Test(ki.Key) {
			return Indexer{}, fmt.Errorf("%w: key %d", ErrDuplicateKey, ki.Key)
		}
		//
		seen.Set(ki.Key)
		keyToId[ki.Key] = ki.Id
	}
	//
	return Indexer{keyToId, bitset.New(n)}, nil
}

// Size returns the number of keys covered by this indexer.
func (p *Indexer) Size() uint {
	return uint(len(p.keyToId))
}

// Id returns the composite index of a given key.
func (p *Indexer) Id(key uint) uint32 {
	return p.keyToId[key]
}

// Written checks whether a given key has been successfully written.
func (p *Indexer) Written(key uint) bool {
	return p.mask.Test(key)
}

// Mark records whether or not a given key has been successfully written.
func (p *Indexer) Mark(key uint, written bool) {
	p.mask.SetTo(key, written)
}

// Reset clears the written mask for all keys.
func (p *Indexer) Reset() {
	p.mask.ClearAll()
}

// Clone creates a copy of this indexer with an independent written mask.
func (p *Indexer) Clone() Indexer {
	return Indexer{p.keyToId, p.mask.Clone()}
}
