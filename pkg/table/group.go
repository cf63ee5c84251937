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
	"github.com/consensys/go-static/pkg/util/collection/typelist"
)

// Group is a non-empty sequence of layout compatible entries.
type Group = typelist.List[Entry]

// GroupEntries partitions entries into groups of compatible layout.  The head
// entry defines the signature of the first group, which every compatible entry
// joins.  Grouping then continues with whatever remains.  Groups appear in the
// order in which their signatures are first encountered, and entries within a
// group retain their declaration order.
func GroupEntries(entries typelist.List[Entry]) typelist.List[Group] {
	return groupEntries(entries, typelist.List[Group]{})
}

func groupEntries(entries typelist.List[Entry], grouped typelist.List[Group]) typelist.List[Group] {
	head, ok := entries.Head()
	//
	if !ok {
		return grouped
	}
	//
	group := typelist.Partition(entries, head.Compatible)
	//
	return groupEntries(group.Rest, grouped.Append(group.Satisfied))
}
