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

// Package table provides a packed key/value data table whose layout is fixed
// before use.  A table is declared as a set of entries, each having a unique
// integer key, a trivially copyable value type and an array dimension.  From
// these declarations a layout is determined once:
//
//   - Entries are grouped by layout compatibility, meaning identical
//     dimension, value size and value alignment.  The first ungrouped entry
//     defines the signature of each new group, and groups appear in the order
//     their signatures are first encountered.
//   - Each group is allocated one region: a packed block of fixed-stride slots,
//     one per entry.  The stride is max(size, align) * dim.
//   - An indexer maps each key to its composite index (region << 16 | slot).
//
// At runtime a DataTable offers only GetData / SetData, which copy raw bytes
// between a caller's buffer and the slot for a given key.  Copies are always
// bounded by min(len(buffer), stride).  A failed lookup (unknown key, or a key
// never written) is reported as false and has no side effects.  A DataTable is
// not safe for concurrent mutation; callers must serialise access themselves.
package table
