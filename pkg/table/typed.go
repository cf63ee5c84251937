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
	"unsafe"
)

// Set writes a value of type T to a given key.  T must be trivially copyable
// (see TypeOf), and should match the type declared for the key.  If T is
// larger than the key's slot, then it is truncated.
func Set[T any](table Accessor, key uint, value T) bool {
	return table.SetData(key, bytesOf(&value))
}

// Get reads a value of type T from a given key, returning false if the key is
// unknown or has never been written.
func Get[T any](table Accessor, key uint) (T, bool) {
	var value T
	//
	ok := table.GetData(key, bytesOf(&value))
	//
	return value, ok
}

// View the memory of a trivially copyable value as bytes.
func bytesOf[T any](ptr *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), unsafe.Sizeof(*ptr))
}
