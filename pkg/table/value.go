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
	"reflect"
)

// ErrNotTrivial indicates a value type which cannot be stored in a table,
// because it is not a fixed-size, trivially copyable type.
var ErrNotTrivial = errors.New("value type is not trivially copyable")

// ValueType describes the layout of a value which can be stored in a table.
type ValueType struct {
	// Name of this type (e.g. as used in generated code).
	Name string
	// Size of this type in bytes.
	Size uint
	// Alignment of this type in bytes.
	Align uint
}

// NewValueType constructs a value type with an explicit size and alignment.
// This is useful for describing opaque types defined elsewhere.
func NewValueType(name string, size uint, align uint) ValueType {
	return ValueType{name, size, align}
}

// TypeOf determines the value type for a given Go type, provided it is
// trivially copyable.  That is, composed only of booleans, numbers, and arrays
// or structs thereof.
func TypeOf[T any]() (ValueType, error) {
	return typeOf(reflect.TypeFor[T]())
}

func typeOf(t reflect.Type) (ValueType, error) {
	if !isTrivial(t) {
		return ValueType{}, fmt.Errorf("%w: %s", ErrNotTrivial, t)
	}
	//
	return ValueType{t.String(), uint(t.Size()), uint(t.Align())}, nil
}

// Stride returns the number of bytes occupied by one slot holding dim values
// of this type.
func (p ValueType) Stride(dim uint) uint {
	return max(p.Size, p.Align) * dim
}

func (p ValueType) String() string {
	return fmt.Sprintf("%s(size=%d,align=%d)", p.Name, p.Size, p.Align)
}

func isTrivial(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isTrivial(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isTrivial(t.Field(i).Type) {
				return false
			}
		}
		//
		return true
	default:
		return false
	}
}

// builtin records the layout of the predeclared types which can be named in a
// schema.  Sizes are those of the platform running the generator.
var builtin = map[string]reflect.Type{
	"bool":       reflect.TypeFor[bool](),
	"byte":       reflect.TypeFor[byte](),
	"rune":       reflect.TypeFor[rune](),
	"int":        reflect.TypeFor[int](),
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"uint":       reflect.TypeFor[uint](),
	"uint8":      reflect.TypeFor[uint8](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"uintptr":    reflect.TypeFor[uintptr](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
}

// LookupType returns the value type of a predeclared Go type by name, such as
// "uint32" or "float64".
func LookupType(name string) (ValueType, bool) {
	if t, ok := builtin[name]; ok {
		vt, _ := typeOf(t)
		// Retain the name as written (e.g. "byte" rather than "uint8").
		vt.Name = name
		//
		return vt, true
	}
	//
	return ValueType{}, false
}
