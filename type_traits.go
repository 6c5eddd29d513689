// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stl

import (
	"reflect"
	"sync"
	"unsafe"
)

// SizeOf returns the size in bytes of a value of type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

var pointerTraits sync.Map // reflect.Type -> bool

// HasPointers reports whether values of type T contain Go pointers
// (pointers, strings, slices, maps, channels, funcs or interfaces) that the
// garbage collector has to trace. Such values must never live in memory the
// collector does not scan.
func HasPointers[T any]() bool {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := pointerTraits.Load(typ); ok {
		return v.(bool)
	}
	has := typeHasPointers(typ)
	pointerTraits.Store(typ, has)
	return has
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// castFromBytesTo reinterprets the slice b to a slice of type T. The result
// has length and capacity len(b)/sizeof(T); spare capacity in b is not
// exposed.
//
// NOTE: len(b) must be a multiple of T's size and T must not contain pointers.
func castFromBytesTo[T any](b []byte) []T {
	size := SizeOf[T]()
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(b)))
	return unsafe.Slice(ptr, len(b)/size)
}

// castToBytes is the inverse of castFromBytesTo: the bytes backing the
// elements of s, with length and capacity len(s)*sizeof(T).
func castToBytes[T any](s []T) []byte {
	size := SizeOf[T]()
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(s)))
	return unsafe.Slice(ptr, len(s)*size)
}
