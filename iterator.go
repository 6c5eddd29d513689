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

import "iter"

// Iterator is the capability every container cursor provides, whatever its
// traversal direction and whether or not it allows writes. Next and Prev
// move one position in iteration order; Value reads the element under the
// cursor and must only be called when Valid reports true.
type Iterator[T any] interface {
	Value() T
	Valid() bool
	Next()
	Prev()
}

// Cursor is an Iterator that can be compared with another position of its
// own type, which is what range-based algorithms need to detect the end.
type Cursor[T, I any] interface {
	Iterator[T]
	Equal(I) bool
}

// Collect returns the elements in [first, last) in iteration order.
//
//	vals := stl.Collect[int](arr.Begin(), arr.End())
func Collect[T, I any, P interface {
	*I
	Cursor[T, I]
}](first, last I) []T {
	var out []T
	for it := P(&first); !it.Equal(last); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Values returns a sequence over the elements in [first, last).
func Values[T, I any, P interface {
	*I
	Cursor[T, I]
}](first, last I) iter.Seq[T] {
	return func(yield func(T) bool) {
		pos := first
		for it := P(&pos); !it.Equal(last); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Count returns the number of steps from first to last.
func Count[T, I any, P interface {
	*I
	Cursor[T, I]
}](first, last I) int {
	n := 0
	for it := P(&first); !it.Equal(last); it.Next() {
		n++
	}
	return n
}
