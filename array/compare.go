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

package array

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold equal elements at every index. The
// comparison runs in index order and stops at the first mismatch.
func Equal[T comparable, S Storage[T]](a, b *FixedArray[T, S]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable, S Storage[T]](a, b *FixedArray[T, S]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any, S Storage[T]](a, b *FixedArray[T, S], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < len(a.data); i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically. It returns -1 if a sorts before
// b, +1 if after and 0 if every element is equal. Floating point NaNs sort
// before other values, as with cmp.Compare.
func Compare[T constraints.Ordered, S Storage[T]](a, b *FixedArray[T, S]) int {
	for i := 0; i < len(a.data); i++ {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether a sorts lexicographically before b.
func Less[T constraints.Ordered, S Storage[T]](a, b *FixedArray[T, S]) bool {
	return Compare(a, b) < 0
}
