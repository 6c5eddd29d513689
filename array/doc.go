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

/*
Package array provides FixedArray, a fixed-capacity sequence whose elements
live inline in the value itself.

The length is part of the type. FixedArray[T, S] is instantiated with the
backing array type S, so FixedArray[int, [5]int] always holds five ints, and
arrays of different lengths are different types that cannot be compared or
assigned to each other:

	a := array.FromValues[int, [5]int](1, 2, 3)
	for it := a.Begin(); !it.Equal(a.End()); it.Next() {
		fmt.Println(it.Value()) // 1 2 3 0 0
	}

FixedArray is a value type: assigning it copies every element. It never
allocates and takes no stl.Allocator; unlike the heap-backed containers built
on stl.Allocator, its storage strategy is always "inline".

# Element access

Get, Ptr and Set are unchecked: an index outside [0, Len()) panics with the
runtime's bounds error. At and SetAt check the index and return
stl.ErrIndexOutOfBounds instead.

# Iterators

Four iterator flavours cover every combination of direction and
mutability. They all share one cursor implementation whose direction is a
type parameter, so no direction test happens at run time:

	Iterator[T, S]              Begin, End        forward, read/write
	ConstIterator[T, S]         CBegin, CEnd      forward, read only
	ReverseIterator[T, S]       RBegin, REnd      backward, read/write
	ConstReverseIterator[T, S]  CRBegin, CREnd    backward, read only

An iterator refers to the array it came from without owning it. The end
positions are sentinels: they can be held and compared but not dereferenced.
*/
package array
