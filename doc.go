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
Package stl provides the allocator contract and iterator capabilities shared by
the standard containers in this module.

# Allocators

An Allocator[T] acquires and releases raw storage for elements of type T. It
does not construct or destroy values; it only hands out memory. The storage
strategy is a memory.Allocator (Go heap, pool, arena, ...) chosen when the
Allocator is created, so containers built on Allocator[T] never depend on a
particular strategy:

	alloc := stl.NewAllocator[float64](memory.NewPoolAllocator(0))
	buf, err := alloc.Allocate(128)
	if err != nil {
		return err
	}
	defer alloc.Deallocate(buf, 128)

Rebind retargets an allocator to another element type while keeping its
strategy:

	ints := stl.Rebind[int](alloc)

Element types holding Go pointers are never placed in raw byte blocks, since
the garbage collector would not see those pointers; for such types the
allocator falls back to typed Go heap allocations.

Not every container routes through an Allocator: array.FixedArray keeps its
elements inline in the value itself and takes no allocator at all.

# Iterators

Iterator and Cursor describe what every container cursor can do regardless of
its direction or whether it permits writes. The generic algorithms in this
package (Collect, Values, Count) accept any Cursor.
*/
package stl
