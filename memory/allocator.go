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

package memory

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// alignment is the byte alignment of blocks handed out by GoAllocator:
// one cache line on the target platform.
const alignment = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Allocator is a strategy for acquiring and releasing raw byte blocks.
//
// Allocate returns a block of exactly size bytes, or nil when the strategy
// cannot satisfy the request. Reallocate resizes a block previously returned
// by the same strategy, preserving its contents up to the smaller of the two
// sizes. Free releases a block previously returned by the same strategy.
// Reallocate and Free key on len(b); the capacity of b may have been clipped
// by the caller.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// DefaultAllocator is a default implementation of Allocator and can be used anywhere
// an Allocator is required.
//
// DefaultAllocator is safe to use from multiple goroutines.
var DefaultAllocator Allocator = NewGoAllocator()
