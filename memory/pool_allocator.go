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
	"math/bits"
	"sync"
	"unsafe"

	"github.com/gostl/stl/internal/debug"
	"go.uber.org/zap"
)

const (
	minPoolClass = 64

	// DefaultMaxPoolClass is the largest block size recycled by a
	// PoolAllocator created with a non-positive maxClass.
	DefaultMaxPoolClass = 1 << 20
)

// PoolAllocator recycles freed blocks in power-of-two size classes. Each
// request is rounded up to its class; freed blocks go back to the pool of
// their class and are zero-filled again before they are handed out.
// Requests larger than the biggest class go straight to the backing
// allocator.
//
// PoolAllocator is safe to use from multiple goroutines.
type PoolAllocator struct {
	mem      Allocator
	maxClass int
	pools    []sync.Pool
}

// NewPoolAllocator returns a pool whose largest size class is maxClass
// bytes, rounded up to a power of two. Fresh blocks come from
// DefaultAllocator.
func NewPoolAllocator(maxClass int) *PoolAllocator {
	return NewPoolAllocatorWith(DefaultAllocator, maxClass)
}

// NewPoolAllocatorWith is like NewPoolAllocator but takes fresh blocks from
// mem.
func NewPoolAllocatorWith(mem Allocator, maxClass int) *PoolAllocator {
	if maxClass <= 0 {
		maxClass = DefaultMaxPoolClass
	}
	if maxClass < minPoolClass {
		maxClass = minPoolClass
	}
	maxClass = 1 << bits.Len(uint(maxClass-1))
	return &PoolAllocator{
		mem:      mem,
		maxClass: maxClass,
		pools:    make([]sync.Pool, classIndex(maxClass)+1),
	}
}

// MaxClass returns the largest block size, in bytes, kept by the pool.
func (p *PoolAllocator) MaxClass() int { return p.maxClass }

// classIndex returns the pool slot for a block of the given class size.
func classIndex(class int) int {
	return bits.Len(uint(class-1)) - bits.Len(uint(minPoolClass-1))
}

func classFor(size int) int {
	if size <= minPoolClass {
		return minPoolClass
	}
	return 1 << bits.Len(uint(size-1))
}

func (p *PoolAllocator) Allocate(size int) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	if size > p.maxClass {
		debug.Log("memory: pool bypass for oversized block", zap.Int("size", size), zap.Int("max_class", p.maxClass))
		return p.mem.Allocate(size)
	}

	class := classFor(size)
	if v := p.pools[classIndex(class)].Get(); v != nil {
		buf := *(v.(*[]byte))
		Set(buf[:class], 0)
		return buf[:size]
	}

	buf := p.mem.Allocate(class)
	if buf == nil {
		return nil
	}
	return buf[:size]
}

func (p *PoolAllocator) Reallocate(size int, b []byte) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	if full, ok := p.block(b); ok && classFor(size) == len(full) {
		if size > len(b) {
			Set(full[len(b):size], 0)
		}
		return full[:size]
	}

	newBuf := p.Allocate(size)
	if newBuf == nil {
		return nil
	}
	copy(newBuf, b)
	p.Free(b)
	return newBuf
}

func (p *PoolAllocator) Free(b []byte) {
	full, ok := p.block(b)
	if !ok {
		p.mem.Free(b)
		return
	}
	p.pools[classIndex(len(full))].Put(&full)
}

// block returns the whole size-class block that b was handed out from. The
// class is derived from len(b), so a block whose capacity was clipped by the
// caller still finds its way home. ok is false for blocks that bypassed the
// pool.
func (p *PoolAllocator) block(b []byte) (full []byte, ok bool) {
	if cap(b) == 0 || len(b) > p.maxClass {
		return nil, false
	}
	class := classFor(len(b))
	if cap(b) < class {
		b = unsafe.Slice(unsafe.SliceData(b), class)
	}
	return b[:class:class], true
}

var (
	_ Allocator = (*PoolAllocator)(nil)
)
