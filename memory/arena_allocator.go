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

	"github.com/gostl/stl/internal/debug"
	"go.uber.org/zap"
)

// DefaultChunkSize is the chunk size used by an ArenaAllocator created with a
// non-positive chunk size (64 KiB).
const DefaultChunkSize = 1 << 16

// arenaAlign is the alignment of every block carved out of a chunk.
const arenaAlign = int(unsafe.Sizeof(uintptr(0)))

type arenaChunk struct {
	buf    []byte
	offset int
}

// ArenaAllocator is a chunked bump allocator. Blocks are carved sequentially
// out of large chunks and are never released one by one: Free is a no-op,
// Reset rewinds every chunk for reuse and Release drops them all.
//
// An optional limit caps the total bytes of chunk memory the arena may hold;
// once reached, Allocate returns nil.
//
// ArenaAllocator is not safe for concurrent use.
type ArenaAllocator struct {
	chunks    []arenaChunk
	cur       int
	chunkSize int
	limit     int
	reserved  int
	released  bool
}

// NewArenaAllocator returns an arena with the given chunk size. A
// non-positive chunkSize selects DefaultChunkSize; a non-positive limit
// means the arena may grow without bound.
func NewArenaAllocator(chunkSize, limit int) *ArenaAllocator {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if limit < 0 {
		limit = 0
	}
	return &ArenaAllocator{chunkSize: chunkSize, limit: limit}
}

func (a *ArenaAllocator) Allocate(size int) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	a.panicIfReleased()
	if size == 0 {
		return []byte{}
	}

	for ; a.cur < len(a.chunks); a.cur++ {
		if b := a.chunks[a.cur].carve(size); b != nil {
			return b
		}
	}

	if !a.grow(size) {
		return nil
	}
	return a.chunks[a.cur].carve(size)
}

// Reallocate carves a new block and copies b into it unless the new size
// fits in b's current block.
func (a *ArenaAllocator) Reallocate(size int, b []byte) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	if size <= len(b) {
		return b[:size]
	}

	newBuf := a.Allocate(size)
	if newBuf == nil {
		return nil
	}
	copy(newBuf, b)
	return newBuf
}

func (a *ArenaAllocator) Free(b []byte) {}

// Reset rewinds every chunk so its memory can be handed out again. Blocks
// obtained before Reset must no longer be used.
func (a *ArenaAllocator) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		Set(a.chunks[i].buf[:a.chunks[i].offset], 0)
		a.chunks[i].offset = 0
	}
	a.cur = 0
}

// Release drops all chunks. Any later call other than Release panics.
func (a *ArenaAllocator) Release() {
	a.chunks = nil
	a.cur = 0
	a.reserved = 0
	a.released = true
}

// grow appends a chunk able to hold at least size bytes, honouring the limit.
func (a *ArenaAllocator) grow(size int) bool {
	n := a.chunkSize
	if size > n {
		n = size
	}
	if a.limit > 0 && a.reserved+n > a.limit {
		if a.reserved+size > a.limit {
			return false
		}
		n = size
	}

	debug.Log("memory: arena growing", zap.Int("chunk", n), zap.Int("reserved", a.reserved))
	a.chunks = append(a.chunks, arenaChunk{buf: make([]byte, n)})
	a.cur = len(a.chunks) - 1
	a.reserved += n
	return true
}

func (a *ArenaAllocator) panicIfReleased() {
	if a.released {
		panic("memory: arena used after Release")
	}
}

// carve bumps the chunk offset and returns the next size bytes, or nil if
// the chunk cannot hold them.
func (c *arenaChunk) carve(size int) []byte {
	off := roundToPowerOf2(c.offset, arenaAlign)
	if off+size > len(c.buf) {
		return nil
	}
	debug.Assert(isMultipleOfPowerOf2(off, arenaAlign), "memory: misaligned arena block")
	c.offset = off + size
	return c.buf[off : off+size : off+size]
}

var (
	_ Allocator = (*ArenaAllocator)(nil)
)
