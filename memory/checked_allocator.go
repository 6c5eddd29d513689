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
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gostl/stl/internal/debug"
	"go.uber.org/zap"
)

// CheckedAllocator wraps another Allocator and records every live block
// together with the call site that requested it. It is meant for tests:
// AssertSize reports leaked blocks and a mismatched byte total.
type CheckedAllocator struct {
	mem Allocator
	sz  int64

	allocs sync.Map
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

func (a *CheckedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	out := a.mem.Allocate(size)
	if out == nil {
		return nil
	}
	atomic.AddInt64(&a.sz, int64(size))
	if size == 0 {
		return out
	}

	ptr := addressOf(out)
	if pc, _, l, ok := runtime.Caller(allocFrames); ok {
		a.allocs.Store(ptr, &dalloc{pc: pc, line: l, sz: size})
	}
	return out
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	if len(b) == 0 {
		a.Free(b)
		return a.Allocate(size)
	}

	oldptr := addressOf(b)
	out := a.mem.Reallocate(size, b)
	if out == nil {
		return nil
	}
	atomic.AddInt64(&a.sz, int64(size-len(b)))
	a.allocs.Delete(oldptr)
	if size == 0 {
		return out
	}

	newptr := addressOf(out)
	if pc, _, l, ok := runtime.Caller(reallocFrames); ok {
		a.allocs.Store(newptr, &dalloc{pc: pc, line: l, sz: size})
	}
	return out
}

func (a *CheckedAllocator) Free(b []byte) {
	atomic.AddInt64(&a.sz, int64(len(b)*-1))
	defer a.mem.Free(b)

	if len(b) == 0 {
		return
	}

	ptr := addressOf(b)
	a.allocs.Delete(ptr)
}

// typically the allocations are requested through stl.Allocator, not by
// consumers calling Allocate/Reallocate directly. As a result, we want to
// skip the caller frames of the typed layer in order to find the code that
// actually asked for the memory.
const (
	defAllocFrames   = 3
	defReallocFrames = 3
)

// Use the environment variables STL_CHECKED_ALLOC_FRAMES and STL_CHECKED_REALLOC_FRAMES
// to control how many frames up it checks when storing the caller for allocations/reallocs
// when using this to find memory leaks.
var allocFrames, reallocFrames int = defAllocFrames, defReallocFrames

func init() {
	if val, ok := os.LookupEnv("STL_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}

	if val, ok := os.LookupEnv("STL_CHECKED_REALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			reallocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	a.allocs.Range(func(_, value interface{}) bool {
		info := value.(*dalloc)
		f := runtime.FuncForPC(info.pc)
		debug.Log("memory: leaked block", zap.Int("bytes", info.sz), zap.String("func", f.Name()), zap.Int("line", info.line))
		t.Errorf("LEAK of %d bytes FROM %s line %d\n", info.sz, f.Name(), info.line)
		return true
	})

	if cur := a.CurrentAlloc(); cur != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
	}
}

type CheckedAllocatorScope struct {
	alloc *CheckedAllocator
	sz    int
}

func NewCheckedAllocatorScope(alloc *CheckedAllocator) *CheckedAllocatorScope {
	return &CheckedAllocatorScope{alloc: alloc, sz: alloc.CurrentAlloc()}
}

func (c *CheckedAllocatorScope) CheckSize(t TestingT) {
	sz := c.alloc.CurrentAlloc()
	if c.sz != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", c.sz, sz)
	}
}

var (
	_ Allocator = (*CheckedAllocator)(nil)
)
