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

package stl_test

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/gostl/stl"
	"github.com/gostl/stl/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type point struct {
	X, Y int32
}

type rgb struct {
	R, G, B uint8
}

type triple struct {
	A, B, C int64
}

type named struct {
	name string
	n    int
}

type AllocatorSuite struct {
	suite.Suite

	mem *memory.CheckedAllocator
}

func (s *AllocatorSuite) SetupTest() {
	s.mem = memory.NewCheckedAllocator(memory.NewGoAllocator())
}

func (s *AllocatorSuite) TearDownTest() {
	s.mem.AssertSize(s.T(), 0)
}

func (s *AllocatorSuite) TestRoundTrip() {
	alloc := stl.NewAllocator[int64](s.mem)
	p, err := alloc.Allocate(5)
	s.Require().NoError(err)
	s.Len(p, 5)
	s.Equal(40, s.mem.CurrentAlloc())

	for i := range p {
		p[i] = int64(i * i)
	}
	s.Equal([]int64{0, 1, 4, 9, 16}, p)

	s.NoError(alloc.Deallocate(p, 5))
	s.Zero(s.mem.CurrentAlloc())
}

func (s *AllocatorSuite) TestStructElements() {
	alloc := stl.NewAllocator[point](s.mem)
	p, err := alloc.Allocate(3)
	s.Require().NoError(err)
	s.Equal(24, s.mem.CurrentAlloc())
	s.Equal([]point{{}, {}, {}}, p)

	p[2] = point{X: 1, Y: 2}
	s.Equal(point{X: 1, Y: 2}, p[2])
	s.NoError(alloc.Deallocate(p, 3))
}

func (s *AllocatorSuite) TestZeroCount() {
	alloc := stl.NewAllocator[int](s.mem)
	p, err := alloc.Allocate(0)
	s.NoError(err)
	s.Nil(p)
	s.NoError(alloc.Deallocate(p, 0))
	s.Zero(s.mem.CurrentAlloc())
}

func (s *AllocatorSuite) TestNegativeCount() {
	alloc := stl.NewAllocator[int](s.mem)
	_, err := alloc.Allocate(-1)
	s.ErrorIs(err, stl.ErrInvalid)
}

func (s *AllocatorSuite) TestCountMismatch() {
	alloc := stl.NewAllocator[uint16](s.mem)
	p, err := alloc.Allocate(4)
	s.Require().NoError(err)

	s.ErrorIs(alloc.Deallocate(p, 3), stl.ErrInvalid)
	s.Equal(8, s.mem.CurrentAlloc(), "mismatched deallocate must not release")
	s.NoError(alloc.Deallocate(p, 4))
}

func (s *AllocatorSuite) TestBeyondMaxSize() {
	alloc := stl.NewAllocator[int64](s.mem)
	_, err := alloc.Allocate(alloc.MaxSize() + 1)
	s.ErrorIs(err, stl.ErrOutOfMemory)
	s.Zero(s.mem.CurrentAlloc())
}

func (s *AllocatorSuite) TestPointerElementsBypassRawMemory() {
	alloc := stl.NewAllocator[named](s.mem)
	p, err := alloc.Allocate(2)
	s.Require().NoError(err)
	s.Zero(s.mem.CurrentAlloc())

	p[0] = named{name: "a", n: 1}
	s.Equal("a", p[0].name)
	s.NoError(alloc.Deallocate(p, 2))
}

func (s *AllocatorSuite) TestZeroSizeElements() {
	alloc := stl.NewAllocator[struct{}](s.mem)
	s.Equal(math.MaxInt, alloc.MaxSize())

	p, err := alloc.Allocate(10)
	s.Require().NoError(err)
	s.Len(p, 10)
	s.Zero(s.mem.CurrentAlloc())
	s.NoError(alloc.Deallocate(p, 10))
}

func TestAllocatorSuite(t *testing.T) {
	suite.Run(t, new(AllocatorSuite))
}

func TestAllocatorStrategies(t *testing.T) {
	tests := []struct {
		name string
		mem  memory.Allocator
	}{
		{"go", memory.NewGoAllocator()},
		{"pool", memory.NewPoolAllocator(0)},
		{"arena", memory.NewArenaAllocator(0, 0)},
		{"default", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			checked := memory.NewCheckedAllocator(stl.NewAllocator[byte](test.mem).Memory())
			defer checked.AssertSize(t, 0)

			alloc := stl.NewAllocator[float64](checked)
			p, err := alloc.Allocate(100)
			require.NoError(t, err)
			require.Len(t, p, 100)
			for i := range p {
				assert.Zero(t, p[i])
				p[i] = float64(i) / 2
			}
			assert.Equal(t, 49.5, p[99])
			assert.Zero(t, uintptr(unsafe.Pointer(&p[0]))%unsafe.Alignof(p[0]), "misaligned block")
			require.NoError(t, alloc.Deallocate(p, 100))
		})
	}
}

func TestAllocatorArenaExhaustion(t *testing.T) {
	arena := memory.NewArenaAllocator(64, 64)
	defer arena.Release()

	alloc := stl.NewAllocator[uint32](arena)
	p, err := alloc.Allocate(16)
	require.NoError(t, err)
	require.Len(t, p, 16)

	_, err = alloc.Allocate(1)
	assert.ErrorIs(t, err, stl.ErrOutOfMemory)
}

func TestAllocatorZeroValue(t *testing.T) {
	var alloc stl.Allocator[int32]
	assert.Equal(t, memory.DefaultAllocator, alloc.Memory())

	p, err := alloc.Allocate(3)
	require.NoError(t, err)
	assert.Len(t, p, 3)
	assert.NoError(t, alloc.Deallocate(p, 3))

	assert.True(t, alloc.Equal(stl.Allocator[int32]{}))
	assert.True(t, alloc.Equal(stl.NewAllocator[int32](nil)))
	assert.True(t, alloc.Equal(stl.NewAllocator[int32](memory.DefaultAllocator)))
	assert.False(t, alloc.Equal(stl.NewAllocator[int32](memory.NewPoolAllocator(0))))
}

func TestRebind(t *testing.T) {
	pool := memory.NewPoolAllocator(0)
	bytes := stl.NewAllocator[byte](pool)

	words := stl.Rebind[uint64](bytes)
	assert.Same(t, pool, words.Memory())
	assert.Equal(t, math.MaxInt/8, words.MaxSize())
	assert.Equal(t, math.MaxInt, bytes.MaxSize())

	back := stl.Rebind[byte](words)
	assert.True(t, back.Equal(bytes))

	p, err := words.Allocate(4)
	require.NoError(t, err)
	assert.Len(t, p, 4)
	assert.NoError(t, words.Deallocate(p, 4))
}

func TestAddress(t *testing.T) {
	alloc := stl.NewAllocator[point](nil)
	v := point{X: 3}
	assert.Same(t, &v, alloc.Address(&v))
}

func TestAllocateHintIgnored(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	alloc := stl.NewAllocator[int16](mem)
	first, err := alloc.Allocate(2)
	require.NoError(t, err)
	p, err := alloc.AllocateHint(8, unsafe.Pointer(&first[0]))
	require.NoError(t, err)
	assert.Len(t, p, 8)

	assert.NoError(t, alloc.Deallocate(p, 8))
	assert.NoError(t, alloc.Deallocate(first, 2))
}

func roundTrip[T any](t *testing.T, mem memory.Allocator, n int) {
	t.Helper()
	checked := memory.NewCheckedAllocator(mem)
	defer checked.AssertSize(t, 0)

	alloc := stl.NewAllocator[T](checked)
	size := stl.SizeOf[T]()
	for round := 0; round < 3; round++ {
		p, err := alloc.Allocate(n)
		require.NoError(t, err)
		require.Len(t, p, n)
		require.Equal(t, n, cap(p), "spare capacity leaks strategy memory")
		assert.Equal(t, n*size, checked.CurrentAlloc())

		raw := unsafe.Slice((*byte)(unsafe.Pointer(&p[0])), n*size)
		for i, c := range raw {
			require.Zero(t, c, "round %d: dirty byte at %d", round, i)
		}
		memory.Set(raw, 0xee)

		require.NoError(t, alloc.Deallocate(p, n))
		assert.Zero(t, checked.CurrentAlloc())
	}
}

func TestAllocatorElementSizes(t *testing.T) {
	strategies := []struct {
		name string
		mem  func() memory.Allocator
	}{
		{"go", func() memory.Allocator { return memory.NewGoAllocator() }},
		{"pool", func() memory.Allocator { return memory.NewPoolAllocator(0) }},
		{"small pool", func() memory.Allocator { return memory.NewPoolAllocator(64) }},
		{"arena", func() memory.Allocator { return memory.NewArenaAllocator(256, 0) }},
	}
	counts := []int{1, 3, 5, 100}
	for _, strategy := range strategies {
		t.Run(strategy.name, func(t *testing.T) {
			for _, n := range counts {
				t.Run(fmt.Sprintf("byte/%d", n), func(t *testing.T) { roundTrip[byte](t, strategy.mem(), n) })
				t.Run(fmt.Sprintf("rgb/%d", n), func(t *testing.T) { roundTrip[rgb](t, strategy.mem(), n) })
				t.Run(fmt.Sprintf("triple/%d", n), func(t *testing.T) { roundTrip[triple](t, strategy.mem(), n) })
			}
		})
	}
}

func TestAllocatorPoolRecyclesSizeClass(t *testing.T) {
	backing := memory.NewCheckedAllocator(memory.NewGoAllocator())
	checked := memory.NewCheckedAllocator(memory.NewPoolAllocatorWith(backing, 0))
	defer checked.AssertSize(t, 0)

	alloc := stl.NewAllocator[triple](checked)
	p, err := alloc.Allocate(3)
	require.NoError(t, err)
	require.Len(t, p, 3)
	assert.Equal(t, 3, cap(p))
	assert.Equal(t, 72, checked.CurrentAlloc())
	assert.Equal(t, 128, backing.CurrentAlloc())

	grown := append(p, triple{A: 1})
	assert.NotSame(t, &p[0], &grown[0], "append must not extend into pooled memory")

	first := &p[0]
	require.NoError(t, alloc.Deallocate(p, 3))
	assert.Equal(t, 128, backing.CurrentAlloc(), "block must go back to its size class whole")

	reused := false
	for i := 0; i < 8; i++ {
		q, err := alloc.Allocate(3)
		require.NoError(t, err)
		assert.Equal(t, 3, cap(q))
		assert.Equal(t, triple{}, q[0])
		reused = reused || &q[0] == first
		q[0] = triple{A: int64(i), B: 2, C: 3}
		require.NoError(t, alloc.Deallocate(q, 3))
	}
	assert.True(t, reused, "released block was never handed out again")
}
