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

package memory_test

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/gostl/stl"
	"github.com/gostl/stl/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToPowerOf2(t *testing.T) {
	tests := []struct {
		v, round int
		exp      int
	}{
		{60, 64, 64},
		{122, 64, 128},
		{16, 64, 64},
		{64, 64, 64},
		{13, 8, 16},
		{0, 8, 0},
		{1, 1, 1},
		{9, 4, 12},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("v%d_r%d", test.v, test.round), func(t *testing.T) {
			assert.Equal(t, test.exp, memory.RoundToPowerOf2(test.v, test.round))
		})
	}
}

func TestRoundUpToAlignment(t *testing.T) {
	a := memory.Alignment
	for _, v := range []int{0, 1, a - 1, a, a + 1, 3*a + 5} {
		got := memory.RoundUpToAlignment(v)
		assert.GreaterOrEqual(t, got, v)
		assert.Less(t, got-v, a)
		assert.True(t, memory.IsMultipleOfPowerOf2(got, a), "%d not rounded to %d", got, a)
	}
}

func TestIsMultipleOfPowerOf2(t *testing.T) {
	tests := []struct {
		v, d int
		exp  bool
	}{
		{0, 8, true},
		{200, 256, false},
		{256, 256, true},
		{500, 256, false},
		{512, 256, true},
		{24, 8, true},
		{20, 8, false},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_%d_%t", test.v, test.d, test.exp), func(t *testing.T) {
			assert.Equal(t, test.exp, memory.IsMultipleOfPowerOf2(test.v, test.d))
		})
	}
}

func TestAlignmentIsPowerOf2(t *testing.T) {
	assert.GreaterOrEqual(t, memory.Alignment, 64)
	assert.Zero(t, memory.Alignment&(memory.Alignment-1))
}

// The typed allocator and the raw block must agree on where the storage
// starts and how many bytes it spans.
func TestAddressOfTypedBlock(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	alloc := stl.NewAllocator[int32](mem)
	p, err := alloc.Allocate(6)
	require.NoError(t, err)

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&p[0])), 6*4)
	assert.Equal(t, uintptr(unsafe.Pointer(&p[0])), memory.AddressOf(raw))
	assert.Equal(t, 24, mem.CurrentAlloc())

	require.NoError(t, alloc.Deallocate(p, 6))
	assert.Zero(t, memory.AddressOf(nil))
}
