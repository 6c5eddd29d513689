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

package array_test

import (
	"math"
	"strings"
	"testing"

	"github.com/gostl/stl/array"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestEqualMatchesElementwise(t *testing.T) {
	r := rand.New(rand.NewSource(0x5eed))
	for round := 0; round < 200; round++ {
		var a, b array.FixedArray[int, [8]int]
		for i := 0; i < a.Len(); i++ {
			a.Set(i, r.Intn(3))
			b.Set(i, r.Intn(3))
		}

		want := true
		for i := 0; i < a.Len(); i++ {
			if a.Get(i) != b.Get(i) {
				want = false
				break
			}
		}
		assert.Equal(t, want, array.Equal(&a, &b), "round %d: %v vs %v", round, &a, &b)
		assert.Equal(t, !want, array.NotEqual(&a, &b))
		assert.True(t, array.Equal(&a, &a))
	}
}

func TestEqualStopsAtFirstMismatch(t *testing.T) {
	a := array.FromValues[int, [4]int](1, 2, 3, 4)
	b := array.FromValues[int, [4]int](1, 9, 3, 4)

	var visited []int
	eq := array.EqualFunc(&a, &b, func(x, y int) bool {
		visited = append(visited, x)
		return x == y
	})
	assert.False(t, eq)
	assert.Equal(t, []int{1, 2}, visited)
}

func TestEqualFunc(t *testing.T) {
	a := array.FromValues[string, [2]string]("Go", "STL")
	b := array.FromValues[string, [2]string]("go", "stl")
	assert.False(t, array.Equal(&a, &b))
	assert.True(t, array.EqualFunc(&a, &b, strings.EqualFold))
}

func TestEqualEmpty(t *testing.T) {
	var a, b array.FixedArray[float64, [0]float64]
	assert.True(t, array.Equal(&a, &b))
	assert.Zero(t, array.Compare(&a, &b))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		exp  int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"first differs", []int{0, 9, 9}, []int{1, 0, 0}, -1},
		{"last differs", []int{1, 2, 4}, []int{1, 2, 3}, 1},
		{"defaults", []int{1}, []int{1, 0}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := array.FromValues[int, [3]int](test.a...)
			b := array.FromValues[int, [3]int](test.b...)
			assert.Equal(t, test.exp, array.Compare(&a, &b))
			assert.Equal(t, -test.exp, array.Compare(&b, &a))
			assert.Equal(t, test.exp < 0, array.Less(&a, &b))
		})
	}
}

func TestCompareNaN(t *testing.T) {
	a := array.FromValues[float64, [2]float64](math.NaN(), 1)
	b := array.FromValues[float64, [2]float64](0, 1)
	assert.Equal(t, -1, array.Compare(&a, &b))
	assert.Zero(t, array.Compare(&a, &a))
	assert.False(t, array.Equal(&a, &a), "NaN never compares equal")
}
