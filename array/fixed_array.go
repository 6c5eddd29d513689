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

//go:generate go run ../_tools/tmpl/main.go -data=storage.tmpldata storage.gen.go.tmpl

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"

	"github.com/goccy/go-json"
	"github.com/gostl/stl"
	"golang.org/x/xerrors"
)

// Initializer is satisfied by *T when T has a default state that differs
// from its zero value. Init puts a zero T into that state.
type Initializer[T any] interface {
	*T
	Init()
}

// FixedArray is a sequence of exactly len(S) elements of type T stored
// inline. The zero value is an array of zero-valued elements.
//
// S must be one of the array lengths enumerated by Storage.
type FixedArray[T any, S Storage[T]] struct {
	data S
}

// New returns an array whose elements all hold the zero value of T.
func New[T any, S Storage[T]]() FixedArray[T, S] {
	return FixedArray[T, S]{}
}

// NewInit returns an array whose elements have each been initialized with
// Init, in index order.
func NewInit[T any, S Storage[T], PT Initializer[T]]() FixedArray[T, S] {
	var a FixedArray[T, S]
	for i := 0; i < len(a.data); i++ {
		PT(&a.data[i]).Init()
	}
	return a
}

// FromValues returns an array whose leading elements are vals, in order.
// Elements past len(vals) keep the zero value; values past the array's
// length are discarded.
func FromValues[T any, S Storage[T]](vals ...T) FixedArray[T, S] {
	var a FixedArray[T, S]
	a.assignValues(vals)
	return a
}

// Clone returns an independent copy of src.
func Clone[T any, S Storage[T]](src *FixedArray[T, S]) FixedArray[T, S] {
	return *src
}

// Move returns an array holding src's elements and resets every element of
// src to the zero value of T.
func Move[T any, S Storage[T]](src *FixedArray[T, S]) FixedArray[T, S] {
	var a FixedArray[T, S]
	a.MoveAssign(src)
	return a
}

func (a *FixedArray[T, S]) assignValues(vals []T) {
	n := min(len(vals), len(a.data))
	for i := 0; i < n; i++ {
		a.data[i] = vals[i]
	}
}

// Len returns the number of elements, which is fixed by S.
func (a *FixedArray[T, S]) Len() int { return len(a.data) }

// Empty reports whether the array has no elements.
func (a *FixedArray[T, S]) Empty() bool { return len(a.data) == 0 }

// Get returns the element at index i.
func (a *FixedArray[T, S]) Get(i int) T { return a.data[i] }

// Ptr returns a pointer to the element at index i. The pointer stays valid
// for as long as a does.
func (a *FixedArray[T, S]) Ptr(i int) *T { return &a.data[i] }

// Set stores v at index i.
func (a *FixedArray[T, S]) Set(i int, v T) { a.data[i] = v }

// At returns the element at index i, or stl.ErrIndexOutOfBounds when i is
// not in [0, Len()).
func (a *FixedArray[T, S]) At(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// SetAt stores v at index i, or returns stl.ErrIndexOutOfBounds when i is
// not in [0, Len()).
func (a *FixedArray[T, S]) SetAt(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

func (a *FixedArray[T, S]) checkIndex(i int) error {
	if i < 0 || i >= len(a.data) {
		return xerrors.Errorf("array: index %d out of range [0, %d): %w", i, len(a.data), stl.ErrIndexOutOfBounds)
	}
	return nil
}

// Front returns a pointer to the first element. It panics if the array is
// empty.
func (a *FixedArray[T, S]) Front() *T { return a.Ptr(0) }

// Back returns a pointer to the last element. It panics if the array is
// empty.
func (a *FixedArray[T, S]) Back() *T { return a.Ptr(len(a.data) - 1) }

// Fill stores v in every element.
func (a *FixedArray[T, S]) Fill(v T) {
	for i := 0; i < len(a.data); i++ {
		a.data[i] = v
	}
}

// Assign overwrites a with a copy of src's elements.
func (a *FixedArray[T, S]) Assign(src *FixedArray[T, S]) {
	a.data = src.data
}

// MoveAssign overwrites a with src's elements, in index order, and resets
// each element of src to the zero value of T. Moving an array onto itself
// leaves it unchanged.
func (a *FixedArray[T, S]) MoveAssign(src *FixedArray[T, S]) {
	if a == src {
		return
	}
	var zero T
	for i := 0; i < len(a.data); i++ {
		a.data[i] = src.data[i]
		src.data[i] = zero
	}
}

// Swap exchanges the contents of a and o.
func (a *FixedArray[T, S]) Swap(o *FixedArray[T, S]) {
	a.data, o.data = o.data, a.data
}

// Slice returns a slice sharing a's storage. Writes through the slice are
// writes to a.
func (a *FixedArray[T, S]) Slice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data)), len(a.data))
}

// All returns a sequence of index/element pairs in index order.
func (a *FixedArray[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(a.data); i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/element pairs from the last index to
// the first.
func (a *FixedArray[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements in index order.
func (a *FixedArray[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(a.data); i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

func (a *FixedArray[T, S]) String() string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := 0; i < len(a.data); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		fmt.Fprintf(o, "%v", a.data[i])
	}
	o.WriteString("]")
	return o.String()
}

// MarshalJSON encodes the array as a JSON array of its elements.
func (a FixedArray[T, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Slice())
}

// UnmarshalJSON decodes a JSON array the way FromValues treats its
// arguments: surplus values are discarded and missing trailing elements are
// reset to the zero value. A JSON null resets every element.
func (a *FixedArray[T, S]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*a = FixedArray[T, S]{}
	a.assignValues(vals)
	return nil
}

var (
	_ fmt.Stringer     = (*FixedArray[int, [1]int])(nil)
	_ json.Marshaler   = (*FixedArray[int, [1]int])(nil)
	_ json.Unmarshaler = (*FixedArray[int, [1]int])(nil)
)
