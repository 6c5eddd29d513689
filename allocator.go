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

package stl

import (
	"math"
	"runtime"
	"strings"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"github.com/gostl/stl/memory"
	"golang.org/x/xerrors"
)

// Allocator acquires and releases uninitialized storage for elements of
// type T through a memory.Allocator strategy.
//
// Allocator is a small value with no state of its own beyond the strategy;
// copies are interchangeable. The zero value allocates through
// memory.DefaultAllocator.
type Allocator[T any] struct {
	mem memory.Allocator
}

// NewAllocator returns an Allocator for T drawing memory from mem. A nil mem
// selects memory.DefaultAllocator.
func NewAllocator[T any](mem memory.Allocator) Allocator[T] {
	return Allocator[T]{mem: mem}
}

// Rebind returns an allocator for element type U that uses the same
// strategy as a.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{mem: a.mem}
}

// Memory returns the strategy backing a.
func (a Allocator[T]) Memory() memory.Allocator {
	if a.mem == nil {
		return memory.DefaultAllocator
	}
	return a.mem
}

// Equal reports whether storage obtained from a can be released through o.
func (a Allocator[T]) Equal(o Allocator[T]) bool {
	return a.Memory() == o.Memory()
}

// Allocate returns storage for n elements of T. The returned slice has
// length and capacity n; its elements hold whatever the strategy produced
// (the strategies in package memory hand out zeroed blocks) and have not been
// initialized in any other way.
//
// Allocate(0) returns nil. A negative n yields ErrInvalid; a request that
// cannot be satisfied yields ErrOutOfMemory.
func (a Allocator[T]) Allocate(n int) ([]T, error) {
	return a.allocate(n)
}

// AllocateHint is Allocate with a locality hint. The hint has no effect on
// correctness and is currently ignored.
func (a Allocator[T]) AllocateHint(n int, hint unsafe.Pointer) ([]T, error) {
	return a.allocate(n)
}

func (a Allocator[T]) allocate(n int) (out []T, err error) {
	switch {
	case n < 0:
		return nil, xerrors.Errorf("stl: allocate %d elements: %w", n, ErrInvalid)
	case n == 0:
		return nil, nil
	case n > a.MaxSize():
		return nil, xerrors.Errorf("stl: allocate %d elements exceeds max size %d: %w", n, a.MaxSize(), ErrOutOfMemory)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok || !strings.Contains(rerr.Error(), "makeslice") {
				panic(r)
			}
			out, err = nil, xerrors.Errorf("stl: allocate %d elements: %v: %w", n, rerr, ErrOutOfMemory)
		}
	}()

	size := SizeOf[T]()
	if size == 0 || HasPointers[T]() {
		return make([]T, n), nil
	}

	nbytes, ok := overflow.Mul(n, size)
	if !ok {
		return nil, xerrors.Errorf("stl: allocate %d elements of %d bytes: %w", n, size, ErrOutOfMemory)
	}
	mem := a.Memory()
	b := mem.Allocate(nbytes)
	if len(b) < nbytes {
		if b != nil {
			mem.Free(b)
		}
		return nil, xerrors.Errorf("stl: allocate %d bytes: %w", nbytes, ErrOutOfMemory)
	}
	return castFromBytesTo[T](b[:nbytes]), nil
}

// Deallocate releases storage obtained from Allocate(n), returning the
// n*sizeof(T) bytes granted to the strategy. It does not touch the
// elements; any cleanup they need is the caller's job before the call.
//
// A count that differs from len(p) yields ErrInvalid and releases nothing.
// Releasing the same storage twice is a caller error that is not detected.
func (a Allocator[T]) Deallocate(p []T, n int) error {
	if n != len(p) {
		return xerrors.Errorf("stl: deallocate %d elements from a block of %d: %w", n, len(p), ErrInvalid)
	}
	if n == 0 {
		return nil
	}
	if SizeOf[T]() == 0 || HasPointers[T]() {
		return nil
	}
	a.Memory().Free(castToBytes(p))
	return nil
}

// Address returns the address of an already constructed value.
func (a Allocator[T]) Address(v *T) *T { return v }

// MaxSize returns the largest element count a single Allocate could address.
// It is a bound, not a promise that such a request would succeed.
func (a Allocator[T]) MaxSize() int {
	size := SizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}
