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

import (
	"github.com/gostl/stl"
	"github.com/gostl/stl/internal/debug"
	"golang.org/x/xerrors"
)

// Direction selects the traversal order of an iterator at compile time.
// Only Forward and Reverse satisfy it.
type Direction interface {
	Forward | Reverse
	stride() int
}

// Forward walks storage from the first element to the last.
type Forward struct{}

func (Forward) stride() int { return 1 }

// Reverse walks storage from the last element to the first.
type Reverse struct{}

func (Reverse) stride() int { return -1 }

// The four iterator flavours.
type (
	Iterator[T any, S Storage[T]]             = Iter[T, S, Forward]
	ConstIterator[T any, S Storage[T]]        = ConstIter[T, S, Forward]
	ReverseIterator[T any, S Storage[T]]      = Iter[T, S, Reverse]
	ConstReverseIterator[T any, S Storage[T]] = ConstIter[T, S, Reverse]
)

// cursor is a position in an array's storage. pos ranges over [-1, N]:
// N is the forward end sentinel and -1 the reverse one.
type cursor[T any, S Storage[T], D Direction] struct {
	arr *FixedArray[T, S]
	pos int
}

func stride[D Direction]() int {
	var d D
	return d.stride()
}

func (c cursor[T, S, D]) valid() bool {
	return c.arr != nil && c.pos >= 0 && c.pos < len(c.arr.data)
}

func (c cursor[T, S, D]) deref() (T, error) {
	if !c.valid() {
		var zero T
		return zero, xerrors.Errorf("array: dereference at position %d: %w", c.pos, stl.ErrInvalidDereference)
	}
	return c.arr.data[c.pos], nil
}

func (c *cursor[T, S, D]) advance(n int) {
	c.pos += n * stride[D]()
	debug.Assert(c.arr == nil || (c.pos >= -1 && c.pos <= len(c.arr.data)), "array: iterator moved outside [-1, N]")
}

func (c cursor[T, S, D]) moved(n int) cursor[T, S, D] {
	c.advance(n)
	return c
}

// distance is the number of steps, in iteration order, from o to c.
func (c cursor[T, S, D]) distance(o cursor[T, S, D]) int {
	return (c.pos - o.pos) * stride[D]()
}

func (c cursor[T, S, D]) equal(o cursor[T, S, D]) bool {
	return c.arr == o.arr && c.pos == o.pos
}

// Iter is a read/write position in a FixedArray walked in direction D.
// Use the Iterator and ReverseIterator names rather than instantiating Iter
// directly.
type Iter[T any, S Storage[T], D Direction] struct {
	cursor[T, S, D]
}

// Value returns the element under the cursor. It panics at an end
// sentinel.
func (it Iter[T, S, D]) Value() T { return it.arr.data[it.pos] }

// Deref returns the element under the cursor, or stl.ErrInvalidDereference
// at an end sentinel.
func (it Iter[T, S, D]) Deref() (T, error) { return it.deref() }

// Ptr returns a pointer to the element under the cursor. It panics at an
// end sentinel.
func (it Iter[T, S, D]) Ptr() *T { return &it.arr.data[it.pos] }

// Set stores v in the element under the cursor. It panics at an end
// sentinel.
func (it Iter[T, S, D]) Set(v T) { it.arr.data[it.pos] = v }

// Valid reports whether the cursor is on an element.
func (it Iter[T, S, D]) Valid() bool { return it.valid() }

// Index returns the storage index under the cursor: -1 or Len() at the
// sentinels.
func (it Iter[T, S, D]) Index() int { return it.pos }

// Next moves to the following element in iteration order.
func (it *Iter[T, S, D]) Next() { it.advance(1) }

// Prev moves to the preceding element in iteration order.
func (it *Iter[T, S, D]) Prev() { it.advance(-1) }

// PostNext moves to the following element and returns the position held
// before the move.
func (it *Iter[T, S, D]) PostNext() Iter[T, S, D] {
	old := *it
	it.advance(1)
	return old
}

// PostPrev moves to the preceding element and returns the position held
// before the move.
func (it *Iter[T, S, D]) PostPrev() Iter[T, S, D] {
	old := *it
	it.advance(-1)
	return old
}

// Add returns the position n steps further in iteration order.
func (it Iter[T, S, D]) Add(n int) Iter[T, S, D] { return Iter[T, S, D]{it.moved(n)} }

// Sub returns the position n steps back in iteration order.
func (it Iter[T, S, D]) Sub(n int) Iter[T, S, D] { return Iter[T, S, D]{it.moved(-n)} }

// Distance returns the number of steps from o to it in iteration order.
func (it Iter[T, S, D]) Distance(o Iter[T, S, D]) int { return it.distance(o.cursor) }

// Equal reports whether it and o are the same position in the same array.
func (it Iter[T, S, D]) Equal(o Iter[T, S, D]) bool { return it.equal(o.cursor) }

// Less reports whether it comes before o in iteration order. Only
// positions in the same array are ordered.
func (it Iter[T, S, D]) Less(o Iter[T, S, D]) bool { return it.Distance(o) < 0 }

// LessEqual reports whether it is o or comes before it in iteration order.
func (it Iter[T, S, D]) LessEqual(o Iter[T, S, D]) bool { return it.Distance(o) <= 0 }

// Greater reports whether it comes after o in iteration order.
func (it Iter[T, S, D]) Greater(o Iter[T, S, D]) bool { return !it.LessEqual(o) }

// GreaterEqual reports whether it is o or comes after it in iteration order.
func (it Iter[T, S, D]) GreaterEqual(o Iter[T, S, D]) bool { return !it.Less(o) }

// Const returns a read-only iterator at the same position.
func (it Iter[T, S, D]) Const() ConstIter[T, S, D] { return ConstIter[T, S, D]{it.cursor} }

// ConstIter is a read-only position in a FixedArray walked in direction D.
// Use the ConstIterator and ConstReverseIterator names rather than
// instantiating ConstIter directly.
type ConstIter[T any, S Storage[T], D Direction] struct {
	cursor[T, S, D]
}

// Value returns the element under the cursor. It panics at an end
// sentinel.
func (it ConstIter[T, S, D]) Value() T { return it.arr.data[it.pos] }

// Deref returns the element under the cursor, or stl.ErrInvalidDereference
// at an end sentinel.
func (it ConstIter[T, S, D]) Deref() (T, error) { return it.deref() }

// Valid reports whether the cursor is on an element.
func (it ConstIter[T, S, D]) Valid() bool { return it.valid() }

// Index returns the storage index under the cursor: -1 or Len() at the
// sentinels.
func (it ConstIter[T, S, D]) Index() int { return it.pos }

// Next moves to the following element in iteration order.
func (it *ConstIter[T, S, D]) Next() { it.advance(1) }

// Prev moves to the preceding element in iteration order.
func (it *ConstIter[T, S, D]) Prev() { it.advance(-1) }

// PostNext moves to the following element and returns the position held
// before the move.
func (it *ConstIter[T, S, D]) PostNext() ConstIter[T, S, D] {
	old := *it
	it.advance(1)
	return old
}

// PostPrev moves to the preceding element and returns the position held
// before the move.
func (it *ConstIter[T, S, D]) PostPrev() ConstIter[T, S, D] {
	old := *it
	it.advance(-1)
	return old
}

// Add returns the position n steps further in iteration order.
func (it ConstIter[T, S, D]) Add(n int) ConstIter[T, S, D] {
	return ConstIter[T, S, D]{it.moved(n)}
}

// Sub returns the position n steps back in iteration order.
func (it ConstIter[T, S, D]) Sub(n int) ConstIter[T, S, D] {
	return ConstIter[T, S, D]{it.moved(-n)}
}

// Distance returns the number of steps from o to it in iteration order.
func (it ConstIter[T, S, D]) Distance(o ConstIter[T, S, D]) int { return it.distance(o.cursor) }

// Equal reports whether it and o are the same position in the same array.
func (it ConstIter[T, S, D]) Equal(o ConstIter[T, S, D]) bool { return it.equal(o.cursor) }

// Less reports whether it comes before o in iteration order. Only
// positions in the same array are ordered.
func (it ConstIter[T, S, D]) Less(o ConstIter[T, S, D]) bool { return it.Distance(o) < 0 }

// LessEqual reports whether it is o or comes before it in iteration order.
func (it ConstIter[T, S, D]) LessEqual(o ConstIter[T, S, D]) bool { return it.Distance(o) <= 0 }

// Greater reports whether it comes after o in iteration order.
func (it ConstIter[T, S, D]) Greater(o ConstIter[T, S, D]) bool { return !it.LessEqual(o) }

// GreaterEqual reports whether it is o or comes after it in iteration order.
func (it ConstIter[T, S, D]) GreaterEqual(o ConstIter[T, S, D]) bool { return !it.Less(o) }

func newCursor[D Direction, T any, S Storage[T]](a *FixedArray[T, S], pos int) cursor[T, S, D] {
	return cursor[T, S, D]{arr: a, pos: pos}
}

// Begin returns an iterator on the first element.
func (a *FixedArray[T, S]) Begin() Iterator[T, S] {
	return Iterator[T, S]{newCursor[Forward](a, 0)}
}

// End returns the sentinel one past the last element.
func (a *FixedArray[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{newCursor[Forward](a, len(a.data))}
}

// CBegin returns a read-only iterator on the first element.
func (a *FixedArray[T, S]) CBegin() ConstIterator[T, S] {
	return ConstIterator[T, S]{newCursor[Forward](a, 0)}
}

// CEnd returns the read-only sentinel one past the last element.
func (a *FixedArray[T, S]) CEnd() ConstIterator[T, S] {
	return ConstIterator[T, S]{newCursor[Forward](a, len(a.data))}
}

// RBegin returns a reverse iterator on the last element.
func (a *FixedArray[T, S]) RBegin() ReverseIterator[T, S] {
	return ReverseIterator[T, S]{newCursor[Reverse](a, len(a.data)-1)}
}

// REnd returns the reverse sentinel one before the first element.
func (a *FixedArray[T, S]) REnd() ReverseIterator[T, S] {
	return ReverseIterator[T, S]{newCursor[Reverse](a, -1)}
}

// CRBegin returns a read-only reverse iterator on the last element.
func (a *FixedArray[T, S]) CRBegin() ConstReverseIterator[T, S] {
	return ConstReverseIterator[T, S]{newCursor[Reverse](a, len(a.data)-1)}
}

// CREnd returns the read-only reverse sentinel one before the first element.
func (a *FixedArray[T, S]) CREnd() ConstReverseIterator[T, S] {
	return ConstReverseIterator[T, S]{newCursor[Reverse](a, -1)}
}

var (
	_ stl.Cursor[int, Iterator[int, [1]int]]             = (*Iterator[int, [1]int])(nil)
	_ stl.Cursor[int, ConstIterator[int, [1]int]]        = (*ConstIterator[int, [1]int])(nil)
	_ stl.Cursor[int, ReverseIterator[int, [1]int]]      = (*ReverseIterator[int, [1]int])(nil)
	_ stl.Cursor[int, ConstReverseIterator[int, [1]int]] = (*ConstReverseIterator[int, [1]int])(nil)
)
