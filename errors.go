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

import "golang.org/x/xerrors"

var (
	// ErrInvalid is returned when an argument breaks an operation's contract,
	// such as a negative element count or a deallocation count that does not
	// match the block.
	ErrInvalid = xerrors.New("invalid")
	// ErrOutOfMemory is returned when an allocation request cannot be satisfied.
	ErrOutOfMemory = xerrors.New("out of memory")
	// ErrIndexOutOfBounds is returned by checked element access.
	ErrIndexOutOfBounds = xerrors.New("index out of bounds")
	// ErrInvalidDereference is returned when a sentinel position is dereferenced.
	ErrInvalidDereference = xerrors.New("invalid dereference")
)
