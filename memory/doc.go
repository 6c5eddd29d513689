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

/*
Package memory provides raw byte allocation strategies.

Every strategy implements Allocator. Typed, element-aware allocation is layered
on top of these strategies by stl.Allocator; containers choose a storage
strategy by choosing which Allocator they are handed, without any change to
their own logic.

	GoAllocator       Go heap, cache-line aligned blocks, Free is a no-op.
	PoolAllocator     power-of-two size classes recycled through sync.Pool.
	ArenaAllocator    chunked bump allocation released in bulk.
	CheckedAllocator  wraps another strategy and tracks live blocks, for tests.

Blocks returned by the strategies in this package are zero-filled.
*/
package memory
