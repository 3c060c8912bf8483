// Copyright 2025 go-batch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

// Generic is the portable tag: 16-byte registers, every kernel written in
// plain Go. It is the root of every tag chain, so each operation has at
// least this kernel to resolve to.
type Generic[T Lanes] struct{}

func (Generic[T]) Name() string        { return "generic" }
func (Generic[T]) Bytes() int          { return 16 }
func (Generic[T]) Alignment() int      { return 16 }
func (Generic[T]) Version() uint32     { return version(0, 0, 0) }
func (Generic[T]) Supported() bool     { return true }
func (Generic[T]) Available() bool     { return true }
func (Generic[T]) Declares(op Op) bool { return op < numOps }
func (Generic[T]) Base() Arch[T]       { return nil }
