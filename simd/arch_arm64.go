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

//go:build arm64

package simd

// NEON is Advanced SIMD as found on 32-bit Arm: 128-bit registers, no 64-bit
// float lanes, no 64-bit integer compares, no float division.
type NEON[T Lanes] struct{ Generic[T] }

// NEON64 is the A64 Advanced SIMD instruction set.
type NEON64[T Lanes] struct{ NEON[T] }

func (NEON[T]) Name() string        { return "arm32+neon" }
func (NEON[T]) Bytes() int          { return 16 }
func (NEON[T]) Alignment() int      { return 16 }
func (NEON[T]) Version() uint32     { return version(7, 0, 0) }
func (NEON[T]) Supported() bool     { return true }
func (NEON[T]) Available() bool     { return features.asimd }
func (NEON[T]) Declares(op Op) bool { return neonOps.has(op, KindOf[T]()) }
func (NEON[T]) Base() Arch[T]       { return Generic[T]{} }

func (NEON64[T]) Name() string        { return "arm64+neon" }
func (NEON64[T]) Bytes() int          { return 16 }
func (NEON64[T]) Alignment() int      { return 16 }
func (NEON64[T]) Version() uint32     { return version(8, 1, 0) }
func (NEON64[T]) Supported() bool     { return true }
func (NEON64[T]) Available() bool     { return features.asimd }
func (NEON64[T]) Declares(op Op) bool { return neon64Ops.has(op, KindOf[T]()) }
func (NEON64[T]) Base() Arch[T]       { return NEON[T]{} }
