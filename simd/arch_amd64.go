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

//go:build amd64

package simd

// x86 tags. Each embeds the previous generation, so it inherits every kernel
// it does not redefine. The 128-bit SSE kernels are written per 128-bit block
// and run unchanged on the wider AVX registers.

// SSE2 is the x86-64 baseline.
type SSE2[T Lanes] struct{ Generic[T] }

// SSE3 adds no kernel: its horizontal adds are slower than the SSE2
// shuffle-and-add reduction.
type SSE3[T Lanes] struct{ SSE2[T] }

// SSSE3 adds integer absolute value.
type SSSE3[T Lanes] struct{ SSE3[T] }

// SSE4_1 adds 32-bit multiply, the remaining integer min/max, 64-bit
// equality and blends.
type SSE4_1[T Lanes] struct{ SSSE3[T] }

// SSE4_2 adds 64-bit signed greater-than.
type SSE4_2[T Lanes] struct{ SSE4_1[T] }

// AVX widens registers to 256 bits.
type AVX[T Lanes] struct{ SSE4_2[T] }

// AVX2 adds per-lane variable shifts.
type AVX2[T Lanes] struct{ AVX[T] }

// FMA3 is AVX2 with fused multiply-add.
type FMA3[T Lanes] struct{ AVX2[T] }

// AVX512F widens registers to 512 bits and completes the 64-bit integer
// operations.
type AVX512F[T Lanes] struct{ FMA3[T] }

// AVX512BW adds the 16-bit variable shifts.
type AVX512BW[T Lanes] struct{ AVX512F[T] }

func (SSE2[T]) Name() string        { return "sse2" }
func (SSE2[T]) Bytes() int          { return 16 }
func (SSE2[T]) Alignment() int      { return 16 }
func (SSE2[T]) Version() uint32     { return version(1, 2, 0) }
func (SSE2[T]) Supported() bool     { return goamd64 >= 1 }
func (SSE2[T]) Available() bool     { return features.sse2 }
func (SSE2[T]) Declares(op Op) bool { return sse2Ops.has(op, KindOf[T]()) }
func (SSE2[T]) Base() Arch[T]       { return Generic[T]{} }

func (SSE3[T]) Name() string        { return "sse3" }
func (SSE3[T]) Bytes() int          { return 16 }
func (SSE3[T]) Alignment() int      { return 16 }
func (SSE3[T]) Version() uint32     { return version(1, 3, 0) }
func (SSE3[T]) Supported() bool     { return goamd64 >= 2 }
func (SSE3[T]) Available() bool     { return features.sse3 }
func (SSE3[T]) Declares(op Op) bool { return false }
func (SSE3[T]) Base() Arch[T]       { return SSE2[T]{} }

func (SSSE3[T]) Name() string        { return "ssse3" }
func (SSSE3[T]) Bytes() int          { return 16 }
func (SSSE3[T]) Alignment() int      { return 16 }
func (SSSE3[T]) Version() uint32     { return version(1, 3, 1) }
func (SSSE3[T]) Supported() bool     { return goamd64 >= 2 }
func (SSSE3[T]) Available() bool     { return features.ssse3 }
func (SSSE3[T]) Declares(op Op) bool { return ssse3Ops.has(op, KindOf[T]()) }
func (SSSE3[T]) Base() Arch[T]       { return SSE3[T]{} }

func (SSE4_1[T]) Name() string        { return "sse4.1" }
func (SSE4_1[T]) Bytes() int          { return 16 }
func (SSE4_1[T]) Alignment() int      { return 16 }
func (SSE4_1[T]) Version() uint32     { return version(1, 4, 1) }
func (SSE4_1[T]) Supported() bool     { return goamd64 >= 2 }
func (SSE4_1[T]) Available() bool     { return features.sse41 }
func (SSE4_1[T]) Declares(op Op) bool { return sse41Ops.has(op, KindOf[T]()) }
func (SSE4_1[T]) Base() Arch[T]       { return SSSE3[T]{} }

func (SSE4_2[T]) Name() string        { return "sse4.2" }
func (SSE4_2[T]) Bytes() int          { return 16 }
func (SSE4_2[T]) Alignment() int      { return 16 }
func (SSE4_2[T]) Version() uint32     { return version(1, 4, 2) }
func (SSE4_2[T]) Supported() bool     { return goamd64 >= 2 }
func (SSE4_2[T]) Available() bool     { return features.sse42 }
func (SSE4_2[T]) Declares(op Op) bool { return sse42Ops.has(op, KindOf[T]()) }
func (SSE4_2[T]) Base() Arch[T]       { return SSE4_1[T]{} }

func (AVX[T]) Name() string        { return "avx" }
func (AVX[T]) Bytes() int          { return 32 }
func (AVX[T]) Alignment() int      { return 32 }
func (AVX[T]) Version() uint32     { return version(2, 1, 0) }
func (AVX[T]) Supported() bool     { return goamd64 >= 3 }
func (AVX[T]) Available() bool     { return features.avx }
func (AVX[T]) Declares(op Op) bool { return false }
func (AVX[T]) Base() Arch[T]       { return SSE4_2[T]{} }

func (AVX2[T]) Name() string        { return "avx2" }
func (AVX2[T]) Bytes() int          { return 32 }
func (AVX2[T]) Alignment() int      { return 32 }
func (AVX2[T]) Version() uint32     { return version(2, 2, 0) }
func (AVX2[T]) Supported() bool     { return goamd64 >= 3 }
func (AVX2[T]) Available() bool     { return features.avx2 }
func (AVX2[T]) Declares(op Op) bool { return avx2Ops.has(op, KindOf[T]()) }
func (AVX2[T]) Base() Arch[T]       { return AVX[T]{} }

func (FMA3[T]) Name() string        { return "fma3+avx2" }
func (FMA3[T]) Bytes() int          { return 32 }
func (FMA3[T]) Alignment() int      { return 32 }
func (FMA3[T]) Version() uint32     { return version(2, 2, 1) }
func (FMA3[T]) Supported() bool     { return goamd64 >= 3 }
func (FMA3[T]) Available() bool     { return features.avx2 && features.fma }
func (FMA3[T]) Declares(op Op) bool { return fma3Ops.has(op, KindOf[T]()) }
func (FMA3[T]) Base() Arch[T]       { return AVX2[T]{} }

func (AVX512F[T]) Name() string        { return "avx512f" }
func (AVX512F[T]) Bytes() int          { return 64 }
func (AVX512F[T]) Alignment() int      { return 64 }
func (AVX512F[T]) Version() uint32     { return version(3, 1, 0) }
func (AVX512F[T]) Supported() bool     { return goamd64 >= 4 }
func (AVX512F[T]) Available() bool     { return features.avx512f }
func (AVX512F[T]) Declares(op Op) bool { return avx512fOps.has(op, KindOf[T]()) }
func (AVX512F[T]) Base() Arch[T]       { return FMA3[T]{} }

func (AVX512BW[T]) Name() string        { return "avx512bw" }
func (AVX512BW[T]) Bytes() int          { return 64 }
func (AVX512BW[T]) Alignment() int      { return 64 }
func (AVX512BW[T]) Version() uint32     { return version(3, 4, 0) }
func (AVX512BW[T]) Supported() bool     { return goamd64 >= 4 }
func (AVX512BW[T]) Available() bool     { return features.avx512bw }
func (AVX512BW[T]) Declares(op Op) bool { return avx512bwOps.has(op, KindOf[T]()) }
func (AVX512BW[T]) Base() Arch[T]       { return AVX512F[T]{} }
