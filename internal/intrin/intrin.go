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

// Package intrin models the x86 and Arm vector instructions that the native
// kernels of package simd are written against.
//
// Each exported function stands for one instruction (or one family that only
// differs by lane width) and operates on register lanes passed as slices.
// Vertical operations work on any number of lanes. Operations that move data
// between lanes (shuffles, horizontal adds) work on 128-bit blocks, the same
// way the VEX and EVEX encodings repeat the legacy SSE behavior per block.
//
// Unless noted otherwise dst may alias any source operand.
package intrin

import "unsafe"

// Signed is the set of signed lane types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned lane types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of integer lane types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point lane types.
type Float interface {
	~float32 | ~float64
}

// Number is every lane type.
type Number interface {
	Integer | Float
}

func bits[E Number]() uint64 {
	var z E
	return uint64(unsafe.Sizeof(z)) * 8
}

func ones[E Integer]() E {
	return ^E(0)
}

func signed[E Integer]() bool {
	return ^E(0) < 0
}

// minOf and maxOf return the representable range of E.
func minOf[E Integer]() E {
	if !signed[E]() {
		return 0
	}
	return E(1) << (bits[E]() - 1)
}

func maxOf[E Integer]() E {
	return ^minOf[E]()
}

func boolMask[E Integer](b bool) E {
	if b {
		return ones[E]()
	}
	return 0
}

func addSat[E Integer](a, b E) E {
	s := a + b
	if signed[E]() {
		if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
			if a >= 0 {
				return maxOf[E]()
			}
			return minOf[E]()
		}
		return s
	}
	if s < a {
		return maxOf[E]()
	}
	return s
}

func subSat[E Integer](a, b E) E {
	if signed[E]() {
		s := a - b
		if (a >= 0) != (b >= 0) && (s >= 0) != (a >= 0) {
			if a >= 0 {
				return maxOf[E]()
			}
			return minOf[E]()
		}
		return s
	}
	if a < b {
		return 0
	}
	return a - b
}
