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

import "unsafe"

// RegisterBytes is the size of the widest register any tag uses (AVX-512).
const RegisterBytes = 64

// Register is the storage behind every batch and mask. A tag only uses the
// first Bytes() bytes; the remaining bytes are always zero. Lane i of a
// T-typed view starts at byte i*sizeof(T), which is the hardware lane order.
type Register [RegisterBytes / 8]uint64

// view reinterprets the first n lanes of r as E.
func view[E Lanes](r *Register, n int) []E {
	return unsafe.Slice((*E)(unsafe.Pointer(r)), n)
}

// words returns the 64-bit words of r that a register of the given size covers.
func words(r *Register, bytes int) []uint64 {
	return r[:bytes/8]
}

func sizeOf[T Lanes]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// laneCount is the number of T lanes in a register of tag a.
func laneCount[T Lanes](a Arch[T]) int {
	return a.Bytes() / sizeOf[T]()
}

// lanesOf returns the T view of r sized for tag a.
func lanesOf[T Lanes](a Arch[T], r *Register) []T {
	return view[T](r, laneCount(a))
}

// viewAs reinterprets a register of tag a as lanes of E.
func viewAs[E Lanes, T Lanes](a Arch[T], r *Register) []E {
	return view[E](r, a.Bytes()/sizeOf[E]())
}

// setMask writes an all-ones or all-zeros pattern into lane i of a register
// holding lanes of size bytes.
func setMask(r *Register, size, i int, on bool) {
	var w uint64
	if on {
		w = ^uint64(0)
	}
	switch size {
	case 1:
		view[uint8](r, i+1)[i] = uint8(w)
	case 2:
		view[uint16](r, i+1)[i] = uint16(w)
	case 4:
		view[uint32](r, i+1)[i] = uint32(w)
	default:
		view[uint64](r, i+1)[i] = w
	}
}

// maskBit reports whether lane i of a mask register is set.
func maskBit(r *Register, size, i int) bool {
	switch size {
	case 1:
		return view[uint8](r, i+1)[i] != 0
	case 2:
		return view[uint16](r, i+1)[i] != 0
	case 4:
		return view[uint32](r, i+1)[i] != 0
	default:
		return view[uint64](r, i+1)[i] != 0
	}
}

// splat returns a register of tag a with every lane set to the bit pattern v
// truncated to the lane width.
func splat[T Lanes](a Arch[T], v uint64) (r Register) {
	n := laneCount(a)
	switch sizeOf[T]() {
	case 1:
		fill(view[uint8](&r, n), uint8(v))
	case 2:
		fill(view[uint16](&r, n), uint16(v))
	case 4:
		fill(view[uint32](&r, n), uint32(v))
	default:
		fill(view[uint64](&r, n), v)
	}
	return r
}

// signBits has only the top bit of every lane set.
func signBits[T Lanes](a Arch[T]) Register {
	return splat(a, 1<<(bitsOf[T]()-1))
}

func fill[E Lanes](s []E, v E) {
	for i := range s {
		s[i] = v
	}
}
