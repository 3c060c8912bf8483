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

import "github.com/ajroetker/go-batch/internal/intrin"

var avx2Ops = opTable{
	OpAdd:        avx2Arith,
	OpSub:        avx2Arith,
	OpMul:        avx2Arith &^ Int32,
	OpShiftLeft:  AnyInt32 | AnyInt64,
	OpShiftRight: AnyInt32 | Uint64,
}

var fma3Ops = opTable{
	OpFMA: AllFloats,
}

var avx512fOps = opTable{
	OpAbs:          Int64,
	OpMin:          AnyInt64,
	OpMax:          AnyInt64,
	OpShiftRightBy: Int64,
	OpShiftRight:   Int64,
}

var avx512bwOps = opTable{
	OpShiftLeft:  AnyInt16,
	OpShiftRight: AnyInt16,
}

// AVX2

func (t AVX2[T]) shiftLeft(a Arch[T], x, n Register) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt32 != 0:
		intrin.Vpsllv(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &n))
	case k&AnyInt64 != 0:
		intrin.Vpsllv(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &n))
	default:
		return t.AVX.shiftLeft(a, x, n)
	}
	return r
}

// shiftRight has no 64-bit arithmetic form before AVX-512.
func (t AVX2[T]) shiftRight(a Arch[T], x, n Register) (r Register) {
	switch KindOf[T]() {
	case Uint32:
		intrin.Vpsrlv(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &n))
	case Int32:
		intrin.Vpsrav(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[uint32](a, &n))
	case Uint64:
		intrin.Vpsrlv(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &n))
	default:
		return t.AVX.shiftRight(a, x, n)
	}
	return r
}

// FMA3

func (t FMA3[T]) fma(a Arch[T], x, y, z Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		intrin.Vfmadd231ps(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y), viewAs[float32](a, &z))
	case Float64:
		intrin.Vfmadd231pd(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y), viewAs[float64](a, &z))
	default:
		return t.AVX2.fma(a, x, y, z)
	}
	return r
}

// AVX-512F

func (t AVX512F[T]) abs(a Arch[T], x Register) (r Register) {
	if KindOf[T]() != Int64 {
		return t.FMA3.abs(a, x)
	}
	intrin.Vpabsq(viewAs[int64](a, &r), viewAs[int64](a, &x))
	return r
}

func (t AVX512F[T]) min(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int64:
		intrin.Vpminq(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	case Uint64:
		intrin.Vpminq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	default:
		return t.FMA3.min(a, x, y)
	}
	return r
}

func (t AVX512F[T]) max(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int64:
		intrin.Vpmaxq(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	case Uint64:
		intrin.Vpmaxq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	default:
		return t.FMA3.max(a, x, y)
	}
	return r
}

func (t AVX512F[T]) shiftRightBy(a Arch[T], x Register, n uint64) (r Register) {
	if KindOf[T]() != Int64 {
		return t.FMA3.shiftRightBy(a, x, n)
	}
	intrin.Vpsraq(viewAs[int64](a, &r), viewAs[int64](a, &x), n)
	return r
}

func (t AVX512F[T]) shiftRight(a Arch[T], x, n Register) (r Register) {
	if KindOf[T]() != Int64 {
		return t.FMA3.shiftRight(a, x, n)
	}
	intrin.Vpsrav(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[uint64](a, &n))
	return r
}

// AVX-512BW

func (t AVX512BW[T]) shiftLeft(a Arch[T], x, n Register) (r Register) {
	if KindOf[T]()&AnyInt16 == 0 {
		return t.AVX512F.shiftLeft(a, x, n)
	}
	intrin.Vpsllv(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &n))
	return r
}

func (t AVX512BW[T]) shiftRight(a Arch[T], x, n Register) (r Register) {
	switch KindOf[T]() {
	case Uint16:
		intrin.Vpsrlv(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &n))
	case Int16:
		intrin.Vpsrav(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[uint16](a, &n))
	default:
		return t.AVX512F.shiftRight(a, x, n)
	}
	return r
}
