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

import "github.com/ajroetker/go-batch/internal/intrin"

const narrowInts = AnyInt8 | AnyInt16 | AnyInt32

var neonOps = opTable{
	OpAdd:        AllKinds &^ Float64,
	OpSub:        AllKinds &^ Float64,
	OpMul:        narrowInts | Float32,
	OpAbs:        Int8 | Int16 | Int32 | Float32,
	OpMin:        narrowInts,
	OpMax:        narrowInts,
	OpSAdd:       AllInts,
	OpSSub:       AllInts,
	OpAnd:        AllKinds,
	OpOr:         AllKinds,
	OpXor:        AllKinds,
	OpAndNot:     AllKinds,
	OpShiftLeft:  narrowInts,
	OpShiftRight: narrowInts,
	OpEq:         narrowInts | Float32,
	OpGt:         narrowInts | Float32,
	OpSelect:     AllKinds,
	OpReduceAdd:  AllKinds &^ Float64,
}

var neon64Ops = opTable{
	OpAdd:        Float64,
	OpSub:        Float64,
	OpMul:        Float64,
	OpDiv:        AllFloats,
	OpFMA:        AllFloats,
	OpAbs:        Int64 | Float64,
	OpShiftLeft:  AnyInt64,
	OpShiftRight: AnyInt64,
	OpEq:         AnyInt64 | Float64,
	OpGt:         AnyInt64 | Float64,
	OpReduceAdd:  Float64,
}

// NEON

func (t NEON[T]) add(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]() == Float64 {
		return t.Generic.add(a, x, y)
	}
	intrin.Vaddq(lanesOf(a, &r), lanesOf(a, &x), lanesOf(a, &y))
	return r
}

func (t NEON[T]) sub(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]() == Float64 {
		return t.Generic.sub(a, x, y)
	}
	intrin.Vsubq(lanesOf(a, &r), lanesOf(a, &x), lanesOf(a, &y))
	return r
}

// mul has no 64-bit integer form; those lanes take the scalar loop.
func (t NEON[T]) mul(a Arch[T], x, y Register) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		intrin.Vmulq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case k&AnyInt16 != 0:
		intrin.Vmulq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case k&AnyInt32 != 0:
		intrin.Vmulq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case k == Float32:
		intrin.Vmulq(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		return t.Generic.mul(a, x, y)
	}
	return r
}

func (t NEON[T]) abs(a Arch[T], x Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Vabsq(viewAs[int8](a, &r), viewAs[int8](a, &x))
	case Int16:
		intrin.Vabsq(viewAs[int16](a, &r), viewAs[int16](a, &x))
	case Int32:
		intrin.Vabsq(viewAs[int32](a, &r), viewAs[int32](a, &x))
	case Float32:
		intrin.Vabsqf(viewAs[float32](a, &r), viewAs[float32](a, &x))
	default:
		return t.Generic.abs(a, x)
	}
	return r
}

// min and max stay generic for floats: FMIN and FMAX return NaN when either
// operand is NaN instead of the second operand.
func (t NEON[T]) min(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Vminq(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Vminq(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Int32:
		intrin.Vminq(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Uint8:
		intrin.Vminq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Vminq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Vminq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	default:
		return t.Generic.min(a, x, y)
	}
	return r
}

func (t NEON[T]) max(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Vmaxq(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Vmaxq(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Int32:
		intrin.Vmaxq(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Uint8:
		intrin.Vmaxq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Vmaxq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Vmaxq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	default:
		return t.Generic.max(a, x, y)
	}
	return r
}

func (t NEON[T]) sadd(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Vqaddq(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Vqaddq(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Int32:
		intrin.Vqaddq(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Int64:
		intrin.Vqaddq(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	case Uint8:
		intrin.Vqaddq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Vqaddq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Vqaddq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case Uint64:
		intrin.Vqaddq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	default:
		return t.Generic.sadd(a, x, y)
	}
	return r
}

func (t NEON[T]) ssub(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Vqsubq(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Vqsubq(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Int32:
		intrin.Vqsubq(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Int64:
		intrin.Vqsubq(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	case Uint8:
		intrin.Vqsubq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Vqsubq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Vqsubq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case Uint64:
		intrin.Vqsubq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	default:
		return t.Generic.ssub(a, x, y)
	}
	return r
}

func (t NEON[T]) and(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Vandq(words(&r, w), words(&x, w), words(&y, w))
	return r
}

func (t NEON[T]) or(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Vorrq(words(&r, w), words(&x, w), words(&y, w))
	return r
}

func (t NEON[T]) xor(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Veorq(words(&r, w), words(&x, w), words(&y, w))
	return r
}

func (t NEON[T]) andNot(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Vbicq(words(&r, w), words(&x, w), words(&y, w))
	return r
}

// SSHL/USHL read a signed count from the low byte of each lane, so counts
// are first clamped to the lane width; the clamped count then gives the
// same 0 or sign fill as any larger one.
func (t NEON[T]) shiftLeft(a Arch[T], x, n Register) Register {
	switch KindOf[T]() {
	case Int8:
		return shiftNarrow[T, int8, uint8](a, x, n, true)
	case Int16:
		return shiftNarrow[T, int16, uint16](a, x, n, true)
	case Int32:
		return shiftNarrow[T, int32, uint32](a, x, n, true)
	case Uint8:
		return shiftNarrow[T, uint8, uint8](a, x, n, true)
	case Uint16:
		return shiftNarrow[T, uint16, uint16](a, x, n, true)
	case Uint32:
		return shiftNarrow[T, uint32, uint32](a, x, n, true)
	}
	return t.Generic.shiftLeft(a, x, n)
}

func (t NEON[T]) shiftRight(a Arch[T], x, n Register) Register {
	switch KindOf[T]() {
	case Int8:
		return shiftNarrow[T, int8, uint8](a, x, n, false)
	case Int16:
		return shiftNarrow[T, int16, uint16](a, x, n, false)
	case Int32:
		return shiftNarrow[T, int32, uint32](a, x, n, false)
	case Uint8:
		return shiftNarrow[T, uint8, uint8](a, x, n, false)
	case Uint16:
		return shiftNarrow[T, uint16, uint16](a, x, n, false)
	case Uint32:
		return shiftNarrow[T, uint32, uint32](a, x, n, false)
	}
	return t.Generic.shiftRight(a, x, n)
}

// shiftNarrow clamps the unsigned counts with UMIN and negates them for a
// right shift.
func shiftNarrow[T Lanes, E Integers, U uint8 | uint16 | uint32](a Arch[T], x, n Register, left bool) (r Register) {
	var c, zero Register
	lim := splat(a, bitsOf[U]())
	cs := viewAs[U](a, &c)
	intrin.Vminq(cs, viewAs[U](a, &n), viewAs[U](a, &lim))
	if !left {
		intrin.Vsubq(cs, viewAs[U](a, &zero), cs)
	}
	intrin.Vshlq(viewAs[E](a, &r), viewAs[E](a, &x), cs)
	return r
}

func (t NEON[T]) eq(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8, Uint8:
		intrin.Vceqq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Int16, Uint16:
		intrin.Vceqq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Int32, Uint32:
		intrin.Vceqq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case Float32:
		intrin.Vceqq(viewAs[uint32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		return t.Generic.eq(a, x, y)
	}
	return r
}

func (t NEON[T]) gt(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Vcgtq(viewAs[uint8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Vcgtq(viewAs[uint16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Int32:
		intrin.Vcgtq(viewAs[uint32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Uint8:
		intrin.Vcgtq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Vcgtq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Vcgtq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case Float32:
		intrin.Vcgtq(viewAs[uint32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		return t.Generic.gt(a, x, y)
	}
	return r
}

func (t NEON[T]) sel(a Arch[T], m, x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Vbslq(words(&r, w), words(&m, w), words(&x, w), words(&y, w))
	return r
}

// reduceAdd adds adjacent pairs: ((x0+x1)+(x2+x3)) for four lanes. Float
// results can differ from a left-to-right sum.
func (t NEON[T]) reduceAdd(a Arch[T], x Register) T {
	if KindOf[T]() == Float64 {
		return t.Generic.reduceAdd(a, x)
	}
	return pairwise(lanesOf(a, &x))
}

func pairwise[E intrin.Number](v []E) E {
	for len(v) > 1 {
		intrin.Vpaddq(v, v)
		v = v[:len(v)/2]
	}
	return v[0]
}

// NEON64

func (t NEON64[T]) add(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]() != Float64 {
		return t.NEON.add(a, x, y)
	}
	intrin.Vaddq(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	return r
}

func (t NEON64[T]) sub(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]() != Float64 {
		return t.NEON.sub(a, x, y)
	}
	intrin.Vsubq(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	return r
}

func (t NEON64[T]) mul(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]() != Float64 {
		return t.NEON.mul(a, x, y)
	}
	intrin.Vmulq(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	return r
}

func (t NEON64[T]) div(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		intrin.Vdivq(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	case Float64:
		intrin.Vdivq(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.NEON.div(a, x, y)
	}
	return r
}

func (t NEON64[T]) fma(a Arch[T], x, y, z Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		intrin.Vfmaq(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y), viewAs[float32](a, &z))
	case Float64:
		intrin.Vfmaq(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y), viewAs[float64](a, &z))
	default:
		return t.NEON.fma(a, x, y, z)
	}
	return r
}

func (t NEON64[T]) abs(a Arch[T], x Register) (r Register) {
	switch KindOf[T]() {
	case Int64:
		intrin.Vabsq(viewAs[int64](a, &r), viewAs[int64](a, &x))
	case Float64:
		intrin.Vabsqf(viewAs[float64](a, &r), viewAs[float64](a, &x))
	default:
		return t.NEON.abs(a, x)
	}
	return r
}

// There is no UMIN for 64-bit lanes: counts above 63 are found with CMHI
// and replaced by 64 with BSL.
func (t NEON64[T]) shiftLeft(a Arch[T], x, n Register) Register {
	if KindOf[T]()&AnyInt64 == 0 {
		return t.NEON.shiftLeft(a, x, n)
	}
	return shiftWide(a, x, n, true)
}

func (t NEON64[T]) shiftRight(a Arch[T], x, n Register) Register {
	if KindOf[T]()&AnyInt64 == 0 {
		return t.NEON.shiftRight(a, x, n)
	}
	return shiftWide(a, x, n, false)
}

func shiftWide[T Lanes](a Arch[T], x, n Register, left bool) (r Register) {
	w := a.Bytes()
	var over, c, zero Register
	lim, top := splat(a, 64), splat(a, 63)
	intrin.Vcgtq(viewAs[uint64](a, &over), viewAs[uint64](a, &n), viewAs[uint64](a, &top))
	intrin.Vbslq(words(&c, w), words(&over, w), words(&lim, w), words(&n, w))
	cs := viewAs[uint64](a, &c)
	if !left {
		intrin.Vsubq(cs, viewAs[uint64](a, &zero), cs)
	}
	if KindOf[T]() == Int64 {
		intrin.Vshlq(viewAs[int64](a, &r), viewAs[int64](a, &x), cs)
	} else {
		intrin.Vshlq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), cs)
	}
	return r
}

func (t NEON64[T]) eq(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int64, Uint64:
		intrin.Vceqq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	case Float64:
		intrin.Vceqq(viewAs[uint64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.NEON.eq(a, x, y)
	}
	return r
}

func (t NEON64[T]) gt(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int64:
		intrin.Vcgtq(viewAs[uint64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	case Uint64:
		intrin.Vcgtq(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	case Float64:
		intrin.Vcgtq(viewAs[uint64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.NEON.gt(a, x, y)
	}
	return r
}

func (t NEON64[T]) reduceAdd(a Arch[T], x Register) T {
	if KindOf[T]() != Float64 {
		return t.NEON.reduceAdd(a, x)
	}
	return pairwise(lanesOf(a, &x))
}
