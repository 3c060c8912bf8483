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

var sse2Ops = opTable{
	OpAdd:          AllKinds,
	OpSub:          AllKinds,
	OpMul:          AllKinds,
	OpDiv:          AllFloats,
	OpAbs:          AllFloats,
	OpMin:          Int16 | Uint8 | AllFloats,
	OpMax:          Int16 | Uint8 | AllFloats,
	OpSAdd:         AnyInt8 | AnyInt16,
	OpSSub:         AnyInt8 | AnyInt16,
	OpAnd:          AllKinds,
	OpOr:           AllKinds,
	OpXor:          AllKinds,
	OpAndNot:       AllKinds,
	OpNot:          AllKinds,
	OpShiftLeftBy:  AllInts,
	OpShiftRightBy: AllInts &^ Int64,
	OpEq:           AllKinds,
	OpLt:           AllFloats,
	OpLe:           AllFloats,
	OpGt:           AllKinds,
	OpSelect:       AllKinds,
	OpReduceAdd:    AllKinds,
}

var ssse3Ops = opTable{
	OpAbs: Int8 | Int16 | Int32,
}

var sse41Ops = opTable{
	OpMul:    AnyInt32,
	OpMin:    Int8 | Uint16 | AnyInt32,
	OpMax:    Int8 | Uint16 | AnyInt32,
	OpEq:     AnyInt64,
	OpSelect: AllKinds,
}

var sse42Ops = opTable{
	OpGt: AnyInt64,
}

// wordsOf returns a register with every 64-bit word set to v.
func wordsOf(v uint64) (r Register) {
	for i := range r {
		r[i] = v
	}
	return r
}

// bytesOf returns a register with every byte set to b.
func bytesOf(b uint8) Register {
	return wordsOf(uint64(b) * 0x0101010101010101)
}

// SSE2

func (t SSE2[T]) add(a Arch[T], x, y Register) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		intrin.Padd(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case k&AnyInt16 != 0:
		intrin.Padd(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case k&AnyInt32 != 0:
		intrin.Padd(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case k&AnyInt64 != 0:
		intrin.Padd(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	case k == Float32:
		intrin.Addp(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		intrin.Addp(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	}
	return r
}

func (t SSE2[T]) sub(a Arch[T], x, y Register) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		intrin.Psub(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case k&AnyInt16 != 0:
		intrin.Psub(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case k&AnyInt32 != 0:
		intrin.Psub(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case k&AnyInt64 != 0:
		intrin.Psub(viewAs[uint64](a, &r), viewAs[uint64](a, &x), viewAs[uint64](a, &y))
	case k == Float32:
		intrin.Subp(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		intrin.Subp(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	}
	return r
}

// mul only has a native 16-bit integer form; the other integer widths are
// rebuilt from PMULLW and PMULUDQ.
func (t SSE2[T]) mul(a Arch[T], x, y Register) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		return mulBytes(a, x, y)
	case k&AnyInt16 != 0:
		intrin.Pmullw(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case k&AnyInt32 != 0:
		return mulDwords(a, x, y)
	case k&AnyInt64 != 0:
		return mulQwords(a, x, y)
	case k == Float32:
		intrin.Mulp(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		intrin.Mulp(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	}
	return r
}

// mulBytes multiplies the even bytes in place and the odd bytes shifted down,
// then merges the low byte of each 16-bit product.
func mulBytes[T Lanes](a Arch[T], x, y Register) (r Register) {
	var even, odd, xo, yo Register
	xs, ys := viewAs[uint16](a, &x), viewAs[uint16](a, &y)
	intrin.Pmullw(viewAs[uint16](a, &even), xs, ys)
	intrin.Psrl(viewAs[uint16](a, &xo), xs, 8)
	intrin.Psrl(viewAs[uint16](a, &yo), ys, 8)
	intrin.Pmullw(viewAs[uint16](a, &odd), viewAs[uint16](a, &xo), viewAs[uint16](a, &yo))
	intrin.Psll(viewAs[uint16](a, &odd), viewAs[uint16](a, &odd), 8)

	w := a.Bytes()
	lo := wordsOf(0x00FF00FF00FF00FF)
	intrin.Pand(words(&even, w), words(&even, w), words(&lo, w))
	intrin.Por(words(&r, w), words(&even, w), words(&odd, w))
	return r
}

// mulDwords multiplies even and odd 32-bit lanes with PMULUDQ and keeps the
// low half of each product.
func mulDwords[T Lanes](a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	var even, odd, xh, yh Register
	intrin.Pmuludq(words(&even, w), words(&x, w), words(&y, w))
	intrin.Psrl(words(&xh, w), words(&x, w), 32)
	intrin.Psrl(words(&yh, w), words(&y, w), 32)
	intrin.Pmuludq(words(&odd, w), words(&xh, w), words(&yh, w))
	intrin.Psll(words(&odd, w), words(&odd, w), 32)

	lo := wordsOf(0x00000000FFFFFFFF)
	intrin.Pand(words(&even, w), words(&even, w), words(&lo, w))
	intrin.Por(words(&r, w), words(&even, w), words(&odd, w))
	return r
}

// mulQwords computes lo*lo + (lo*hi + hi*lo)<<32, which is the product
// modulo 2^64.
func mulQwords[T Lanes](a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	var ll, lh, hl, xh, yh Register
	intrin.Psrl(words(&xh, w), words(&x, w), 32)
	intrin.Psrl(words(&yh, w), words(&y, w), 32)
	intrin.Pmuludq(words(&ll, w), words(&x, w), words(&y, w))
	intrin.Pmuludq(words(&lh, w), words(&x, w), words(&yh, w))
	intrin.Pmuludq(words(&hl, w), words(&xh, w), words(&y, w))
	intrin.Padd(words(&lh, w), words(&lh, w), words(&hl, w))
	intrin.Psll(words(&lh, w), words(&lh, w), 32)
	intrin.Padd(words(&r, w), words(&ll, w), words(&lh, w))
	return r
}

func (t SSE2[T]) div(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		intrin.Divp(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	case Float64:
		intrin.Divp(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.Generic.div(a, x, y)
	}
	return r
}

func (t SSE2[T]) abs(a Arch[T], x Register) (r Register) {
	if !isFloat[T]() {
		return t.Generic.abs(a, x)
	}
	w := a.Bytes()
	sign := signBits(a)
	intrin.Pandn(words(&r, w), words(&sign, w), words(&x, w))
	return r
}

func (t SSE2[T]) min(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int16:
		intrin.Pminsw(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Uint8:
		intrin.Pminub(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Float32:
		intrin.Minp(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	case Float64:
		intrin.Minp(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.Generic.min(a, x, y)
	}
	return r
}

func (t SSE2[T]) max(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int16:
		intrin.Pmaxsw(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Uint8:
		intrin.Pmaxub(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Float32:
		intrin.Maxp(viewAs[float32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	case Float64:
		intrin.Maxp(viewAs[float64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.Generic.max(a, x, y)
	}
	return r
}

func (t SSE2[T]) sadd(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Padds(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Padds(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Uint8:
		intrin.Paddus(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Paddus(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	default:
		return t.Generic.sadd(a, x, y)
	}
	return r
}

func (t SSE2[T]) ssub(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Psubs(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int16:
		intrin.Psubs(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case Uint8:
		intrin.Psubus(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case Uint16:
		intrin.Psubus(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	default:
		return t.Generic.ssub(a, x, y)
	}
	return r
}

func (t SSE2[T]) and(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Pand(words(&r, w), words(&x, w), words(&y, w))
	return r
}

func (t SSE2[T]) or(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Por(words(&r, w), words(&x, w), words(&y, w))
	return r
}

func (t SSE2[T]) xor(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Pxor(words(&r, w), words(&x, w), words(&y, w))
	return r
}

// andNot is x AND NOT y; PANDN inverts its first operand.
func (t SSE2[T]) andNot(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	intrin.Pandn(words(&r, w), words(&y, w), words(&x, w))
	return r
}

func (t SSE2[T]) not(a Arch[T], x Register) (r Register) {
	w := a.Bytes()
	ones := wordsOf(^uint64(0))
	intrin.Pxor(words(&r, w), words(&x, w), words(&ones, w))
	return r
}

// SSE2 has no byte shifts: bytes are shifted as words and the bits that
// crossed into the neighbouring byte are masked off.
func (t SSE2[T]) shiftLeftBy(a Arch[T], x Register, n uint64) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		intrin.Psll(viewAs[uint16](a, &r), viewAs[uint16](a, &x), n)
		keep := bytesOf(0)
		if n < 8 {
			keep = bytesOf(0xFF << n)
		}
		w := a.Bytes()
		intrin.Pand(words(&r, w), words(&r, w), words(&keep, w))
	case k&AnyInt16 != 0:
		intrin.Psll(viewAs[uint16](a, &r), viewAs[uint16](a, &x), n)
	case k&AnyInt32 != 0:
		intrin.Psll(viewAs[uint32](a, &r), viewAs[uint32](a, &x), n)
	case k&AnyInt64 != 0:
		intrin.Psll(viewAs[uint64](a, &r), viewAs[uint64](a, &x), n)
	default:
		return t.Generic.shiftLeftBy(a, x, n)
	}
	return r
}

// shiftRightBy has no 64-bit arithmetic form before AVX-512.
func (t SSE2[T]) shiftRightBy(a Arch[T], x Register, n uint64) (r Register) {
	switch KindOf[T]() {
	case Uint8:
		intrin.Psrl(viewAs[uint16](a, &r), viewAs[uint16](a, &x), n)
		keep := bytesOf(0)
		if n < 8 {
			keep = bytesOf(0xFF >> n)
		}
		w := a.Bytes()
		intrin.Pand(words(&r, w), words(&r, w), words(&keep, w))
	case Int8:
		return sraBytes(a, x, n)
	case Uint16:
		intrin.Psrl(viewAs[uint16](a, &r), viewAs[uint16](a, &x), n)
	case Int16:
		intrin.Psra(viewAs[int16](a, &r), viewAs[int16](a, &x), n)
	case Uint32:
		intrin.Psrl(viewAs[uint32](a, &r), viewAs[uint32](a, &x), n)
	case Int32:
		intrin.Psra(viewAs[int32](a, &r), viewAs[int32](a, &x), n)
	case Uint64:
		intrin.Psrl(viewAs[uint64](a, &r), viewAs[uint64](a, &x), n)
	default:
		return t.Generic.shiftRightBy(a, x, n)
	}
	return r
}

// sraBytes shifts the even bytes after moving them to the top of their word
// and the odd bytes in place, then merges the two.
func sraBytes[T Lanes](a Arch[T], x Register, n uint64) (r Register) {
	var even, odd Register
	xs := viewAs[int16](a, &x)
	intrin.Psll(viewAs[uint16](a, &even), viewAs[uint16](a, &x), 8)
	intrin.Psra(viewAs[int16](a, &even), viewAs[int16](a, &even), min(n, 8)+8)
	intrin.Psra(viewAs[int16](a, &odd), xs, n)

	w := a.Bytes()
	lo, hi := wordsOf(0x00FF00FF00FF00FF), wordsOf(0xFF00FF00FF00FF00)
	intrin.Pand(words(&even, w), words(&even, w), words(&lo, w))
	intrin.Pand(words(&odd, w), words(&odd, w), words(&hi, w))
	intrin.Por(words(&r, w), words(&even, w), words(&odd, w))
	return r
}

func (t SSE2[T]) eq(a Arch[T], x, y Register) (r Register) {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		intrin.Pcmpeq(viewAs[uint8](a, &r), viewAs[uint8](a, &x), viewAs[uint8](a, &y))
	case k&AnyInt16 != 0:
		intrin.Pcmpeq(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case k&AnyInt32 != 0:
		intrin.Pcmpeq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	case k&AnyInt64 != 0:
		// Both halves of a quadword must match.
		var sw Register
		intrin.Pcmpeq(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
		intrin.Pshufd(viewAs[uint32](a, &sw), viewAs[uint32](a, &r), 0xB1)
		w := a.Bytes()
		intrin.Pand(words(&r, w), words(&r, w), words(&sw, w))
	case k == Float32:
		intrin.Cmpeqp(viewAs[uint32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	default:
		intrin.Cmpeqp(viewAs[uint64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	}
	return r
}

// gt compares unsigned lanes by flipping their sign bits first, and 64-bit
// lanes from their 32-bit halves: the high halves decide unless they are
// equal, then the unsigned low halves do.
func (t SSE2[T]) gt(a Arch[T], x, y Register) (r Register) {
	w := a.Bytes()
	switch k := KindOf[T](); {
	case k == Int8:
		intrin.Pcmpgt(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case k == Int16:
		intrin.Pcmpgt(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
	case k == Int32:
		intrin.Pcmpgt(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case k&(Uint8|Uint16|Uint32) != 0:
		sign := signBits(a)
		intrin.Pxor(words(&x, w), words(&x, w), words(&sign, w))
		intrin.Pxor(words(&y, w), words(&y, w), words(&sign, w))
		switch k {
		case Uint8:
			intrin.Pcmpgt(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
		case Uint16:
			intrin.Pcmpgt(viewAs[int16](a, &r), viewAs[int16](a, &x), viewAs[int16](a, &y))
		default:
			intrin.Pcmpgt(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
		}
	case k&AnyInt64 != 0:
		bias := wordsOf(0x0000000080000000)
		if k == Uint64 {
			bias = wordsOf(0x8000000080000000)
		}
		var xb, yb, gt32, eq32, hiGt, loGt, hiEq Register
		intrin.Pxor(words(&xb, w), words(&x, w), words(&bias, w))
		intrin.Pxor(words(&yb, w), words(&y, w), words(&bias, w))
		intrin.Pcmpgt(viewAs[int32](a, &gt32), viewAs[int32](a, &xb), viewAs[int32](a, &yb))
		intrin.Pcmpeq(viewAs[uint32](a, &eq32), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
		intrin.Pshufd(viewAs[uint32](a, &hiGt), viewAs[uint32](a, &gt32), 0xF5)
		intrin.Pshufd(viewAs[uint32](a, &loGt), viewAs[uint32](a, &gt32), 0xA0)
		intrin.Pshufd(viewAs[uint32](a, &hiEq), viewAs[uint32](a, &eq32), 0xF5)
		intrin.Pand(words(&loGt, w), words(&loGt, w), words(&hiEq, w))
		intrin.Por(words(&r, w), words(&hiGt, w), words(&loGt, w))
	case k == Float32:
		intrin.Cmpltp(viewAs[uint32](a, &r), viewAs[float32](a, &y), viewAs[float32](a, &x))
	default:
		intrin.Cmpltp(viewAs[uint64](a, &r), viewAs[float64](a, &y), viewAs[float64](a, &x))
	}
	return r
}

func (t SSE2[T]) lt(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		intrin.Cmpltp(viewAs[uint32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	case Float64:
		intrin.Cmpltp(viewAs[uint64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.Generic.lt(a, x, y)
	}
	return r
}

func (t SSE2[T]) le(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		intrin.Cmplep(viewAs[uint32](a, &r), viewAs[float32](a, &x), viewAs[float32](a, &y))
	case Float64:
		intrin.Cmplep(viewAs[uint64](a, &r), viewAs[float64](a, &x), viewAs[float64](a, &y))
	default:
		return t.Generic.le(a, x, y)
	}
	return r
}

func (t SSE2[T]) sel(a Arch[T], m, x, y Register) (r Register) {
	w := a.Bytes()
	var keep Register
	intrin.Pand(words(&keep, w), words(&m, w), words(&x, w))
	intrin.Pandn(words(&r, w), words(&m, w), words(&y, w))
	intrin.Por(words(&r, w), words(&r, w), words(&keep, w))
	return r
}

// reduceAdd folds wider registers down to 128 bits, then halves again
// inside the block: lane i is added to lane i+n/2 until one lane is left.
// For floats this is a different association than a left-to-right sum.
func (t SSE2[T]) reduceAdd(a Arch[T], x Register) T {
	switch k := KindOf[T](); {
	case k&AnyInt8 != 0:
		foldAdd(viewAs[uint8](a, &x))
	case k&AnyInt16 != 0:
		foldAdd(viewAs[uint16](a, &x))
	case k&AnyInt32 != 0:
		foldAdd(viewAs[uint32](a, &x))
	case k&AnyInt64 != 0:
		foldAdd(viewAs[uint64](a, &x))
	case k == Float32:
		v := foldFloats(viewAs[float32](a, &x), 4)
		var hi, odd [4]float32
		intrin.Movhlps(hi[:], v, v)
		intrin.Addp(hi[:], v, hi[:])
		intrin.Shufps(odd[:], hi[:], hi[:], 0x55)
		return T(hi[0] + odd[0])
	default:
		v := foldFloats(viewAs[float64](a, &x), 2)
		var hi [2]float64
		intrin.Unpckhpd(hi[:], v, v)
		return T(v[0] + hi[0])
	}
	return lanesOf(a, &x)[0]
}

// foldAdd leaves the total in v[0].
func foldAdd[E intrin.Integer](v []E) {
	for len(v) > 1 {
		h := intrin.ExtractHigh(v)
		intrin.Padd(v[:len(h)], v[:len(h)], h)
		v = v[:len(h)]
	}
}

// foldFloats adds upper halves onto lower halves until n lanes are left.
func foldFloats[F intrin.Float](v []F, n int) []F {
	for len(v) > n {
		h := intrin.ExtractHigh(v)
		intrin.Addp(v[:len(h)], v[:len(h)], h)
		v = v[:len(h)]
	}
	return v
}

// SSSE3

func (t SSSE3[T]) abs(a Arch[T], x Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Pabs(viewAs[int8](a, &r), viewAs[int8](a, &x))
	case Int16:
		intrin.Pabs(viewAs[int16](a, &r), viewAs[int16](a, &x))
	case Int32:
		intrin.Pabs(viewAs[int32](a, &r), viewAs[int32](a, &x))
	default:
		return t.SSE3.abs(a, x)
	}
	return r
}

// SSE4.1

func (t SSE4_1[T]) mul(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]()&AnyInt32 == 0 {
		return t.SSSE3.mul(a, x, y)
	}
	intrin.Pmulld(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	return r
}

func (t SSE4_1[T]) min(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Pmins(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int32:
		intrin.Pmins(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Uint16:
		intrin.Pminu(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Pminu(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	default:
		return t.SSSE3.min(a, x, y)
	}
	return r
}

func (t SSE4_1[T]) max(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int8:
		intrin.Pmaxs(viewAs[int8](a, &r), viewAs[int8](a, &x), viewAs[int8](a, &y))
	case Int32:
		intrin.Pmaxs(viewAs[int32](a, &r), viewAs[int32](a, &x), viewAs[int32](a, &y))
	case Uint16:
		intrin.Pmaxu(viewAs[uint16](a, &r), viewAs[uint16](a, &x), viewAs[uint16](a, &y))
	case Uint32:
		intrin.Pmaxu(viewAs[uint32](a, &r), viewAs[uint32](a, &x), viewAs[uint32](a, &y))
	default:
		return t.SSSE3.max(a, x, y)
	}
	return r
}

func (t SSE4_1[T]) eq(a Arch[T], x, y Register) (r Register) {
	if KindOf[T]()&AnyInt64 == 0 {
		return t.SSSE3.eq(a, x, y)
	}
	w := a.Bytes()
	intrin.Pcmpeqq(words(&r, w), words(&x, w), words(&y, w))
	return r
}

func (t SSE4_1[T]) sel(a Arch[T], m, x, y Register) (r Register) {
	intrin.Pblendvb(viewAs[uint8](a, &r), viewAs[uint8](a, &y), viewAs[uint8](a, &x), viewAs[uint8](a, &m))
	return r
}

// SSE4.2

func (t SSE4_2[T]) gt(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Int64:
		intrin.Pcmpgtq(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	case Uint64:
		w := a.Bytes()
		sign := signBits(a)
		intrin.Pxor(words(&x, w), words(&x, w), words(&sign, w))
		intrin.Pxor(words(&y, w), words(&y, w), words(&sign, w))
		intrin.Pcmpgtq(viewAs[int64](a, &r), viewAs[int64](a, &x), viewAs[int64](a, &y))
	default:
		return t.SSE4_1.gt(a, x, y)
	}
	return r
}
