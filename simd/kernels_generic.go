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

import "math"

// This file is the generic kernel library. Lane-wise kernels loop over the
// lanes in plain Go; the rest are built from other operations and call them
// through a, so that on a native tag they run on that tag's kernels.

func zipLanes[T Lanes](a Arch[T], x, y Register, f func(T, T) T) (r Register) {
	xs, ys, rs := lanesOf(a, &x), lanesOf(a, &y), lanesOf(a, &r)
	for i := range xs {
		rs[i] = f(xs[i], ys[i])
	}
	return r
}

func cmpLanes[T Lanes](a Arch[T], x, y Register, f func(T, T) bool) (r Register) {
	xs, ys := lanesOf(a, &x), lanesOf(a, &y)
	size := sizeOf[T]()
	for i := range xs {
		setMask(&r, size, i, f(xs[i], ys[i]))
	}
	return r
}

func zipWords(bytes int, x, y Register, f func(uint64, uint64) uint64) (r Register) {
	xs, ys, rs := words(&x, bytes), words(&y, bytes), words(&r, bytes)
	for i := range xs {
		rs[i] = f(xs[i], ys[i])
	}
	return r
}

// Memory.

func (Generic[T]) broadcast(a Arch[T], v T) (r Register) {
	fill(lanesOf(a, &r), v)
	return r
}

func (Generic[T]) loadAligned(a Arch[T], src []T) (r Register) {
	rs := lanesOf(a, &r)
	copy(rs, src[:len(rs)])
	return r
}

func (Generic[T]) loadUnaligned(a Arch[T], src []T) (r Register) {
	rs := lanesOf(a, &r)
	copy(rs, src[:len(rs)])
	return r
}

func (Generic[T]) storeAligned(a Arch[T], x Register, dst []T) {
	xs := lanesOf(a, &x)
	copy(dst[:len(xs)], xs)
}

func (Generic[T]) storeUnaligned(a Arch[T], x Register, dst []T) {
	xs := lanesOf(a, &x)
	copy(dst[:len(xs)], xs)
}

// Arithmetic.

func (Generic[T]) add(a Arch[T], x, y Register) Register {
	return zipLanes(a, x, y, func(p, q T) T { return p + q })
}

func (Generic[T]) sub(a Arch[T], x, y Register) Register {
	return zipLanes(a, x, y, func(p, q T) T { return p - q })
}

// mul is the scalar fallback for every lane type; integer products wrap.
func (Generic[T]) mul(a Arch[T], x, y Register) Register {
	return zipLanes(a, x, y, func(p, q T) T { return p * q })
}

// div panics on an integer division by zero, like the scalar operator.
func (Generic[T]) div(a Arch[T], x, y Register) Register {
	return zipLanes(a, x, y, func(p, q T) T { return p / q })
}

func (Generic[T]) neg(a Arch[T], x Register) Register {
	if isFloat[T]() {
		return a.xor(a, x, signBits(a))
	}
	return a.sub(a, Register{}, x)
}

// abs: floats clear the sign bit; signed integers use (x ^ m) - m with m the
// arithmetic shift of x by bits-1, so the most negative value maps to itself.
func (Generic[T]) abs(a Arch[T], x Register) Register {
	switch {
	case isFloat[T]():
		return a.andNot(a, x, signBits(a))
	case isSigned[T]():
		m := a.shiftRightBy(a, x, bitsOf[T]()-1)
		return a.sub(a, a.xor(a, x, m), m)
	default:
		return x
	}
}

// min and max return y when the comparison is false, NaN operands included.
func (Generic[T]) min(a Arch[T], x, y Register) Register {
	return a.sel(a, a.lt(a, x, y), x, y)
}

func (Generic[T]) max(a Arch[T], x, y Register) Register {
	return a.sel(a, a.gt(a, x, y), x, y)
}

// fma rounds once for floats.
func (Generic[T]) fma(a Arch[T], x, y, z Register) (r Register) {
	n := laneCount(a)
	switch KindOf[T]() {
	case Float32:
		xs, ys, zs, rs := view[float32](&x, n), view[float32](&y, n), view[float32](&z, n), view[float32](&r, n)
		for i := range xs {
			rs[i] = float32(math.FMA(float64(xs[i]), float64(ys[i]), float64(zs[i])))
		}
		return r
	case Float64:
		xs, ys, zs, rs := view[float64](&x, n), view[float64](&y, n), view[float64](&z, n), view[float64](&r, n)
		for i := range xs {
			rs[i] = math.FMA(xs[i], ys[i], zs[i])
		}
		return r
	}
	return a.add(a, a.mul(a, x, y), z)
}

// sadd saturates integer lanes. Unsigned overflow shows as a sum below x;
// signed overflow as a sum whose sign differs from both operands.
func (Generic[T]) sadd(a Arch[T], x, y Register) Register {
	s := a.add(a, x, y)
	switch {
	case isFloat[T]():
		return s
	case isSigned[T]():
		ovf := a.and(a, a.xor(a, x, s), a.xor(a, y, s))
		return a.sel(a, a.shiftRightBy(a, ovf, bitsOf[T]()-1), saturated(a, x), s)
	default:
		return a.or(a, s, a.lt(a, s, x))
	}
}

func (Generic[T]) ssub(a Arch[T], x, y Register) Register {
	d := a.sub(a, x, y)
	switch {
	case isFloat[T]():
		return d
	case isSigned[T]():
		ovf := a.and(a, a.xor(a, x, y), a.xor(a, x, d))
		return a.sel(a, a.shiftRightBy(a, ovf, bitsOf[T]()-1), saturated(a, x), d)
	default:
		return a.andNot(a, d, a.lt(a, x, y))
	}
}

// saturated is the bound a signed overflow clamps to: MaxInt for
// non-negative x, MinInt for negative x.
func saturated[T Lanes](a Arch[T], x Register) Register {
	hi := a.not(a, signBits(a))
	return a.xor(a, a.shiftRightBy(a, x, bitsOf[T]()-1), hi)
}

// Bitwise kernels ignore the lane type.

func (Generic[T]) and(a Arch[T], x, y Register) Register {
	return zipWords(a.Bytes(), x, y, func(p, q uint64) uint64 { return p & q })
}

func (Generic[T]) or(a Arch[T], x, y Register) Register {
	return zipWords(a.Bytes(), x, y, func(p, q uint64) uint64 { return p | q })
}

func (Generic[T]) xor(a Arch[T], x, y Register) Register {
	return zipWords(a.Bytes(), x, y, func(p, q uint64) uint64 { return p ^ q })
}

// andNot is x AND NOT y.
func (Generic[T]) andNot(a Arch[T], x, y Register) Register {
	return zipWords(a.Bytes(), x, y, func(p, q uint64) uint64 { return p &^ q })
}

func (Generic[T]) not(a Arch[T], x Register) Register {
	return zipWords(a.Bytes(), x, x, func(p, _ uint64) uint64 { return ^p })
}

// Shifts follow Go's shift operator: the count is unsigned, counts of at
// least the lane width give 0, or the sign fill for a signed right shift.

func (Generic[T]) shiftLeftBy(a Arch[T], x Register, n uint64) Register {
	return shiftUniform(a, x, n, true)
}

func (Generic[T]) shiftRightBy(a Arch[T], x Register, n uint64) Register {
	return shiftUniform(a, x, n, false)
}

// shiftLeft and shiftRight take each lane's count from n, read as the
// unsigned integer of the lane width.
func (Generic[T]) shiftLeft(a Arch[T], x, n Register) Register {
	return shiftPerLane(a, x, n, true)
}

func (Generic[T]) shiftRight(a Arch[T], x, n Register) Register {
	return shiftPerLane(a, x, n, false)
}

func shiftUniform[T Lanes](a Arch[T], x Register, n uint64, left bool) (r Register) {
	c := laneCount(a)
	switch KindOf[T]() {
	case Int8:
		shiftBy(view[int8](&r, c), view[int8](&x, c), n, left)
	case Int16:
		shiftBy(view[int16](&r, c), view[int16](&x, c), n, left)
	case Int32:
		shiftBy(view[int32](&r, c), view[int32](&x, c), n, left)
	case Int64:
		shiftBy(view[int64](&r, c), view[int64](&x, c), n, left)
	case Uint8:
		shiftBy(view[uint8](&r, c), view[uint8](&x, c), n, left)
	case Uint16:
		shiftBy(view[uint16](&r, c), view[uint16](&x, c), n, left)
	case Uint32:
		shiftBy(view[uint32](&r, c), view[uint32](&x, c), n, left)
	case Uint64:
		shiftBy(view[uint64](&r, c), view[uint64](&x, c), n, left)
	default:
		panic("simd: shift of floating-point lanes")
	}
	return r
}

func shiftPerLane[T Lanes](a Arch[T], x, n Register, left bool) (r Register) {
	c := laneCount(a)
	switch KindOf[T]() {
	case Int8:
		shiftVar(view[int8](&r, c), view[int8](&x, c), view[uint8](&n, c), left)
	case Int16:
		shiftVar(view[int16](&r, c), view[int16](&x, c), view[uint16](&n, c), left)
	case Int32:
		shiftVar(view[int32](&r, c), view[int32](&x, c), view[uint32](&n, c), left)
	case Int64:
		shiftVar(view[int64](&r, c), view[int64](&x, c), view[uint64](&n, c), left)
	case Uint8:
		shiftVar(view[uint8](&r, c), view[uint8](&x, c), view[uint8](&n, c), left)
	case Uint16:
		shiftVar(view[uint16](&r, c), view[uint16](&x, c), view[uint16](&n, c), left)
	case Uint32:
		shiftVar(view[uint32](&r, c), view[uint32](&x, c), view[uint32](&n, c), left)
	case Uint64:
		shiftVar(view[uint64](&r, c), view[uint64](&x, c), view[uint64](&n, c), left)
	default:
		panic("simd: shift of floating-point lanes")
	}
	return r
}

func shiftBy[E Integers](dst, x []E, n uint64, left bool) {
	for i, v := range x {
		if left {
			dst[i] = v << n
		} else {
			dst[i] = v >> n
		}
	}
}

func shiftVar[E Integers, C UnsignedInts](dst, x []E, n []C, left bool) {
	for i, v := range x {
		if left {
			dst[i] = v << n[i]
		} else {
			dst[i] = v >> n[i]
		}
	}
}

// Comparisons produce canonical masks: all-ones or all-zeros per lane.

func (Generic[T]) eq(a Arch[T], x, y Register) Register {
	return cmpLanes(a, x, y, func(p, q T) bool { return p == q })
}

func (Generic[T]) gt(a Arch[T], x, y Register) Register {
	return cmpLanes(a, x, y, func(p, q T) bool { return p > q })
}

func (Generic[T]) ne(a Arch[T], x, y Register) Register {
	return a.not(a, a.eq(a, x, y))
}

func (Generic[T]) lt(a Arch[T], x, y Register) Register {
	return a.gt(a, y, x)
}

// le cannot negate gt for floats: NaN compares false both ways.
func (Generic[T]) le(a Arch[T], x, y Register) Register {
	if isFloat[T]() {
		return a.or(a, a.lt(a, x, y), a.eq(a, x, y))
	}
	return a.not(a, a.gt(a, x, y))
}

func (Generic[T]) ge(a Arch[T], x, y Register) Register {
	return a.le(a, y, x)
}

// sel picks x where m is set and y elsewhere.
func (Generic[T]) sel(a Arch[T], m, x, y Register) Register {
	return a.or(a, a.and(a, m, x), a.andNot(a, y, m))
}

// Reductions run left to right over the lanes.

func (Generic[T]) reduceAdd(a Arch[T], x Register) T {
	var sum T
	for _, v := range lanesOf(a, &x) {
		sum += v
	}
	return sum
}

func (Generic[T]) reduceMin(a Arch[T], x Register) T {
	xs := lanesOf(a, &x)
	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func (Generic[T]) reduceMax(a Arch[T], x Register) T {
	xs := lanesOf(a, &x)
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
