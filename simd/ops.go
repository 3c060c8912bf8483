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

// Operations. Each one calls the kernel of A's method set; Go's method
// promotion has already picked the kernel of the closest tag that defines
// one, so nothing here depends on the running CPU.

// Add returns x + y lane by lane, wrapping for integers.
func Add[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.add(a, x.reg, y.reg)}
}

// Sub returns x - y lane by lane, wrapping for integers.
func Sub[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.sub(a, x.reg, y.reg)}
}

// Mul returns x * y lane by lane. Integer products are truncated to the lane
// width on every tag, whether the tag multiplies natively, rebuilds the
// product from narrower multiplies or falls back to a scalar loop.
func Mul[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.mul(a, x.reg, y.reg)}
}

// Div returns x / y lane by lane.
func Div[T Floats, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.div(a, x.reg, y.reg)}
}

// Neg returns -x. For floats only the sign bit changes.
func Neg[T Lanes, A Arch[T]](x Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.neg(a, x.reg)}
}

// Abs returns |x|. The most negative signed integer is its own absolute
// value. Unsigned lanes are returned unchanged.
func Abs[T Lanes, A Arch[T]](x Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.abs(a, x.reg)}
}

// Min returns x where x < y and y otherwise, so a NaN in either operand
// yields y.
func Min[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.min(a, x.reg, y.reg)}
}

// Max returns x where x > y and y otherwise.
func Max[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.max(a, x.reg, y.reg)}
}

// FMA returns x*y + z rounded once.
func FMA[T Floats, A Arch[T]](x, y, z Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.fma(a, x.reg, y.reg, z.reg)}
}

// SAdd returns x + y clamped to the range of T.
func SAdd[T Integers, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.sadd(a, x.reg, y.reg)}
}

// SSub returns x - y clamped to the range of T.
func SSub[T Integers, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.ssub(a, x.reg, y.reg)}
}

// And returns the bitwise AND.
func And[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.and(a, x.reg, y.reg)}
}

// Or returns the bitwise OR.
func Or[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.or(a, x.reg, y.reg)}
}

// Xor returns the bitwise XOR.
func Xor[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.xor(a, x.reg, y.reg)}
}

// AndNot returns x AND NOT y, like Go's &^.
func AndNot[T Lanes, A Arch[T]](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.andNot(a, x.reg, y.reg)}
}

// Not returns the bitwise complement.
func Not[T Lanes, A Arch[T]](x Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.not(a, x.reg)}
}

// Shifts behave like Go's shift operators on every tag: counts are unsigned,
// and a count of at least the lane width yields 0, or the sign fill when
// shifting a signed lane right.

// ShiftLeftBy shifts every lane left by n.
func ShiftLeftBy[T Integers, A Arch[T]](x Batch[T, A], n uint) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.shiftLeftBy(a, x.reg, uint64(n))}
}

// ShiftRightBy shifts every lane right by n, arithmetically for signed T.
func ShiftRightBy[T Integers, A Arch[T]](x Batch[T, A], n uint) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.shiftRightBy(a, x.reg, uint64(n))}
}

// ShiftLeft shifts lane i of x left by lane i of n, read as an unsigned
// integer of the lane width (a count of -1 is a count of 2^bits-1).
func ShiftLeft[T Integers, A Arch[T]](x, n Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.shiftLeft(a, x.reg, n.reg)}
}

// ShiftRight shifts lane i of x right by lane i of n, arithmetically for
// signed T.
func ShiftRight[T Integers, A Arch[T]](x, n Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.shiftRight(a, x.reg, n.reg)}
}

// Comparisons. Float comparisons involving NaN are false, except Ne.

// Eq returns the lanes where x == y.
func Eq[T Lanes, A Arch[T]](x, y Batch[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.eq(a, x.reg, y.reg)}
}

// Ne returns the lanes where x != y.
func Ne[T Lanes, A Arch[T]](x, y Batch[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.ne(a, x.reg, y.reg)}
}

// Lt returns the lanes where x < y.
func Lt[T Lanes, A Arch[T]](x, y Batch[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.lt(a, x.reg, y.reg)}
}

// Le returns the lanes where x <= y.
func Le[T Lanes, A Arch[T]](x, y Batch[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.le(a, x.reg, y.reg)}
}

// Gt returns the lanes where x > y.
func Gt[T Lanes, A Arch[T]](x, y Batch[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.gt(a, x.reg, y.reg)}
}

// Ge returns the lanes where x >= y.
func Ge[T Lanes, A Arch[T]](x, y Batch[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.ge(a, x.reg, y.reg)}
}

// Select returns x where m is set and y elsewhere.
func Select[T Lanes, A Arch[T]](m Mask[T, A], x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.sel(a, m.reg, x.reg, y.reg)}
}

// Method forms.

func (b Batch[T, A]) Add(o Batch[T, A]) Batch[T, A]    { return Add(b, o) }
func (b Batch[T, A]) Sub(o Batch[T, A]) Batch[T, A]    { return Sub(b, o) }
func (b Batch[T, A]) Mul(o Batch[T, A]) Batch[T, A]    { return Mul(b, o) }
func (b Batch[T, A]) Neg() Batch[T, A]                 { return Neg(b) }
func (b Batch[T, A]) Abs() Batch[T, A]                 { return Abs(b) }
func (b Batch[T, A]) Min(o Batch[T, A]) Batch[T, A]    { return Min(b, o) }
func (b Batch[T, A]) Max(o Batch[T, A]) Batch[T, A]    { return Max(b, o) }
func (b Batch[T, A]) And(o Batch[T, A]) Batch[T, A]    { return And(b, o) }
func (b Batch[T, A]) Or(o Batch[T, A]) Batch[T, A]     { return Or(b, o) }
func (b Batch[T, A]) Xor(o Batch[T, A]) Batch[T, A]    { return Xor(b, o) }
func (b Batch[T, A]) AndNot(o Batch[T, A]) Batch[T, A] { return AndNot(b, o) }
func (b Batch[T, A]) Not() Batch[T, A]                 { return Not(b) }
func (b Batch[T, A]) Eq(o Batch[T, A]) Mask[T, A]      { return Eq(b, o) }
func (b Batch[T, A]) Ne(o Batch[T, A]) Mask[T, A]      { return Ne(b, o) }
func (b Batch[T, A]) Lt(o Batch[T, A]) Mask[T, A]      { return Lt(b, o) }
func (b Batch[T, A]) Le(o Batch[T, A]) Mask[T, A]      { return Le(b, o) }
func (b Batch[T, A]) Gt(o Batch[T, A]) Mask[T, A]      { return Gt(b, o) }
func (b Batch[T, A]) Ge(o Batch[T, A]) Mask[T, A]      { return Ge(b, o) }
func (b Batch[T, A]) ReduceAdd() T                     { return ReduceAdd(b) }
