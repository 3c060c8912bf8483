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

import (
	"fmt"
	"strings"
)

// Batch is a register of Size() lanes of T laid out as tag A's hardware
// vector. It is a plain value: copying a batch copies its lanes.
type Batch[T Lanes, A Arch[T]] struct {
	reg Register
}

// BestBatch is a batch on the most capable tag enabled for this build.
type BestBatch[T Lanes] = Batch[T, Best[T]]

// Size returns the number of lanes of a Batch[T, A].
func Size[T Lanes, A Arch[T]]() int {
	return laneCount(tagOf[T, A]())
}

// Size returns the number of lanes.
func (b Batch[T, A]) Size() int {
	return Size[T, A]()
}

// Get returns lane i. It panics if i is not in [0, Size()).
func (b Batch[T, A]) Get(i int) T {
	return lanesOf(tagOf[T, A](), &b.reg)[i]
}

// ToSlice returns the lanes as a new slice.
func (b Batch[T, A]) ToSlice() []T {
	out := make([]T, b.Size())
	copy(out, lanesOf(tagOf[T, A](), &b.reg))
	return out
}

// Register returns the raw register contents.
func (b Batch[T, A]) Register() Register {
	return b.reg
}

// String formats the lanes, e.g. "avx2[1 2 3 4 5 6 7 8]".
func (b Batch[T, A]) String() string {
	a := tagOf[T, A]()
	var sb strings.Builder
	sb.WriteString(a.Name())
	sb.WriteByte('[')
	for i, v := range lanesOf(a, &b.reg) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Zero returns a batch with every lane zero.
func Zero[T Lanes, A Arch[T]]() Batch[T, A] {
	return Batch[T, A]{}
}

// Broadcast returns a batch with every lane set to v.
func Broadcast[T Lanes, A Arch[T]](v T) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.broadcast(a, v)}
}

// FromValues builds a batch from exactly Size() values, lane 0 first. It
// panics on any other count.
func FromValues[T Lanes, A Arch[T]](values ...T) Batch[T, A] {
	a := tagOf[T, A]()
	if n := laneCount(a); len(values) != n {
		panic(fmt.Sprintf("simd: FromValues on %s needs %d values, got %d", a.Name(), n, len(values)))
	}
	var b Batch[T, A]
	copy(lanesOf(a, &b.reg), values)
	return b
}

// Iota returns a batch whose lane i holds start+i.
func Iota[T Lanes, A Arch[T]](start T) Batch[T, A] {
	var b Batch[T, A]
	lanes := lanesOf(tagOf[T, A](), &b.reg)
	for i := range lanes {
		lanes[i] = start + T(i)
	}
	return b
}

// Mask is the result of a comparison: every lane is all ones (true) or all
// zeros (false), so it can be used as a select mask or reinterpreted as an
// integer batch.
type Mask[T Lanes, A Arch[T]] struct {
	reg Register
}

// Size returns the number of lanes.
func (m Mask[T, A]) Size() int {
	return Size[T, A]()
}

// Get reports whether lane i is set. It panics if i is not in [0, Size()).
func (m Mask[T, A]) Get(i int) bool {
	if n := m.Size(); i < 0 || i >= n {
		panic(fmt.Sprintf("simd: mask lane %d out of range [0, %d)", i, n))
	}
	return maskBit(&m.reg, sizeOf[T](), i)
}

// Count returns the number of set lanes.
func (m Mask[T, A]) Count() int {
	n := 0
	for i := range m.Size() {
		if maskBit(&m.reg, sizeOf[T](), i) {
			n++
		}
	}
	return n
}

// All reports whether every lane is set.
func (m Mask[T, A]) All() bool { return m.Count() == m.Size() }

// Any reports whether at least one lane is set.
func (m Mask[T, A]) Any() bool { return m.Count() > 0 }

// And returns the lanes set in both masks.
func (m Mask[T, A]) And(o Mask[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.and(a, m.reg, o.reg)}
}

// Or returns the lanes set in either mask.
func (m Mask[T, A]) Or(o Mask[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.or(a, m.reg, o.reg)}
}

// Xor returns the lanes set in exactly one mask.
func (m Mask[T, A]) Xor(o Mask[T, A]) Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.xor(a, m.reg, o.reg)}
}

// Not inverts every lane.
func (m Mask[T, A]) Not() Mask[T, A] {
	var a A
	return Mask[T, A]{reg: a.not(a, m.reg)}
}

// AsBatch reinterprets the mask bits as a batch.
func (m Mask[T, A]) AsBatch() Batch[T, A] {
	return Batch[T, A]{reg: m.reg}
}

// String formats the mask as a lane string such as "1100".
func (m Mask[T, A]) String() string {
	var sb strings.Builder
	for i := range m.Size() {
		if maskBit(&m.reg, sizeOf[T](), i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// MaskFromBools builds a mask from exactly Size() flags, lane 0 first.
func MaskFromBools[T Lanes, A Arch[T]](flags ...bool) Mask[T, A] {
	var m Mask[T, A]
	if n := m.Size(); len(flags) != n {
		panic(fmt.Sprintf("simd: MaskFromBools needs %d flags, got %d", n, len(flags)))
	}
	for i, f := range flags {
		setMask(&m.reg, sizeOf[T](), i, f)
	}
	return m
}

// FirstN returns a mask with lanes [0, n) set. n is clamped to [0, Size()].
func FirstN[T Lanes, A Arch[T]](n int) Mask[T, A] {
	var m Mask[T, A]
	n = max(0, min(n, m.Size()))
	for i := range n {
		setMask(&m.reg, sizeOf[T](), i, true)
	}
	return m
}
