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

package vec

//go:generate go run ../../../cmd/batchgen -input vec_base.go -output . -output_prefix vec -targets all -types float32,float64,int32,int64,uint8

import "github.com/ajroetker/go-batch/simd"

// BaseSum returns the sum of v, or 0 for an empty slice.
//
// Float sums follow the tag's reduction order, see simd.ReduceAdd.
func BaseSum[T simd.Lanes, A simd.Arch[T]](v []T) T {
	return simd.Sum[T, A](v)
}

// BaseDot returns the dot product of the first min(len(a), len(b)) elements.
//
// Full batches accumulate with a fused multiply-add, so the result can differ
// from a scalar loop in the last bits.
func BaseDot[T simd.Floats, A simd.Arch[T]](a, b []T) T {
	n := min(len(a), len(b))
	lanes := simd.Size[T, A]()

	acc := simd.Zero[T, A]()
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := simd.LoadUnaligned[T, A](a[i:])
		vb := simd.LoadUnaligned[T, A](b[i:])
		acc = simd.FMA(va, vb, acc)
	}

	result := simd.ReduceAdd(acc)
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

// BaseAdd stores a[i] + b[i] into dst[i] for the common length of the three
// slices.
func BaseAdd[T simd.Lanes, A simd.Arch[T]](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	simd.ProcessWithTail[T, A](n,
		func(offset int) {
			va := simd.LoadUnaligned[T, A](a[offset:])
			vb := simd.LoadUnaligned[T, A](b[offset:])
			simd.Add(va, vb).StoreUnaligned(dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = a[i] + b[i]
			}
		},
	)
}

// BaseScale stores v[i] * c into dst[i]. Integer products wrap.
func BaseScale[T simd.Lanes, A simd.Arch[T]](dst, v []T, c T) {
	n := min(len(dst), len(v))
	vc := simd.Broadcast[T, A](c)
	simd.ProcessWithTail[T, A](n,
		func(offset int) {
			simd.Mul(simd.LoadUnaligned[T, A](v[offset:]), vc).StoreUnaligned(dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = v[i] * c
			}
		},
	)
}

// BaseAbs stores |v[i]| into dst[i]. Unsigned values are copied, the most
// negative signed value maps to itself, and floats have their sign bit
// cleared (-0 and negative NaN included), like math.Abs.
func BaseAbs[T simd.Lanes, A simd.Arch[T]](dst, v []T) {
	n := min(len(dst), len(v))
	simd.ProcessWithTail[T, A](n,
		func(offset int) {
			simd.Abs(simd.LoadUnaligned[T, A](v[offset:])).StoreUnaligned(dst[offset:])
		},
		func(offset, count int) {
			// Tail lanes go through the same kernel as full batches.
			for i := offset; i < offset+count; i++ {
				dst[i] = simd.Abs(simd.Broadcast[T, A](v[i])).Get(0)
			}
		},
	)
}

// BaseMax returns the largest element of v.
//
// Panics if v is empty. Slices with NaN values give an unspecified NaN or
// number.
func BaseMax[T simd.Lanes, A simd.Arch[T]](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	lanes := simd.Size[T, A]()
	if len(v) < lanes {
		return scalarMax(v)
	}

	acc := simd.LoadUnaligned[T, A](v)
	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		acc = simd.Max(acc, simd.LoadUnaligned[T, A](v[i:]))
	}
	result := simd.ReduceMax(acc)
	if i < len(v) {
		result = max(result, scalarMax(v[i:]))
	}
	return result
}

// BaseMin returns the smallest element of v, with the rules of BaseMax.
func BaseMin[T simd.Lanes, A simd.Arch[T]](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	lanes := simd.Size[T, A]()
	if len(v) < lanes {
		return scalarMin(v)
	}

	acc := simd.LoadUnaligned[T, A](v)
	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		acc = simd.Min(acc, simd.LoadUnaligned[T, A](v[i:]))
	}
	result := simd.ReduceMin(acc)
	if i < len(v) {
		result = min(result, scalarMin(v[i:]))
	}
	return result
}

// BaseCountGreater returns how many elements of v are greater than threshold.
func BaseCountGreater[T simd.Lanes, A simd.Arch[T]](v []T, threshold T) int {
	vt := simd.Broadcast[T, A](threshold)
	count := 0
	simd.ProcessWithTail[T, A](len(v),
		func(offset int) {
			count += simd.Gt(simd.LoadUnaligned[T, A](v[offset:]), vt).Count()
		},
		func(offset, n int) {
			for _, x := range v[offset : offset+n] {
				if x > threshold {
					count++
				}
			}
		},
	)
	return count
}

func scalarMax[T simd.Lanes](v []T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func scalarMin[T simd.Lanes](v []T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
