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

//go:build amd64 && goexperiment.simd && amd64.v3

package simd

import "simd/archsimd"

// With GOEXPERIMENT=simd and GOAMD64=v3 or higher the AVX2 arithmetic runs on
// archsimd vectors, one 256-bit chunk at a time so the wider AVX-512 tags can
// inherit it. Below v3 the AVX2 tags stay on the portable instruction models,
// since the binary may run on a CPU without AVX2.

const avx2Arith = AllFloats | Int32

// nativeAVX2 reports that AVX2 kernels execute real AVX2 instructions.
const nativeAVX2 = true

func (t AVX2[T]) add(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		xs, ys, rs := viewAs[float32](a, &x), viewAs[float32](a, &y), viewAs[float32](a, &r)
		for i := 0; i < len(xs); i += 8 {
			archsimd.LoadFloat32x8Slice(xs[i:]).Add(archsimd.LoadFloat32x8Slice(ys[i:])).StoreSlice(rs[i:])
		}
	case Float64:
		xs, ys, rs := viewAs[float64](a, &x), viewAs[float64](a, &y), viewAs[float64](a, &r)
		for i := 0; i < len(xs); i += 4 {
			archsimd.LoadFloat64x4Slice(xs[i:]).Add(archsimd.LoadFloat64x4Slice(ys[i:])).StoreSlice(rs[i:])
		}
	case Int32:
		xs, ys, rs := viewAs[int32](a, &x), viewAs[int32](a, &y), viewAs[int32](a, &r)
		for i := 0; i < len(xs); i += 8 {
			archsimd.LoadInt32x8Slice(xs[i:]).Add(archsimd.LoadInt32x8Slice(ys[i:])).StoreSlice(rs[i:])
		}
	default:
		return t.AVX.add(a, x, y)
	}
	return r
}

func (t AVX2[T]) sub(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		xs, ys, rs := viewAs[float32](a, &x), viewAs[float32](a, &y), viewAs[float32](a, &r)
		for i := 0; i < len(xs); i += 8 {
			archsimd.LoadFloat32x8Slice(xs[i:]).Sub(archsimd.LoadFloat32x8Slice(ys[i:])).StoreSlice(rs[i:])
		}
	case Float64:
		xs, ys, rs := viewAs[float64](a, &x), viewAs[float64](a, &y), viewAs[float64](a, &r)
		for i := 0; i < len(xs); i += 4 {
			archsimd.LoadFloat64x4Slice(xs[i:]).Sub(archsimd.LoadFloat64x4Slice(ys[i:])).StoreSlice(rs[i:])
		}
	case Int32:
		xs, ys, rs := viewAs[int32](a, &x), viewAs[int32](a, &y), viewAs[int32](a, &r)
		for i := 0; i < len(xs); i += 8 {
			archsimd.LoadInt32x8Slice(xs[i:]).Sub(archsimd.LoadInt32x8Slice(ys[i:])).StoreSlice(rs[i:])
		}
	default:
		return t.AVX.sub(a, x, y)
	}
	return r
}

func (t AVX2[T]) mul(a Arch[T], x, y Register) (r Register) {
	switch KindOf[T]() {
	case Float32:
		xs, ys, rs := viewAs[float32](a, &x), viewAs[float32](a, &y), viewAs[float32](a, &r)
		for i := 0; i < len(xs); i += 8 {
			archsimd.LoadFloat32x8Slice(xs[i:]).Mul(archsimd.LoadFloat32x8Slice(ys[i:])).StoreSlice(rs[i:])
		}
	case Float64:
		xs, ys, rs := viewAs[float64](a, &x), viewAs[float64](a, &y), viewAs[float64](a, &r)
		for i := 0; i < len(xs); i += 4 {
			archsimd.LoadFloat64x4Slice(xs[i:]).Mul(archsimd.LoadFloat64x4Slice(ys[i:])).StoreSlice(rs[i:])
		}
	default:
		return t.AVX.mul(a, x, y)
	}
	return r
}
