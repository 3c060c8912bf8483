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

// Package vec provides slice operations built on simd batches.
//
// Each operation is a function variable per element type, for example
// SumFloat32 or MaxUint8. The generated z_vec_*.go files bind them at init to
// the Base function instantiated with simd.Best for the build, so a call
// costs one indirect jump and no runtime CPU check.
//
// Example:
//
//	total := vec.SumFloat32(data)
//	vec.ScaleFloat32(out, data, 0.5)
package vec

// The Sum variables hold BaseSum for each element type.
var (
	SumFloat32 func([]float32) float32
	SumFloat64 func([]float64) float64
	SumInt32   func([]int32) int32
	SumInt64   func([]int64) int64
	SumUint8   func([]uint8) uint8
)

// The Dot variables hold BaseDot for each float type.
var (
	DotFloat32 func(a, b []float32) float32
	DotFloat64 func(a, b []float64) float64
)

// The Add variables hold BaseAdd.
var (
	AddFloat32 func(dst, a, b []float32)
	AddFloat64 func(dst, a, b []float64)
	AddInt32   func(dst, a, b []int32)
	AddInt64   func(dst, a, b []int64)
	AddUint8   func(dst, a, b []uint8)
)

// The Scale variables hold BaseScale.
var (
	ScaleFloat32 func(dst, v []float32, c float32)
	ScaleFloat64 func(dst, v []float64, c float64)
	ScaleInt32   func(dst, v []int32, c int32)
	ScaleInt64   func(dst, v []int64, c int64)
	ScaleUint8   func(dst, v []uint8, c uint8)
)

// The Abs variables hold BaseAbs.
var (
	AbsFloat32 func(dst, v []float32)
	AbsFloat64 func(dst, v []float64)
	AbsInt32   func(dst, v []int32)
	AbsInt64   func(dst, v []int64)
	AbsUint8   func(dst, v []uint8)
)

// The Max variables hold BaseMax. They panic on an empty slice.
var (
	MaxFloat32 func([]float32) float32
	MaxFloat64 func([]float64) float64
	MaxInt32   func([]int32) int32
	MaxInt64   func([]int64) int64
	MaxUint8   func([]uint8) uint8
)

// The Min variables hold BaseMin. They panic on an empty slice.
var (
	MinFloat32 func([]float32) float32
	MinFloat64 func([]float64) float64
	MinInt32   func([]int32) int32
	MinInt64   func([]int64) int64
	MinUint8   func([]uint8) uint8
)

// The CountGreater variables hold BaseCountGreater.
var (
	CountGreaterFloat32 func(v []float32, threshold float32) int
	CountGreaterFloat64 func(v []float64, threshold float64) int
	CountGreaterInt32   func(v []int32, threshold int32) int
	CountGreaterInt64   func(v []int64, threshold int64) int
	CountGreaterUint8   func(v []uint8, threshold uint8) int
)
