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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Advanced SIMD is part of the A64 baseline.
func skipUnavailable[T Lanes](t *testing.T, a Arch[T]) {}

func TestOpTablesMatchKernelsNEON(t *testing.T) {
	checkOpTables(t, kernelMethods(t, "kernels_neon.go"), map[string]*opTable{
		"NEON":   &neonOps,
		"NEON64": &neon64Ops,
	})
}

func TestNEONMatchesGeneric(t *testing.T) {
	for _, tc := range []struct {
		name string
		run  func(*testing.T)
	}{
		{"neon/int8", checkKernels[int8, NEON[int8]]},
		{"neon/int16", checkKernels[int16, NEON[int16]]},
		{"neon/int32", checkKernels[int32, NEON[int32]]},
		{"neon/int64", checkKernels[int64, NEON[int64]]},
		{"neon/uint8", checkKernels[uint8, NEON[uint8]]},
		{"neon/uint16", checkKernels[uint16, NEON[uint16]]},
		{"neon/uint32", checkKernels[uint32, NEON[uint32]]},
		{"neon/uint64", checkKernels[uint64, NEON[uint64]]},
		{"neon/float32", checkKernels[float32, NEON[float32]]},
		{"neon/float64", checkKernels[float64, NEON[float64]]},
		{"neon64/int8", checkKernels[int8, NEON64[int8]]},
		{"neon64/int16", checkKernels[int16, NEON64[int16]]},
		{"neon64/int32", checkKernels[int32, NEON64[int32]]},
		{"neon64/int64", checkKernels[int64, NEON64[int64]]},
		{"neon64/uint8", checkKernels[uint8, NEON64[uint8]]},
		{"neon64/uint16", checkKernels[uint16, NEON64[uint16]]},
		{"neon64/uint32", checkKernels[uint32, NEON64[uint32]]},
		{"neon64/uint64", checkKernels[uint64, NEON64[uint64]]},
		{"neon64/float32", checkKernels[float32, NEON64[float32]]},
		{"neon64/float64", checkKernels[float64, NEON64[float64]]},
	} {
		t.Run(tc.name, tc.run)
	}
}

func TestResolveNEON(t *testing.T) {
	assert.Equal(t, "arm32+neon", Resolve[float32, NEON64[float32]](OpAdd))
	assert.Equal(t, "arm64+neon", Resolve[float64, NEON64[float64]](OpAdd))
	assert.Equal(t, "generic", Resolve[float64, NEON[float64]](OpAdd))
	assert.Equal(t, "arm64+neon", Resolve[float32, NEON64[float32]](OpDiv))
	assert.Equal(t, "generic", Resolve[int64, NEON64[int64]](OpMul))
	assert.Equal(t, "arm32+neon", Resolve[int64, NEON64[int64]](OpSAdd))
	assert.Equal(t, "arm64+neon", Resolve[uint64, NEON64[uint64]](OpShiftLeft))
	assert.Equal(t, "generic", Resolve[float32, NEON64[float32]](OpMin))
	assert.Equal(t, []string{"arm64+neon", "arm32+neon", "generic"}, Chain[int8, NEON64[int8]]())
	assert.Equal(t, "arm64+neon", (Best[int8]{}).Name())
}

func TestShiftOutOfRangeNEON(t *testing.T) {
	x := Broadcast[int8, NEON64[int8]](-64)
	n := FromValues[int8, NEON64[int8]](0, 1, 7, 8, 9, 64, 127, -1, -128, 2, 3, 4, 5, 6, 100, -8)
	wantLeft := []int8{-64, -128, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	wantRight := []int8{-64, -32, -1, -1, -1, -1, -1, -1, -1, -16, -8, -4, -2, -1, -1, -1}
	assert.Equal(t, wantLeft, ShiftLeft(x, n).ToSlice())
	assert.Equal(t, wantRight, ShiftRight(x, n).ToSlice())

	u := Broadcast[uint64, NEON64[uint64]](1 << 63)
	un := FromValues[uint64, NEON64[uint64]](64, math.MaxUint64)
	assert.Equal(t, []uint64{0, 0}, ShiftRight(u, un).ToSlice())
	assert.Equal(t, []uint64{0, 0}, ShiftLeft(u, un).ToSlice())
}

// Pairwise addition pairs lanes (0,1) and (2,3); in float32 2^24+1 rounds
// back to 2^24 while 1-2^24 is exact.
func TestReduceAddNEON(t *testing.T) {
	b := FromValues[float32, NEON[float32]](1<<24, 1, 1, -(1 << 24))
	assert.Equal(t, float32(1), ReduceAdd(b))
	assert.Equal(t, float32(0), Generic[float32]{}.reduceAdd(NEON[float32]{}, b.Register()))
	assert.Equal(t, float64(10), ReduceAdd(FromValues[float64, NEON64[float64]](4, 6)))
	assert.Equal(t, 28.0, Sum[float64, NEON64[float64]]([]float64{1, 2, 3, 4, 5, 6, 7}))
}
