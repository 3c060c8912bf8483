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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7}
	if got := Sum[float64, Generic[float64]](data); got != 28 {
		t.Errorf("Sum: got %v, want 28", got)
	}
	if got := Sum[float64, Best[float64]](data); got != 28 {
		t.Errorf("Sum: got %v, want 28", got)
	}
	assert.Equal(t, float32(0), Sum[float32, Best[float32]](nil))
	assert.Equal(t, float32(3), Sum[float32, Best[float32]]([]float32{3}))
}

func testSumInts[T Integers, A Arch[T]](t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 100, 1000} {
		data := make([]T, n)
		var want T
		for i := range data {
			data[i] = T(i*7 + 3)
			want += data[i]
		}
		if got := Sum[T, A](data); got != want {
			t.Errorf("Sum(len %d): got %v, want %v", n, got, want)
		}
	}
}

func TestSumInts(t *testing.T) {
	t.Run("generic/int8", testSumInts[int8, Generic[int8]])
	t.Run("generic/uint32", testSumInts[uint32, Generic[uint32]])
	t.Run("best/int8", testSumInts[int8, Best[int8]])
	t.Run("best/int16", testSumInts[int16, Best[int16]])
	t.Run("best/uint32", testSumInts[uint32, Best[uint32]])
	t.Run("best/int64", testSumInts[int64, Best[int64]])
}

func TestReduceMinMax(t *testing.T) {
	b := FromValues[int16, Generic[int16]](5, -3, 9, 0, 9, -7, 2, 1)
	assert.Equal(t, int16(-7), ReduceMin(b))
	assert.Equal(t, int16(9), ReduceMax(b))
	assert.Equal(t, int16(16), ReduceAdd(b))

	f := Iota[float32, Best[float32]](-2)
	assert.Equal(t, float32(-2), ReduceMin(f))
	assert.Equal(t, float32(f.Size()-3), ReduceMax(f))
}

func TestProcessWithTail(t *testing.T) {
	lanes := Size[float32, Generic[float32]]()

	tests := []struct {
		size         int
		wantFull     []int
		wantTailOff  int
		wantTailSize int
	}{
		{0, nil, 0, 0},
		{3, nil, 0, 3},
		{4, []int{0}, 0, 0},
		{10, []int{0, 4}, 8, 2},
	}
	for _, tt := range tests {
		var full []int
		tailOff, tailSize := 0, 0
		ProcessWithTail[float32, Generic[float32]](tt.size,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) { tailOff, tailSize = offset, count },
		)
		assert.Equal(t, tt.wantFull, full, "size %d", tt.size)
		assert.Equal(t, tt.wantTailOff, tailOff, "size %d", tt.size)
		assert.Equal(t, tt.wantTailSize, tailSize, "size %d", tt.size)
	}
	assert.Equal(t, 4, lanes)
}
