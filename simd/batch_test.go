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
	"github.com/stretchr/testify/require"
)

func TestBroadcast(t *testing.T) {
	v := Broadcast[float32, Generic[float32]](42.0)

	if v.Size() != 4 {
		t.Fatalf("Broadcast: got %d lanes, want 4", v.Size())
	}
	for i := 0; i < v.Size(); i++ {
		if v.Get(i) != 42.0 {
			t.Errorf("Broadcast: lane %d: got %v, want %v", i, v.Get(i), 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32, Best[int32]]()
	for i := 0; i < v.Size(); i++ {
		if v.Get(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.Get(i))
		}
	}
	assert.Equal(t, Register{}, v.Register())
}

func TestFromValues(t *testing.T) {
	b := FromValues[int16, Generic[int16]](1, 2, 3, 4, 5, 6, 7, 8)
	assert.Equal(t, []int16{1, 2, 3, 4, 5, 6, 7, 8}, b.ToSlice())
	assert.Equal(t, "generic[1 2 3 4 5 6 7 8]", b.String())

	assert.PanicsWithValue(t, "simd: FromValues on generic needs 2 values, got 3", func() {
		FromValues[float64, Generic[float64]](1, 2, 3)
	})
	assert.Panics(t, func() { FromValues[uint8, Generic[uint8]]() })
}

func TestIota(t *testing.T) {
	b := Iota[uint8, Generic[uint8]](250)
	want := []uint8{250, 251, 252, 253, 254, 255, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, want, b.ToSlice())

	f := Iota[float64, Generic[float64]](0.5)
	assert.Equal(t, []float64{0.5, 1.5}, f.ToSlice())
}

func TestGetOutOfRange(t *testing.T) {
	b := Iota[int32, Generic[int32]](0)
	assert.Panics(t, func() { b.Get(4) })
	assert.Panics(t, func() { b.Get(-1) })
}

func TestToSliceCopies(t *testing.T) {
	b := Broadcast[int64, Generic[int64]](7)
	s := b.ToSlice()
	s[0] = 1
	assert.Equal(t, int64(7), b.Get(0))
}

func TestSizeFollowsTag(t *testing.T) {
	assert.Equal(t, 16, Size[int8, Generic[int8]]())
	assert.Equal(t, 8, Size[uint16, Generic[uint16]]())
	assert.Equal(t, 4, Size[float32, Generic[float32]]())
	assert.Equal(t, 2, Size[float64, Generic[float64]]())
	assert.Equal(t, Width[float64, Best[float64]]()/8, BestBatch[float64]{}.Size())
}

func TestBytesPastWidthStayZero(t *testing.T) {
	b := Not(Broadcast[uint32, Generic[uint32]](0))
	reg := b.Register()
	for i := Width[uint32, Generic[uint32]]() / 8; i < len(reg); i++ {
		if reg[i] != 0 {
			t.Errorf("Not: word %d past the register: got %#x, want 0", i, reg[i])
		}
	}
}

func TestMask(t *testing.T) {
	m := MaskFromBools[int32, Generic[int32]](true, false, true, true)
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 3, m.Count())
	assert.True(t, m.Any())
	assert.False(t, m.All())
	assert.Equal(t, "1011", m.String())
	assert.True(t, m.Get(0))
	assert.False(t, m.Get(1))
	assert.Panics(t, func() { m.Get(4) })

	f := FirstN[int32, Generic[int32]](2)
	assert.Equal(t, "1100", f.String())
	assert.Equal(t, "1000", m.And(f).String())
	assert.Equal(t, "1111", m.Or(f).String())
	assert.Equal(t, "0111", m.Xor(f).String())
	assert.Equal(t, "0100", m.Not().String())
	assert.True(t, m.Or(f).All())
	assert.False(t, m.And(f).Not().Not().Xor(m.And(f)).Any())

	assert.Equal(t, "0000", FirstN[int32, Generic[int32]](-3).String())
	assert.Equal(t, "1111", FirstN[int32, Generic[int32]](99).String())
	assert.Panics(t, func() { MaskFromBools[int32, Generic[int32]](true) })
}

func TestMaskAsBatch(t *testing.T) {
	m := Gt(Iota[int16, Generic[int16]](0), Broadcast[int16, Generic[int16]](5))
	require.Equal(t, "00000011", m.String())
	assert.Equal(t, []int16{0, 0, 0, 0, 0, 0, -1, -1}, m.AsBatch().ToSlice())

	u := Eq(Iota[uint64, Generic[uint64]](0), Zero[uint64, Generic[uint64]]())
	assert.Equal(t, []uint64{^uint64(0), 0}, u.AsBatch().ToSlice())
}

func TestSelect(t *testing.T) {
	x := Iota[float32, Best[float32]](1)
	y := Broadcast[float32, Best[float32]](-1)
	got := Select(FirstN[float32, Best[float32]](2), x, y)
	for i := range got.Size() {
		want := float32(-1)
		if i < 2 {
			want = float32(i + 1)
		}
		if got.Get(i) != want {
			t.Errorf("Select: lane %d: got %v, want %v", i, got.Get(i), want)
		}
	}
}
