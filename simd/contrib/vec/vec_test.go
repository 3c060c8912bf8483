package vec

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-batch/simd"
)

// lengths straddle one and several batches of the widest tag.
var lengths = []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 31, 33, 64, 100, 129}

func iota32(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(i + 1)
	}
	return s
}

func randomInts[T int32 | int64 | uint8](r *rand.Rand, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(r.Uint64())
	}
	return s
}

func TestBindings(t *testing.T) {
	require.NotNil(t, SumFloat32)
	require.NotNil(t, SumUint8)
	require.NotNil(t, DotFloat64)
	require.NotNil(t, AddInt64)
	require.NotNil(t, ScaleInt32)
	require.NotNil(t, AbsFloat32)
	require.NotNil(t, MaxUint8)
	require.NotNil(t, MinFloat64)
	require.NotNil(t, CountGreaterInt32)
}

func TestSum(t *testing.T) {
	for _, n := range lengths {
		want := float32(n * (n + 1) / 2)
		if got := SumFloat32(iota32(n)); got != want {
			t.Errorf("SumFloat32(1..%d): got %v, want %v", n, got, want)
		}
		if got := BaseSum[float32, simd.Generic[float32]](iota32(n)); got != want {
			t.Errorf("BaseSum generic (1..%d): got %v, want %v", n, got, want)
		}
	}
	assert.Equal(t, float64(0), SumFloat64(nil))
}

func TestSumIntsWrap(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range lengths {
		v := randomInts[uint8](r, n)
		var want uint8
		for _, x := range v {
			want += x
		}
		assert.Equal(t, want, SumUint8(v), "n=%d", n)

		w := randomInts[int64](r, n)
		var want64 int64
		for _, x := range w {
			want64 += x
		}
		assert.Equal(t, want64, SumInt64(w), "n=%d", n)
	}
}

func TestDot(t *testing.T) {
	for _, n := range lengths {
		a, b := make([]float64, n), make([]float64, n+3)
		var want float64
		for i := range a {
			a[i] = float64(i % 7)
			b[i] = float64(3 - i%5)
			want += a[i] * b[i]
		}
		if got := DotFloat64(a, b); got != want {
			t.Errorf("DotFloat64(n=%d): got %v, want %v", n, got, want)
		}
		if got := BaseDot[float64, simd.Generic[float64]](b, a); got != want {
			t.Errorf("BaseDot generic (n=%d): got %v, want %v", n, got, want)
		}
	}

	v := iota32(10)
	assert.Equal(t, float32(385), DotFloat32(v, v))
}

func TestAdd(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range lengths {
		a, b := randomInts[int32](r, n), randomInts[int32](r, n)
		dst := make([]int32, n)
		AddInt32(dst, a, b)
		for i := range dst {
			if want := a[i] + b[i]; dst[i] != want {
				t.Errorf("AddInt32(n=%d): lane %d: got %v, want %v", n, i, dst[i], want)
			}
		}
	}

	// Only the common length is written.
	dst := []float32{-1, -1, -1, -1, -1, -1}
	AddFloat32(dst, iota32(5), iota32(4))
	assert.Equal(t, []float32{2, 4, 6, 8, -1, -1}, dst)
}

func TestScale(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for _, n := range lengths {
		v := randomInts[uint8](r, n)
		dst := make([]uint8, n)
		ScaleUint8(dst, v, 3)
		for i := range dst {
			if want := v[i] * 3; dst[i] != want {
				t.Errorf("ScaleUint8(n=%d): lane %d: got %v, want %v", n, i, dst[i], want)
			}
		}
	}

	dst := make([]float64, 5)
	ScaleFloat64(dst, []float64{1, 2, 3, 4, 5}, 0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5}, dst)
}

func TestAbs(t *testing.T) {
	v := []int64{-3, 0, 5, math.MinInt64, -1, 7, -8, 9, -10}
	dst := make([]int64, len(v))
	AbsInt64(dst, v)
	assert.Equal(t, []int64{3, 0, 5, math.MinInt64, 1, 7, 8, 9, 10}, dst)

	f := []float32{-1.5, 2, float32(math.Inf(-1)), -0.25, 3, -4, 5, -6, 7}
	fd := make([]float32, len(f))
	AbsFloat32(fd, f)
	assert.Equal(t, []float32{1.5, 2, float32(math.Inf(1)), 0.25, 3, 4, 5, 6, 7}, fd)

	u := []uint8{0, 128, 255}
	ud := make([]uint8, 3)
	AbsUint8(ud, u)
	assert.Equal(t, u, ud)
}

// -0 and negative NaN must lose their sign whether they land in a full batch
// or in the scalar tail.
func TestAbsSignBit(t *testing.T) {
	negNaN := math.Copysign(math.NaN(), -1)
	for _, n := range lengths {
		v := make([]float64, n)
		for i := range v {
			if i%2 == 0 {
				v[i] = math.Copysign(0, -1)
			} else {
				v[i] = negNaN
			}
		}
		for _, abs := range []struct {
			name string
			fn   func(dst, v []float64)
		}{
			{"AbsFloat64", AbsFloat64},
			{"BaseAbs generic", BaseAbs[float64, simd.Generic[float64]]},
		} {
			dst := make([]float64, n)
			abs.fn(dst, v)
			for i := range dst {
				if got, want := math.Float64bits(dst[i]), math.Float64bits(math.Abs(v[i])); got != want {
					t.Errorf("%s(n=%d): index %d: got %#x, want %#x", abs.name, n, i, got, want)
				}
			}
		}

		f := make([]float32, n)
		for i := range f {
			f[i] = float32(math.Copysign(0, -1))
		}
		fd := make([]float32, n)
		AbsFloat32(fd, f)
		for i := range fd {
			if math.Signbit(float64(fd[i])) {
				t.Errorf("AbsFloat32(n=%d): index %d: got -0, want +0", n, i)
			}
		}
	}
}

func TestMaxMin(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for _, n := range lengths[1:] {
		v := randomInts[int32](r, n)
		wantMax, wantMin := v[0], v[0]
		for _, x := range v {
			wantMax = max(wantMax, x)
			wantMin = min(wantMin, x)
		}
		assert.Equal(t, wantMax, MaxInt32(v), "MaxInt32 n=%d", n)
		assert.Equal(t, wantMin, MinInt32(v), "MinInt32 n=%d", n)
		assert.Equal(t, wantMax, BaseMax[int32, simd.Generic[int32]](v), "BaseMax generic n=%d", n)
		assert.Equal(t, wantMin, BaseMin[int32, simd.Generic[int32]](v), "BaseMin generic n=%d", n)
	}

	// Extremes in the scalar tail and in the first batch.
	v := iota32(37)
	v[36] = 1000
	v[0] = -5
	assert.Equal(t, float32(1000), MaxFloat32(v))
	assert.Equal(t, float32(-5), MinFloat32(v))
	assert.Equal(t, uint8(9), MaxUint8([]uint8{3, 9, 1}))
}

func TestMaxMinEmptyPanics(t *testing.T) {
	assert.PanicsWithValue(t, "vec: Max called on empty slice", func() { MaxFloat64(nil) })
	assert.PanicsWithValue(t, "vec: Min called on empty slice", func() { MinInt64([]int64{}) })
}

func TestCountGreater(t *testing.T) {
	for _, n := range lengths {
		v := iota32(n)
		want := max(n-10, 0)
		if got := CountGreaterFloat32(v, 10); got != want {
			t.Errorf("CountGreaterFloat32(1..%d, 10): got %d, want %d", n, got, want)
		}
	}

	r := rand.New(rand.NewPCG(9, 10))
	u := randomInts[uint8](r, 1000)
	want := 0
	for _, x := range u {
		if x > 200 {
			want++
		}
	}
	assert.Equal(t, want, CountGreaterUint8(u, 200))
	assert.Equal(t, want, BaseCountGreater[uint8, simd.Generic[uint8]](u, 200))
}
