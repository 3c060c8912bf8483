package simd

import (
	"math"
	"math/rand/v2"
	"testing"
)

// kernelInputs is one round of operands for every kernel under test.
type kernelInputs struct {
	x, y, z Register
	counts  Register // per-lane shift counts
	mask    Register // canonical select mask
	by      uint64   // uniform shift count
}

type kernelCase[T Lanes] struct {
	name  string
	kinds Kind
	run   func(k kernels[T], a Arch[T], in *kernelInputs) Register
}

func kernelCases[T Lanes]() []kernelCase[T] {
	return []kernelCase[T]{
		{"add", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.add(a, in.x, in.y) }},
		{"sub", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.sub(a, in.x, in.y) }},
		{"mul", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.mul(a, in.x, in.y) }},
		{"div", AllFloats, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.div(a, in.x, in.y) }},
		{"neg", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.neg(a, in.x) }},
		{"abs", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.abs(a, in.x) }},
		{"min", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.min(a, in.x, in.y) }},
		{"max", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.max(a, in.x, in.y) }},
		{"fma", AllFloats, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.fma(a, in.x, in.y, in.z) }},
		{"sadd", AllInts, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.sadd(a, in.x, in.y) }},
		{"ssub", AllInts, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.ssub(a, in.x, in.y) }},
		{"and", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.and(a, in.x, in.y) }},
		{"or", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.or(a, in.x, in.y) }},
		{"xor", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.xor(a, in.x, in.y) }},
		{"andNot", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.andNot(a, in.x, in.y) }},
		{"not", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.not(a, in.x) }},
		{"shiftLeftBy", AllInts, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.shiftLeftBy(a, in.x, in.by) }},
		{"shiftRightBy", AllInts, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.shiftRightBy(a, in.x, in.by) }},
		{"shiftLeft", AllInts, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.shiftLeft(a, in.x, in.counts) }},
		{"shiftRight", AllInts, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.shiftRight(a, in.x, in.counts) }},
		{"eq", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.eq(a, in.x, in.y) }},
		{"eqSelf", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.eq(a, in.x, in.x) }},
		{"ne", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.ne(a, in.x, in.y) }},
		{"lt", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.lt(a, in.x, in.y) }},
		{"le", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.le(a, in.x, in.y) }},
		{"gt", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.gt(a, in.x, in.y) }},
		{"ge", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.ge(a, in.x, in.y) }},
		{"sel", AllKinds, func(k kernels[T], a Arch[T], in *kernelInputs) Register { return k.sel(a, in.mask, in.x, in.y) }},
	}
}

var specialFloats = []float64{0, math.Copysign(0, -1), 1, -1, math.Inf(1), math.Inf(-1), math.NaN()}

func randomFloat(rng *rand.Rand) float64 {
	if rng.IntN(4) == 0 {
		return specialFloats[rng.IntN(len(specialFloats))]
	}
	return rng.NormFloat64() * math.Exp2(float64(rng.IntN(40)-20))
}

// putBits writes the low size bytes of v into lane i.
func putBits(r *Register, size, i int, v uint64) {
	switch size {
	case 1:
		view[uint8](r, i+1)[i] = uint8(v)
	case 2:
		view[uint16](r, i+1)[i] = uint16(v)
	case 4:
		view[uint32](r, i+1)[i] = uint32(v)
	default:
		view[uint64](r, i+1)[i] = v
	}
}

// randomValues fills the lanes of tag a: random bits for integers, a mix of
// ordinary and special values for floats. Lanes that repeat the previous
// lane keep equality paths busy.
func randomValues[T Lanes](rng *rand.Rand, a Arch[T]) (r Register) {
	lanes := lanesOf(a, &r)
	for i := range lanes {
		switch {
		case i > 0 && rng.IntN(8) == 0:
			lanes[i] = lanes[i-1]
		case isFloat[T]():
			lanes[i] = T(randomFloat(rng))
		default:
			putBits(&r, sizeOf[T](), i, rng.Uint64())
		}
	}
	return r
}

// randomCounts mostly stays near the lane width, with the occasional
// arbitrary bit pattern.
func randomCounts[T Lanes](rng *rand.Rand, a Arch[T]) (r Register) {
	bits := bitsOf[T]()
	for i := range laneCount(a) {
		v := rng.Uint64N(bits + 2)
		if rng.IntN(8) == 0 {
			v = rng.Uint64()
		}
		putBits(&r, sizeOf[T](), i, v)
	}
	return r
}

func randomMask[T Lanes](rng *rand.Rand, a Arch[T]) (r Register) {
	for i := range laneCount(a) {
		setMask(&r, sizeOf[T](), i, rng.IntN(2) == 0)
	}
	return r
}

func randomInputs[T Lanes](rng *rand.Rand, a Arch[T]) *kernelInputs {
	bits := bitsOf[T]()
	byCounts := []uint64{0, 1, bits / 2, bits - 1, bits, bits + 1, 255, 1 << 40}
	in := &kernelInputs{
		x:      randomValues(rng, a),
		y:      randomValues(rng, a),
		z:      randomValues(rng, a),
		counts: randomCounts(rng, a),
		mask:   randomMask(rng, a),
		by:     byCounts[rng.IntN(len(byCounts))],
	}
	if isFloat[T]() {
		in.by = 0
	}
	return in
}

// checkKernels runs every kernel of tag A next to the generic kernel for the
// same register width and requires bit-identical results, with the bytes
// past the register width left zero.
func checkKernels[T Lanes, A Arch[T]](t *testing.T) {
	var tag A
	a := Arch[T](tag)
	skipUnavailable(t, a)
	var g Generic[T]
	kind := KindOf[T]()
	rng := rand.New(rand.NewPCG(uint64(kind), uint64(a.Version())))
	cases := kernelCases[T]()
	for range 200 {
		in := randomInputs(rng, a)
		for _, c := range cases {
			if c.kinds&kind == 0 {
				continue
			}
			got := c.run(a, a, in)
			want := c.run(g, a, in)
			if got != want {
				t.Fatalf("%s %s %s: got %v, want %v (x=%v y=%v)", a.Name(), kind, c.name,
					lanesOf(a, &got), lanesOf(a, &want), lanesOf(a, &in.x), lanesOf(a, &in.y))
			}
			for i := a.Bytes() / 8; i < len(got); i++ {
				if got[i] != 0 {
					t.Fatalf("%s %s %s: word %d past the register is %#x", a.Name(), kind, c.name, i, got[i])
				}
			}
		}
		if !isFloat[T]() {
			if got, want := a.reduceAdd(a, in.x), g.reduceAdd(a, in.x); got != want {
				t.Fatalf("%s %s reduceAdd: got %v, want %v", a.Name(), kind, got, want)
			}
		}
		if got, want := a.reduceMin(a, in.x), g.reduceMin(a, in.x); !sameBits(got, want) {
			t.Fatalf("%s %s reduceMin: got %v, want %v", a.Name(), kind, got, want)
		}
		if got, want := a.reduceMax(a, in.x), g.reduceMax(a, in.x); !sameBits(got, want) {
			t.Fatalf("%s %s reduceMax: got %v, want %v", a.Name(), kind, got, want)
		}
	}
}

func sameBits[T Lanes](p, q T) bool {
	var a, b Register
	view[T](&a, 1)[0], view[T](&b, 1)[0] = p, q
	return a == b
}

func TestBestMatchesGeneric(t *testing.T) {
	t.Run("int8", checkKernels[int8, Best[int8]])
	t.Run("int16", checkKernels[int16, Best[int16]])
	t.Run("int32", checkKernels[int32, Best[int32]])
	t.Run("int64", checkKernels[int64, Best[int64]])
	t.Run("uint8", checkKernels[uint8, Best[uint8]])
	t.Run("uint16", checkKernels[uint16, Best[uint16]])
	t.Run("uint32", checkKernels[uint32, Best[uint32]])
	t.Run("uint64", checkKernels[uint64, Best[uint64]])
	t.Run("float32", checkKernels[float32, Best[float32]])
	t.Run("float64", checkKernels[float64, Best[float64]])
}
