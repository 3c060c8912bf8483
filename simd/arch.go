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

// Op names one batch operation. Tags report per Op and lane type whether they
// carry their own kernel (see Arch.Declares and Resolve).
type Op uint8

const (
	OpBroadcast Op = iota
	OpLoadAligned
	OpLoadUnaligned
	OpStoreAligned
	OpStoreUnaligned
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpAbs
	OpMin
	OpMax
	OpFMA
	OpSAdd
	OpSSub
	OpAnd
	OpOr
	OpXor
	OpAndNot
	OpNot
	OpShiftLeftBy
	OpShiftRightBy
	OpShiftLeft
	OpShiftRight
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpSelect
	OpReduceAdd
	OpReduceMin
	OpReduceMax
	numOps
)

var opNames = [numOps]string{
	OpBroadcast:      "Broadcast",
	OpLoadAligned:    "LoadAligned",
	OpLoadUnaligned:  "LoadUnaligned",
	OpStoreAligned:   "StoreAligned",
	OpStoreUnaligned: "StoreUnaligned",
	OpAdd:            "Add",
	OpSub:            "Sub",
	OpMul:            "Mul",
	OpDiv:            "Div",
	OpNeg:            "Neg",
	OpAbs:            "Abs",
	OpMin:            "Min",
	OpMax:            "Max",
	OpFMA:            "FMA",
	OpSAdd:           "SAdd",
	OpSSub:           "SSub",
	OpAnd:            "And",
	OpOr:             "Or",
	OpXor:            "Xor",
	OpAndNot:         "AndNot",
	OpNot:            "Not",
	OpShiftLeftBy:    "ShiftLeftBy",
	OpShiftRightBy:   "ShiftRightBy",
	OpShiftLeft:      "ShiftLeft",
	OpShiftRight:     "ShiftRight",
	OpEq:             "Eq",
	OpNe:             "Ne",
	OpLt:             "Lt",
	OpLe:             "Le",
	OpGt:             "Gt",
	OpGe:             "Ge",
	OpSelect:         "Select",
	OpReduceAdd:      "ReduceAdd",
	OpReduceMin:      "ReduceMin",
	OpReduceMax:      "ReduceMax",
}

// String returns the name of the operation.
func (o Op) String() string {
	if o >= numOps {
		return "Op(?)"
	}
	return opNames[o]
}

// Ops returns every operation in catalogue order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// opTable records, per operation, the lane types a tag has its own kernel for.
type opTable [numOps]Kind

func (t *opTable) has(op Op, k Kind) bool {
	return op < numOps && t[op]&k != 0
}

// Arch is implemented by the architecture tags of this package and by nothing
// else: the kernel methods are unexported.
//
// Every tag defines the metadata methods itself; only kernels are inherited
// from the embedded, less capable tag.
type Arch[T Lanes] interface {
	// Name is the instruction set name, e.g. "avx2".
	Name() string
	// Bytes is the register width.
	Bytes() int
	// Alignment is the byte alignment LoadAligned and StoreAligned expect.
	Alignment() int
	// Version orders tags of one family: major*10000 + minor*100 + patch.
	Version() uint32
	// Supported reports whether the build targets a CPU level that
	// guarantees the instruction set (GOAMD64, GOARM64).
	Supported() bool
	// Available reports whether the running CPU has the instruction set.
	// It is informational; batches never consult it.
	Available() bool
	// Declares reports whether the tag carries its own kernel for op on
	// lanes of T rather than inheriting one.
	Declares(op Op) bool
	// Base is the tag this one embeds, nil for Generic.
	Base() Arch[T]

	kernels[T]
}

// kernels is the overload set. Each kernel receives the most derived tag as
// a so that inherited kernels size their loops for the actual register and
// re-dispatch nested operations through it.
type kernels[T Lanes] interface {
	broadcast(a Arch[T], v T) Register
	loadAligned(a Arch[T], src []T) Register
	loadUnaligned(a Arch[T], src []T) Register
	storeAligned(a Arch[T], x Register, dst []T)
	storeUnaligned(a Arch[T], x Register, dst []T)

	add(a Arch[T], x, y Register) Register
	sub(a Arch[T], x, y Register) Register
	mul(a Arch[T], x, y Register) Register
	div(a Arch[T], x, y Register) Register
	neg(a Arch[T], x Register) Register
	abs(a Arch[T], x Register) Register
	min(a Arch[T], x, y Register) Register
	max(a Arch[T], x, y Register) Register
	fma(a Arch[T], x, y, z Register) Register
	sadd(a Arch[T], x, y Register) Register
	ssub(a Arch[T], x, y Register) Register

	and(a Arch[T], x, y Register) Register
	or(a Arch[T], x, y Register) Register
	xor(a Arch[T], x, y Register) Register
	andNot(a Arch[T], x, y Register) Register
	not(a Arch[T], x Register) Register

	shiftLeftBy(a Arch[T], x Register, n uint64) Register
	shiftRightBy(a Arch[T], x Register, n uint64) Register
	shiftLeft(a Arch[T], x, n Register) Register
	shiftRight(a Arch[T], x, n Register) Register

	eq(a Arch[T], x, y Register) Register
	ne(a Arch[T], x, y Register) Register
	lt(a Arch[T], x, y Register) Register
	le(a Arch[T], x, y Register) Register
	gt(a Arch[T], x, y Register) Register
	ge(a Arch[T], x, y Register) Register
	sel(a Arch[T], m, x, y Register) Register

	reduceAdd(a Arch[T], x Register) T
	reduceMin(a Arch[T], x Register) T
	reduceMax(a Arch[T], x Register) T
}

func version(major, minor, patch uint32) uint32 {
	return major*10000 + minor*100 + patch
}

// tagOf returns the zero value of A as an Arch[T].
func tagOf[T Lanes, A Arch[T]]() Arch[T] {
	var a A
	return a
}

// Resolve returns the name of the tag whose kernel runs op for batches of T
// tagged A: the first tag walking from A towards Generic that declares op.
func Resolve[T Lanes, A Arch[T]](op Op) string {
	for a := tagOf[T, A](); a != nil; a = a.Base() {
		if a.Declares(op) {
			return a.Name()
		}
	}
	return ""
}

// Chain lists the tag names from A down to Generic.
func Chain[T Lanes, A Arch[T]]() []string {
	var names []string
	for a := tagOf[T, A](); a != nil; a = a.Base() {
		names = append(names, a.Name())
	}
	return names
}

// Width returns the register width of A in bytes.
func Width[T Lanes, A Arch[T]]() int {
	return tagOf[T, A]().Bytes()
}
