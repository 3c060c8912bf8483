// Package simd provides fixed-width SIMD batches whose operations are bound
// at compile time to the kernels of an architecture tag.
//
// A batch is named by its element type and a tag:
//
//	var x simd.Batch[float32, simd.AVX2[float32]]
//
// The tag decides the register width and which kernel runs for each
// operation. Tags form a chain by embedding (AVX2 embeds AVX, which embeds
// SSE4_2, ... down to Generic), so an operation resolves to the kernel of the
// closest tag in the chain that provides one, and to the Generic kernel
// library when none does. The kernel is fixed when the program is compiled:
// there is no CPU check and no run-time choice of kernel. Kernels pass the
// tag on to the operations they are built from, so those resolve on the same
// chain.
//
// Best[T] names the most capable tag enabled for the current build (GOAMD64
// level on amd64, NEON64 on arm64, Generic elsewhere or with the purego build
// tag).
package simd

import "fmt"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every type that can be a batch lane.
type Lanes interface {
	Floats | Integers
}

// Kind is a set of lane types. Tags use it to describe, per operation, the
// element types they carry a kernel for.
type Kind uint16

const (
	Int8 Kind = 1 << iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Common lane type sets.
const (
	AnyInt8   = Int8 | Uint8
	AnyInt16  = Int16 | Uint16
	AnyInt32  = Int32 | Uint32
	AnyInt64  = Int64 | Uint64
	AllSigned = Int8 | Int16 | Int32 | Int64
	AllInts   = AnyInt8 | AnyInt16 | AnyInt32 | AnyInt64
	AllFloats = Float32 | Float64
	AllKinds  = AllInts | AllFloats
)

var kindNames = [...]string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64", "float32", "float64"}

// String lists the lane types in k.
func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var s string
	for i, name := range kindNames {
		if k&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	if rest := k &^ AllKinds; rest != 0 {
		s += fmt.Sprintf("|%#x", uint16(rest))
	}
	return s
}

// KindOf returns the Kind of T.
func KindOf[T Lanes]() Kind {
	var z T
	switch any(z).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	default:
		return Float64
	}
}

func isFloat[T Lanes]() bool  { return KindOf[T]()&AllFloats != 0 }
func isSigned[T Lanes]() bool { return KindOf[T]()&AllSigned != 0 }
func bitsOf[T Lanes]() uint64 { return uint64(sizeOf[T]()) * 8 }
