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

package intrin

import "math"

// Advanced SIMD (NEON). Unlike SSE, most instructions exist for every lane
// width and signedness, so the models below are generic over the lane type.

// Vaddq models VADD/ADD (vector).
func Vaddq[E Number](dst, a, b []E) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Vsubq models VSUB/SUB (vector).
func Vsubq[E Number](dst, a, b []E) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Vmulq models VMUL/MUL (vector). The integer forms exist for 8, 16 and 32
// bit lanes only.
func Vmulq[E int8 | int16 | int32 | uint8 | uint16 | uint32 | float32 | float64](dst, a, b []E) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Vdivq models FDIV (vector), A64 only.
func Vdivq[F Float](dst, a, b []F) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Vfmaq models FMLA/VFMA: a*b+c with a single rounding.
func Vfmaq[F Float](dst, a, b, c []F) {
	for i := range a {
		dst[i] = F(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

// Vqaddq models SQADD/UQADD.
func Vqaddq[E Integer](dst, a, b []E) {
	for i := range a {
		dst[i] = addSat(a[i], b[i])
	}
}

// Vqsubq models SQSUB/UQSUB.
func Vqsubq[E Integer](dst, a, b []E) {
	for i := range a {
		dst[i] = subSat(a[i], b[i])
	}
}

// Vabsq models ABS (vector): wraps on the most negative value.
func Vabsq[E Signed](dst, a []E) {
	for i, v := range a {
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

// Vabsqf models FABS (vector): clears the sign bit, NaN payloads included.
func Vabsqf[F Float](dst, a []F) {
	for i, v := range a {
		switch x := any(v).(type) {
		case float32:
			dst[i] = F(math.Float32frombits(math.Float32bits(x) &^ (1 << 31)))
		case float64:
			dst[i] = F(math.Float64frombits(math.Float64bits(x) &^ (1 << 63)))
		}
	}
}

// Vshlq models SSHL/USHL: each lane is shifted by the signed value in the low
// byte of the matching count lane. Positive counts shift left, negative
// counts shift right (arithmetic for signed lanes).
func Vshlq[E Integer, C Integer](dst, a []E, count []C) {
	for i := range a {
		n := int64(int8(count[i]))
		if n >= 0 {
			dst[i] = a[i] << uint64(n)
		} else {
			dst[i] = a[i] >> uint64(-n)
		}
	}
}

// Vminq models SMIN/UMIN (vector).
func Vminq[E int8 | int16 | int32 | uint8 | uint16 | uint32](dst, a, b []E) { pmin(dst, a, b) }

// Vmaxq models SMAX/UMAX (vector).
func Vmaxq[E int8 | int16 | int32 | uint8 | uint16 | uint32](dst, a, b []E) { pmax(dst, a, b) }

// Vceqq models CMEQ/FCMEQ. M must have the width of E.
func Vceqq[E Number, M Unsigned](dst []M, a, b []E) {
	for i := range a {
		dst[i] = boolMask[M](a[i] == b[i])
	}
}

// Vcgtq models CMGT/CMHI/FCMGT.
func Vcgtq[E Number, M Unsigned](dst []M, a, b []E) {
	for i := range a {
		dst[i] = boolMask[M](a[i] > b[i])
	}
}

// Vbslq models BSL: bits of a where mask is set, bits of b elsewhere.
func Vbslq(dst, mask, a, b []uint64) {
	for i := range a {
		dst[i] = mask[i]&a[i] | ^mask[i]&b[i]
	}
}

// Vandq models AND (vector).
func Vandq(dst, a, b []uint64) { Pand(dst, a, b) }

// Vorrq models ORR (vector).
func Vorrq(dst, a, b []uint64) { Por(dst, a, b) }

// Veorq models EOR (vector).
func Veorq(dst, a, b []uint64) { Pxor(dst, a, b) }

// Vbicq models BIC: a AND NOT b.
func Vbicq(dst, a, b []uint64) {
	for i := range a {
		dst[i] = a[i] &^ b[i]
	}
}

// Vpaddq models ADDP with both operands set to a: the sums of adjacent lane
// pairs of a land in the low half of dst. dst may alias a.
func Vpaddq[E Number](dst, a []E) {
	for i := 0; i+1 < len(a); i += 2 {
		dst[i/2] = a[i] + a[i+1]
	}
}
