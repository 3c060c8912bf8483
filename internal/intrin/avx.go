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

// ExtractHigh models VEXTRACTF128/VEXTRACTI128/VEXTRACTF64X4: it returns the
// upper half of a register.
func ExtractHigh[E Number](a []E) []E {
	return a[len(a)/2:]
}

// AVX2 per-lane variable shifts. The count lanes are unsigned and any count
// past the lane width clears the lane (logical) or fills it with the sign bit
// (arithmetic).

// Vpsllv models VPSLLVD/VPSLLVQ (and VPSLLVW on AVX-512BW).
func Vpsllv[E Unsigned](dst, a, count []E) {
	for i := range a {
		if uint64(count[i]) >= bits[E]() {
			dst[i] = 0
			continue
		}
		dst[i] = a[i] << count[i]
	}
}

// Vpsrlv models VPSRLVD/VPSRLVQ (and VPSRLVW on AVX-512BW).
func Vpsrlv[E Unsigned](dst, a, count []E) {
	for i := range a {
		if uint64(count[i]) >= bits[E]() {
			dst[i] = 0
			continue
		}
		dst[i] = a[i] >> count[i]
	}
}

// Vpsrav models VPSRAVD (and VPSRAVQ/VPSRAVW on AVX-512). C is the unsigned
// view of the count register.
func Vpsrav[E Signed, C Unsigned](dst, a []E, count []C) {
	for i := range a {
		n := min(uint64(count[i]), bits[E]()-1)
		dst[i] = a[i] >> n
	}
}

// FMA3.

// Vfmadd231ps computes a*b+c with a single rounding.
func Vfmadd231ps(dst, a, b, c []float32) {
	for i := range a {
		dst[i] = float32(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

// Vfmadd231pd computes a*b+c with a single rounding.
func Vfmadd231pd(dst, a, b, c []float64) {
	for i := range a {
		dst[i] = math.FMA(a[i], b[i], c[i])
	}
}

// AVX-512F.

// Vpabsq models VPABSQ.
func Vpabsq(dst, a []int64) {
	for i, v := range a {
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

// Vpminq models VPMINSQ/VPMINUQ.
func Vpminq[E int64 | uint64](dst, a, b []E) { pmin(dst, a, b) }

// Vpmaxq models VPMAXSQ/VPMAXUQ.
func Vpmaxq[E int64 | uint64](dst, a, b []E) { pmax(dst, a, b) }

// Vpsraq models VPSRAQ with a scalar count.
func Vpsraq(dst, a []int64, count uint64) {
	count = min(count, 63)
	for i := range a {
		dst[i] = a[i] >> count
	}
}
