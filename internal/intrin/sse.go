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

// SSE2 integer arithmetic.

// Padd models PADDB/PADDW/PADDD/PADDQ (wrapping add).
func Padd[E Integer](dst, a, b []E) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Psub models PSUBB/PSUBW/PSUBD/PSUBQ (wrapping subtract).
func Psub[E Integer](dst, a, b []E) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Padds models PADDSB/PADDSW.
func Padds[E Signed](dst, a, b []E) {
	for i := range a {
		dst[i] = addSat(a[i], b[i])
	}
}

// Paddus models PADDUSB/PADDUSW.
func Paddus[E Unsigned](dst, a, b []E) {
	for i := range a {
		dst[i] = addSat(a[i], b[i])
	}
}

// Psubs models PSUBSB/PSUBSW.
func Psubs[E Signed](dst, a, b []E) {
	for i := range a {
		dst[i] = subSat(a[i], b[i])
	}
}

// Psubus models PSUBUSB/PSUBUSW.
func Psubus[E Unsigned](dst, a, b []E) {
	for i := range a {
		dst[i] = subSat(a[i], b[i])
	}
}

// Pmullw keeps the low 16 bits of each 16x16 product.
func Pmullw(dst, a, b []uint16) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Pmuludq multiplies the low unsigned 32 bits of each 64-bit lane into a
// full 64-bit product.
func Pmuludq(dst, a, b []uint64) {
	for i := range a {
		dst[i] = (a[i] & 0xFFFFFFFF) * (b[i] & 0xFFFFFFFF)
	}
}

// Bitwise.

// Pand models PAND/ANDPS/ANDPD.
func Pand(dst, a, b []uint64) {
	for i := range a {
		dst[i] = a[i] & b[i]
	}
}

// Por models POR/ORPS/ORPD.
func Por(dst, a, b []uint64) {
	for i := range a {
		dst[i] = a[i] | b[i]
	}
}

// Pxor models PXOR/XORPS/XORPD.
func Pxor(dst, a, b []uint64) {
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}

// Pandn models PANDN/ANDNPS/ANDNPD: the first operand is the one inverted.
func Pandn(dst, a, b []uint64) {
	for i := range a {
		dst[i] = ^a[i] & b[i]
	}
}

// Shifts by an immediate or a scalar count. Counts past the lane width clear
// the lane (logical) or fill it with the sign bit (arithmetic).

// Psll models PSLLW/PSLLD/PSLLQ.
func Psll[E Unsigned](dst, a []E, count uint64) {
	if count >= bits[E]() {
		clear(dst[:len(a)])
		return
	}
	for i := range a {
		dst[i] = a[i] << count
	}
}

// Psrl models PSRLW/PSRLD/PSRLQ.
func Psrl[E Unsigned](dst, a []E, count uint64) {
	if count >= bits[E]() {
		clear(dst[:len(a)])
		return
	}
	for i := range a {
		dst[i] = a[i] >> count
	}
}

// Psra models PSRAW/PSRAD. There is no 64-bit form before AVX-512
// (see Vpsraq).
func Psra[E int16 | int32](dst, a []E, count uint64) {
	count = min(count, bits[E]()-1)
	for i := range a {
		dst[i] = a[i] >> count
	}
}

// Comparisons produce all-ones or all-zeros lanes.

// Pcmpeq models PCMPEQB/PCMPEQW/PCMPEQD.
func Pcmpeq[E int8 | int16 | int32 | uint8 | uint16 | uint32](dst, a, b []E) {
	for i := range a {
		dst[i] = boolMask[E](a[i] == b[i])
	}
}

// Pcmpgt models PCMPGTB/PCMPGTW/PCMPGTD (signed).
func Pcmpgt[E int8 | int16 | int32](dst, a, b []E) {
	for i := range a {
		dst[i] = boolMask[E](a[i] > b[i])
	}
}

// Pminsw models PMINSW.
func Pminsw(dst, a, b []int16) { pmin(dst, a, b) }

// Pmaxsw models PMAXSW.
func Pmaxsw(dst, a, b []int16) { pmax(dst, a, b) }

// Pminub models PMINUB.
func Pminub(dst, a, b []uint8) { pmin(dst, a, b) }

// Pmaxub models PMAXUB.
func Pmaxub(dst, a, b []uint8) { pmax(dst, a, b) }

func pmin[E Integer](dst, a, b []E) {
	for i := range a {
		dst[i] = min(a[i], b[i])
	}
}

func pmax[E Integer](dst, a, b []E) {
	for i := range a {
		dst[i] = max(a[i], b[i])
	}
}

// Pshufd models PSHUFD: per 128-bit block, lane j takes lane (imm>>2j)&3.
func Pshufd(dst, a []uint32, imm uint8) {
	for blk := 0; blk+4 <= len(a); blk += 4 {
		var t [4]uint32
		for j := range 4 {
			t[j] = a[blk+int(imm>>(2*j))&3]
		}
		copy(dst[blk:blk+4], t[:])
	}
}

// SSE/SSE2 floating point.

// Addp models ADDPS/ADDPD.
func Addp[F Float](dst, a, b []F) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Subp models SUBPS/SUBPD.
func Subp[F Float](dst, a, b []F) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

// Mulp models MULPS/MULPD.
func Mulp[F Float](dst, a, b []F) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Divp models DIVPS/DIVPD.
func Divp[F Float](dst, a, b []F) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Minp models MINPS/MINPD: the second operand is returned when either is NaN
// or both are zero.
func Minp[F Float](dst, a, b []F) {
	for i := range a {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Maxp models MAXPS/MAXPD with the same operand rule as Minp.
func Maxp[F Float](dst, a, b []F) {
	for i := range a {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Cmpeqp models CMPEQPS/CMPEQPD (ordered, NaN compares false). M must have
// the width of F.
func Cmpeqp[F Float, M uint32 | uint64](dst []M, a, b []F) {
	for i := range a {
		dst[i] = boolMask[M](a[i] == b[i])
	}
}

// Cmpltp models CMPLTPS/CMPLTPD.
func Cmpltp[F Float, M uint32 | uint64](dst []M, a, b []F) {
	for i := range a {
		dst[i] = boolMask[M](a[i] < b[i])
	}
}

// Cmplep models CMPLEPS/CMPLEPD.
func Cmplep[F Float, M uint32 | uint64](dst []M, a, b []F) {
	for i := range a {
		dst[i] = boolMask[M](a[i] <= b[i])
	}
}

// Movhlps moves the upper half of b into the lower half of each block and
// keeps the upper half of a.
func Movhlps(dst, a, b []float32) {
	for blk := 0; blk+4 <= len(a); blk += 4 {
		t := [4]float32{b[blk+2], b[blk+3], a[blk+2], a[blk+3]}
		copy(dst[blk:blk+4], t[:])
	}
}

// Shufps models SHUFPS: the low half of each block is picked from a, the
// high half from b.
func Shufps(dst, a, b []float32, imm uint8) {
	for blk := 0; blk+4 <= len(a); blk += 4 {
		t := [4]float32{
			a[blk+int(imm)&3],
			a[blk+int(imm>>2)&3],
			b[blk+int(imm>>4)&3],
			b[blk+int(imm>>6)&3],
		}
		copy(dst[blk:blk+4], t[:])
	}
}

// Unpckhpd interleaves the high lanes of a and b in each block.
func Unpckhpd(dst, a, b []float64) {
	for blk := 0; blk+2 <= len(a); blk += 2 {
		t := [2]float64{a[blk+1], b[blk+1]}
		copy(dst[blk:blk+2], t[:])
	}
}

// SSSE3.

// Pabs models PABSB/PABSW/PABSD. The most negative value is returned
// unchanged.
func Pabs[E int8 | int16 | int32](dst, a []E) {
	for i, v := range a {
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

// SSE4.1.

// Pmulld keeps the low 32 bits of each 32x32 product.
func Pmulld(dst, a, b []uint32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Pmins models PMINSB/PMINSD.
func Pmins[E int8 | int32](dst, a, b []E) { pmin(dst, a, b) }

// Pmaxs models PMAXSB/PMAXSD.
func Pmaxs[E int8 | int32](dst, a, b []E) { pmax(dst, a, b) }

// Pminu models PMINUW/PMINUD.
func Pminu[E uint16 | uint32](dst, a, b []E) { pmin(dst, a, b) }

// Pmaxu models PMAXUW/PMAXUD.
func Pmaxu[E uint16 | uint32](dst, a, b []E) { pmax(dst, a, b) }

// Pcmpeqq models PCMPEQQ.
func Pcmpeqq(dst, a, b []uint64) {
	for i := range a {
		dst[i] = boolMask[uint64](a[i] == b[i])
	}
}

// Pblendvb picks b where the top bit of the mask byte is set, a otherwise.
func Pblendvb(dst, a, b, mask []uint8) {
	for i := range a {
		if mask[i]&0x80 != 0 {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// SSE4.2.

// Pcmpgtq models PCMPGTQ (signed).
func Pcmpgtq(dst, a, b []int64) {
	for i := range a {
		dst[i] = boolMask[int64](a[i] > b[i])
	}
}
