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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// initX86 fills in the x86 features. The AVX levels come from the caller
// because archsimd, when built in, is the authority on them.
func initX86(avx, avx2, avx512 bool) {
	features.sse2 = cpu.X86.HasSSE2
	features.sse3 = cpu.X86.HasSSE3
	features.ssse3 = cpu.X86.HasSSSE3
	features.sse41 = cpu.X86.HasSSE41
	features.sse42 = cpu.X86.HasSSE42
	features.avx = avx
	features.avx2 = avx2
	features.fma = cpu.X86.HasFMA
	features.avx512f = avx512 && cpu.X86.HasAVX512F
	features.avx512bw = avx512 && cpu.X86.HasAVX512BW
	detected = firstAvailable(AVX512BW[uint8]{})
}
