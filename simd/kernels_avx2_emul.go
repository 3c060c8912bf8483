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

//go:build amd64 && !(goexperiment.simd && amd64.v3)

package simd

// Without GOEXPERIMENT=simd, or below GOAMD64=v3, AVX2 arithmetic is the
// inherited SSE2 kernel applied to each 128-bit block.

const avx2Arith Kind = 0

const nativeAVX2 = false
