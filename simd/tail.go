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

// ProcessWithTail calls fullFn for every complete batch of a size-element
// slice and tailFn once for the remaining elements, if any.
//
// Example:
//
//	simd.ProcessWithTail[float32, simd.SSE2[float32]](len(data),
//	    func(offset int) {
//	        v := simd.LoadUnaligned[float32, simd.SSE2[float32]](data[offset:])
//	        simd.Add(v, v).StoreUnaligned(out[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail[T Lanes, A Arch[T]](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := Size[T, A]()

	fullBatches := size / lanes
	for i := range fullBatches {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullBatches*lanes, remaining)
	}
}
