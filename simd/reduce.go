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

// ReduceAdd returns the sum of the lanes.
//
// Integer sums wrap and are the same on every tag. Float sums depend on the
// order the tag adds lanes in: Generic adds left to right, the SSE kernels
// (inherited by every x86 tag) add the upper half of the register onto the
// lower half until one lane is left, and NEON adds adjacent pairs. With
// values whose partial sums round, results can differ between tags.
func ReduceAdd[T Lanes, A Arch[T]](x Batch[T, A]) T {
	var a A
	return a.reduceAdd(a, x.reg)
}

// ReduceMin returns the smallest lane. NaN lanes are skipped unless lane 0 is
// NaN.
func ReduceMin[T Lanes, A Arch[T]](x Batch[T, A]) T {
	var a A
	return a.reduceMin(a, x.reg)
}

// ReduceMax returns the largest lane, with the NaN rule of ReduceMin.
func ReduceMax[T Lanes, A Arch[T]](x Batch[T, A]) T {
	var a A
	return a.reduceMax(a, x.reg)
}

// Sum returns the sum of s: full batches are accumulated lane-wise, the
// accumulator is reduced once, and the trailing len(s) % Size() elements are
// added one by one. The tail is never padded into a partial batch.
func Sum[T Lanes, A Arch[T]](s []T) T {
	acc := Zero[T, A]()
	var rest []T
	ProcessWithTail[T, A](len(s),
		func(offset int) {
			acc = Add(acc, LoadUnaligned[T, A](s[offset:]))
		},
		func(offset, count int) {
			rest = s[offset : offset+count]
		},
	)
	sum := ReduceAdd(acc)
	for _, v := range rest {
		sum += v
	}
	return sum
}
