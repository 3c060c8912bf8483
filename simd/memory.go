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

import "unsafe"

// Loads and stores move exactly Size() elements. They panic if the slice is
// shorter than that.
//
// The aligned forms expect &s[0] to be a multiple of A's Alignment(). Go
// performs the access correctly either way, so a misaligned slice is not
// detected; IsAligned checks the precondition and AllocAligned allocates
// slices that meet it.

// LoadAligned reads Size() elements from src.
func LoadAligned[T Lanes, A Arch[T]](src []T) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.loadAligned(a, src)}
}

// LoadUnaligned reads Size() elements from src.
func LoadUnaligned[T Lanes, A Arch[T]](src []T) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.loadUnaligned(a, src)}
}

// StoreAligned writes the lanes of b to dst.
func StoreAligned[T Lanes, A Arch[T]](b Batch[T, A], dst []T) {
	var a A
	a.storeAligned(a, b.reg, dst)
}

// StoreUnaligned writes the lanes of b to dst.
func StoreUnaligned[T Lanes, A Arch[T]](b Batch[T, A], dst []T) {
	var a A
	a.storeUnaligned(a, b.reg, dst)
}

// StoreAligned writes the lanes to dst.
func (b Batch[T, A]) StoreAligned(dst []T) { StoreAligned(b, dst) }

// StoreUnaligned writes the lanes to dst.
func (b Batch[T, A]) StoreUnaligned(dst []T) { StoreUnaligned(b, dst) }

// IsAligned reports whether s starts on A's alignment boundary. An empty
// slice is aligned.
func IsAligned[T Lanes, A Arch[T]](s []T) bool {
	if len(s) == 0 {
		return true
	}
	align := uintptr(tagOf[T, A]().Alignment())
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%align == 0
}

// AllocAligned returns a slice of n zeroed elements whose first element is on
// A's alignment boundary.
func AllocAligned[T Lanes, A Arch[T]](n int) []T {
	align := tagOf[T, A]().Alignment()
	size := sizeOf[T]()
	buf := make([]T, n+align/size)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	skip := 0
	if rem := int(addr % uintptr(align)); rem != 0 {
		skip = (align - rem) / size
	}
	return buf[skip : skip+n : skip+n]
}
