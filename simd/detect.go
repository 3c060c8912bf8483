package simd

import (
	"os"
	"strconv"
)

// features holds the CPU capabilities found at init. Only the fields of the
// running GOARCH are filled in.
var features struct {
	sse2, sse3, ssse3, sse41, sse42 bool
	avx, avx2, fma                  bool
	avx512f, avx512bw               bool
	asimd                           bool
}

// detected is the name of the most capable available tag.
var detected = "generic"

// NoSimdEnvVar disables native tags in Available and Detected when set to a
// true value.
const NoSimdEnvVar = "BATCH_NO_SIMD"

// NoSimdEnv checks if the BATCH_NO_SIMD environment variable is set.
// Any non-empty value that does not parse as a bool counts as set.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Detected returns the name of the most capable tag whose Available method
// reports true on this CPU, e.g. "avx2" or "generic".
//
// Batches never consult it: the tag of a batch is fixed when the program is
// compiled. It is meant for diagnostics and for choosing between separately
// compiled code paths.
func Detected() string {
	return detected
}

// firstAvailable walks a tag chain and returns the first available tag.
func firstAvailable(a Arch[uint8]) string {
	for ; a != nil; a = a.Base() {
		if a.Available() {
			return a.Name()
		}
	}
	return "generic"
}
