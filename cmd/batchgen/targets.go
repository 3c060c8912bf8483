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

package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTarget is returned by GetTarget for names it does not know.
var ErrUnknownTarget = errors.New("unknown target")

// Target is one build configuration a generated file is compiled for.
type Target struct {
	Name     string // "sse2", "avx2", "neon", "fallback"
	BuildTag string // constraint for the //go:build line
	Tag      string // simd tag type bound in this build, e.g. "FMA3"
}

// SSE2Target is the amd64 baseline (GOAMD64=v1).
func SSE2Target() Target {
	return Target{
		Name:     "sse2",
		BuildTag: "amd64 && !amd64.v2 && !purego",
		Tag:      "SSE2",
	}
}

// SSE4Target covers GOAMD64=v2.
func SSE4Target() Target {
	return Target{
		Name:     "sse4",
		BuildTag: "amd64.v2 && !amd64.v3 && !purego",
		Tag:      "SSE4_2",
	}
}

// AVX2Target covers GOAMD64=v3, which guarantees FMA alongside AVX2.
func AVX2Target() Target {
	return Target{
		Name:     "avx2",
		BuildTag: "amd64.v3 && !amd64.v4 && !purego",
		Tag:      "FMA3",
	}
}

// AVX512Target covers GOAMD64=v4.
func AVX512Target() Target {
	return Target{
		Name:     "avx512",
		BuildTag: "amd64.v4 && !purego",
		Tag:      "AVX512BW",
	}
}

// NEONTarget covers arm64, where Advanced SIMD is always present.
func NEONTarget() Target {
	return Target{
		Name:     "neon",
		BuildTag: "arm64 && !purego",
		Tag:      "NEON64",
	}
}

// FallbackTarget binds the generic kernels for purego builds and every other
// architecture.
func FallbackTarget() Target {
	return Target{
		Name:     "fallback",
		BuildTag: "purego || !(amd64 || arm64)",
		Tag:      "Generic",
	}
}

// AvailableTargets lists target names in generation order. Together their
// build constraints cover every build exactly once.
func AvailableTargets() []string {
	return []string{"sse2", "sse4", "avx2", "avx512", "neon", "fallback"}
}

// GetTarget returns the target configuration for a name.
func GetTarget(name string) (Target, error) {
	switch strings.ToLower(name) {
	case "sse2":
		return SSE2Target(), nil
	case "sse4":
		return SSE4Target(), nil
	case "avx2":
		return AVX2Target(), nil
	case "avx512":
		return AVX512Target(), nil
	case "neon":
		return NEONTarget(), nil
	case "fallback":
		return FallbackTarget(), nil
	default:
		return Target{}, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownTarget, name, strings.Join(AvailableTargets(), ", "))
	}
}

// Suffix returns the file name suffix for this target.
func (t Target) Suffix() string {
	return "_" + t.Name
}

// TagExpr returns the instantiated tag for elemType, e.g. "simd.FMA3[float32]".
func (t Target) TagExpr(pkg, elemType string) string {
	return fmt.Sprintf("%s.%s[%s]", pkg, t.Tag, elemType)
}
