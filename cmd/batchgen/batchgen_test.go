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
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kernelSource = `package kern

import (
	"github.com/ajroetker/go-batch/simd"
)

func BaseDouble[T simd.Lanes, A simd.Arch[T]](v []T) {}

func BaseHalf[T simd.Floats, A simd.Arch[T]](v []T) {}

func BaseMixed[T int32 | simd.UnsignedInts, A simd.Arch[T]](v T) T { return v }

func BaseNoArch[T simd.Lanes](v T) T { return v }

func BaseTwo[T, U simd.Lanes](v T, u U) {}

func Baseline[T simd.Lanes, A simd.Arch[T]]() {}

func helper[T simd.Lanes, A simd.Arch[T]]() {}
`

func writeSource(t *testing.T, src string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "kern_base.go")
	require.NoError(t, os.WriteFile(filename, []byte(src), 0644))
	return filename
}

func TestGetTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantTag string
		wantErr bool
	}{
		{"SSE2", "sse2", "SSE2", false},
		{"SSE4", "sse4", "SSE4_2", false},
		{"AVX2", "AVX2", "FMA3", false},
		{"AVX512", "avx512", "AVX512BW", false},
		{"NEON", "neon", "NEON64", false},
		{"Fallback", "fallback", "Generic", false},
		{"Unknown", "unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTarget(tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTarget(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTarget)
				return
			}
			assert.Equal(t, tt.wantTag, got.Tag)
		})
	}
}

func TestAvailableTargetsResolve(t *testing.T) {
	for _, name := range AvailableTargets() {
		target, err := GetTarget(name)
		require.NoError(t, err)
		assert.Equal(t, name, target.Name)
		assert.Equal(t, "_"+name, target.Suffix())
		assert.NotEmpty(t, target.BuildTag)
	}
}

func TestTargetTagExpr(t *testing.T) {
	tests := []struct {
		target Target
		pkg    string
		elem   string
		want   string
	}{
		{SSE2Target(), "simd", "uint8", "simd.SSE2[uint8]"},
		{AVX2Target(), "simd", "float32", "simd.FMA3[float32]"},
		{AVX512Target(), "batch", "int64", "batch.AVX512BW[int64]"},
		{FallbackTarget(), "simd", "float64", "simd.Generic[float64]"},
	}

	for _, tt := range tests {
		if got := tt.target.TagExpr(tt.pkg, tt.elem); got != tt.want {
			t.Errorf("%s.TagExpr(%q, %q) = %q, want %q", tt.target.Name, tt.pkg, tt.elem, got, tt.want)
		}
	}
}

func TestGetConcreteTypes(t *testing.T) {
	tests := []struct {
		constraint string
		want       []string
	}{
		{"Floats", []string{"float32", "float64"}},
		{"SignedInts", []string{"int8", "int16", "int32", "int64"}},
		{"UnsignedInts|int32", []string{"int32", "uint8", "uint16", "uint32", "uint64"}},
		{"float64|float32|float64", []string{"float32", "float64"}},
		{"Lanes", allTypes},
		{"Integers", allTypes[2:]},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, GetConcreteTypes(tt.constraint))
		})
	}
}

func TestParseTargets(t *testing.T) {
	assert.Equal(t, AvailableTargets(), parseTargets("all"))
	assert.Equal(t, []string{"avx2", "fallback"}, parseTargets(" avx2, ,fallback"))
	assert.Empty(t, parseTargets(""))
}

func TestParse(t *testing.T) {
	result, err := Parse(writeSource(t, kernelSource))
	require.NoError(t, err)

	assert.Equal(t, "kern", result.PackageName)
	assert.Equal(t, "simd", result.SimdName)
	assert.Equal(t, []ParsedFunc{
		{Name: "BaseDouble", Op: "Double", Constraint: "Lanes"},
		{Name: "BaseHalf", Op: "Half", Constraint: "Floats"},
		{Name: "BaseMixed", Op: "Mixed", Constraint: "int32|UnsignedInts"},
	}, result.Funcs)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(writeSource(t, "package kern\n\nfunc BaseX() {}\n"))
	assert.ErrorContains(t, err, "does not import")

	src := strings.Replace(kernelSource, "func BaseDouble", "func baseDouble", 1)
	src = strings.Replace(src, "func BaseHalf", "func baseHalf", 1)
	src = strings.Replace(src, "func BaseMixed", "func baseMixed", 1)
	_, err = Parse(writeSource(t, src))
	assert.ErrorIs(t, err, ErrNoBaseFuncs)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.go"))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	result, err := Parse(writeSource(t, kernelSource))
	require.NoError(t, err)

	g := &Generator{Types: []string{"float32", "int32"}}
	got, err := g.Render(result, FallbackTarget())
	require.NoError(t, err)

	want := `// Code generated by batchgen. DO NOT EDIT.

//go:build purego || !(amd64 || arm64)

package kern

import "github.com/ajroetker/go-batch/simd"

// Bindings for the fallback target (simd.Generic).
func init() {
	DoubleFloat32 = BaseDouble[float32, simd.Generic[float32]]
	DoubleInt32 = BaseDouble[int32, simd.Generic[int32]]
	HalfFloat32 = BaseHalf[float32, simd.Generic[float32]]
	MixedInt32 = BaseMixed[int32, simd.Generic[int32]]
}
`
	assert.Equal(t, want, string(got))

	formatted, err := format.Source(got)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(got))
}

func TestRenderAliasAndFilters(t *testing.T) {
	src := strings.Replace(kernelSource, `"github.com/ajroetker/go-batch/simd"`, `batch "github.com/ajroetker/go-batch/simd"`, 1)
	src = strings.ReplaceAll(src, "simd.", "batch.")
	result, err := Parse(writeSource(t, src))
	require.NoError(t, err)
	assert.Equal(t, "batch", result.SimdName)

	g := &Generator{Ops: []string{"Mixed"}, Types: []string{"uint8"}, PackageOut: "other"}
	got, err := g.Render(result, AVX2Target())
	require.NoError(t, err)
	out := string(got)
	assert.Contains(t, out, "//go:build amd64.v3 && !amd64.v4 && !purego\n")
	assert.Contains(t, out, "package other\n")
	assert.Contains(t, out, `import batch "github.com/ajroetker/go-batch/simd"`)
	assert.Contains(t, out, "\tMixedUint8 = BaseMixed[uint8, batch.FMA3[uint8]]\n")
	assert.NotContains(t, out, "Double")

	g = &Generator{Ops: []string{"Half"}, Types: []string{"int32"}}
	_, err = g.Render(result, AVX2Target())
	assert.ErrorContains(t, err, "no bindings")

	g = &Generator{Types: []string{"complex64"}}
	_, err = g.Render(result, AVX2Target())
	assert.ErrorContains(t, err, "unknown element type")
}

func TestRun(t *testing.T) {
	input := writeSource(t, kernelSource)
	outDir := t.TempDir()

	g := &Generator{
		InputFile: input,
		OutputDir: outDir,
		Targets:   AvailableTargets(),
		Types:     []string{"float64"},
	}
	require.NoError(t, g.Run())

	for _, name := range AvailableTargets() {
		target, err := GetTarget(name)
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(outDir, "z_kern_base_"+name+".go"))
		require.NoError(t, err, "target %s", name)
		assert.Contains(t, string(data), "//go:build "+target.BuildTag+"\n")
		assert.Contains(t, string(data), "DoubleFloat64 = BaseDouble[float64, simd."+target.Tag+"[float64]]")
	}

	g.Targets = []string{"sse2", "mmx"}
	g.OutputPrefix = "again"
	assert.ErrorIs(t, g.Run(), ErrUnknownTarget)
}

// The checked-in vec bindings must be what go generate would write.
func TestVecBindingsUpToDate(t *testing.T) {
	const dir = "../../simd/contrib/vec"
	result, err := Parse(filepath.Join(dir, "vec_base.go"))
	require.NoError(t, err)

	g := &Generator{Types: []string{"float32", "float64", "int32", "int64", "uint8"}}
	for _, name := range AvailableTargets() {
		target, err := GetTarget(name)
		require.NoError(t, err)
		want, err := g.Render(result, target)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, "z_vec_"+name+".go"))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "z_vec_%s.go is stale, run go generate", name)
	}
}
