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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Generator writes one build-constrained file per target. Each file's init
// binds package-level function variables, named Op plus the capitalized
// element type, to the Base functions instantiated with that target's tag.
type Generator struct {
	InputFile    string
	OutputDir    string
	OutputPrefix string   // defaults to the input file name without .go
	Targets      []string // target names, see AvailableTargets
	Types        []string // restricts element types; empty means all
	Ops          []string // restricts ops by name; empty means all
	PackageOut   string   // defaults to the input package
	Logger       *slog.Logger
}

// Binding is one generated assignment.
type Binding struct {
	Var  string // "SumFloat32"
	Func string // "BaseSum"
	Elem string // "float32"
	Tag  string // "simd.FMA3[float32]"
}

type fileData struct {
	BuildTag   string
	Package    string
	SimdName   string
	SimdPath   string
	TargetName string
	Tag        string
	Bindings   []Binding
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by batchgen. DO NOT EDIT.

//go:build {{.BuildTag}}

package {{.Package}}

import {{if ne .SimdName "simd"}}{{.SimdName}} {{end}}"{{.SimdPath}}"

// Bindings for the {{.TargetName}} target ({{.SimdName}}.{{.Tag}}).
func init() {
{{- range .Bindings}}
	{{.Var}} = {{.Func}}[{{.Elem}}, {{.Tag}}]
{{- end}}
}
`))

var title = cases.Title(language.English)

// Run parses the input and writes every target file.
func (g *Generator) Run() error {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	result, err := Parse(g.InputFile)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", "file", g.InputFile, "package", result.PackageName, "funcs", len(result.Funcs))

	prefix := g.OutputPrefix
	if prefix == "" {
		prefix = strings.TrimSuffix(filepath.Base(g.InputFile), ".go")
	}

	for _, name := range g.Targets {
		target, err := GetTarget(name)
		if err != nil {
			return err
		}
		src, err := g.Render(result, target)
		if err != nil {
			return fmt.Errorf("target %s: %w", target.Name, err)
		}
		filename := filepath.Join(g.OutputDir, "z_"+prefix+target.Suffix()+".go")
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
		logger.Info("wrote target file", "target", target.Name, "file", filename)
	}
	return nil
}

// Bindings lists the assignments for target in declaration order, then in
// canonical type order.
func (g *Generator) Bindings(result *ParseResult, target Target) ([]Binding, error) {
	for _, t := range g.Types {
		if !slices.Contains(allTypes, t) {
			return nil, fmt.Errorf("unknown element type %q", t)
		}
	}

	var bindings []Binding
	for _, fn := range result.Funcs {
		if len(g.Ops) > 0 && !slices.Contains(g.Ops, fn.Op) {
			continue
		}
		for _, elem := range GetConcreteTypes(fn.Constraint) {
			if len(g.Types) > 0 && !slices.Contains(g.Types, elem) {
				continue
			}
			bindings = append(bindings, Binding{
				Var:  fn.Op + title.String(elem),
				Func: fn.Name,
				Elem: elem,
				Tag:  target.TagExpr(result.SimdName, elem),
			})
		}
	}
	if len(bindings) == 0 {
		return nil, fmt.Errorf("no bindings after filtering (types %v, ops %v)", g.Types, g.Ops)
	}
	return bindings, nil
}

// Render returns the formatted source of one target file.
func (g *Generator) Render(result *ParseResult, target Target) ([]byte, error) {
	bindings, err := g.Bindings(result, target)
	if err != nil {
		return nil, err
	}

	pkg := g.PackageOut
	if pkg == "" {
		pkg = result.PackageName
	}
	data := fileData{
		BuildTag:   target.BuildTag,
		Package:    pkg,
		SimdName:   result.SimdName,
		SimdPath:   simdPath,
		TargetName: target.Name,
		Tag:        target.Tag,
		Bindings:   bindings,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := imports.Process("", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format output: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
