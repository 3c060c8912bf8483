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
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"slices"
	"strconv"
	"strings"
)

const simdPath = "github.com/ajroetker/go-batch/simd"

// ErrNoBaseFuncs is returned when an input file has nothing to instantiate.
var ErrNoBaseFuncs = errors.New("no Base* functions found")

// ParseResult describes the generic kernels found in one input file.
type ParseResult struct {
	PackageName string
	SimdName    string // local name of the simd import
	Funcs       []ParsedFunc
}

// ParsedFunc is a Base-prefixed function of the form
//
//	func BaseOp[T simd.Constraint, A simd.Arch[T]](...)
type ParsedFunc struct {
	Name       string // "BaseSum"
	Op         string // "Sum"
	Constraint string // "Floats", "Lanes", or a union such as "int32|int64"
}

// Parse reads filename and returns every instantiable Base function in
// declaration order.
func Parse(filename string) (*ParseResult, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	result := &ParseResult{PackageName: file.Name.Name}
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil || importPath != simdPath {
			continue
		}
		result.SimdName = path.Base(importPath)
		if imp.Name != nil {
			result.SimdName = imp.Name.Name
		}
	}
	if result.SimdName == "" {
		return nil, fmt.Errorf("%s: does not import %s", filename, simdPath)
	}

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "Base") {
			continue
		}
		op := strings.TrimPrefix(fn.Name.Name, "Base")
		if !ast.IsExported(op) {
			continue
		}
		constraint, ok := kernelConstraint(fn.Type.TypeParams, result.SimdName)
		if !ok {
			continue
		}
		result.Funcs = append(result.Funcs, ParsedFunc{
			Name:       fn.Name.Name,
			Op:         op,
			Constraint: constraint,
		})
	}
	if len(result.Funcs) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoBaseFuncs)
	}
	return result, nil
}

// kernelConstraint checks for exactly [T <constraint>, A simd.Arch[T]] and
// returns the element constraint.
func kernelConstraint(params *ast.FieldList, simdName string) (string, bool) {
	if params == nil {
		return "", false
	}
	type param struct {
		name string
		expr ast.Expr
	}
	var list []param
	for _, field := range params.List {
		for _, name := range field.Names {
			list = append(list, param{name.Name, field.Type})
		}
	}
	if len(list) != 2 {
		return "", false
	}

	idx, ok := list[1].expr.(*ast.IndexExpr)
	if !ok {
		return "", false
	}
	sel, ok := idx.X.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Arch" {
		return "", false
	}
	if pkg, ok := sel.X.(*ast.Ident); !ok || pkg.Name != simdName {
		return "", false
	}
	if arg, ok := idx.Index.(*ast.Ident); !ok || arg.Name != list[0].name {
		return "", false
	}

	var terms []string
	collectTerms(list[0].expr, simdName, &terms)
	if len(terms) == 0 {
		return "", false
	}
	return strings.Join(terms, "|"), true
}

func collectTerms(expr ast.Expr, simdName string, terms *[]string) {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		if e.Op == token.OR {
			collectTerms(e.X, simdName, terms)
			collectTerms(e.Y, simdName, terms)
		}
	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok && pkg.Name == simdName {
			*terms = append(*terms, e.Sel.Name)
		}
	case *ast.Ident:
		*terms = append(*terms, e.Name)
	case *ast.ParenExpr:
		collectTerms(e.X, simdName, terms)
	default:
		*terms = append(*terms, types.ExprString(expr))
	}
}

// allTypes is the canonical order of lane types in generated files.
var allTypes = []string{"float32", "float64", "int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"}

var constraintTypes = map[string][]string{
	"Lanes":        allTypes,
	"Floats":       {"float32", "float64"},
	"Integers":     {"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"},
	"SignedInts":   {"int8", "int16", "int32", "int64"},
	"UnsignedInts": {"uint8", "uint16", "uint32", "uint64"},
}

// GetConcreteTypes expands a constraint into lane types in canonical order.
// Terms it does not recognize are ignored.
func GetConcreteTypes(constraint string) []string {
	seen := make(map[string]bool)
	for term := range strings.SplitSeq(constraint, "|") {
		term = strings.TrimSpace(term)
		if expanded, ok := constraintTypes[term]; ok {
			for _, t := range expanded {
				seen[t] = true
			}
		} else if slices.Contains(allTypes, term) {
			seen[term] = true
		}
	}

	var result []string
	for _, t := range allTypes {
		if seen[t] {
			result = append(result, t)
		}
	}
	return result
}
