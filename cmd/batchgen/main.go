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

// Command batchgen instantiates portable generic kernels for every build
// target.
//
// Usage:
//
//	batchgen -input vec_base.go -output . -output_prefix vec -targets all
//	batchgen -input vec_base.go -targets avx2,fallback -types float32,float64
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/batchgen -input $GOFILE -output . -targets all
//
// The input declares functions of the form
//
//	func BaseSum[T simd.Lanes, A simd.Arch[T]](v []T) T
//
// and the package declares a function variable per element type (SumFloat32,
// SumInt32, ...). For each target batchgen writes z_<prefix>_<target>.go whose
// build constraint selects it for exactly the builds where simd.Best is that
// target's tag, and whose init binds each variable to the matching
// instantiation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	inputFile    = flag.String("input", "", "Input Go source file (required)")
	outputDir    = flag.String("output", ".", "Output directory")
	outputPrefix = flag.String("output_prefix", "", "Output file prefix, the default (if empty) is the input file name without .go")
	targets      = flag.String("targets", "all", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
	elemTypes    = flag.String("types", "", "Comma-separated element types to instantiate (default: every type the constraint allows)")
	ops          = flag.String("ops", "", "Comma-separated op names to instantiate (default: all Base functions)")
	packageOut   = flag.String("pkg", "", "Output package name (default: same as input)")
	verbose      = flag.Bool("v", false, "Log debug output")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	targetList := parseTargets(*targets)
	if len(targetList) == 0 {
		logger.Error("no valid targets specified", "targets", *targets)
		os.Exit(1)
	}

	gen := &Generator{
		InputFile:    *inputFile,
		OutputDir:    *outputDir,
		OutputPrefix: *outputPrefix,
		Targets:      targetList,
		Types:        splitList(*elemTypes),
		Ops:          splitList(*ops),
		PackageOut:   *packageOut,
		Logger:       logger,
	}
	if err := gen.Run(); err != nil {
		logger.Error("generation failed", "input", *inputFile, "err", err)
		os.Exit(1)
	}
	logger.Debug("done", "targets", strings.Join(targetList, ","))
}

func parseTargets(s string) []string {
	result := splitList(s)
	if len(result) == 1 && result[0] == "all" {
		return AvailableTargets()
	}
	return result
}

func splitList(s string) []string {
	var result []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
