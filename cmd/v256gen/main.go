// Copyright 2025 go-highway Authors
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

// Command v256gen expands the integer vector surface of package v256 once per
// concrete lane layout and emits the compile-time immediate tags of package imm.
//
// Usage:
//
//	v256gen -o ./v256
//
// Or via go:generate from package v256:
//
//	//go:generate go run ../cmd/v256gen -o .
//
// The generator writes two files:
//  1. integer_gen.go: type, constructors, bitwise ops, Eq, Add, Sub,
//     signedness conversion and Insert for each of the eight integer vectors
//  2. imm/tags_gen.go: the tag types N0..N63 and the nested type sets behind
//     the Below4..Below64 constraints
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var command = &cobra.Command{
	Use:   "v256gen [-o output_directory]",
	Short: "Generate the per-type integer surface of package v256",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		output, _ := cmd.Flags().GetString("output")
		pkg, _ := cmd.Flags().GetString("package")
		immImport, _ := cmd.Flags().GetString("imm-import")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		gen := &Generator{
			OutputDir:  output,
			Package:    pkg,
			ImmImport:  immImport,
			Logger:     logger,
			Types:      IntTypes(),
			Immediates: maxImmediate,
		}
		return gen.Run()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	command.Flags().StringP("output", "o", ".", "directory of package v256")
	command.Flags().String("package", "v256", "package name of the generated integer file")
	command.Flags().String("imm-import", "github.com/ajroetker/go-vec256/v256/imm", "import path of package imm")
	command.Flags().BoolP("verbose", "v", false, "log every expanded type")
}

func main() {
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
