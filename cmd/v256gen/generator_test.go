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

package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return &Generator{
		OutputDir:  t.TempDir(),
		Package:    "v256",
		ImmImport:  "github.com/ajroetker/go-vec256/v256/imm",
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Types:      IntTypes(),
		Immediates: maxImmediate,
	}
}

// declaredNames returns the sorted top-level function and method names of src.
// Methods are reported as Recv.Name.
func declaredNames(t *testing.T, src []byte) []string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	var names []string
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		name := fn.Name.Name
		if fn.Recv != nil {
			switch recv := fn.Recv.List[0].Type.(type) {
			case *ast.Ident:
				name = recv.Name + "." + name
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func TestVecTypeGeometry(t *testing.T) {
	tests := []struct {
		name  string
		lanes int
		pair  string
		bound string
	}{
		{"Int8x32", 32, "Uint8x32", "Below32"},
		{"Uint8x32", 32, "Int8x32", "Below32"},
		{"Int16x16", 16, "Uint16x16", "Below16"},
		{"Uint16x16", 16, "Int16x16", "Below16"},
		{"Int32x8", 8, "Uint32x8", "Below8"},
		{"Uint32x8", 8, "Int32x8", "Below8"},
		{"Int64x4", 4, "Uint64x4", "Below4"},
		{"Uint64x4", 4, "Int64x4", "Below4"},
	}

	types := IntTypes()
	require.Len(t, types, len(tests))
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vt := types[i]
			assert.Equal(t, tt.name, vt.Name)
			assert.Equal(t, tt.lanes, vt.Lanes())
			assert.Equal(t, tt.pair, vt.Pair().Name)
			assert.Equal(t, tt.bound, vt.Bound())
			assert.Equal(t, vt.Name, vt.Pair().Pair().Name)
			assert.Equal(t, vt.Elem, vt.Pair().Pair().Elem)
		})
	}
}

func TestValidateRejectsBadLayout(t *testing.T) {
	require.NoError(t, validate(IntTypes()))

	err := validate([]VecType{{Name: "Int24x10", Elem: "int32", Bits: 24, Signed: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Int24x10")

	err = validate([]VecType{{Name: "Int32x4", Elem: "int32", Bits: 32, Signed: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x8")
}

func TestIntegersDeclaresSurface(t *testing.T) {
	g := newTestGenerator(t)
	src, err := g.Integers()
	require.NoError(t, err)

	methods := []string{
		"Add", "And", "AndNot", "Array", "Eq", "Mask", "Or",
		"StoreSlice", "String", "Sub", "Xor", "fromRaw", "raw",
	}
	var want []string
	for _, vt := range IntTypes() {
		want = append(want,
			"Broadcast"+vt.Name,
			"Insert"+vt.Name,
			"Load"+vt.Name,
			"Load"+vt.Name+"Slice",
			"Zero"+vt.Name,
			vt.Name+".ConvertTo"+vt.Pair().Name,
		)
		for _, m := range methods {
			want = append(want, vt.Name+"."+m)
		}
	}
	sort.Strings(want)

	if diff := cmp.Diff(want, declaredNames(t, src)); diff != "" {
		t.Errorf("generated declarations mismatch (-want +got):\n%s", diff)
	}

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by v256gen. DO NOT EDIT."))
	assert.Contains(t, text, "//go:build "+buildTag)
	assert.Contains(t, text, "func InsertInt8x32[I imm.Below32](v Int8x32, x int8) Int8x32")
	assert.Contains(t, text, "func InsertUint64x4[I imm.Below4](v Uint64x4, x uint64) Uint64x4")
	assert.Contains(t, text, "return v.data\n")
	assert.Contains(t, text, "return Uint8x32{data: r}")
}

func TestTagsDeclaresImmediates(t *testing.T) {
	g := newTestGenerator(t)
	src, err := g.Tags()
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "tags.go", src, 0)
	require.NoError(t, err)

	var types []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			types = append(types, spec.(*ast.TypeSpec).Name.Name)
		}
	}
	assert.Len(t, types, maxImmediate+5)
	assert.Equal(t, "N0", types[0])
	assert.Equal(t, "N63", types[maxImmediate-1])
	assert.Equal(t, []string{"set4", "set8", "set16", "set32", "set64"}, types[maxImmediate:])

	text := string(src)
	assert.Contains(t, text, "func (N42) Value() uint8 { return 42 }")
	assert.Contains(t, text, "\tset8 | N8 | N9 | N10 | N11 | N12 | N13 | N14 | N15\n")
}

// The checked-in files must be exactly what the generator produces.
func TestCheckedInFilesAreCurrent(t *testing.T) {
	g := newTestGenerator(t)

	want, err := g.Integers()
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join("..", "..", "v256", integerFile))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "v256/%s is stale; run go generate ./v256", integerFile)

	want, err = g.Tags()
	require.NoError(t, err)
	got, err = os.ReadFile(filepath.Join("..", "..", "v256", "imm", tagsFile))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "v256/imm/%s is stale; run go generate ./v256", tagsFile)
}

func TestRunWritesFiles(t *testing.T) {
	g := newTestGenerator(t)
	require.NoError(t, g.Run())

	for _, path := range []string{
		filepath.Join(g.OutputDir, integerFile),
		filepath.Join(g.OutputDir, "imm", tagsFile),
	} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
}
