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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// buildTag is the constraint carried by every file that touches archsimd.
const buildTag = "amd64 && goexperiment.simd && amd64.v3"

const (
	integerFile = "integer_gen.go"
	tagsFile    = "tags_gen.go"
)

// Generator emits the per-type integer surface of package v256 and the
// immediate tags of package imm.
type Generator struct {
	OutputDir  string // directory of package v256; imm is written to OutputDir/imm
	Package    string // package clause of the integer file
	ImmImport  string // import path of package imm
	Logger     *slog.Logger
	Types      []VecType
	Immediates int
}

// intData is the template view of one VecType.
type intData struct {
	Name        string
	Elem        string
	Lanes       int
	Bits        int
	Bound       string
	Pair        string
	PairElem    string
	RawExpr     string
	FromRawExpr string
}

var (
	intHeaderTmpl = template.Must(template.New("intHeader").Parse(intHeader))
	intBodyTmpl   = template.Must(template.New("intBody").Parse(intBody))
	tagBodyTmpl   = template.Must(template.New("tagBody").Parse(tagBody))
)

// Run renders both files and writes them to disk.
func (g *Generator) Run() error {
	if err := validate(g.Types); err != nil {
		return err
	}

	src, err := g.Integers()
	if err != nil {
		return fmt.Errorf("integer surface: %w", err)
	}
	if err := g.write(filepath.Join(g.OutputDir, integerFile), src); err != nil {
		return err
	}

	src, err = g.Tags()
	if err != nil {
		return fmt.Errorf("immediate tags: %w", err)
	}
	return g.write(filepath.Join(g.OutputDir, "imm", tagsFile), src)
}

// Integers renders the shared surface of every integer vector type.
func (g *Generator) Integers() ([]byte, error) {
	var buf bytes.Buffer
	err := intHeaderTmpl.Execute(&buf, struct {
		BuildTag  string
		Package   string
		ImmImport string
	}{buildTag, g.Package, g.ImmImport})
	if err != nil {
		return nil, err
	}

	views := lo.Map(g.Types, func(t VecType, _ int) intData { return newIntData(t) })
	for _, v := range views {
		g.Logger.Debug("expanding integer type", "type", v.Name, "lanes", v.Lanes, "bound", v.Bound)
		if err := intBodyTmpl.Execute(&buf, v); err != nil {
			return nil, fmt.Errorf("%s: %w", v.Name, err)
		}
	}
	return imports.Process(integerFile, buf.Bytes(), nil)
}

// Tags renders the immediate tag types N0..N(Immediates-1) and the
// nested type sets set4, set8, ... used by the Below constraints.
func (g *Generator) Tags() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by v256gen. DO NOT EDIT.\n\npackage imm\n")

	for _, n := range lo.Range(g.Immediates) {
		if err := tagBodyTmpl.Execute(&buf, struct{ Value int }{n}); err != nil {
			return nil, err
		}
	}

	prev := ""
	for size := 4; size <= g.Immediates; size *= 2 {
		start := 0
		var members []string
		if prev != "" {
			start = size / 2
			members = append(members, prev)
		}
		members = append(members, lo.Map(lo.RangeFrom(start, size-start), tagName)...)
		name := fmt.Sprintf("set%d", size)
		fmt.Fprintf(&buf, "\ntype %s interface {\n\t%s\n}\n", name, strings.Join(members, " | "))
		prev = name
	}
	return imports.Process(tagsFile, buf.Bytes(), nil)
}

func (g *Generator) write(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	g.Logger.Info("wrote", "file", path, "bytes", len(src))
	return nil
}

func tagName(n int, _ int) string {
	return fmt.Sprintf("N%d", n)
}

func newIntData(t VecType) intData {
	p := t.Pair()
	d := intData{
		Name:        t.Name,
		Elem:        t.Elem,
		Lanes:       t.Lanes(),
		Bits:        t.Bits,
		Bound:       t.Bound(),
		Pair:        p.Name,
		PairElem:    p.Elem,
		RawExpr:     "v.data.AsUint8x32()",
		FromRawExpr: "r.As" + t.Name + "()",
	}
	// archsimd has no identity As conversion.
	if t.Name == "Uint8x32" {
		d.RawExpr = "v.data"
		d.FromRawExpr = "r"
	}
	return d
}

const intHeader = `// Code generated by v256gen. DO NOT EDIT.

//go:build {{.BuildTag}}

package {{.Package}}

import (
	"fmt"
	"simd/archsimd"

	"{{.ImmImport}}"
)
`

const intBody = `
// {{.Name}} holds {{.Lanes}} {{.Elem}} lanes in one 256-bit register.
type {{.Name}} struct {
	data archsimd.{{.Name}}
}

var (
	zero{{.Name}} = archsimd.Broadcast{{.Name}}(0)
	ones{{.Name}} = archsimd.Broadcast{{.Name}}(^{{.Elem}}(0))
)

// Zero{{.Name}} returns a vector with every lane set to zero.
func Zero{{.Name}}() {{.Name}} {
	return {{.Name}}{data: zero{{.Name}}}
}

// Broadcast{{.Name}} returns a vector with every lane set to x.
func Broadcast{{.Name}}(x {{.Elem}}) {{.Name}} {
	return {{.Name}}{data: archsimd.Broadcast{{.Name}}(x)}
}

// Load{{.Name}} returns a vector whose lane i is a[i].
func Load{{.Name}}(a [{{.Lanes}}]{{.Elem}}) {{.Name}} {
	return {{.Name}}{data: archsimd.Load{{.Name}}Slice(a[:])}
}

// Load{{.Name}}Slice loads the first {{.Lanes}} elements of s.
// It panics if len(s) < {{.Lanes}}.
func Load{{.Name}}Slice(s []{{.Elem}}) {{.Name}} {
	return {{.Name}}{data: archsimd.Load{{.Name}}Slice(s[:{{.Lanes}}])}
}

// Array returns the lanes of v, lane 0 first.
func (v {{.Name}}) Array() [{{.Lanes}}]{{.Elem}} {
	var a [{{.Lanes}}]{{.Elem}}
	v.data.Store(&a)
	return a
}

// StoreSlice writes the lanes of v to the first {{.Lanes}} elements of s.
// It panics if len(s) < {{.Lanes}}.
func (v {{.Name}}) StoreSlice(s []{{.Elem}}) {
	v.data.StoreSlice(s[:{{.Lanes}}])
}

// String renders the lanes of v as an array.
func (v {{.Name}}) String() string {
	return fmt.Sprint(v.Array())
}

func (v {{.Name}}) raw() archsimd.Uint8x32 {
	return {{.RawExpr}}
}

func ({{.Name}}) fromRaw(r archsimd.Uint8x32) {{.Name}} {
	return {{.Name}}{data: {{.FromRawExpr}}}
}

// And returns v & rhs.
func (v {{.Name}}) And(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: v.data.And(rhs.data)}
}

// Or returns v | rhs.
func (v {{.Name}}) Or(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: v.data.Or(rhs.data)}
}

// Xor returns v ^ rhs.
func (v {{.Name}}) Xor(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: v.data.Xor(rhs.data)}
}

// AndNot returns ^v & rhs.
func (v {{.Name}}) AndNot(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: rhs.data.AndNot(v.data)}
}

// Mask returns the top bit of each of the 32 bytes of v, byte 0 in bit 0.
// Lanes wider than a byte contribute one bit per byte.
func (v {{.Name}}) Mask() uint32 {
	return byteSignBits(v.raw())
}

// Eq returns a mask vector whose lanes are all ones where v and rhs are
// bitwise equal.
func (v {{.Name}}) Eq(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: ones{{.Name}}.Merge(zero{{.Name}}, v.data.Equal(rhs.data))}
}

// Add returns the lane-wise sum modulo 2^{{.Bits}}.
func (v {{.Name}}) Add(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: v.data.Add(rhs.data)}
}

// Sub returns the lane-wise difference modulo 2^{{.Bits}}.
func (v {{.Name}}) Sub(rhs {{.Name}}) {{.Name}} {
	return {{.Name}}{data: v.data.Sub(rhs.data)}
}

// ConvertTo{{.Pair}} reinterprets every lane as {{.PairElem}}. No bit changes.
func (v {{.Name}}) ConvertTo{{.Pair}}() {{.Pair}} {
	return {{.Pair}}{data: v.data.As{{.Pair}}()}
}

// Insert{{.Name}} returns v with lane I replaced by x.
func Insert{{.Name}}[I imm.{{.Bound}}](v {{.Name}}, x {{.Elem}}) {{.Name}} {
	var i I
	a := v.Array()
	a[i.Value()] = x
	return Load{{.Name}}(a)
}
`

const tagBody = `
// N{{.Value}} is the immediate {{.Value}}.
type N{{.Value}} struct{}

// Value returns {{.Value}}.
func (N{{.Value}}) Value() uint8 { return {{.Value}} }
`
