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
	"fmt"
	"strings"
)

// registerBits is the width of every vector the generator emits.
const registerBits = 256

// maxImmediate is the number of immediate tag types emitted into package imm.
// 64 covers the widest shift count (64-bit lanes).
const maxImmediate = 64

// VecType describes one integer lane layout of a 256-bit register.
type VecType struct {
	Name   string // "Int32x8"
	Elem   string // "int32"
	Bits   int    // lane width in bits
	Signed bool
}

// Lanes returns the number of lanes that fit in a 256-bit register.
func (t VecType) Lanes() int {
	return registerBits / t.Bits
}

// Pair returns the same-width type of opposite signedness.
func (t VecType) Pair() VecType {
	if t.Signed {
		return VecType{Name: "Ui" + t.Name[1:], Elem: "u" + t.Elem, Bits: t.Bits}
	}
	return VecType{Name: "I" + t.Name[2:], Elem: t.Elem[1:], Bits: t.Bits, Signed: true}
}

// Bound returns the imm constraint admitting every lane index of t.
func (t VecType) Bound() string {
	return fmt.Sprintf("Below%d", t.Lanes())
}

// IntTypes lists the integer vectors, signed before unsigned, narrowest first.
func IntTypes() []VecType {
	return []VecType{
		{Name: "Int8x32", Elem: "int8", Bits: 8, Signed: true},
		{Name: "Uint8x32", Elem: "uint8", Bits: 8},
		{Name: "Int16x16", Elem: "int16", Bits: 16, Signed: true},
		{Name: "Uint16x16", Elem: "uint16", Bits: 16},
		{Name: "Int32x8", Elem: "int32", Bits: 32, Signed: true},
		{Name: "Uint32x8", Elem: "uint32", Bits: 32},
		{Name: "Int64x4", Elem: "int64", Bits: 64, Signed: true},
		{Name: "Uint64x4", Elem: "uint64", Bits: 64},
	}
}

// validate checks that every lane layout fills the register exactly.
func validate(types []VecType) error {
	for _, t := range types {
		if t.Bits*t.Lanes() != registerBits {
			return fmt.Errorf("%s: %d lanes of %d bits is not %d bits", t.Name, t.Lanes(), t.Bits, registerBits)
		}
		if suffix := fmt.Sprintf("x%d", t.Lanes()); !strings.HasSuffix(t.Name, suffix) {
			return fmt.Errorf("%s: name does not end in %s", t.Name, suffix)
		}
	}
	return nil
}
