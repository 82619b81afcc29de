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

// Package v256 provides typed wrappers around one 256-bit AVX2 register
// viewed as a fixed number of lanes of one primitive numeric type.
//
// There are ten vector types:
//
//	Float32x8  Float64x4
//	Int8x32    Uint8x32
//	Int16x16   Uint16x16
//	Int32x8    Uint32x8
//	Int64x4    Uint64x4
//
// Every value is an ordinary Go value: operations take their operands by
// value and return a new vector, so there is no aliasing and every type is
// safe to share between goroutines. Compound assignment is plain
// reassignment:
//
//	acc = acc.Add(x)
//
// # Lanes
//
// Lane 0 is the lowest-addressed element of the array passed to LoadXxx and
// returned by Array. Mask packs one bit per lane (per byte for the integer
// types), lane 0 in bit 0.
//
// # Mask vectors
//
// Comparisons return a vector of the same type whose lanes are all ones
// (true) or all zeros (false). Mask vectors combine with And, Or, Xor and
// AndNot, and Mask extracts their sign bits as an integer.
//
// # Immediates
//
// Operands the hardware encodes in the instruction, such as shift counts and
// lane indices, are type arguments drawn from package imm:
//
//	v = v256.ShiftLeft16[imm.N3](v)
//	v = v256.InsertInt32x8[imm.N7](v, -1)
//
// An immediate outside the valid range fails to compile.
//
// Blend selectors come in two forms. Types with 8 or 16 lanes take an 8-bit
// selector as a uint8 argument: every uint8 is valid and a constant above
// 255 overflows at compile time. Float64x4 has only 4 lanes, so its 4-bit
// selector is a type argument bounded by imm.Below16:
//
//	a.Blend(b, 0b10100101)             // Float32x8, Int16x16, Int32x8, ...
//	v256.BlendFloat64x4[imm.N5](a, b)  // Float64x4
//
// # Conversions
//
// Value conversions are methods that exist only for defined pairs:
// Float32x8.ConvertToInt32x8, Int32x8.ConvertToFloat32x8 and the
// signed/unsigned pairs of each width. Transmute reinterprets the 256 bits
// of any vector as any other vector type.
//
// # Requirements
//
// The package requires GOARCH=amd64, GOAMD64=v3 (AVX2 and FMA) and
// GOEXPERIMENT=simd. Any other configuration fails to build with
// "undefined: requiresAMD64v3AndGOEXPERIMENTsimd". There is no runtime
// detection and no fallback.
package v256

//go:generate go run ../cmd/v256gen -o .
