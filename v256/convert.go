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

//go:build amd64 && goexperiment.simd && amd64.v3

package v256

import (
	"simd/archsimd"
	"unsafe"
)

// RawVector is implemented by every vector type. It exposes the 256-bit
// payload of the vector.
type RawVector interface {
	raw() archsimd.Uint8x32
}

// RawConstructor is implemented by every vector type V. It rebuilds a V from
// a 256-bit payload.
type RawConstructor[V any] interface {
	fromRaw(archsimd.Uint8x32) V
}

// Transmute reinterprets the 256 bits of v as a To. No bit changes, so
// Transmute[From](Transmute[To](v)) == v for every pair of types.
//
//	bits := v256.Transmute[v256.Uint32x8](f) // IEEE-754 encodings of f
func Transmute[To RawConstructor[To], From RawVector](v From) To {
	var to To
	return to.fromRaw(v.raw())
}

// registerBytes is the width of one AVX2 register.
const registerBytes = 32

// Each lane layout fills exactly one register. A mismatch makes a constant
// index below negative or out of range, which does not compile.
var (
	_ = [1]struct{}{}[unsafe.Sizeof([8]float32{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([4]float64{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([32]int8{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([32]uint8{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([16]int16{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([16]uint16{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([8]int32{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([8]uint32{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([4]int64{})-registerBytes]
	_ = [1]struct{}{}[unsafe.Sizeof([4]uint64{})-registerBytes]
)

// ConvertToInt32x8 converts each lane to int32, rounding to nearest with
// ties to even. NaN and lanes outside the int32 range become math.MinInt32.
func (v Float32x8) ConvertToInt32x8() Int32x8 {
	return Int32x8{data: v.data.RoundToEven().ConvertToInt32()}
}

// ConvertToFloat32x8 converts each lane to float32. Values with magnitude
// up to 2^24 are exact; larger values round to nearest even.
func (v Int32x8) ConvertToFloat32x8() Float32x8 {
	return Float32x8{data: v.data.ConvertToFloat32()}
}
