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

import "github.com/ajroetker/go-vec256/v256/imm"

// Shiftable16 is satisfied by Int16x16 and Uint16x16.
type Shiftable16[V any] interface {
	Int16x16 | Uint16x16
	shiftLeft(n uint64) V
	shiftRightLogical(n uint64) V
	shiftRightArith(n uint64) V
}

// Shiftable32 is satisfied by Int32x8 and Uint32x8.
type Shiftable32[V any] interface {
	Int32x8 | Uint32x8
	shiftLeft(n uint64) V
	shiftRightLogical(n uint64) V
	shiftRightArith(n uint64) V
}

// Shiftable64 is satisfied by Int64x4 and Uint64x4. AVX2 has no 64-bit
// arithmetic right shift.
type Shiftable64[V any] interface {
	Int64x4 | Uint64x4
	shiftLeft(n uint64) V
	shiftRightLogical(n uint64) V
}

// ShiftLeft16 shifts every 16-bit lane left by N, filling with zeros.
//
//	v = v256.ShiftLeft16[imm.N4](v)
func ShiftLeft16[N imm.Below16, V Shiftable16[V]](v V) V {
	return v.shiftLeft(uint64(imm.Of[N]()))
}

// ShiftRightLogical16 shifts every 16-bit lane right by N, filling with zeros.
func ShiftRightLogical16[N imm.Below16, V Shiftable16[V]](v V) V {
	return v.shiftRightLogical(uint64(imm.Of[N]()))
}

// ShiftRightArith16 shifts every 16-bit lane right by N, replicating the
// sign bit. Unsigned lanes are treated as their signed bit pattern.
func ShiftRightArith16[N imm.Below16, V Shiftable16[V]](v V) V {
	return v.shiftRightArith(uint64(imm.Of[N]()))
}

// ShiftLeft32 shifts every 32-bit lane left by N, filling with zeros.
func ShiftLeft32[N imm.Below32, V Shiftable32[V]](v V) V {
	return v.shiftLeft(uint64(imm.Of[N]()))
}

// ShiftRightLogical32 shifts every 32-bit lane right by N, filling with zeros.
func ShiftRightLogical32[N imm.Below32, V Shiftable32[V]](v V) V {
	return v.shiftRightLogical(uint64(imm.Of[N]()))
}

// ShiftRightArith32 shifts every 32-bit lane right by N, replicating the
// sign bit. Unsigned lanes are treated as their signed bit pattern.
func ShiftRightArith32[N imm.Below32, V Shiftable32[V]](v V) V {
	return v.shiftRightArith(uint64(imm.Of[N]()))
}

// ShiftLeft64 shifts every 64-bit lane left by N, filling with zeros.
func ShiftLeft64[N imm.Below64, V Shiftable64[V]](v V) V {
	return v.shiftLeft(uint64(imm.Of[N]()))
}

// ShiftRightLogical64 shifts every 64-bit lane right by N, filling with zeros.
func ShiftRightLogical64[N imm.Below64, V Shiftable64[V]](v V) V {
	return v.shiftRightLogical(uint64(imm.Of[N]()))
}
