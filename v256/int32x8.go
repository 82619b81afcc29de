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

// Gt returns a mask vector that is true where v > rhs, comparing lanes as
// signed integers.
func (v Int32x8) Gt(rhs Int32x8) Int32x8 {
	return Int32x8{data: onesInt32x8.Merge(zeroInt32x8, v.data.Greater(rhs.data))}
}

// Min returns the lane-wise signed minimum.
func (v Int32x8) Min(rhs Int32x8) Int32x8 {
	return Int32x8{data: v.data.Min(rhs.data)}
}

// Max returns the lane-wise signed maximum.
func (v Int32x8) Max(rhs Int32x8) Int32x8 {
	return Int32x8{data: v.data.Max(rhs.data)}
}

// Abs returns the lane-wise absolute value. math.MinInt32 maps to itself.
func (v Int32x8) Abs() Int32x8 {
	return Int32x8{data: v.data.Abs()}
}

// Mul returns the low 32 bits of each lane-wise product.
func (v Int32x8) Mul(rhs Int32x8) Int32x8 {
	return Int32x8{data: v.data.Mul(rhs.data)}
}

// Blend returns a vector whose lane i is rhs[i] if bit i of sel is set
// and v[i] otherwise.
func (v Int32x8) Blend(rhs Int32x8, sel uint8) Int32x8 {
	return Int32x8{data: rhs.data.Merge(v.data, blendMask32(sel))}
}

func (v Int32x8) shiftLeft(n uint64) Int32x8 {
	return Int32x8{data: v.data.ShiftAllLeft(n)}
}

func (v Int32x8) shiftRightLogical(n uint64) Int32x8 {
	return Int32x8{data: v.data.AsUint32x8().ShiftAllRight(n).AsInt32x8()}
}

func (v Int32x8) shiftRightArith(n uint64) Int32x8 {
	return Int32x8{data: v.data.ShiftAllRight(n)}
}

// Min returns the lane-wise unsigned minimum.
func (v Uint32x8) Min(rhs Uint32x8) Uint32x8 {
	return Uint32x8{data: v.data.Min(rhs.data)}
}

// Max returns the lane-wise unsigned maximum.
func (v Uint32x8) Max(rhs Uint32x8) Uint32x8 {
	return Uint32x8{data: v.data.Max(rhs.data)}
}

// Mul returns the low 32 bits of each lane-wise product. The low half of a
// product does not depend on signedness.
func (v Uint32x8) Mul(rhs Uint32x8) Uint32x8 {
	return Uint32x8{data: v.data.AsInt32x8().Mul(rhs.data.AsInt32x8()).AsUint32x8()}
}

// Blend returns a vector whose lane i is rhs[i] if bit i of sel is set
// and v[i] otherwise.
func (v Uint32x8) Blend(rhs Uint32x8, sel uint8) Uint32x8 {
	return Uint32x8{data: rhs.data.AsInt32x8().Merge(v.data.AsInt32x8(), blendMask32(sel)).AsUint32x8()}
}

func (v Uint32x8) shiftLeft(n uint64) Uint32x8 {
	return Uint32x8{data: v.data.ShiftAllLeft(n)}
}

func (v Uint32x8) shiftRightLogical(n uint64) Uint32x8 {
	return Uint32x8{data: v.data.ShiftAllRight(n)}
}

func (v Uint32x8) shiftRightArith(n uint64) Uint32x8 {
	return Uint32x8{data: v.data.AsInt32x8().ShiftAllRight(n).AsUint32x8()}
}
