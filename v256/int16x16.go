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
func (v Int16x16) Gt(rhs Int16x16) Int16x16 {
	return Int16x16{data: onesInt16x16.Merge(zeroInt16x16, v.data.Greater(rhs.data))}
}

// Min returns the lane-wise signed minimum.
func (v Int16x16) Min(rhs Int16x16) Int16x16 {
	return Int16x16{data: v.data.Min(rhs.data)}
}

// Max returns the lane-wise signed maximum.
func (v Int16x16) Max(rhs Int16x16) Int16x16 {
	return Int16x16{data: v.data.Max(rhs.data)}
}

// Abs returns the lane-wise absolute value. math.MinInt16 maps to itself.
func (v Int16x16) Abs() Int16x16 {
	return Int16x16{data: v.data.Abs()}
}

// Blend returns a vector whose lane i is rhs[i] if bit i%8 of sel is set
// and v[i] otherwise.
func (v Int16x16) Blend(rhs Int16x16, sel uint8) Int16x16 {
	return Int16x16{data: rhs.data.Merge(v.data, blendMask16(sel))}
}

func (v Int16x16) shiftLeft(n uint64) Int16x16 {
	return Int16x16{data: v.data.ShiftAllLeft(n)}
}

func (v Int16x16) shiftRightLogical(n uint64) Int16x16 {
	return Int16x16{data: v.data.AsUint16x16().ShiftAllRight(n).AsInt16x16()}
}

func (v Int16x16) shiftRightArith(n uint64) Int16x16 {
	return Int16x16{data: v.data.ShiftAllRight(n)}
}

// Min returns the lane-wise unsigned minimum.
func (v Uint16x16) Min(rhs Uint16x16) Uint16x16 {
	return Uint16x16{data: v.data.Min(rhs.data)}
}

// Max returns the lane-wise unsigned maximum.
func (v Uint16x16) Max(rhs Uint16x16) Uint16x16 {
	return Uint16x16{data: v.data.Max(rhs.data)}
}

// Blend returns a vector whose lane i is rhs[i] if bit i%8 of sel is set
// and v[i] otherwise.
func (v Uint16x16) Blend(rhs Uint16x16, sel uint8) Uint16x16 {
	return Uint16x16{data: rhs.data.AsInt16x16().Merge(v.data.AsInt16x16(), blendMask16(sel)).AsUint16x16()}
}

func (v Uint16x16) shiftLeft(n uint64) Uint16x16 {
	return Uint16x16{data: v.data.ShiftAllLeft(n)}
}

func (v Uint16x16) shiftRightLogical(n uint64) Uint16x16 {
	return Uint16x16{data: v.data.ShiftAllRight(n)}
}

func (v Uint16x16) shiftRightArith(n uint64) Uint16x16 {
	return Uint16x16{data: v.data.AsInt16x16().ShiftAllRight(n).AsUint16x16()}
}
