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
	"fmt"
	"math"
	"simd/archsimd"
)

// Float32x8 holds 8 float32 lanes in one 256-bit register.
type Float32x8 struct {
	data archsimd.Float32x8
}

var (
	zeroFloat32x8 = archsimd.BroadcastFloat32x8(0)
	signFloat32x8 = archsimd.BroadcastInt32x8(math.MinInt32)
)

// ZeroFloat32x8 returns a vector of +0.0 lanes.
func ZeroFloat32x8() Float32x8 {
	return Float32x8{data: zeroFloat32x8}
}

// BroadcastFloat32x8 returns a vector with every lane set to x.
func BroadcastFloat32x8(x float32) Float32x8 {
	return Float32x8{data: archsimd.BroadcastFloat32x8(x)}
}

// LoadFloat32x8 returns a vector whose lane i is a[i].
func LoadFloat32x8(a [8]float32) Float32x8 {
	return Float32x8{data: archsimd.LoadFloat32x8Slice(a[:])}
}

// LoadFloat32x8Slice loads the first 8 elements of s.
// It panics if len(s) < 8.
func LoadFloat32x8Slice(s []float32) Float32x8 {
	return Float32x8{data: archsimd.LoadFloat32x8Slice(s[:8])}
}

// Array returns the lanes of v, lane 0 first.
func (v Float32x8) Array() [8]float32 {
	var a [8]float32
	v.data.Store(&a)
	return a
}

// StoreSlice writes the lanes of v to the first 8 elements of s.
// It panics if len(s) < 8.
func (v Float32x8) StoreSlice(s []float32) {
	v.data.StoreSlice(s[:8])
}

// String renders the lanes of v as an array.
func (v Float32x8) String() string {
	return fmt.Sprint(v.Array())
}

func (v Float32x8) raw() archsimd.Uint8x32 {
	return v.data.AsUint8x32()
}

func (Float32x8) fromRaw(r archsimd.Uint8x32) Float32x8 {
	return Float32x8{data: r.AsFloat32x8()}
}

func (v Float32x8) bits() archsimd.Int32x8 {
	return v.data.AsInt32x8()
}

func float32x8FromBits(b archsimd.Int32x8) Float32x8 {
	return Float32x8{data: b.AsFloat32x8()}
}

func float32x8FromMask(m archsimd.Mask32x8) Float32x8 {
	return float32x8FromBits(onesInt32x8.Merge(zeroInt32x8, m))
}

// Eq returns a mask vector that is true where v == rhs. NaN compares unequal
// to everything, itself included.
func (v Float32x8) Eq(rhs Float32x8) Float32x8 {
	return float32x8FromMask(v.data.Equal(rhs.data))
}

// Ne returns a mask vector that is true where v != rhs, including every lane
// where either operand is NaN.
func (v Float32x8) Ne(rhs Float32x8) Float32x8 {
	return float32x8FromBits(zeroInt32x8.Merge(onesInt32x8, v.data.Equal(rhs.data)))
}

// Gt returns a mask vector that is true where v > rhs.
func (v Float32x8) Gt(rhs Float32x8) Float32x8 {
	return float32x8FromMask(v.data.Greater(rhs.data))
}

// Lt returns a mask vector that is true where v < rhs.
func (v Float32x8) Lt(rhs Float32x8) Float32x8 {
	return float32x8FromMask(v.data.Less(rhs.data))
}

// Ge returns a mask vector that is true where v >= rhs.
func (v Float32x8) Ge(rhs Float32x8) Float32x8 {
	return float32x8FromMask(v.data.GreaterEqual(rhs.data))
}

// Le returns a mask vector that is true where v <= rhs.
func (v Float32x8) Le(rhs Float32x8) Float32x8 {
	return float32x8FromMask(v.data.LessEqual(rhs.data))
}

// Mask returns the sign bit of each lane, lane 0 in bit 0.
func (v Float32x8) Mask() uint32 {
	return uint32(zeroInt32x8.Greater(v.bits()).ToBits())
}

// And returns the bitwise v & rhs.
func (v Float32x8) And(rhs Float32x8) Float32x8 {
	return float32x8FromBits(v.bits().And(rhs.bits()))
}

// Or returns the bitwise v | rhs.
func (v Float32x8) Or(rhs Float32x8) Float32x8 {
	return float32x8FromBits(v.bits().Or(rhs.bits()))
}

// Xor returns the bitwise v ^ rhs.
func (v Float32x8) Xor(rhs Float32x8) Float32x8 {
	return float32x8FromBits(v.bits().Xor(rhs.bits()))
}

// AndNot returns the bitwise ^v & rhs.
func (v Float32x8) AndNot(rhs Float32x8) Float32x8 {
	return float32x8FromBits(rhs.bits().AndNot(v.bits()))
}

// Min returns the lane-wise minimum. If exactly one of a pair of lanes is
// NaN the other lane is returned.
func (v Float32x8) Min(rhs Float32x8) Float32x8 {
	m := v.data.Min(rhs.data)
	m = m.Merge(rhs.data, v.data.Equal(v.data))
	m = m.Merge(v.data, rhs.data.Equal(rhs.data))
	return Float32x8{data: m}
}

// Max returns the lane-wise maximum. If exactly one of a pair of lanes is
// NaN the other lane is returned.
func (v Float32x8) Max(rhs Float32x8) Float32x8 {
	m := v.data.Max(rhs.data)
	m = m.Merge(rhs.data, v.data.Equal(v.data))
	m = m.Merge(v.data, rhs.data.Equal(rhs.data))
	return Float32x8{data: m}
}

// Blend returns a vector whose lane i is rhs[i] if bit i of sel is set and
// v[i] otherwise.
func (v Float32x8) Blend(rhs Float32x8, sel uint8) Float32x8 {
	return Float32x8{data: rhs.data.Merge(v.data, blendMask32(sel))}
}

// Floor rounds each lane toward -Inf.
func (v Float32x8) Floor() Float32x8 {
	return Float32x8{data: v.data.Floor()}
}

// Ceil rounds each lane toward +Inf.
func (v Float32x8) Ceil() Float32x8 {
	return Float32x8{data: v.data.Ceil()}
}

// Trunc rounds each lane toward zero.
func (v Float32x8) Trunc() Float32x8 {
	return Float32x8{data: v.data.Trunc()}
}

// Round rounds each lane to the nearest integer, ties to even.
func (v Float32x8) Round() Float32x8 {
	return Float32x8{data: v.data.RoundToEven()}
}

// Sqrt returns the correctly rounded square root of each lane.
func (v Float32x8) Sqrt() Float32x8 {
	return Float32x8{data: v.data.Sqrt()}
}

// Rsqrt approximates 1/sqrt(x) for each lane with a relative error of at
// most 1.5*2^-12.
func (v Float32x8) Rsqrt() Float32x8 {
	return Float32x8{data: v.data.ReciprocalSqrt()}
}

// MulAdd returns v*b + c with a single rounding.
func (v Float32x8) MulAdd(b, c Float32x8) Float32x8 {
	return Float32x8{data: v.data.MulAdd(b.data, c.data)}
}

// MulSub returns v*b - c with a single rounding.
func (v Float32x8) MulSub(b, c Float32x8) Float32x8 {
	negC := c.bits().Xor(signFloat32x8).AsFloat32x8()
	return Float32x8{data: v.data.MulAdd(b.data, negC)}
}

// Add returns v + rhs.
func (v Float32x8) Add(rhs Float32x8) Float32x8 {
	return Float32x8{data: v.data.Add(rhs.data)}
}

// Sub returns v - rhs.
func (v Float32x8) Sub(rhs Float32x8) Float32x8 {
	return Float32x8{data: v.data.Sub(rhs.data)}
}

// Mul returns v * rhs.
func (v Float32x8) Mul(rhs Float32x8) Float32x8 {
	return Float32x8{data: v.data.Mul(rhs.data)}
}

// Div returns v / rhs.
func (v Float32x8) Div(rhs Float32x8) Float32x8 {
	return Float32x8{data: v.data.Div(rhs.data)}
}
