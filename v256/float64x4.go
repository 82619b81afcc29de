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

	"github.com/ajroetker/go-vec256/v256/imm"
)

// Float64x4 holds 4 float64 lanes in one 256-bit register.
type Float64x4 struct {
	data archsimd.Float64x4
}

var (
	zeroFloat64x4 = archsimd.BroadcastFloat64x4(0)
	signFloat64x4 = archsimd.BroadcastInt64x4(math.MinInt64)
)

// ZeroFloat64x4 returns a vector of +0.0 lanes.
func ZeroFloat64x4() Float64x4 {
	return Float64x4{data: zeroFloat64x4}
}

// BroadcastFloat64x4 returns a vector with every lane set to x.
func BroadcastFloat64x4(x float64) Float64x4 {
	return Float64x4{data: archsimd.BroadcastFloat64x4(x)}
}

// LoadFloat64x4 returns a vector whose lane i is a[i].
func LoadFloat64x4(a [4]float64) Float64x4 {
	return Float64x4{data: archsimd.LoadFloat64x4Slice(a[:])}
}

// LoadFloat64x4Slice loads the first 4 elements of s.
// It panics if len(s) < 4.
func LoadFloat64x4Slice(s []float64) Float64x4 {
	return Float64x4{data: archsimd.LoadFloat64x4Slice(s[:4])}
}

// Array returns the lanes of v, lane 0 first.
func (v Float64x4) Array() [4]float64 {
	var a [4]float64
	v.data.Store(&a)
	return a
}

// StoreSlice writes the lanes of v to the first 4 elements of s.
// It panics if len(s) < 4.
func (v Float64x4) StoreSlice(s []float64) {
	v.data.StoreSlice(s[:4])
}

// String renders the lanes of v as an array.
func (v Float64x4) String() string {
	return fmt.Sprint(v.Array())
}

func (v Float64x4) raw() archsimd.Uint8x32 {
	return v.data.AsUint8x32()
}

func (Float64x4) fromRaw(r archsimd.Uint8x32) Float64x4 {
	return Float64x4{data: r.AsFloat64x4()}
}

func (v Float64x4) bits() archsimd.Int64x4 {
	return v.data.AsInt64x4()
}

func float64x4FromBits(b archsimd.Int64x4) Float64x4 {
	return Float64x4{data: b.AsFloat64x4()}
}

func float64x4FromMask(m archsimd.Mask64x4) Float64x4 {
	return float64x4FromBits(onesInt64x4.Merge(zeroInt64x4, m))
}

// Eq returns a mask vector that is true where v == rhs. NaN compares unequal
// to everything, itself included.
func (v Float64x4) Eq(rhs Float64x4) Float64x4 {
	return float64x4FromMask(v.data.Equal(rhs.data))
}

// Ne returns a mask vector that is true where v != rhs, including every lane
// where either operand is NaN.
func (v Float64x4) Ne(rhs Float64x4) Float64x4 {
	return float64x4FromBits(zeroInt64x4.Merge(onesInt64x4, v.data.Equal(rhs.data)))
}

// Gt returns a mask vector that is true where v > rhs.
func (v Float64x4) Gt(rhs Float64x4) Float64x4 {
	return float64x4FromMask(v.data.Greater(rhs.data))
}

// Lt returns a mask vector that is true where v < rhs.
func (v Float64x4) Lt(rhs Float64x4) Float64x4 {
	return float64x4FromMask(v.data.Less(rhs.data))
}

// Ge returns a mask vector that is true where v >= rhs.
func (v Float64x4) Ge(rhs Float64x4) Float64x4 {
	return float64x4FromMask(v.data.GreaterEqual(rhs.data))
}

// Le returns a mask vector that is true where v <= rhs.
func (v Float64x4) Le(rhs Float64x4) Float64x4 {
	return float64x4FromMask(v.data.LessEqual(rhs.data))
}

// Mask returns the sign bit of each lane, lane 0 in bit 0.
func (v Float64x4) Mask() uint32 {
	return uint32(zeroInt64x4.Greater(v.bits()).ToBits())
}

// And returns the bitwise v & rhs.
func (v Float64x4) And(rhs Float64x4) Float64x4 {
	return float64x4FromBits(v.bits().And(rhs.bits()))
}

// Or returns the bitwise v | rhs.
func (v Float64x4) Or(rhs Float64x4) Float64x4 {
	return float64x4FromBits(v.bits().Or(rhs.bits()))
}

// Xor returns the bitwise v ^ rhs.
func (v Float64x4) Xor(rhs Float64x4) Float64x4 {
	return float64x4FromBits(v.bits().Xor(rhs.bits()))
}

// AndNot returns the bitwise ^v & rhs.
func (v Float64x4) AndNot(rhs Float64x4) Float64x4 {
	return float64x4FromBits(rhs.bits().AndNot(v.bits()))
}

// Min returns the lane-wise minimum. If exactly one of a pair of lanes is
// NaN the other lane is returned.
func (v Float64x4) Min(rhs Float64x4) Float64x4 {
	m := v.data.Min(rhs.data)
	m = m.Merge(rhs.data, v.data.Equal(v.data))
	m = m.Merge(v.data, rhs.data.Equal(rhs.data))
	return Float64x4{data: m}
}

// Max returns the lane-wise maximum. If exactly one of a pair of lanes is
// NaN the other lane is returned.
func (v Float64x4) Max(rhs Float64x4) Float64x4 {
	m := v.data.Max(rhs.data)
	m = m.Merge(rhs.data, v.data.Equal(v.data))
	m = m.Merge(v.data, rhs.data.Equal(rhs.data))
	return Float64x4{data: m}
}

// BlendFloat64x4 returns a vector whose lane i is rhs[i] if bit i of the
// selector S is set and v[i] otherwise.
//
//	v256.BlendFloat64x4[imm.N5](a, b) // lanes 0 and 2 from b
func BlendFloat64x4[S imm.Below16](v, rhs Float64x4) Float64x4 {
	var s S
	return Float64x4{data: rhs.data.Merge(v.data, blendMask64(s.Value()))}
}

// Floor rounds each lane toward -Inf.
func (v Float64x4) Floor() Float64x4 {
	return Float64x4{data: v.data.Floor()}
}

// Ceil rounds each lane toward +Inf.
func (v Float64x4) Ceil() Float64x4 {
	return Float64x4{data: v.data.Ceil()}
}

// Trunc rounds each lane toward zero.
func (v Float64x4) Trunc() Float64x4 {
	return Float64x4{data: v.data.Trunc()}
}

// Round rounds each lane to the nearest integer, ties to even.
func (v Float64x4) Round() Float64x4 {
	return Float64x4{data: v.data.RoundToEven()}
}

// Sqrt returns the correctly rounded square root of each lane.
func (v Float64x4) Sqrt() Float64x4 {
	return Float64x4{data: v.data.Sqrt()}
}

// MulAdd returns v*b + c with a single rounding.
func (v Float64x4) MulAdd(b, c Float64x4) Float64x4 {
	return Float64x4{data: v.data.MulAdd(b.data, c.data)}
}

// MulSub returns v*b - c with a single rounding.
func (v Float64x4) MulSub(b, c Float64x4) Float64x4 {
	negC := c.bits().Xor(signFloat64x4).AsFloat64x4()
	return Float64x4{data: v.data.MulAdd(b.data, negC)}
}

// Add returns v + rhs.
func (v Float64x4) Add(rhs Float64x4) Float64x4 {
	return Float64x4{data: v.data.Add(rhs.data)}
}

// Sub returns v - rhs.
func (v Float64x4) Sub(rhs Float64x4) Float64x4 {
	return Float64x4{data: v.data.Sub(rhs.data)}
}

// Mul returns v * rhs.
func (v Float64x4) Mul(rhs Float64x4) Float64x4 {
	return Float64x4{data: v.data.Mul(rhs.data)}
}

// Div returns v / rhs.
func (v Float64x4) Div(rhs Float64x4) Float64x4 {
	return Float64x4{data: v.data.Div(rhs.data)}
}
