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
func (v Int8x32) Gt(rhs Int8x32) Int8x32 {
	return Int8x32{data: onesInt8x32.Merge(zeroInt8x32, v.data.Greater(rhs.data))}
}

// Min returns the lane-wise signed minimum.
func (v Int8x32) Min(rhs Int8x32) Int8x32 {
	return Int8x32{data: v.data.Min(rhs.data)}
}

// Max returns the lane-wise signed maximum.
func (v Int8x32) Max(rhs Int8x32) Int8x32 {
	return Int8x32{data: v.data.Max(rhs.data)}
}

// Abs returns the lane-wise absolute value. math.MinInt8 maps to itself.
func (v Int8x32) Abs() Int8x32 {
	return Int8x32{data: v.data.Abs()}
}

// Min returns the lane-wise unsigned minimum.
func (v Uint8x32) Min(rhs Uint8x32) Uint8x32 {
	return Uint8x32{data: v.data.Min(rhs.data)}
}

// Max returns the lane-wise unsigned maximum.
func (v Uint8x32) Max(rhs Uint8x32) Uint8x32 {
	return Uint8x32{data: v.data.Max(rhs.data)}
}
