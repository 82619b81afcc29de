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

import "simd/archsimd"

// Lane bit tables for blend selectors: lane i is selected by bit i of the
// selector. 16-bit lanes repeat the 8-bit pattern in each 128-bit half.
var (
	laneBits16 = archsimd.LoadInt16x16Slice([]int16{
		1, 2, 4, 8, 16, 32, 64, 128,
		1, 2, 4, 8, 16, 32, 64, 128,
	})
	laneBits32 = archsimd.LoadInt32x8Slice([]int32{1, 2, 4, 8, 16, 32, 64, 128})
	laneBits64 = archsimd.LoadInt64x4Slice([]int64{1, 2, 4, 8})
)

// blendMask16 is true in lane i when bit i%8 of sel is set.
func blendMask16(sel uint8) archsimd.Mask16x16 {
	return archsimd.BroadcastInt16x16(int16(sel)).And(laneBits16).Equal(laneBits16)
}

// blendMask32 is true in lane i when bit i of sel is set.
func blendMask32(sel uint8) archsimd.Mask32x8 {
	return archsimd.BroadcastInt32x8(int32(sel)).And(laneBits32).Equal(laneBits32)
}

// blendMask64 is true in lane i when bit i of sel is set.
func blendMask64(sel uint8) archsimd.Mask64x4 {
	return archsimd.BroadcastInt64x4(int64(sel)).And(laneBits64).Equal(laneBits64)
}

// byteSignBits packs the top bit of each byte of r, byte 0 in bit 0.
func byteSignBits(r archsimd.Uint8x32) uint32 {
	return uint32(zeroInt8x32.Greater(r.AsInt8x32()).ToBits())
}
