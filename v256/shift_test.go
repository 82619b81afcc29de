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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-vec256/v256/imm"
)

func TestShift16(t *testing.T) {
	i := LoadInt16x16([16]int16{1, -1, -16, math.MinInt16, 0x1234})
	assert.Equal(t, [5]int16{8, -8, -128, 0, -0x6e60}, [5]int16(arr16(ShiftLeft16[imm.N3](i))))
	assert.Equal(t, [5]int16{0, 0x0fff, 0x0fff, 0x0800, 0x0123}, [5]int16(arr16(ShiftRightLogical16[imm.N4](i))))
	assert.Equal(t, [5]int16{0, -1, -1, -0x800, 0x0123}, [5]int16(arr16(ShiftRightArith16[imm.N4](i))))
	assert.Equal(t, i.Array(), ShiftLeft16[imm.N0](i).Array())

	u := LoadUint16x16([16]uint16{0x8001, 0xffff, 1})
	got := ShiftLeft16[imm.N3](u).Array()
	assert.Equal(t, []uint16{0x0008, 0xfff8, 8}, got[:3])
	got = ShiftRightLogical16[imm.N15](u).Array()
	assert.Equal(t, []uint16{1, 1, 0}, got[:3])
	got = ShiftRightArith16[imm.N4](u).Array()
	assert.Equal(t, []uint16{0xf800, 0xffff, 0}, got[:3])
}

func arr16(v Int16x16) []int16 {
	a := v.Array()
	return a[:5]
}

func TestShift32(t *testing.T) {
	i := LoadInt32x8([8]int32{1, -2, math.MinInt32, math.MaxInt32, 0, 3, -3, 0x10000})
	assert.Equal(t, [8]int32{math.MinInt32, 0, 0, math.MinInt32, 0, math.MinInt32, math.MinInt32, 0}, ShiftLeft32[imm.N31](i).Array())
	assert.Equal(t, [8]int32{0, math.MaxInt32, 0x40000000, 0x3fffffff, 0, 1, 0x7ffffffe, 0x8000}, ShiftRightLogical32[imm.N1](i).Array())
	assert.Equal(t, [8]int32{0, -1, -0x40000000, 0x3fffffff, 0, 1, -2, 0x8000}, ShiftRightArith32[imm.N1](i).Array())

	u := LoadUint32x8([8]uint32{1 << 31, 1, math.MaxUint32})
	assert.Equal(t, [8]uint32{math.MaxUint32, 0, math.MaxUint32}, ShiftRightArith32[imm.N31](u).Array())
	assert.Equal(t, [8]uint32{1, 0, 1}, ShiftRightLogical32[imm.N31](u).Array())
	assert.Equal(t, [8]uint32{0, 1 << 31, 1 << 31}, ShiftLeft32[imm.N31](u).Array())
}

func TestShift64(t *testing.T) {
	u := LoadUint64x4([4]uint64{1, math.MaxUint64, 1 << 63, 0xff})
	assert.Equal(t, [4]uint64{1 << 63, 1 << 63, 0, 1 << 63}, ShiftLeft64[imm.N63](u).Array())
	assert.Equal(t, [4]uint64{0, 0xff, 0x80, 0}, ShiftRightLogical64[imm.N56](u).Array())

	i := LoadInt64x4([4]int64{-1, 1, math.MinInt64, 40})
	assert.Equal(t, [4]int64{15, 0, 8, 0}, ShiftRightLogical64[imm.N60](i).Array())
	assert.Equal(t, [4]int64{-1024, 1024, 0, 40960}, ShiftLeft64[imm.N10](i).Array())
}

// Vector shifts agree with the scalar operators on random lanes.
func TestShiftMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		var a [8]int32
		for i := range a {
			a[i] = int32(rng.Uint32())
		}
		v := LoadInt32x8(a)
		l, r, s := ShiftLeft32[imm.N7](v).Array(), ShiftRightLogical32[imm.N7](v).Array(), ShiftRightArith32[imm.N7](v).Array()
		for i, x := range a {
			assert.Equal(t, x<<7, l[i])
			assert.Equal(t, int32(uint32(x)>>7), r[i])
			assert.Equal(t, x>>7, s[i])
		}
	}
}
