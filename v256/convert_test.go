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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byteSum folds the raw payload of any vector into one number so tests can
// compare payloads across types.
func byteSum[V RawVector](v V) (sum int) {
	for _, b := range Transmute[Uint8x32](v).Array() {
		sum += int(b)
	}
	return sum
}

func TestTransmuteInvolution(t *testing.T) {
	f := LoadFloat32x8([8]float32{1, -2, float32(math.Inf(1)), nan32, 0.1, negZero, 3, 4})
	back := Transmute[Float32x8](Transmute[Uint64x4](f))
	assert.Equal(t, Transmute[Uint32x8](f).Array(), Transmute[Uint32x8](back).Array())

	i16 := LoadInt16x16([16]int16{-1, 2, -3, 4, -5, 6, -7, 8, math.MinInt16, math.MaxInt16})
	assert.Equal(t, i16.Array(), Transmute[Int16x16](Transmute[Float64x4](i16)).Array())
	assert.Equal(t, i16.Array(), Transmute[Int16x16](i16).Array())

	u8 := BroadcastUint8x32(0x5a)
	assert.Equal(t, u8.Array(), Transmute[Uint8x32](u8).Array())
	assert.Equal(t, u8.Array(), Transmute[Uint8x32](Transmute[Int8x32](u8)).Array())
}

func TestTransmuteBits(t *testing.T) {
	bits := Transmute[Uint32x8](BroadcastFloat32x8(1)).Array()
	assert.Equal(t, uint32(0x3f800000), bits[0])

	one := Transmute[Float64x4](BroadcastUint64x4(0x3ff0000000000000)).Array()
	assert.Equal(t, [4]float64{1, 1, 1, 1}, one)

	bytes := Transmute[Uint8x32](LoadUint64x4([4]uint64{0x0807060504030201})).Array()
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}, bytes[:9])

	halves := Transmute[Uint16x16](BroadcastUint32x8(0xbeefcafe)).Array()
	assert.Equal(t, []uint16{0xcafe, 0xbeef, 0xcafe, 0xbeef}, halves[:4])
}

// Every vector type converts to every other and the payload survives.
func TestTransmuteTotal(t *testing.T) {
	v := LoadUint8x32([32]uint8{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	})
	const want = 32 * 33 / 2

	all := []RawVector{
		Transmute[Float32x8](v), Transmute[Float64x4](v),
		Transmute[Int8x32](v), Transmute[Uint8x32](v),
		Transmute[Int16x16](v), Transmute[Uint16x16](v),
		Transmute[Int32x8](v), Transmute[Uint32x8](v),
		Transmute[Int64x4](v), Transmute[Uint64x4](v),
	}
	for _, x := range all {
		assert.Equal(t, want, byteSum(x), "%T", x)
		assert.Equal(t, v.Array(), Transmute[Uint8x32](x).Array(), "%T", x)
	}
}

func TestSignednessConversion(t *testing.T) {
	i8 := LoadInt8x32([32]int8{-1, math.MinInt8, 0, 1, math.MaxInt8})
	u8 := i8.ConvertToUint8x32().Array()
	assert.Equal(t, []uint8{255, 128, 0, 1, 127}, u8[:5])
	assert.Equal(t, i8.Array(), i8.ConvertToUint8x32().ConvertToInt8x32().Array())

	u16 := LoadUint16x16([16]uint16{0xffff, 0x8000, 7}).ConvertToInt16x16().Array()
	assert.Equal(t, []int16{-1, math.MinInt16, 7}, u16[:3])

	i32 := LoadInt32x8([8]int32{math.MinInt32, -1, 5})
	assert.Equal(t, [8]uint32{1 << 31, math.MaxUint32, 5}, i32.ConvertToUint32x8().Array())
	assert.Equal(t, [8]int32{math.MinInt32, -1, 5}, i32.ConvertToUint32x8().ConvertToInt32x8().Array())

	u64 := LoadUint64x4([4]uint64{math.MaxUint64, 1 << 63, 9, 0}).ConvertToInt64x4().Array()
	assert.Equal(t, [4]int64{-1, math.MinInt64, 9, 0}, u64)
	assert.Equal(t,
		Transmute[Uint64x4](LoadInt64x4(u64)).Array(),
		LoadInt64x4(u64).ConvertToUint64x4().Array())
}

func TestFloatIntConversion(t *testing.T) {
	f := LoadFloat32x8([8]float32{0.5, 1.5, 2.5, -0.5, -1.5, 3.7, -3.7, 1e6})
	assert.Equal(t, [8]int32{0, 2, 2, 0, -2, 4, -4, 1000000}, f.ConvertToInt32x8().Array())

	bad := LoadFloat32x8([8]float32{nan32, 3e9, -3e9, float32(math.Inf(1))})
	got := bad.ConvertToInt32x8().Array()
	for i := range 4 {
		assert.Equal(t, int32(math.MinInt32), got[i], "lane %d", i)
	}

	i := LoadInt32x8([8]int32{0, 1, -1, 1 << 24, 1<<24 + 1, 1<<24 + 3, math.MaxInt32, math.MinInt32})
	want := [8]float32{0, 1, -1, 1 << 24, 1 << 24, 1<<24 + 4, 1 << 31, -(1 << 31)}
	require.Equal(t, want, i.ConvertToFloat32x8().Array())

	// Integers up to 2^24 survive the round trip exactly.
	exact := LoadInt32x8([8]int32{-(1 << 24), -12345, -1, 0, 1, 777, 1<<24 - 1, 1 << 24})
	assert.Equal(t, exact.Array(), exact.ConvertToFloat32x8().ConvertToInt32x8().Array())
}
