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
func (v Int64x4) Gt(rhs Int64x4) Int64x4 {
	return Int64x4{data: onesInt64x4.Merge(zeroInt64x4, v.data.Greater(rhs.data))}
}

func (v Int64x4) shiftLeft(n uint64) Int64x4 {
	return Int64x4{data: v.data.ShiftAllLeft(n)}
}

func (v Int64x4) shiftRightLogical(n uint64) Int64x4 {
	return Int64x4{data: v.data.AsUint64x4().ShiftAllRight(n).AsInt64x4()}
}

func (v Uint64x4) shiftLeft(n uint64) Uint64x4 {
	return Uint64x4{data: v.data.ShiftAllLeft(n)}
}

func (v Uint64x4) shiftRightLogical(n uint64) Uint64x4 {
	return Uint64x4{data: v.data.ShiftAllRight(n)}
}
