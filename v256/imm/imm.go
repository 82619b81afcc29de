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

// Package imm provides compile-time immediate operands for package v256.
//
// Go has no constant type parameters, so an immediate such as a lane index or
// a shift count is passed as a zero-sized tag type. N0 through N63 are the
// tags; Below4 through Below64 are constraints admitting the tags below the
// given bound. An out-of-range immediate does not satisfy the constraint and
// the call fails to compile:
//
//	v = v256.InsertInt32x8[imm.N7](v, 42) // ok: 7 < 8
//	v = v256.InsertInt32x8[imm.N8](v, 42) // compile error: N8 does not satisfy Below8
package imm

// Immediate is implemented by every tag type.
type Immediate interface {
	Value() uint8
}

// Below4 admits the immediates 0 through 3.
type Below4 interface {
	set4
	Immediate
}

// Below8 admits the immediates 0 through 7.
type Below8 interface {
	set8
	Immediate
}

// Below16 admits the immediates 0 through 15.
type Below16 interface {
	set16
	Immediate
}

// Below32 admits the immediates 0 through 31.
type Below32 interface {
	set32
	Immediate
}

// Below64 admits the immediates 0 through 63.
type Below64 interface {
	set64
	Immediate
}

// Of returns the value of the immediate N.
func Of[N Immediate]() uint8 {
	var n N
	return n.Value()
}
