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

package imm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func valueBelow4[N Below4]() uint8   { return Of[N]() }
func valueBelow8[N Below8]() uint8   { return Of[N]() }
func valueBelow16[N Below16]() uint8 { return Of[N]() }
func valueBelow32[N Below32]() uint8 { return Of[N]() }
func valueBelow64[N Below64]() uint8 { return Of[N]() }

func TestTagValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"N0", Of[N0](), 0},
		{"N1", Of[N1](), 1},
		{"N7", Of[N7](), 7},
		{"N15", Of[N15](), 15},
		{"N31", Of[N31](), 31},
		{"N42", Of[N42](), 42},
		{"N63", Of[N63](), 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

// Each bound admits its largest member. Rejection of the next tag up is
// covered by the compile checks in package v256.
func TestBoundsAdmitTopMember(t *testing.T) {
	assert.Equal(t, uint8(3), valueBelow4[N3]())
	assert.Equal(t, uint8(7), valueBelow8[N7]())
	assert.Equal(t, uint8(15), valueBelow16[N15]())
	assert.Equal(t, uint8(31), valueBelow32[N31]())
	assert.Equal(t, uint8(63), valueBelow64[N63]())

	assert.Equal(t, uint8(0), valueBelow4[N0]())
	assert.Equal(t, uint8(2), valueBelow64[N2]())
}

// A narrower bound's type parameter satisfies every wider bound.
func widen[N Below4]() uint8 { return valueBelow64[N]() }

func TestNarrowBoundWidens(t *testing.T) {
	assert.Equal(t, uint8(3), widen[N3]())
}
