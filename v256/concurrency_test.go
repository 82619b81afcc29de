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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Vectors are values: sharing one between goroutines needs no locking and
// every goroutine observes the same result.
func TestSharedValuesAcrossGoroutines(t *testing.T) {
	a := LoadFloat32x8([8]float32{1, 2, 3, 4, 5, 6, 7, 8})
	b := BroadcastFloat32x8(0.5)
	n := LoadInt32x8([8]int32{1, -2, 3, -4, 5, -6, 7, -8})

	wantF := a.MulAdd(b, a).Sqrt().Array()
	wantI := n.Mul(n).Add(n).Array()
	wantAcc := a.Mul(BroadcastFloat32x8(1000)).Array()

	const workers = 16
	gotF := make([][8]float32, workers)
	gotI := make([][8]int32, workers)
	gotAcc := make([][8]float32, workers)

	g, ctx := errgroup.WithContext(context.Background())
	for w := range workers {
		g.Go(func() error {
			acc := ZeroFloat32x8()
			for range 1000 {
				if err := ctx.Err(); err != nil {
					return err
				}
				acc = acc.Add(a)
			}
			gotAcc[w] = acc.Array()
			gotF[w] = a.MulAdd(b, a).Sqrt().Array()
			gotI[w] = n.Mul(n).Add(n).Array()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := range workers {
		assert.Equal(t, wantF, gotF[w], "worker %d", w)
		assert.Equal(t, wantI, gotI[w], "worker %d", w)
		assert.Equal(t, wantAcc, gotAcc[w], "worker %d", w)
	}
	// The shared inputs are untouched.
	assert.Equal(t, [8]float32{1, 2, 3, 4, 5, 6, 7, 8}, a.Array())
}
