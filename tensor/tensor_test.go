// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/augment/tensor"
)

func TestPublicConstructors(t *testing.T) {
	shape := tensor.Shape{2, 3}

	assert.Equal(t, float32(0), tensor.Zeros[float32](shape).At(1, 2))
	assert.Equal(t, float32(1), tensor.Ones[float32](shape).At(0, 0))
	assert.Equal(t, float64(2.5), tensor.Full(shape, 2.5).At(1, 1))

	r := tensor.Rand[float32](shape, rand.New(rand.NewSource(1)))
	for _, v := range r.Data() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}

	eye := tensor.Eye[float32](3)
	assert.Equal(t, float32(1), eye.At(1, 1))
	assert.Equal(t, float32(0), eye.At(0, 1))
}

func TestPublicBatchMatMul(t *testing.T) {
	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
	require.NoError(t, err)
	id := tensor.EyeBatch[float32](1, 2)

	out := tensor.BatchMatMul(a, id)
	assert.True(t, out.Equal(a))
}
