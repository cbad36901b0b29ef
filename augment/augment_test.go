// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package augment_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/augment/augment"
	"github.com/born-ml/augment/geometry"
	"github.com/born-ml/augment/tensor"
)

func TestPipelineEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	crop, err := augment.NewCenterCrop(24, 24, augment.WithRNG(rng))
	require.NoError(t, err)
	erase, err := augment.NewRandomErasing(
		augment.Interval(0.02, 0.2),
		augment.Interval(0.5, 2.0),
		0,
		augment.WithProbability(1),
		augment.WithRNG(rng),
	)
	require.NoError(t, err)

	pipe := augment.NewSequential(
		augment.NewRandomHorizontalFlip(augment.WithProbability(1), augment.WithRNG(rng)),
		crop,
		augment.NewRandomGrayscale(augment.WithProbability(1), augment.WithRNG(rng)),
		erase,
	)

	in := tensor.Rand[float32](tensor.Shape{4, 3, 32, 32}, rng)
	out, trans := pipe.ForwardT(in)

	assert.True(t, out.Shape().Equal(tensor.Shape{4, 3, 24, 24}))
	assert.True(t, trans.Shape().Equal(tensor.Shape{4, 3, 3}))
	assert.False(t, geometry.IsIdentity(trans, 1e-6))
}

func TestForwardTReproducible(t *testing.T) {
	run := func(seed int64) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
		rng := rand.New(rand.NewSource(seed))
		aug := augment.NewRandomVerticalFlip(
			augment.WithProbability(0.5),
			augment.WithRNG(rng),
		)
		in := tensor.Rand[float32](tensor.Shape{8, 1, 4, 4}, rand.New(rand.NewSource(7)))
		return aug.ForwardT(in)
	}

	out1, trans1 := run(3)
	out2, trans2 := run(3)
	assert.True(t, out1.Equal(out2))
	assert.True(t, trans1.Equal(trans2))
}

func TestVerifyOracleExported(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := tensor.Zeros[float32](tensor.Shape{1, 1, 10, 10})
	for x := 2; x < 5; x++ {
		in.Set(1, 0, 0, 4, x)
	}

	flip := augment.NewRandomHorizontalFlip(augment.WithProbability(1), augment.WithRNG(rng))
	out, trans := flip.ForwardT(in)
	require.NoError(t, augment.VerifyInverseCoordinates(in, out, trans))

	err := augment.VerifyInverseCoordinates(in, in.Clone(), geometry.Identity[float32](1))
	assert.True(t, errors.Is(err, augment.ErrIdentityTransform))
}
