// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package augment provides batched 2D image augmentations with per-sample
// probability gating and homogeneous transform tracking.
//
// # Overview
//
// This package contains:
//   - Geometric operators: RandomHorizontalFlip, RandomVerticalFlip, CenterCrop
//   - Intensity operators: RandomGrayscale, RandomErasing
//   - Sequential: pipeline container accumulating transform products
//   - VerifyInverseCoordinates: geometric correctness oracle
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/augment/augment"
//	    "github.com/born-ml/augment/tensor"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    pipeline := augment.NewSequential(
//	        augment.NewRandomHorizontalFlip(
//	            augment.WithProbability(0.5),
//	            augment.WithRNG(rng),
//	        ),
//	        augment.NewRandomGrayscale(
//	            augment.WithProbability(0.2),
//	            augment.WithRNG(rng),
//	        ),
//	    )
//
//	    in := tensor.Rand[float32](tensor.Shape{8, 3, 224, 224}, rng)
//	    out, transform := pipeline.ForwardT(in)
//	    _ = out
//	    _ = transform
//	}
//
// # Transform Convention
//
// Every augmentation produces, along with its output batch, an [N, 3, 3]
// batch of homogeneous matrices mapping input pixel coordinates to output
// pixel coordinates. Chained stages compose right-to-left:
//
//	T_total = T_last @ ... @ T_first
//
// Intensity-only operators report the identity. An all-identity result from
// an augmentation with p=0 guarantees the output tensor is bit-for-bit
// equal to the input.
//
// # Probability Gating
//
// Each Augmentation carries three sampling knobs:
//   - p: probability a sample is augmented
//   - p_batch: probability the batch participates at all
//   - same_on_batch: share one sampled parameter set across the batch
//
// The random generator is threaded explicitly via WithRNG, so runs are
// reproducible per call without hidden global state.
package augment
