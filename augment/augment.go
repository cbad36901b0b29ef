// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package augment

import (
	"github.com/born-ml/augment/internal/augment"
)

// Operator is the contract every concrete augmentation implements.
type Operator = augment.Operator

// Augmentation wraps an Operator with its sampling configuration and call
// protocol.
type Augmentation = augment.Augmentation

// Params maps parameter names to per-sample tensors.
type Params = augment.Params

// Option configures an Augmentation.
type Option = augment.Option

// Sequential chains augmentations, accumulating transform products.
type Sequential = augment.Sequential

// RangeSpec describes a sampling range as a scalar, interval, or
// per-channel set of intervals.
type RangeSpec = augment.RangeSpec

// Ranges is the canonical normalized range representation.
type Ranges = augment.Ranges

// ErrIdentityTransform signals that the verification oracle had nothing to
// verify because the transform is the identity.
var ErrIdentityTransform = augment.ErrIdentityTransform

// Configuration options.
var (
	WithProbability      = augment.WithProbability
	WithBatchProbability = augment.WithBatchProbability
	WithSameOnBatch      = augment.WithSameOnBatch
	WithRNG              = augment.WithRNG
)

// Range constructors.
var (
	Exact      = augment.Exact
	Interval   = augment.Interval
	PerChannel = augment.PerChannel
)

// Operator constructors.
var (
	NewRandomHorizontalFlip = augment.NewRandomHorizontalFlip
	NewRandomVerticalFlip   = augment.NewRandomVerticalFlip
	NewCenterCrop           = augment.NewCenterCrop
	NewRandomGrayscale      = augment.NewRandomGrayscale
	NewRandomErasing        = augment.NewRandomErasing
)

// NewSequential creates a pipeline from the given stages.
var NewSequential = augment.NewSequential

// NormalizeBatch lifts rank-2 and rank-3 inputs into the canonical
// [N, C, H, W] layout.
var NormalizeBatch = augment.NormalizeBatch

// VerifyInverseCoordinates is the geometric correctness oracle: it
// round-trips output pixel locations through the inverse transform and
// compares sampled values against the source.
var VerifyInverseCoordinates = augment.VerifyInverseCoordinates
