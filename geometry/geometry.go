// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package geometry provides the public API for the homogeneous 2D transform
// algebra used by the augmentation engine: [N, 3, 3] transform batches,
// their composition and inversion, and pixel coordinate mapping.
package geometry

import (
	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// Identity returns a [batch, 3, 3] tensor of identity matrices.
func Identity[T tensor.Float](batch int) *tensor.Tensor[T] {
	return geometry.Identity[T](batch)
}

// IsIdentity reports whether every matrix in the batch equals the identity
// within eps.
func IsIdentity[T tensor.Float](m *tensor.Tensor[T], eps float64) bool {
	return geometry.IsIdentity(m, eps)
}

// Compose returns the batched matrix product outer @ inner. The stage
// applied last is the left factor.
func Compose[T tensor.Float](outer, inner *tensor.Tensor[T]) *tensor.Tensor[T] {
	return geometry.Compose(outer, inner)
}

// Inverse returns the batched inverse of the [N, 3, 3] transforms.
func Inverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return geometry.Inverse(m)
}

// TransformPoints applies the [N, 3, 3] transforms to [N, P, 2] points.
func TransformPoints[T tensor.Float](trans, points *tensor.Tensor[T]) *tensor.Tensor[T] {
	return geometry.TransformPoints(trans, points)
}

// CoordinateGrid returns every integer pixel location of an h x w image as
// a [1, h*w, 2] tensor of (x, y) pairs.
func CoordinateGrid[T tensor.Float](h, w int) *tensor.Tensor[T] {
	return geometry.CoordinateGrid[T](h, w)
}

// HorizontalFlipMatrix returns [batch, 3, 3] reflections about the vertical
// centerline of a width-w image.
func HorizontalFlipMatrix[T tensor.Float](batch, w int) *tensor.Tensor[T] {
	return geometry.HorizontalFlipMatrix[T](batch, w)
}

// VerticalFlipMatrix returns [batch, 3, 3] reflections about the horizontal
// centerline of a height-h image.
func VerticalFlipMatrix[T tensor.Float](batch, h int) *tensor.Tensor[T] {
	return geometry.VerticalFlipMatrix[T](batch, h)
}

// TranslationMatrix returns [batch, 3, 3] translations by (dx, dy).
func TranslationMatrix[T tensor.Float](batch int, dx, dy float64) *tensor.Tensor[T] {
	return geometry.TranslationMatrix[T](batch, dx, dy)
}
