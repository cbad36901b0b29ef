// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the batched tensor runtime
// backing the augmentation engine.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3, 4, 5})
//	y := tensor.Ones[float32](tensor.Shape{2, 3, 4, 5})
//	z := x.Add(y)
package tensor

import (
	"math/rand"

	"github.com/born-ml/augment/internal/tensor"
)

// Float is the constraint for tensor element types.
type Float = tensor.Float

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4, 5} represents a [N, C, H, W] batch.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor with element type T.
type Tensor[T Float] = tensor.Tensor[T]

// New creates a zero-initialized tensor with the given shape.
func New[T Float](shape Shape) *Tensor[T] {
	return tensor.New[T](shape)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Float](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T Float](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Rand creates a tensor with values drawn uniformly from [0, 1) using rng.
func Rand[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	return tensor.Rand[T](shape, rng)
}

// Eye creates an n x n identity matrix.
func Eye[T Float](n int) *Tensor[T] {
	return tensor.Eye[T](n)
}

// EyeBatch creates a [batch, n, n] tensor of identity matrices.
func EyeBatch[T Float](batch, n int) *Tensor[T] {
	return tensor.EyeBatch[T](batch, n)
}

// BatchMatMul performs batched matrix multiplication:
// [B, M, K] @ [B, K, N] -> [B, M, N].
func BatchMatMul[T Float](a, b *Tensor[T]) *Tensor[T] {
	return tensor.BatchMatMul(a, b)
}
