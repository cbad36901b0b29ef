package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
func Zeros[T Float](shape Shape) *Tensor[T] {
	return New[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full[T Float](shape Shape, value T) *Tensor[T] {
	t := New[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Rand creates a tensor with values drawn uniformly from [0, 1) using rng.
// The generator is threaded explicitly so that callers control
// reproducibility; there is no package-level random state.
func Rand[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	t := New[T](shape)
	for i := range t.data {
		t.data[i] = T(rng.Float64())
	}
	return t
}

// Eye creates an n x n identity matrix.
func Eye[T Float](n int) *Tensor[T] {
	t := New[T](Shape{n, n})
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t
}

// EyeBatch creates a [batch, n, n] tensor of identity matrices.
func EyeBatch[T Float](batch, n int) *Tensor[T] {
	t := New[T](Shape{batch, n, n})
	for b := 0; b < batch; b++ {
		for i := 0; i < n; i++ {
			t.data[b*n*n+i*n+i] = 1
		}
	}
	return t
}
