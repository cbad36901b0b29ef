package tensor

import "fmt"

// binary applies op element-wise over two tensors of identical shape.
func binary[T Float](a, b *Tensor[T], name string, op func(x, y T) T) *Tensor[T] {
	if !a.shape.Equal(b.shape) {
		panic(fmt.Sprintf("tensor: %s requires matching shapes, got %v and %v", name, a.shape, b.shape))
	}
	out := New[T](a.shape)
	for i := range out.data {
		out.data[i] = op(a.data[i], b.data[i])
	}
	return out
}

// Add returns the element-wise sum of t and other.
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	return binary(t, other, "Add", func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference of t and other.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	return binary(t, other, "Sub", func(x, y T) T { return x - y })
}

// Mul returns the element-wise product of t and other.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	return binary(t, other, "Mul", func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient of t and other.
func (t *Tensor[T]) Div(other *Tensor[T]) *Tensor[T] {
	return binary(t, other, "Div", func(x, y T) T { return x / y })
}

// AddScalar returns t with scalar added to every element.
func (t *Tensor[T]) AddScalar(scalar T) *Tensor[T] {
	out := New[T](t.shape)
	for i := range out.data {
		out.data[i] = t.data[i] + scalar
	}
	return out
}

// MulScalar returns t with every element multiplied by scalar.
func (t *Tensor[T]) MulScalar(scalar T) *Tensor[T] {
	out := New[T](t.shape)
	for i := range out.data {
		out.data[i] = t.data[i] * scalar
	}
	return out
}
