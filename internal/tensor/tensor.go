// Package tensor implements the batched float tensor runtime backing the
// augmentation engine.
//
// Tensors are dense, row-major and immutable by convention: operations
// allocate a new tensor instead of writing into their receiver. The package
// deliberately supports only what the augmentation contract needs, so there
// is no device abstraction and no autodiff tape.
package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Float is the constraint for tensor element types.
type Float interface {
	~float32 | ~float64
}

// Tensor is a dense row-major tensor with element type T.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3, 4, 5})
//	v := t.At(0, 1, 2, 3)
type Tensor[T Float] struct {
	shape   Shape
	strides []int
	data    []T
}

// New creates a zero-initialized tensor with the given shape.
// Panics if the shape contains a non-positive dimension.
func New[T Float](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	s := shape.Clone()
	return &Tensor[T]{
		shape:   s,
		strides: s.ComputeStrides(),
		data:    make([]T, s.NumElements()),
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t := New[T](shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the tensor's backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	c := New[T](t.shape)
	copy(c.data, t.data)
	return c
}

// Reshape returns a tensor with the same data and a new shape.
// The element count must be preserved. The data is shared, not copied.
func (t *Tensor[T]) Reshape(dims ...int) *Tensor[T] {
	newShape := Shape(dims)
	if newShape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("tensor: cannot reshape %v into %v", t.shape, newShape))
	}
	s := newShape.Clone()
	return &Tensor[T]{
		shape:   s,
		strides: s.ComputeStrides(),
		data:    t.data,
	}
}

// Equal reports whether both tensors have identical shapes and
// bit-for-bit identical values.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether both tensors have identical shapes and values
// equal within |a-b| <= atol + rtol*|b|.
func (t *Tensor[T]) AllClose(other *Tensor[T], atol, rtol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		a := float64(t.data[i])
		b := float64(other.data[i])
		if math.Abs(a-b) > atol+rtol*math.Abs(b) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor%v [", t.shape)
	limit := len(t.data)
	truncated := false
	if limit > 8 {
		limit = 8
		truncated = true
	}
	for i := 0; i < limit; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.4g", float64(t.data[i]))
	}
	if truncated {
		b.WriteString(", ...")
	}
	b.WriteString("]")
	return b.String()
}
