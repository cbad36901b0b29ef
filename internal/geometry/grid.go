package geometry

import (
	"fmt"

	"github.com/born-ml/augment/internal/tensor"
)

// CoordinateGrid returns every integer pixel location of an h x w image as a
// [1, h*w, 2] tensor of (x, y) pairs in row-major order. The shape matches
// what TransformPoints expects for a single-sample batch.
func CoordinateGrid[T tensor.Float](h, w int) *tensor.Tensor[T] {
	if h <= 0 || w <= 0 {
		panic(fmt.Sprintf("geometry: invalid grid extent %dx%d", h, w))
	}
	out := tensor.New[T](tensor.Shape{1, h * w, 2})
	data := out.Data()
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[i] = T(x)
			data[i+1] = T(y)
			i += 2
		}
	}
	return out
}
