// Package geometry implements the homogeneous 2D transform algebra used by
// the augmentation engine.
//
// Transformation matrices are [N, 3, 3] batches mapping input pixel
// coordinates to output pixel coordinates in homogeneous form. Pixel
// coordinates follow the pixel-center convention: the top-left pixel sits at
// (0, 0) and a width-W row spans x in [0, W-1].
package geometry

import (
	"fmt"
	"math"

	"github.com/born-ml/augment/internal/tensor"
)

// Identity returns a [batch, 3, 3] tensor of identity matrices.
func Identity[T tensor.Float](batch int) *tensor.Tensor[T] {
	return tensor.EyeBatch[T](batch, 3)
}

// IsIdentity reports whether every matrix in the [N, 3, 3] batch equals the
// identity within eps.
func IsIdentity[T tensor.Float](m *tensor.Tensor[T], eps float64) bool {
	requireMatrixBatch(m)
	data := m.Data()
	for off := 0; off < len(data); off += 9 {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(float64(data[off+i*3+j])-want) > eps {
					return false
				}
			}
		}
	}
	return true
}

// Compose returns the batched matrix product outer @ inner.
//
// When a stage with matrix S is applied after a prior transform P, the
// combined transform is Compose(S, P): the stage applied last is the left
// factor.
func Compose[T tensor.Float](outer, inner *tensor.Tensor[T]) *tensor.Tensor[T] {
	requireMatrixBatch(outer)
	requireMatrixBatch(inner)
	return tensor.BatchMatMul(outer, inner)
}

// Inverse returns the batched inverse of the [N, 3, 3] transforms, computed
// via the adjugate. Returns an error if any matrix is singular.
func Inverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	requireMatrixBatch(m)
	batch := m.Shape()[0]
	out := tensor.New[T](tensor.Shape{batch, 3, 3})
	src := m.Data()
	dst := out.Data()

	for b := 0; b < batch; b++ {
		o := b * 9
		a00, a01, a02 := float64(src[o+0]), float64(src[o+1]), float64(src[o+2])
		a10, a11, a12 := float64(src[o+3]), float64(src[o+4]), float64(src[o+5])
		a20, a21, a22 := float64(src[o+6]), float64(src[o+7]), float64(src[o+8])

		c00 := a11*a22 - a12*a21
		c01 := a12*a20 - a10*a22
		c02 := a10*a21 - a11*a20
		det := a00*c00 + a01*c01 + a02*c02
		if math.Abs(det) < 1e-12 {
			return nil, fmt.Errorf("geometry: singular transform at batch index %d (det=%g)", b, det)
		}
		inv := 1.0 / det

		dst[o+0] = T(c00 * inv)
		dst[o+1] = T((a02*a21 - a01*a22) * inv)
		dst[o+2] = T((a01*a12 - a02*a11) * inv)
		dst[o+3] = T(c01 * inv)
		dst[o+4] = T((a00*a22 - a02*a20) * inv)
		dst[o+5] = T((a02*a10 - a00*a12) * inv)
		dst[o+6] = T(c02 * inv)
		dst[o+7] = T((a01*a20 - a00*a21) * inv)
		dst[o+8] = T((a00*a11 - a01*a10) * inv)
	}
	return out, nil
}

// TransformPoints applies the [N, 3, 3] transforms to [N, P, 2] points and
// returns the mapped [N, P, 2] points. Points are promoted to homogeneous
// (x, y, 1) and divided by the resulting w component.
func TransformPoints[T tensor.Float](trans, points *tensor.Tensor[T]) *tensor.Tensor[T] {
	requireMatrixBatch(trans)
	ps := points.Shape()
	if len(ps) != 3 || ps[2] != 2 {
		panic(fmt.Sprintf("geometry: points must be [N, P, 2], got %v", ps))
	}
	if ps[0] != trans.Shape()[0] {
		panic(fmt.Sprintf("geometry: batch sizes differ: %d transforms vs %d point sets", trans.Shape()[0], ps[0]))
	}

	batch, n := ps[0], ps[1]
	out := tensor.New[T](ps.Clone())
	m := trans.Data()
	in := points.Data()
	dst := out.Data()

	for b := 0; b < batch; b++ {
		mo := b * 9
		for p := 0; p < n; p++ {
			po := (b*n + p) * 2
			x, y := float64(in[po]), float64(in[po+1])
			xh := float64(m[mo+0])*x + float64(m[mo+1])*y + float64(m[mo+2])
			yh := float64(m[mo+3])*x + float64(m[mo+4])*y + float64(m[mo+5])
			wh := float64(m[mo+6])*x + float64(m[mo+7])*y + float64(m[mo+8])
			if wh != 0 {
				xh /= wh
				yh /= wh
			}
			dst[po] = T(xh)
			dst[po+1] = T(yh)
		}
	}
	return out
}

// HorizontalFlipMatrix returns [batch, 3, 3] reflections about the vertical
// centerline of a width-w image: x' = (w-1) - x.
func HorizontalFlipMatrix[T tensor.Float](batch, w int) *tensor.Tensor[T] {
	out := Identity[T](batch)
	data := out.Data()
	for b := 0; b < batch; b++ {
		o := b * 9
		data[o+0] = -1
		data[o+2] = T(w - 1)
	}
	return out
}

// VerticalFlipMatrix returns [batch, 3, 3] reflections about the horizontal
// centerline of a height-h image: y' = (h-1) - y.
func VerticalFlipMatrix[T tensor.Float](batch, h int) *tensor.Tensor[T] {
	out := Identity[T](batch)
	data := out.Data()
	for b := 0; b < batch; b++ {
		o := b * 9
		data[o+4] = -1
		data[o+5] = T(h - 1)
	}
	return out
}

// TranslationMatrix returns [batch, 3, 3] translations by (dx, dy).
func TranslationMatrix[T tensor.Float](batch int, dx, dy float64) *tensor.Tensor[T] {
	out := Identity[T](batch)
	data := out.Data()
	for b := 0; b < batch; b++ {
		o := b * 9
		data[o+2] = T(dx)
		data[o+5] = T(dy)
	}
	return out
}

func requireMatrixBatch[T tensor.Float](m *tensor.Tensor[T]) {
	s := m.Shape()
	if len(s) != 3 || s[1] != 3 || s[2] != 3 {
		panic(fmt.Sprintf("geometry: expected [N, 3, 3] transform batch, got %v", s))
	}
}
