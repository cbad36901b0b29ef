package augment

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// centerCrop cuts an h x w window from the spatial center of each sample.
// The transformation is the translation [[1, 0, -x0], [0, 1, -y0], [0, 0, 1]]
// where (x0, y0) is the top-left corner of the window.
type centerCrop struct {
	h, w int
}

// NewCenterCrop returns a center crop to size (h, w), applied with
// probability 1 by default. The size must be positive; the input extent is
// checked at apply time.
func NewCenterCrop(h, w int, opts ...Option) (*Augmentation, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("augment: CenterCrop size must be positive, got (%d, %d)", h, w)
	}
	return newAugmentation(centerCrop{h: h, w: w}, 1.0, opts...), nil
}

func (centerCrop) Name() string { return "CenterCrop" }

func (c centerCrop) GenerateParameters(_ *rand.Rand, batchShape tensor.Shape, _ bool) Params {
	requireBatchShape(batchShape)
	return Params{}
}

// origin returns the window's top-left corner for an H x W input.
func (c centerCrop) origin(h, w int) (x0, y0 int) {
	if c.h > h || c.w > w {
		panic(fmt.Sprintf("augment: CenterCrop size (%d, %d) exceeds input extent (%d, %d)", c.h, c.w, h, w))
	}
	return (w - c.w) / 2, (h - c.h) / 2
}

func (c centerCrop) ComputeTransformation(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	x0, y0 := c.origin(s[2], s[3])
	return geometry.TranslationMatrix[float32](s[0], float64(-x0), float64(-y0))
}

func (c centerCrop) ApplyTransform(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	n, ch, h, w := s[0], s[1], s[2], s[3]
	x0, y0 := c.origin(h, w)

	out := tensor.New[float32](tensor.Shape{n, ch, c.h, c.w})
	src := in.Data()
	dst := out.Data()
	for plane := 0; plane < n*ch; plane++ {
		srcOff := plane * h * w
		dstOff := plane * c.h * c.w
		for y := 0; y < c.h; y++ {
			rowStart := srcOff + (y0+y)*w + x0
			copy(dst[dstOff+y*c.w:dstOff+(y+1)*c.w], src[rowStart:rowStart+c.w])
		}
	}
	return out
}
