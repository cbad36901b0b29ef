package augment

import (
	"math/rand"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// verticalFlip mirrors images about their horizontal centerline. The
// transformation is [[1, 0, 0], [0, -1, H-1], [0, 0, 1]].
type verticalFlip struct{}

// NewRandomVerticalFlip returns a vertical flip applied with probability p
// (default 0.5).
func NewRandomVerticalFlip(opts ...Option) *Augmentation {
	return newAugmentation(verticalFlip{}, 0.5, opts...)
}

func (verticalFlip) Name() string { return "RandomVerticalFlip" }

func (verticalFlip) GenerateParameters(_ *rand.Rand, batchShape tensor.Shape, _ bool) Params {
	requireBatchShape(batchShape)
	return Params{}
}

func (verticalFlip) ComputeTransformation(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	return geometry.VerticalFlipMatrix[float32](s[0], s[2])
}

func (verticalFlip) ApplyTransform(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	n, c, h, w := s[0], s[1], s[2], s[3]
	out := tensor.New[float32](s.Clone())
	src := in.Data()
	dst := out.Data()
	for plane := 0; plane < n*c; plane++ {
		off := plane * h * w
		for y := 0; y < h; y++ {
			copy(dst[off+y*w:off+(y+1)*w], src[off+(h-1-y)*w:off+(h-y)*w])
		}
	}
	return out
}
