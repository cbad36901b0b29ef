package augment

import (
	"math/rand"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// horizontalFlip mirrors images about their vertical centerline. The
// transformation is the reflection [[-1, 0, W-1], [0, 1, 0], [0, 0, 1]].
type horizontalFlip struct{}

// NewRandomHorizontalFlip returns a horizontal flip applied with probability
// p (default 0.5).
func NewRandomHorizontalFlip(opts ...Option) *Augmentation {
	return newAugmentation(horizontalFlip{}, 0.5, opts...)
}

func (horizontalFlip) Name() string { return "RandomHorizontalFlip" }

func (horizontalFlip) GenerateParameters(_ *rand.Rand, batchShape tensor.Shape, _ bool) Params {
	requireBatchShape(batchShape)
	return Params{}
}

func (horizontalFlip) ComputeTransformation(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	return geometry.HorizontalFlipMatrix[float32](s[0], s[3])
}

func (horizontalFlip) ApplyTransform(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	n, c, h, w := s[0], s[1], s[2], s[3]
	out := tensor.New[float32](s.Clone())
	src := in.Data()
	dst := out.Data()
	for row := 0; row < n*c*h; row++ {
		off := row * w
		for x := 0; x < w; x++ {
			dst[off+x] = src[off+w-1-x]
		}
	}
	return out
}
