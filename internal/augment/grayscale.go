package augment

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// ITU-R BT.601 luminance weights.
var grayscaleWeights = [3]float32{0.299, 0.587, 0.114}

// grayscale replaces the three color channels with their luminance. It is an
// intensity-only operator, so its transformation is always the identity.
type grayscale struct{}

// NewRandomGrayscale returns a grayscale conversion applied with probability
// p (default 0.1, matching the common torchvision default). Inputs must have
// exactly 3 channels.
func NewRandomGrayscale(opts ...Option) *Augmentation {
	return newAugmentation(grayscale{}, 0.1, opts...)
}

func (grayscale) Name() string { return "RandomGrayscale" }

func (grayscale) GenerateParameters(_ *rand.Rand, batchShape tensor.Shape, _ bool) Params {
	requireBatchShape(batchShape)
	return Params{}
}

func (grayscale) ComputeTransformation(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	return geometry.Identity[float32](in.Shape()[0])
}

func (grayscale) ApplyTransform(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	s := in.Shape()
	n, c, h, w := s[0], s[1], s[2], s[3]
	if c != 3 {
		panic(fmt.Sprintf("augment: RandomGrayscale requires 3 channels, got %d", c))
	}

	out := tensor.New[float32](s.Clone())
	src := in.Data()
	dst := out.Data()
	plane := h * w
	for b := 0; b < n; b++ {
		off := b * 3 * plane
		for i := 0; i < plane; i++ {
			lum := grayscaleWeights[0]*src[off+i] +
				grayscaleWeights[1]*src[off+plane+i] +
				grayscaleWeights[2]*src[off+2*plane+i]
			dst[off+i] = lum
			dst[off+plane+i] = lum
			dst[off+2*plane+i] = lum
		}
	}
	return out
}
