package augment

import (
	"math"
	"math/rand"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// Parameter names sampled by randomErasing.
const (
	paramEraseX      = "xs"
	paramEraseY      = "ys"
	paramEraseWidth  = "widths"
	paramEraseHeight = "heights"
)

// randomErasing fills a random rectangle of each sample with a constant
// value. The rectangle's area is a sampled fraction of the image area and
// its aspect ratio is sampled from the ratio range. Intensity-only, so the
// transformation is always the identity.
type randomErasing struct {
	scale [2]float64
	ratio [2]float64
	value float32
}

// NewRandomErasing returns a rectangle-erasing augmentation. scale is the
// erased-area fraction range within (0, 1]; ratio is the aspect ratio
// (width/height) range, positive. Both are validated at construction.
func NewRandomErasing(scale, ratio RangeSpec, value float64, opts ...Option) (*Augmentation, error) {
	scaleRanges, err := scale.Normalize(0, 1)
	if err != nil {
		return nil, err
	}
	ratioRanges, err := ratio.Normalize(0, math.Inf(1))
	if err != nil {
		return nil, err
	}

	op := randomErasing{
		scale: scaleRanges[0],
		ratio: ratioRanges[0],
		value: float32(value),
	}
	return newAugmentation(op, 0.5, opts...), nil
}

func (randomErasing) Name() string { return "RandomErasing" }

func (e randomErasing) GenerateParameters(rng *rand.Rand, batchShape tensor.Shape, sameOnBatch bool) Params {
	requireBatchShape(batchShape)
	n, h, w := batchShape[0], batchShape[2], batchShape[3]
	rows := n
	if sameOnBatch {
		rows = 1
	}

	xs := tensor.New[float32](tensor.Shape{rows})
	ys := tensor.New[float32](tensor.Shape{rows})
	widths := tensor.New[float32](tensor.Shape{rows})
	heights := tensor.New[float32](tensor.Shape{rows})

	for i := 0; i < rows; i++ {
		area := float64(h*w) * uniform(rng, e.scale[0], e.scale[1])
		aspect := uniform(rng, e.ratio[0], e.ratio[1])
		eh := clampInt(roundPositive(math.Sqrt(area/aspect)), 1, h)
		ew := clampInt(roundPositive(math.Sqrt(area*aspect)), 1, w)

		xs.Data()[i] = float32(rng.Intn(w - ew + 1))
		ys.Data()[i] = float32(rng.Intn(h - eh + 1))
		widths.Data()[i] = float32(ew)
		heights.Data()[i] = float32(eh)
	}

	return Params{
		paramEraseX:      xs,
		paramEraseY:      ys,
		paramEraseWidth:  widths,
		paramEraseHeight: heights,
	}
}

func (randomErasing) ComputeTransformation(in *tensor.Tensor[float32], _ Params) *tensor.Tensor[float32] {
	return geometry.Identity[float32](in.Shape()[0])
}

func (e randomErasing) ApplyTransform(in *tensor.Tensor[float32], params Params) *tensor.Tensor[float32] {
	s := in.Shape()
	n, c, h, w := s[0], s[1], s[2], s[3]
	out := in.Clone()

	xs := params[paramEraseX].Data()
	ys := params[paramEraseY].Data()
	widths := params[paramEraseWidth].Data()
	heights := params[paramEraseHeight].Data()
	dst := out.Data()

	for b := 0; b < n; b++ {
		// Row 0 is broadcast to every sample for same_on_batch params.
		row := b
		if row >= len(xs) {
			row = len(xs) - 1
		}
		x0, y0 := int(xs[row]), int(ys[row])
		ew, eh := int(widths[row]), int(heights[row])

		for ci := 0; ci < c; ci++ {
			off := (b*c + ci) * h * w
			for y := y0; y < y0+eh; y++ {
				rowOff := off + y*w
				for x := x0; x < x0+ew; x++ {
					dst[rowOff+x] = e.value
				}
			}
		}
	}
	return out
}
