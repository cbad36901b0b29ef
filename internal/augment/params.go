// Package augment implements batched 2D image augmentations with
// per-sample probability gating and homogeneous transform tracking.
//
// Every augmentation is an Operator wrapped in an Augmentation value. The
// wrapper owns the sampling configuration (p, p_batch, same_on_batch, the
// random generator) and the call protocol; operators only know how to
// generate parameters, compute the [N, 3, 3] transformation and apply it.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	aug := augment.NewRandomHorizontalFlip(
//	    augment.WithProbability(1.0),
//	    augment.WithRNG(rng),
//	)
//	out, transform := aug.ForwardT(in)
package augment

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/augment/internal/tensor"
)

// batchProbKey is the reserved parameter holding the per-sample selection
// mask as a 0/1 float tensor of shape [N].
const batchProbKey = "batch_prob"

// Params maps parameter names to per-sample tensors. The leading dimension
// of every field equals the batch size, or 1 when the field was sampled once
// for the whole batch (same_on_batch).
type Params map[string]*tensor.Tensor[float32]

// BatchProb returns the per-sample selection mask, or nil when the params
// carry no mask (in which case every sample counts as selected).
func (p Params) BatchProb() []bool {
	t, ok := p[batchProbKey]
	if !ok {
		return nil
	}
	data := t.Data()
	mask := make([]bool, len(data))
	for i, v := range data {
		mask[i] = v != 0
	}
	return mask
}

func (p Params) setBatchProb(mask []bool) {
	t := tensor.New[float32](tensor.Shape{len(mask)})
	data := t.Data()
	for i, selected := range mask {
		if selected {
			data[i] = 1
		}
	}
	p[batchProbKey] = t
}

// sampleBatchProb draws the per-sample selection mask. A single draw against
// pBatch first decides whether the batch participates at all; if it does,
// each sample is selected with probability p (one shared draw broadcast to
// all samples when sameOnBatch).
func sampleBatchProb(rng *rand.Rand, n int, p, pBatch float64, sameOnBatch bool) []bool {
	mask := make([]bool, n)
	if rng.Float64() >= pBatch {
		return mask
	}
	if sameOnBatch {
		selected := rng.Float64() < p
		for i := range mask {
			mask[i] = selected
		}
		return mask
	}
	for i := range mask {
		mask[i] = rng.Float64() < p
	}
	return mask
}

// requireBatchShape panics unless shape is a [N, C, H, W] batch.
func requireBatchShape(shape tensor.Shape) {
	if len(shape) != 4 {
		panic(fmt.Sprintf("augment: expected [N, C, H, W] batch shape, got %v", shape))
	}
}
