package augment

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// Operator is the contract every concrete augmentation implements.
//
// Operators are pure over (tensor, parameters): they compute transformations
// and outputs for the full batch and never consult the selection mask.
// Probability gating, rank normalization and transform composition live in
// the Augmentation wrapper.
type Operator interface {
	// Name identifies the operator in errors and logs.
	Name() string

	// GenerateParameters samples the operator-specific parameters for a
	// [N, C, H, W] batch. Per-sample fields have leading dimension N, or 1
	// when sameOnBatch requests one shared draw.
	GenerateParameters(rng *rand.Rand, batchShape tensor.Shape, sameOnBatch bool) Params

	// ComputeTransformation returns the [N, 3, 3] homogeneous matrices
	// mapping input pixel coordinates to output pixel coordinates.
	ComputeTransformation(in *tensor.Tensor[float32], params Params) *tensor.Tensor[float32]

	// ApplyTransform returns the transformed batch. It must not mutate in.
	ApplyTransform(in *tensor.Tensor[float32], params Params) *tensor.Tensor[float32]
}

// Augmentation wraps an Operator with its sampling configuration and
// implements the call protocol: Forward for output-only use, ForwardT when
// the caller also needs the transformation, and Chain for composing onto a
// prior transform.
type Augmentation struct {
	op          Operator
	p           float64
	pBatch      float64
	sameOnBatch bool
	rng         *rand.Rand
}

// Option configures an Augmentation.
type Option func(*Augmentation)

// WithProbability sets the per-sample application probability p.
func WithProbability(p float64) Option {
	return func(a *Augmentation) { a.p = p }
}

// WithBatchProbability sets the probability p_batch that the batch
// participates at all.
func WithBatchProbability(p float64) Option {
	return func(a *Augmentation) { a.pBatch = p }
}

// WithSameOnBatch makes every sample in a batch share one sampled
// parameter set instead of sampling independently per sample.
func WithSameOnBatch(v bool) Option {
	return func(a *Augmentation) { a.sameOnBatch = v }
}

// WithRNG sets the random generator used for parameter sampling. Threading
// the generator explicitly keeps runs reproducible without global state.
func WithRNG(rng *rand.Rand) Option {
	return func(a *Augmentation) { a.rng = rng }
}

// newAugmentation wraps op with the given defaults applied.
func newAugmentation(op Operator, defaultP float64, opts ...Option) *Augmentation {
	a := &Augmentation{
		op:     op,
		p:      defaultP,
		pBatch: 1.0,
		rng:    rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.p < 0 || a.p > 1 {
		panic(fmt.Sprintf("augment: %s: probability p=%g outside [0, 1]", op.Name(), a.p))
	}
	if a.pBatch < 0 || a.pBatch > 1 {
		panic(fmt.Sprintf("augment: %s: probability p_batch=%g outside [0, 1]", op.Name(), a.pBatch))
	}
	return a
}

// Op returns the wrapped operator.
func (a *Augmentation) Op() Operator {
	return a.op
}

// Name returns the wrapped operator's name.
func (a *Augmentation) Name() string {
	return a.op.Name()
}

// NormalizeBatch lifts a rank-2 [H, W] or rank-3 [C, H, W] tensor into the
// canonical rank-4 [N, C, H, W] layout with the missing leading dimensions
// set to 1. Rank-4 input is returned unchanged.
func NormalizeBatch(in *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	s := in.Shape()
	switch len(s) {
	case 2:
		return in.Reshape(1, 1, s[0], s[1])
	case 3:
		return in.Reshape(1, s[0], s[1], s[2])
	case 4:
		return in
	default:
		panic(fmt.Sprintf("augment: input must have rank 2, 3 or 4, got shape %v", s))
	}
}

// GenerateParameters samples a full parameter set (selection mask plus
// operator parameters) for the given batch shape using the wrapper's
// generator.
func (a *Augmentation) GenerateParameters(batchShape tensor.Shape) Params {
	requireBatchShape(batchShape)
	mask := sampleBatchProb(a.rng, batchShape[0], a.p, a.pBatch, a.sameOnBatch)
	params := a.op.GenerateParameters(a.rng, batchShape, a.sameOnBatch)
	if params == nil {
		params = Params{}
	}
	params.setBatchProb(mask)
	return params
}

// Forward applies the augmentation and returns the output tensor only.
// Transform bookkeeping still happens internally, so switching a call site
// to ForwardT never changes the output values.
func (a *Augmentation) Forward(in *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	out, _ := a.ForwardT(in)
	return out
}

// ForwardT applies the augmentation and returns the output tensor together
// with its [N, 3, 3] transformation matrices.
func (a *Augmentation) ForwardT(in *tensor.Tensor[float32]) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	in4 := NormalizeBatch(in)
	params := a.GenerateParameters(in4.Shape())
	return a.ApplyWithParams(in4, params)
}

// Chain applies the augmentation to in and composes the stage transform onto
// prior: the returned matrices equal stageTransform @ prior. The output is
// identical to calling ForwardT(in) directly.
func (a *Augmentation) Chain(in, prior *tensor.Tensor[float32]) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	out, trans := a.ForwardT(in)
	return out, geometry.Compose(trans, prior)
}

// ChainWithParams is Chain with caller-provided parameters.
func (a *Augmentation) ChainWithParams(in, prior *tensor.Tensor[float32], params Params) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	in4 := NormalizeBatch(in)
	out, trans := a.ApplyWithParams(in4, params)
	return out, geometry.Compose(trans, prior)
}

// ApplyWithParams applies the augmentation with a caller-provided parameter
// set. The input must already be rank 4. Samples outside the selection mask
// pass through untouched with identity matrices. The input tensor is never
// mutated.
func (a *Augmentation) ApplyWithParams(in *tensor.Tensor[float32], params Params) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	requireBatchShape(in.Shape())
	n := in.Shape()[0]

	mask := params.BatchProb()
	if mask == nil {
		mask = make([]bool, n)
		for i := range mask {
			mask[i] = true
		}
	}
	if len(mask) != n {
		panic(fmt.Sprintf("augment: %s: selection mask has %d entries for a batch of %d", a.op.Name(), len(mask), n))
	}

	selected := 0
	for _, s := range mask {
		if s {
			selected++
		}
	}
	if selected == 0 {
		return in.Clone(), geometry.Identity[float32](n)
	}

	trans := a.op.ComputeTransformation(in, params)
	out := a.op.ApplyTransform(in, params)
	if selected == n {
		return out, trans
	}
	return mergeMasked(a.op.Name(), in, out, trans, mask)
}

// mergeMasked stitches augmented and passthrough samples into one batch.
// Only shape-preserving operators support partial selection; a
// shape-changing operator with a mixed mask has no consistent output shape.
func mergeMasked(name string, in, out, trans *tensor.Tensor[float32], mask []bool) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	if !out.Shape().Equal(in.Shape()) {
		panic(fmt.Sprintf(
			"augment: %s changes the output shape (%v -> %v) and cannot mix augmented and passthrough samples; use p=0 or p=1",
			name, in.Shape(), out.Shape()))
	}

	merged := in.Clone()
	mergedTrans := geometry.Identity[float32](len(mask))

	sampleLen := in.Shape()[1] * in.Shape()[2] * in.Shape()[3]
	outData := out.Data()
	mergedData := merged.Data()
	transData := trans.Data()
	mergedTransData := mergedTrans.Data()

	for i, sel := range mask {
		if !sel {
			continue
		}
		copy(mergedData[i*sampleLen:(i+1)*sampleLen], outData[i*sampleLen:(i+1)*sampleLen])
		copy(mergedTransData[i*9:(i+1)*9], transData[i*9:(i+1)*9])
	}
	return merged, mergedTrans
}
