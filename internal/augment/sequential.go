package augment

import (
	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// Sequential chains augmentations: each stage consumes the previous stage's
// output and transform products accumulate right-to-left, so the final
// matrices equal T_last @ ... @ T_first. Running a pipeline is equivalent,
// within floating-point tolerance, to invoking the stages one by one and
// composing the transforms manually.
type Sequential struct {
	stages []*Augmentation
}

// NewSequential creates a pipeline from the given stages.
func NewSequential(stages ...*Augmentation) *Sequential {
	return &Sequential{stages: stages}
}

// Add appends a stage to the pipeline.
func (s *Sequential) Add(stage *Augmentation) {
	s.stages = append(s.stages, stage)
}

// Len returns the number of stages.
func (s *Sequential) Len() int {
	return len(s.stages)
}

// Stage returns the stage at the given index.
func (s *Sequential) Stage(i int) *Augmentation {
	return s.stages[i]
}

// Forward applies all stages in sequence and returns the output tensor
// only.
func (s *Sequential) Forward(in *tensor.Tensor[float32]) *tensor.Tensor[float32] {
	out, _ := s.ForwardT(in)
	return out
}

// ForwardT applies all stages in sequence and returns the output together
// with the composed [N, 3, 3] transformation matrices.
func (s *Sequential) ForwardT(in *tensor.Tensor[float32]) (*tensor.Tensor[float32], *tensor.Tensor[float32]) {
	out := NormalizeBatch(in)
	trans := geometry.Identity[float32](out.Shape()[0])
	for _, stage := range s.stages {
		out, trans = stage.Chain(out, trans)
	}
	return out, trans
}
