package cli

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/augment/internal/augment"
)

// BuildPipeline turns the configured stages into a Sequential pipeline
// sharing one random generator.
func BuildPipeline(stages []StageConfig, rng *rand.Rand) (*augment.Sequential, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("pipeline has no stages")
	}

	seq := augment.NewSequential()
	for i, stage := range stages {
		aug, err := buildStage(stage, rng)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.Op, err)
		}
		seq.Add(aug)
	}
	return seq, nil
}

func buildStage(stage StageConfig, rng *rand.Rand) (*augment.Augmentation, error) {
	opts := []augment.Option{augment.WithRNG(rng)}
	if stage.P != nil {
		opts = append(opts, augment.WithProbability(*stage.P))
	}
	if stage.PBatch != nil {
		opts = append(opts, augment.WithBatchProbability(*stage.PBatch))
	}
	if stage.SameOnBatch {
		opts = append(opts, augment.WithSameOnBatch(true))
	}

	switch stage.Op {
	case "hflip":
		return augment.NewRandomHorizontalFlip(opts...), nil
	case "vflip":
		return augment.NewRandomVerticalFlip(opts...), nil
	case "grayscale":
		return augment.NewRandomGrayscale(opts...), nil
	case "center_crop":
		return augment.NewCenterCrop(stage.Height, stage.Width, opts...)
	case "erasing":
		scale, err := rangeFromPair(stage.Scale, [2]float64{0.02, 0.33})
		if err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
		ratio, err := rangeFromPair(stage.Ratio, [2]float64{0.3, 3.3})
		if err != nil {
			return nil, fmt.Errorf("ratio: %w", err)
		}
		return augment.NewRandomErasing(scale, ratio, stage.Value, opts...)
	default:
		return nil, fmt.Errorf("unknown op %q (want hflip, vflip, grayscale, center_crop or erasing)", stage.Op)
	}
}

func rangeFromPair(pair []float64, fallback [2]float64) (augment.RangeSpec, error) {
	switch len(pair) {
	case 0:
		return augment.Interval(fallback[0], fallback[1]), nil
	case 2:
		return augment.Interval(pair[0], pair[1]), nil
	default:
		return augment.RangeSpec{}, fmt.Errorf("expected [lo, hi], got %d values", len(pair))
	}
}
