package cli

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/born-ml/augment/internal/augment"
	"github.com/born-ml/augment/internal/imgio"
	"github.com/born-ml/augment/internal/tensor"
)

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [flags] FILE...",
		Short: "Run the configured pipeline over image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runApply(activeCfg, args)
		},
	}
}

func runApply(cfg Config, files []string) error {
	runID := uuid.NewString()
	rng := rand.New(rand.NewSource(cfg.Seed))

	pipeline, err := BuildPipeline(cfg.Pipeline, rng)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}
	logger.Info("starting run", "run_id", runID, "stages", pipeline.Len(), "seed", cfg.Seed, "files", len(files))

	for _, path := range files {
		if err := applyFile(cfg, pipeline, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	logger.Info("run complete", "run_id", runID)
	return nil
}

func applyFile(cfg Config, pipeline *augment.Sequential, path string) error {
	in, err := loadInput(path, cfg.MaxDim)
	if err != nil {
		return err
	}
	s := in.Shape()
	logger.Debug("loaded", "path", path, "height", s[2], "width", s[3])

	out, trans := pipeline.ForwardT(in)
	logger.Debug("augmented", "path", path, "out_shape", fmt.Sprint(out.Shape()), "transform", trans.String())

	img, err := imgio.ToImage(out, 0)
	if err != nil {
		return err
	}

	dest := outputPath(cfg.OutDir, path)
	if err := imgio.Save(img, dest); err != nil {
		return err
	}
	logger.Info("wrote", "path", dest)
	return nil
}

func loadInput(path string, maxDim int) (*tensor.Tensor[float32], error) {
	if maxDim <= 0 {
		return imgio.Load(path)
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	return imgio.FromImage(imgio.Fit(img, maxDim)), nil
}

// outputPath places the result next to the input with an "_aug" suffix, or
// under outDir keeping the base name.
func outputPath(outDir, path string) string {
	base := filepath.Base(path)
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	ext := filepath.Ext(base)
	return filepath.Join(filepath.Dir(path), strings.TrimSuffix(base, ext)+"_aug"+ext)
}
