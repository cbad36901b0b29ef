package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/augment/internal/tensor"
)

func TestHorizontalFlipValues(t *testing.T) {
	in, err := tensor.FromSlice([]float32{
		0.1, 0.2, 0.3,
		0.4, 0.5, 0.6,
		0.7, 0.8, 0.9,
	}, tensor.Shape{1, 3, 3})
	require.NoError(t, err)

	aug := NewRandomHorizontalFlip(WithProbability(1), WithRNG(seededRNG(42)))
	out, trans := aug.ForwardT(in)

	expected, err := tensor.FromSlice([]float32{
		0.3, 0.2, 0.1,
		0.6, 0.5, 0.4,
		0.9, 0.8, 0.7,
	}, tensor.Shape{1, 1, 3, 3})
	require.NoError(t, err)
	assert.True(t, out.AllClose(expected, 1e-4, 1e-4), "flipped output mismatch: %v", out)

	// Reflection about the vertical centerline: offset = width - 1.
	expectedTrans, err := tensor.FromSlice([]float32{
		-1, 0, 2,
		0, 1, 0,
		0, 0, 1,
	}, tensor.Shape{1, 3, 3})
	require.NoError(t, err)
	assert.True(t, trans.AllClose(expectedTrans, 1e-4, 1e-4), "transform mismatch: %v", trans)
}

func TestHorizontalFlipBatch(t *testing.T) {
	row := []float32{
		0.1, 0.2, 0.3,
		0.4, 0.5, 0.6,
		0.7, 0.8, 0.9,
	}
	in, err := tensor.FromSlice(append(append([]float32{}, row...), row...), tensor.Shape{2, 1, 3, 3})
	require.NoError(t, err)

	aug := NewRandomHorizontalFlip(WithProbability(1), WithRNG(seededRNG(12)))
	out, trans := aug.ForwardT(in)

	for b := 0; b < 2; b++ {
		assert.InDelta(t, 0.3, float64(out.At(b, 0, 0, 0)), 1e-6)
		assert.InDelta(t, 0.1, float64(out.At(b, 0, 0, 2)), 1e-6)
		assert.InDelta(t, float64(-1), float64(trans.At(b, 0, 0)), 1e-6)
		assert.InDelta(t, float64(2), float64(trans.At(b, 0, 2)), 1e-6)
	}
}

func TestHorizontalFlipTwiceIsIdentity(t *testing.T) {
	rng := seededRNG(42)
	in := tensor.Rand[float32](tensor.Shape{2, 3, 4, 5}, rng)

	aug := NewRandomHorizontalFlip(WithProbability(1), WithRNG(rng))
	once, trans1 := aug.ForwardT(in)
	twice, trans2 := aug.Chain(once, trans1)

	assert.True(t, twice.Equal(in), "double flip must restore the input")
	assert.True(t, trans2.AllClose(tensor.EyeBatch[float32](2, 3), 1e-4, 1e-4),
		"double flip transform must be the identity")
}
