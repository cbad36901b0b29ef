package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

func TestGrayscaleLuminance(t *testing.T) {
	// One pixel per channel keeps the arithmetic readable.
	in, err := tensor.FromSlice([]float32{
		1.0, // R
		0.5, // G
		0.0, // B
	}, tensor.Shape{1, 3, 1, 1})
	require.NoError(t, err)

	aug := NewRandomGrayscale(WithProbability(1), WithRNG(seededRNG(7)))
	out, trans := aug.ForwardT(in)

	lum := float32(0.299*1.0 + 0.587*0.5 + 0.114*0.0)
	for c := 0; c < 3; c++ {
		assert.InDelta(t, lum, out.At(0, c, 0, 0), 1e-6)
	}
	assert.True(t, geometry.IsIdentity(trans, 1e-6), "grayscale must report an identity transform")
}

func TestGrayscaleChannelsEqual(t *testing.T) {
	rng := seededRNG(11)
	in := tensor.Rand[float32](tensor.Shape{2, 3, 4, 5}, rng)

	aug := NewRandomGrayscale(WithProbability(1), WithRNG(rng))
	out := aug.Forward(in)

	require.True(t, out.Shape().Equal(in.Shape()))
	for b := 0; b < 2; b++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 5; x++ {
				v := out.At(b, 0, y, x)
				assert.Equal(t, v, out.At(b, 1, y, x))
				assert.Equal(t, v, out.At(b, 2, y, x))
			}
		}
	}
}

func TestGrayscaleRequiresThreeChannels(t *testing.T) {
	aug := NewRandomGrayscale(WithProbability(1), WithRNG(seededRNG(1)))

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for a single-channel input")
		}
	}()
	aug.Forward(tensor.Zeros[float32](tensor.Shape{1, 1, 2, 2}))
}
