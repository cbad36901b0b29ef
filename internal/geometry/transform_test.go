package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/augment/internal/tensor"
)

func TestIdentity(t *testing.T) {
	id := Identity[float32](3)
	require.True(t, id.Shape().Equal(tensor.Shape{3, 3, 3}))
	assert.True(t, IsIdentity(id, 0))
}

func TestIsIdentityTolerance(t *testing.T) {
	m := Identity[float32](1)
	m.Set(1+1e-8, 0, 0, 0)
	assert.True(t, IsIdentity(m, 1e-6))
	m.Set(1.5, 0, 0, 0)
	assert.False(t, IsIdentity(m, 1e-6))
}

func TestComposeOrder(t *testing.T) {
	// A shifts x by +1, B scales x by 2. Applying A then B:
	// x -> 2*(x+1), so Compose(B, A) maps 1 -> 4.
	a := TranslationMatrix[float32](1, 1, 0)
	b := Identity[float32](1)
	b.Set(2, 0, 0, 0)

	total := Compose(b, a)
	pts, err := tensor.FromSlice([]float32{1, 0}, tensor.Shape{1, 1, 2})
	require.NoError(t, err)

	mapped := TransformPoints(total, pts)
	assert.InDelta(t, 4.0, float64(mapped.At(0, 0, 0)), 1e-6)
}

func TestInverseRoundTrip(t *testing.T) {
	m := HorizontalFlipMatrix[float32](2, 5)
	inv, err := Inverse(m)
	require.NoError(t, err)

	product := Compose(m, inv)
	assert.True(t, IsIdentity(product, 1e-5), "M @ M^-1 should be the identity, got %v", product)
}

func TestInverseSingular(t *testing.T) {
	m := tensor.Zeros[float32](tensor.Shape{1, 3, 3})
	_, err := Inverse(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "singular")
}

func TestTransformPointsFlip(t *testing.T) {
	// Width-3 horizontal flip: x' = 2 - x.
	m := HorizontalFlipMatrix[float32](1, 3)
	pts, err := tensor.FromSlice([]float32{0, 0, 1, 1, 2, 2}, tensor.Shape{1, 3, 2})
	require.NoError(t, err)

	mapped := TransformPoints(m, pts)
	expected := []float32{2, 0, 1, 1, 0, 2}
	for i, want := range expected {
		assert.InDelta(t, float64(want), float64(mapped.Data()[i]), 1e-6, "point component %d", i)
	}
}

func TestTransformPointsProjective(t *testing.T) {
	// A projective matrix with w = y + 1 halves coordinates on row y=1.
	m := Identity[float32](1)
	m.Set(1, 0, 2, 1)
	pts, err := tensor.FromSlice([]float32{4, 1}, tensor.Shape{1, 1, 2})
	require.NoError(t, err)

	mapped := TransformPoints(m, pts)
	assert.InDelta(t, 2.0, float64(mapped.At(0, 0, 0)), 1e-6)
	assert.InDelta(t, 0.5, float64(mapped.At(0, 0, 1)), 1e-6)
}

func TestFlipMatrixValues(t *testing.T) {
	h := HorizontalFlipMatrix[float32](1, 3)
	expectedH := []float32{
		-1, 0, 2,
		0, 1, 0,
		0, 0, 1,
	}
	assert.Equal(t, expectedH, h.Data())

	v := VerticalFlipMatrix[float32](1, 3)
	expectedV := []float32{
		1, 0, 0,
		0, -1, 2,
		0, 0, 1,
	}
	assert.Equal(t, expectedV, v.Data())
}

func TestTranslationMatrixValues(t *testing.T) {
	m := TranslationMatrix[float32](2, -1, 3)
	for b := 0; b < 2; b++ {
		assert.Equal(t, float32(-1), m.At(b, 0, 2))
		assert.Equal(t, float32(3), m.At(b, 1, 2))
		assert.Equal(t, float32(1), m.At(b, 0, 0))
		assert.Equal(t, float32(1), m.At(b, 1, 1))
		assert.Equal(t, float32(1), m.At(b, 2, 2))
	}
}

func TestCoordinateGrid(t *testing.T) {
	g := CoordinateGrid[float32](2, 3)
	require.True(t, g.Shape().Equal(tensor.Shape{1, 6, 2}))

	// Row-major: (0,0) (1,0) (2,0) (0,1) (1,1) (2,1).
	expected := []float32{0, 0, 1, 0, 2, 0, 0, 1, 1, 1, 2, 1}
	assert.Equal(t, expected, g.Data())
}
