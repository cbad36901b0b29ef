package augment

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/augment/internal/geometry"
	"github.com/born-ml/augment/internal/tensor"
)

// Verification constants. The value threshold excludes pixels blurred by
// interpolation at region boundaries; tolerances match the numeric contract
// of the apply protocol.
const (
	verifyThreshold = 0.9999
	verifyAtol      = 1e-4
	verifyRtol      = 1e-4
	identityEps     = 1e-6
)

// ErrIdentityTransform is returned by VerifyInverseCoordinates when every
// transform in the batch is the identity. There is no geometric effect to
// verify; callers should treat this as a skip, not a failure.
var ErrIdentityTransform = errors.New("augment: transform is the identity, nothing to verify")

// VerifyInverseCoordinates is the geometric correctness oracle. It maps
// every output pixel location through the inverse transform, keeps the
// pixels whose value exceeds the high-confidence threshold, and checks that
// each one equals the input pixel at the mapped source location. Mapped
// coordinates falling outside the input extent are a contract violation:
// the sampled region must come from real data, not padding.
//
// Any mismatch is reported as a hard error; there are no retries.
func VerifyInverseCoordinates(in, out, trans *tensor.Tensor[float32]) error {
	requireBatchShape(in.Shape())
	requireBatchShape(out.Shape())

	n, c := in.Shape()[0], in.Shape()[1]
	if out.Shape()[0] != n || out.Shape()[1] != c {
		return fmt.Errorf("augment: verify: output batch/channels %v do not match input %v", out.Shape(), in.Shape())
	}
	ts := trans.Shape()
	if len(ts) != 3 || ts[0] != n || ts[1] != 3 || ts[2] != 3 {
		return fmt.Errorf("augment: verify: transform shape %v does not match batch of %d", ts, n)
	}

	if geometry.IsIdentity(trans, identityEps) {
		return ErrIdentityTransform
	}

	inv, err := geometry.Inverse(trans)
	if err != nil {
		return fmt.Errorf("augment: verify: %w", err)
	}

	inH, inW := in.Shape()[2], in.Shape()[3]
	outH, outW := out.Shape()[2], out.Shape()[3]
	grid := geometry.CoordinateGrid[float32](outH, outW)

	for b := 0; b < n; b++ {
		sampleInv, err := tensor.FromSlice(inv.Data()[b*9:(b+1)*9], tensor.Shape{1, 3, 3})
		if err != nil {
			return err
		}
		mapped := geometry.TransformPoints(sampleInv, grid)
		coords := mapped.Data()

		for y := 0; y < outH; y++ {
			for x := 0; x < outW; x++ {
				if out.At(b, 0, y, x) <= verifyThreshold {
					continue
				}

				i := (y*outW + x) * 2
				sx := int(math.Round(float64(coords[i])))
				sy := int(math.Round(float64(coords[i+1])))
				if sx < 0 || sx >= inW || sy < 0 || sy >= inH {
					return fmt.Errorf(
						"augment: verify: output pixel (%d, %d) of sample %d maps to (%d, %d), outside the %dx%d input",
						x, y, b, sx, sy, inH, inW)
				}

				for ci := 0; ci < c; ci++ {
					got := float64(out.At(b, ci, y, x))
					want := float64(in.At(b, ci, sy, sx))
					if math.Abs(got-want) > verifyAtol+verifyRtol*math.Abs(want) {
						return fmt.Errorf(
							"augment: verify: sample %d channel %d: output (%d, %d)=%g but input (%d, %d)=%g",
							b, ci, x, y, got, sx, sy, want)
					}
				}
			}
		}
	}
	return nil
}
